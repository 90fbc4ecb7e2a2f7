package core

import (
	"scriptlink/config"
	"scriptlink/internal/metrics"
	"scriptlink/internal/payload"
	"scriptlink/internal/transport"
	"scriptlink/util"
)

// Build constructs the appropriate Mode from the given configuration.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mc := metrics.New()
	dialer := &transport.LoopbackDialer{}

	switch {
	case cfg.Check:
		return &CheckMode{
			Dialer:  dialer,
			Port:    cfg.Port,
			Timeout: cfg.ProbeTimeout(),
			Logger:  logger,
			Metrics: mc,
		}, nil

	case cfg.Discover:
		return &DiscoverMode{
			Dialer:  dialer,
			Timeout: cfg.SendTimeout(),
			Logger:  logger,
			Metrics: mc,
		}, nil

	default:
		return &SendMode{
			Dialer:  dialer,
			Port:    cfg.Port,
			Payload: buildPayload(cfg),
			Timeout: cfg.SendTimeout(),
			Logger:  logger,
			Metrics: mc,
		}, nil
	}
}

// buildPayload resolves the present/absent variant from the config.
func buildPayload(cfg *config.Config) payload.Payload {
	if cfg.NoPayload || !cfg.HasScript {
		return payload.None()
	}
	return payload.Bytes(cfg.Script)
}

// logMetrics dumps the counters at debug verbosity once a mode is done.
func logMetrics(logger *util.Logger, mc *metrics.Collector) {
	logger.Debug("wire stats: %s", mc.Snapshot())
}
