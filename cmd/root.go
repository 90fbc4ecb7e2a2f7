// Package cmd wires up the CLI flags and dispatches to the core modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"scriptlink/config"
	"scriptlink/internal/core"
	"scriptlink/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X scriptlink/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// stdinIsTerminal is swapped out in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Execute parses args and runs the appropriate scriptlink mode.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{Port: config.DefaultPort}
	config.LoadFromEnv(cfg) // flags registered below override env values

	fs := flag.NewFlagSet("scriptlink", flag.ContinueOnError)

	// ── target ───────────────────────────────────────────────────
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "Backend port")

	var timeoutSec int
	fs.IntVarP(&timeoutSec, "timeout", "w", 0, "Timeout in seconds")

	// ── mode ─────────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Check, "check", "z", false, "Liveness check only (no data)")
	fs.BoolVarP(&cfg.Discover, "discover", "D", false, "Probe the candidate ports for a backend")

	// ── payload ──────────────────────────────────────────────────
	fs.StringVarP(&cfg.File, "file", "f", cfg.File, "Read the script from a file")
	fs.BoolVarP(&cfg.NoPayload, "no-payload", "n", cfg.NoPayload, "Connect without sending a script")

	// ── output ───────────────────────────────────────────────────
	// CountVarP zeroes its target at registration, so the env value
	// is restored after parsing when no -v was passed.
	envVerbose := cfg.Verbose
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp, dryRun bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	fs.BoolVar(&dryRun, "dry-run", false, "Validate configuration and exit")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("scriptlink %s\n", version)
		return nil
	}

	if timeoutSec > 0 {
		cfg.Timeout = time.Duration(timeoutSec) * time.Second
	}
	if cfg.Verbose == 0 {
		cfg.Verbose = envVerbose
	}

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── payload resolution ───────────────────────────────────────
	if err := resolveScript(cfg); err != nil {
		return err
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	// ── build and run ────────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)

	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// parsePositional accepts an optional trailing port argument, which
// overrides -p.
func parsePositional(cfg *config.Config, remaining []string) error {
	switch len(remaining) {
	case 0:
		return nil
	case 1:
		port, err := util.ParsePort(remaining[0])
		if err != nil {
			return err
		}
		cfg.Port = port
		return nil
	default:
		return fmt.Errorf("too many arguments: %v", remaining[1:])
	}
}

// resolveScript fills cfg.Script from -f or piped stdin for send mode.
func resolveScript(cfg *config.Config) error {
	if cfg.Check || cfg.Discover || cfg.NoPayload {
		return nil
	}

	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		cfg.Script = data
		cfg.HasScript = true
		return nil
	}

	if !stdinIsTerminal() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		cfg.Script = data
		cfg.HasScript = true
		return nil
	}

	return fmt.Errorf("no script to send: pipe one on stdin, use -f, or pass -n")
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `scriptlink – local script delivery tool v%s

Compresses a script and delivers it to the execution backend listening
on a loopback port (8392-8397).

Usage:
  scriptlink [options] [port]                 Send a script
  scriptlink -z [-p port]                     Liveness check
  scriptlink -D                               Autodiscover the backend

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  echo "run()" | scriptlink                   Send via stdin to port 8392
  scriptlink -f build.txt -p 8393             Send a file to port 8393
  scriptlink -n 8394                          Connect-only handshake
  scriptlink -vz -p 8392                      Verbose liveness check
  scriptlink -D                               Find a running backend
`)
}
