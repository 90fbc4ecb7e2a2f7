package metrics

import "testing"

// BenchmarkCollector_ConnectAttempt measures the overhead of recording
// a session start (atomic operations).
func BenchmarkCollector_ConnectAttempt(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ConnectAttempt()
	}
}

// BenchmarkCollector_PayloadSent measures byte-counter overhead.
func BenchmarkCollector_PayloadSent(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.PayloadSent(32768, 4096)
	}
}

// BenchmarkCollector_Snapshot measures the cost of taking a snapshot.
func BenchmarkCollector_Snapshot(b *testing.B) {
	c := New()
	c.ConnectAttempt()
	c.PayloadSent(1024, 128)
	c.RecordError("test")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Snapshot()
	}
}

// BenchmarkNilCollector verifies nil-safe no-ops have zero overhead.
func BenchmarkNilCollector(b *testing.B) {
	var c *Collector
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ConnectAttempt()
		c.PayloadSent(32768, 4096)
		c.RecordError("test")
	}
}
