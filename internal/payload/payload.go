// Package payload defines the script payload handed to a session and
// its compressed wire encoding.
//
// A Payload is an explicit present/absent variant. Liveness probes and
// autodiscovery connect without writing, and modelling "nothing to
// send" as a distinct variant keeps a script that happens to spell a
// magic marker from being swallowed.
package payload

// Payload is an optional byte sequence. The zero value is absent.
type Payload struct {
	data    []byte
	present bool
}

// Bytes wraps b as a present payload. The caller retains ownership of
// b for the payload's lifetime.
func Bytes(b []byte) Payload {
	return Payload{data: b, present: true}
}

// None returns the absent payload.
func None() Payload {
	return Payload{}
}

// Present reports whether a script is attached.
func (p Payload) Present() bool { return p.present }

// Data returns the raw script bytes, nil when absent.
func (p Payload) Data() []byte {
	if !p.present {
		return nil
	}
	return p.data
}

// Len returns the raw script length in bytes.
func (p Payload) Len() int { return len(p.data) }
