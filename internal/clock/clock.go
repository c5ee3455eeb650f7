// Package clock abstracts "now" so statement generation stays deterministic
// under test. The asOf cutoff and GeneratedAt both come from an injected
// Clock, never from a direct time.Now call inside the engine.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC.
type Real struct{}

func (Real) Now() time.Time { return time.Now().UTC() }

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
