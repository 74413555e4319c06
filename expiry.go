package primstore

import "time"

type expiryMode uint8

const (
	expiryUnset expiryMode = iota
	expiryNever
	expiryAfter
	expiryAt
)

// Expiry is an optional deadline for a stored entry. The zero value is unset
// and lets the backend apply its default.
type Expiry struct {
	mode expiryMode
	d    time.Duration
	t    time.Time
}

func ExpireNever() Expiry { return Expiry{mode: expiryNever} }

// ExpireAfter expires the entry d after it is written.
func ExpireAfter(d time.Duration) Expiry { return Expiry{mode: expiryAfter, d: d} }

// ExpireAt expires the entry at t. A zero t is treated as never.
func ExpireAt(t time.Time) Expiry {
	if t.IsZero() {
		return ExpireNever()
	}
	return Expiry{mode: expiryAt, t: t}
}

func (e Expiry) IsZero() bool { return e.mode == expiryUnset }

// Deadline resolves e against now. The zero time means the entry never expires.
func (e Expiry) Deadline(now time.Time) time.Time {
	switch e.mode {
	case expiryAfter:
		return now.Add(e.d)
	case expiryAt:
		return e.t
	default:
		return time.Time{}
	}
}

func (e Expiry) String() string {
	switch e.mode {
	case expiryNever:
		return "never"
	case expiryAfter:
		return "after " + e.d.String()
	case expiryAt:
		return "at " + e.t.Format(time.RFC3339Nano)
	default:
		return "default"
	}
}
