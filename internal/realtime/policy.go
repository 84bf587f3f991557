package realtime

import "time"

// ReconnectPolicy controls how the client retries a dropped or refused
// websocket connection.
type ReconnectPolicy struct {
	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff.
	MaxDelay time.Duration

	// Multiplier grows the delay between consecutive retries.
	Multiplier float64

	// MaxAttempts bounds consecutive failures before the client gives up.
	MaxAttempts int
}

// DefaultReconnectPolicy retries 5 times, 1s apart growing to at most 5s.
func DefaultReconnectPolicy() ReconnectPolicy {
	return ReconnectPolicy{
		InitialDelay: time.Second,
		MaxDelay:     5 * time.Second,
		Multiplier:   2,
		MaxAttempts:  5,
	}
}

// Delay returns the wait before the given retry attempt, 1-based.
func (p ReconnectPolicy) Delay(attempt int) time.Duration {
	d := p.InitialDelay
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * p.Multiplier)
		if d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}
