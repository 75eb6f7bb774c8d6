package engine

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy holds the tunables of the engine.
type Policy struct {
	// BackfillDepth bounds the history pages fetched per conversation.
	BackfillDepth int
	PageSize      int
	// Lanes is the number of dispatch lanes. Conversations hash onto lanes.
	Lanes       int
	LaneBuffer  int
	SendTimeout time.Duration
	// ParkedUpdates bounds updates held back until their message arrives.
	ParkedUpdates int
	Backoff       BackoffPolicy
}

// BackoffPolicy configures reconnect delays. MaxRetries 0 retries forever.
type BackoffPolicy struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	MaxRetries int
}

// DefaultPolicy returns the defaults used when configuration leaves values unset.
func DefaultPolicy() Policy {
	return Policy{
		BackfillDepth: 4,
		PageSize:      50,
		Lanes:         8,
		LaneBuffer:    256,
		SendTimeout:   2 * time.Minute,
		ParkedUpdates: 4096,
		Backoff: BackoffPolicy{
			Initial:    time.Second,
			Max:        2 * time.Minute,
			Multiplier: 2,
		},
	}
}

func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.BackfillDepth <= 0 {
		p.BackfillDepth = d.BackfillDepth
	}
	if p.PageSize <= 0 {
		p.PageSize = d.PageSize
	}
	if p.Lanes <= 0 {
		p.Lanes = d.Lanes
	}
	if p.LaneBuffer <= 0 {
		p.LaneBuffer = d.LaneBuffer
	}
	if p.SendTimeout <= 0 {
		p.SendTimeout = d.SendTimeout
	}
	if p.ParkedUpdates <= 0 {
		p.ParkedUpdates = d.ParkedUpdates
	}
	if p.Backoff.Initial <= 0 {
		p.Backoff.Initial = d.Backoff.Initial
	}
	if p.Backoff.Max < p.Backoff.Initial {
		p.Backoff.Max = max(d.Backoff.Max, p.Backoff.Initial)
	}
	if p.Backoff.Multiplier < 1 {
		p.Backoff.Multiplier = d.Backoff.Multiplier
	}
	return p
}

func (b BackoffPolicy) newBackOff() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = b.Initial
	eb.MaxInterval = b.Max
	eb.Multiplier = b.Multiplier
	eb.MaxElapsedTime = 0
	eb.Reset()
	if b.MaxRetries > 0 {
		return backoff.WithMaxRetries(eb, uint64(b.MaxRetries))
	}
	return eb
}
