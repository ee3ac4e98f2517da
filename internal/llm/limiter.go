package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// CallLimiter bounds the rate of outbound provider calls so a burst of
// analyze requests cannot exhaust provider quota.
type CallLimiter struct {
	limiter *rate.Limiter
}

// NewCallLimiter creates a limiter allowing perMinute calls per minute
func NewCallLimiter(perMinute int) *CallLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &CallLimiter{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

// Wait blocks until a call slot is available or the context is done
func (cl *CallLimiter) Wait(ctx context.Context) error {
	return cl.limiter.Wait(ctx)
}

// Allow reports whether a call may proceed immediately
func (cl *CallLimiter) Allow() bool {
	return cl.limiter.Allow()
}
