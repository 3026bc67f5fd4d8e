package server

import "context"

// HealthChecker reports whether a dependency of the API can serve requests.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker is used by backends with nothing to probe, such as in-memory history.
type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return ctx.Err() == nil
}
