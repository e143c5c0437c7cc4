package provider

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"legalwatch/internal/domain"
)

// HealthRecorder stores the last successful call time of a provider.
type HealthRecorder interface {
	MarkHealthy(ctx context.Context, name string, at time.Time) error
}

// Result is the outcome of a successful fallback resolution.
type Result struct {
	Provider string
	Payload  json.RawMessage
	Failures []domain.ProviderFailure
}

// Resolver calls providers in resolution order until one succeeds.
type Resolver struct {
	health HealthRecorder
	logger *slog.Logger
	now    func() time.Time
}

func NewResolver(health HealthRecorder, logger *slog.Logger) *Resolver {
	return &Resolver{
		health: health,
		logger: logger.With("component", "provider_resolver"),
		now:    time.Now,
	}
}

// CallWithFallback tries each provider of snap able to serve op once. A
// timeout, a non-2xx answer, a missing rate budget or a decode error all
// count as a failure of that provider and move on to the next one.
func (r *Resolver) CallWithFallback(ctx context.Context, snap *Snapshot, op domain.Operation, req Request) (*Result, error) {
	providers := snap.Resolve(op)
	failures := make([]domain.ProviderFailure, 0, len(providers))

	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := p.Config.Name
		if !p.Allow() {
			failures = append(failures, r.failure(name, op, domain.ErrRateLimited))
			continue
		}

		payload, err := r.call(ctx, p, op, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failures = append(failures, r.failure(name, op, err))
			continue
		}

		r.markHealthy(ctx, name)
		return &Result{Provider: name, Payload: payload, Failures: failures}, nil
	}

	return nil, &domain.AllProvidersFailedError{Operation: op, Failures: failures}
}

func (r *Resolver) call(ctx context.Context, p *Entry, op domain.Operation, req Request) (json.RawMessage, error) {
	callCtx := ctx
	if timeout := p.Config.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := r.now()
	payload, err := p.Client.Do(callCtx, op, req)
	if err != nil {
		if isTimeout(callCtx, err) {
			return nil, domain.ErrProviderTimeout
		}
		return nil, err
	}

	r.logger.Debug("provider call succeeded",
		"provider", p.Config.Name,
		"operation", op,
		"duration", r.now().Sub(start),
	)
	return payload, nil
}

func (r *Resolver) failure(name string, op domain.Operation, err error) domain.ProviderFailure {
	r.logger.Warn("provider call failed",
		"provider", name,
		"operation", op,
		"error", err,
	)
	return domain.ProviderFailure{Provider: name, Err: err, Message: err.Error()}
}

func (r *Resolver) markHealthy(ctx context.Context, name string) {
	if r.health == nil {
		return
	}
	if err := r.health.MarkHealthy(context.WithoutCancel(ctx), name, r.now()); err != nil {
		r.logger.Error("failed to record provider health", "provider", name, "error", err)
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
