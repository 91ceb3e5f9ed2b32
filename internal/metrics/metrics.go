// Package metrics records session and authorization outcomes as
// OpenTelemetry counters. A nil *Metrics is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var ErrNilMeter = errors.New("nil meter")

// Outcome labels.
const (
	OutcomeSuccess     = "success"
	OutcomeExpired     = "expired"
	OutcomeCompromised = "compromised"
	OutcomeInvalid     = "invalid_credentials"
	OutcomeLocked      = "locked"
	OutcomeUnconfirmed = "unconfirmed"
	OutcomeError       = "error"
)

type Metrics struct {
	logins      metric.Int64Counter
	refreshes   metric.Int64Counter
	revocations metric.Int64Counter
	denials     metric.Int64Counter
}

func New(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	var (
		m   Metrics
		err error
	)

	if m.logins, err = meter.Int64Counter("auth_logins_total",
		metric.WithDescription("Login attempts by outcome.")); err != nil {
		return nil, fmt.Errorf("create login counter: %w", err)
	}
	if m.refreshes, err = meter.Int64Counter("auth_refreshes_total",
		metric.WithDescription("Refresh attempts by outcome.")); err != nil {
		return nil, fmt.Errorf("create refresh counter: %w", err)
	}
	if m.revocations, err = meter.Int64Counter("auth_refresh_tokens_revoked_total",
		metric.WithDescription("Refresh tokens revoked by reason.")); err != nil {
		return nil, fmt.Errorf("create revocation counter: %w", err)
	}
	if m.denials, err = meter.Int64Counter("auth_authorization_denials_total",
		metric.WithDescription("Requests rejected by the authorization stage.")); err != nil {
		return nil, fmt.Errorf("create denial counter: %w", err)
	}

	return &m, nil
}

func (m *Metrics) Login(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *Metrics) Refresh(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.refreshes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *Metrics) Revoked(ctx context.Context, reason string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.revocations.Add(ctx, n, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *Metrics) Denied(ctx context.Context, method, reason string) {
	if m == nil {
		return
	}
	m.denials.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("reason", reason),
	))
}
