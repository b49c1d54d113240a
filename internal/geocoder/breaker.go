package geocoder

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	gobreaker "github.com/sony/gobreaker/v2"

	"devcamper/internal/logging"
)

// Breaker wraps a Geocoder with a circuit breaker so a failing provider is
// not hammered by every incoming radius search.
type Breaker struct {
	next     Geocoder
	cb       *gobreaker.CircuitBreaker[[]Result]
	requests *prometheus.CounterVec
}

var _ Geocoder = (*Breaker)(nil)

// NewBreaker wraps next. The breaker opens after 5 consecutive failures and
// retries after 30 seconds. reg may be nil to skip metrics.
func NewBreaker(next Geocoder, reg prometheus.Registerer) (*Breaker, error) {
	b := &Breaker{
		next: next,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geocoder_requests_total",
				Help: "Geocoder calls by outcome (success, failure, rejected).",
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		if err := reg.Register(b.requests); err != nil {
			return nil, err
		}
	}

	log := logging.With("geocoder")
	b.cb = gobreaker.NewCircuitBreaker[[]Result](gobreaker.Settings{
		Name:        "geocoder",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
		// Cancelled requests say nothing about the provider's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return b, nil
}

// Geocode delegates to the wrapped geocoder unless the circuit is open.
func (b *Breaker) Geocode(ctx context.Context, location string) ([]Result, error) {
	res, err := b.cb.Execute(func() ([]Result, error) {
		return b.next.Geocode(ctx, location)
	})
	switch {
	case err == nil:
		b.requests.WithLabelValues("success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		b.requests.WithLabelValues("rejected").Inc()
	default:
		b.requests.WithLabelValues("failure").Inc()
	}
	return res, err
}

// State exposes the breaker state for health reporting.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
