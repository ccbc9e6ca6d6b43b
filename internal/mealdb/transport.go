package mealdb

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

var ErrCircuitOpen = errors.New("recipe catalog circuit breaker is open")

// TransportConfig controls timeouts, retries and the circuit breaker around catalog calls.
type TransportConfig struct {
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration

	// BreakerTimeout is how long the breaker stays open before probing again.
	BreakerTimeout time.Duration
	// BreakerFailures is the consecutive failure count that opens the breaker.
	BreakerFailures uint32
}

func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		Timeout:         10 * time.Second,
		MaxRetries:      2,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		BreakerTimeout:  30 * time.Second,
		BreakerFailures: 5,
	}
}

// Transport executes GET requests with retries on network errors and 5xx
// responses. A run of failures opens the breaker and later calls fail fast.
type Transport struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	config     TransportConfig
}

func NewTransport(cfg TransportConfig) *Transport {
	defaults := DefaultTransportConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaults.InitialInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = defaults.MaxInterval
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = defaults.BreakerTimeout
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = defaults.BreakerFailures
	}

	failures := cfg.BreakerFailures
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{ //nolint:bodyclose // type parameter
		Name:        "mealdb",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
	})

	return &Transport{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
		config:     cfg,
	}
}

// Do sends req. The caller closes the response body.
func (transport *Transport) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = transport.config.InitialInterval
	policy.MaxInterval = transport.config.MaxInterval
	policy.MaxElapsedTime = 0
	retries := backoff.WithContext(backoff.WithMaxRetries(policy, transport.config.MaxRetries), ctx)

	var response *http.Response
	operation := func() error {
		resp, err := transport.breaker.Execute(func() (*http.Response, error) { //nolint:bodyclose // returned to caller
			attempt, err := transport.httpClient.Do(req.Clone(ctx))
			if err != nil {
				return nil, err
			}
			if attempt.StatusCode >= http.StatusInternalServerError {
				_ = attempt.Body.Close()
				return nil, &StatusError{StatusCode: attempt.StatusCode}
			}
			return attempt, nil
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(ErrCircuitOpen)
			}
			return err
		}
		response = resp
		return nil
	}

	if err := backoff.Retry(operation, retries); err != nil {
		return nil, err
	}
	return response, nil
}

func (transport *Transport) State() gobreaker.State {
	return transport.breaker.State()
}

type StatusError struct {
	StatusCode int
}

func (err *StatusError) Error() string {
	return "recipe catalog returned " + http.StatusText(err.StatusCode)
}
