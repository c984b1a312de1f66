package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-task-planner/pkg/log"
)

// Manager runs a request against an ordered list of providers. Each provider
// gets RetryAttempts tries; the next provider is only tried when
// FallbackEnabled is set.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config controls retries and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole fallback chain
}

// NewManager builds a Manager. A nil config means one attempt, no fallback.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Name implements Provider so a Manager can stand in for a single provider.
func (m *Manager) Name() string {
	if len(m.providers) == 0 {
		return "none"
	}
	return m.providers[0].Name()
}

// Model returns the model of the primary provider.
func (m *Manager) Model() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[0].Model()
}

// GenerateContent returns the first non-blank response. A blank response
// counts as a failed attempt. Once ctx is done nothing else is tried.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var errs []error
	for i, provider := range m.providers {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("llm deadline reached after %d provider(s): %w", i, ctx.Err())
		}

		resp, attempts, err := m.tryProvider(ctx, provider, req)
		if err == nil {
			m.logger.Infof(ctx, "llmprovider.Manager: provider=%s model=%s attempts=%d input_tokens=%d output_tokens=%d",
				provider.Name(), provider.Model(), attempts, resp.Usage.InputTokens, resp.Usage.OutputTokens)
			return resp, nil
		}

		m.logger.Warnf(ctx, "llmprovider.Manager: provider=%s model=%s attempts=%d: %v",
			provider.Name(), provider.Model(), attempts, err)
		errs = append(errs, err)

		if ctx.Err() != nil {
			return nil, fmt.Errorf("llm deadline reached after %d provider(s): %w", i+1, ctx.Err())
		}
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// tryProvider calls one provider up to RetryAttempts times (at least once),
// waiting attempt*RetryDelay between calls. It reports how many calls it made.
func (m *Manager) tryProvider(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	limit := max(1, m.config.RetryAttempts)

	var lastErr error
	attempts := 0
	for attempts < limit {
		if attempts > 0 {
			select {
			case <-time.After(time.Duration(attempts) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, attempts, ctx.Err()
			}
		}

		attempts++
		resp, err := provider.GenerateContent(ctx, req)
		switch {
		case err != nil:
			lastErr = err
		case strings.TrimSpace(resp.Text) == "":
			lastErr = &ProviderError{Provider: provider.Name(), Err: ErrEmptyResponse}
		default:
			return resp, attempts, nil
		}

		if ctx.Err() != nil {
			break
		}
	}

	return nil, attempts, lastErr
}
