package enhancer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-task-planner/config"
	"ai-task-planner/internal/ai"
	"ai-task-planner/pkg/llmprovider"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
)

// FromConfig builds the enhancer described by the ai and llm sections.
// Local mode, or remote mode with no usable provider, yields the local enhancer.
func FromConfig(ctx context.Context, l log.Logger, aiCfg config.AIConfig, llmCfg config.LLMConfig, m *metrics.Collector) (ai.Enhancer, error) {
	opts, err := optionsFromConfig(aiCfg, llmCfg)
	if err != nil {
		return nil, err
	}
	opts.Metrics = m

	if aiCfg.Enhancer == config.EnhancerLocal {
		return Select(ctx, l, nil, opts), nil
	}

	providers, err := llmprovider.InitializeProviders(ctx, &llmCfg, l)
	if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		l.Warnf(ctx, "enhancer.FromConfig: %v", err)
		return Select(ctx, l, nil, opts), nil
	}
	if err != nil {
		return nil, err
	}

	managerCfg, err := llmprovider.NewManagerConfig(&llmCfg)
	if err != nil {
		return nil, err
	}
	return Select(ctx, l, llmprovider.NewManager(providers, managerCfg, l), opts), nil
}

func optionsFromConfig(aiCfg config.AIConfig, llmCfg config.LLMConfig) (Options, error) {
	opts := Options{
		Temperature: llmCfg.Temperature,
		MaxTokens:   llmCfg.MaxTokens,
		Breaker: BreakerSettings{
			MaxRequests:  aiCfg.BreakerMaxRequests,
			MinRequests:  aiCfg.BreakerMinRequests,
			FailureRatio: aiCfg.BreakerFailureRatio,
		},
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"ai.timeout", aiCfg.Timeout, &opts.Timeout},
		{"ai.breaker.interval", aiCfg.BreakerInterval, &opts.Breaker.Interval},
		{"ai.breaker.timeout", aiCfg.BreakerTimeout, &opts.Breaker.Timeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = v
	}
	return opts, nil
}
