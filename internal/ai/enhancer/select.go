package enhancer

import (
	"context"

	"ai-task-planner/internal/ai"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
)

// Select picks the enhancer once at start-up. A nil generator (no provider
// configured, or local mode) selects the Null enhancer.
func Select(ctx context.Context, l log.Logger, gen Generator, opts Options) ai.Enhancer {
	if gen == nil {
		l.Infof(ctx, "enhancer.Select: no LLM provider, using local enhancer")
		return localOnly{m: opts.Metrics}
	}
	l.Infof(ctx, "enhancer.Select: using remote enhancer")
	return NewRemote(l, gen, opts)
}

// localOnly is Null with the "disabled" outcome counted.
type localOnly struct {
	Null
	m *metrics.Collector
}

func (e localOnly) Enhance(ctx context.Context, text string) string {
	e.m.IncEnhancement(metrics.OutcomeDisabled)
	return e.Null.Enhance(ctx, text)
}
