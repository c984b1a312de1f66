package enhancer

import (
	"context"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"ai-task-planner/pkg/llmprovider"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 512

	breakerName = "text-enhancer"
)

// Generator is the part of llmprovider used here; both a single Provider
// and a Manager satisfy it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// BreakerSettings configures the circuit breaker in front of the provider.
type BreakerSettings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// Options tunes the remote enhancer. Zero values fall back to defaults.
type Options struct {
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	Breaker     BreakerSettings
	Metrics     *metrics.Collector
}

// Remote rewrites text through an LLM. Every failure (transport, timeout,
// open breaker, unusable output) degrades to the Null enhancer.
type Remote struct {
	l        log.Logger
	gen      Generator
	cb       *gobreaker.CircuitBreaker
	fallback Null
	opts     Options
}

// NewRemote wraps gen with a timeout and a circuit breaker.
func NewRemote(l log.Logger, gen Generator, opts Options) *Remote {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	r := &Remote{l: l, gen: gen, opts: opts}
	r.cb = gobreaker.NewCircuitBreaker(r.breakerSettings(opts.Breaker))
	opts.Metrics.SetBreakerState(float64(gobreaker.StateClosed))
	return r
}

func (r *Remote) breakerSettings(bs BreakerSettings) gobreaker.Settings {
	minRequests := bs.MinRequests
	if minRequests == 0 {
		minRequests = 3
	}
	ratio := bs.FailureRatio
	if ratio <= 0 {
		ratio = 0.6
	}

	return gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: bs.MaxRequests,
		Interval:    bs.Interval,
		Timeout:     bs.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minRequests && failureRatio >= ratio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			r.l.Warnf(context.Background(), "enhancer.Remote: breaker %s changed from %s to %s", name, from, to)
			r.opts.Metrics.SetBreakerState(float64(to))
		},
	}
}

// Enhance never fails; on any error the local transform is returned.
func (r *Remote) Enhance(ctx context.Context, text string) string {
	start := time.Now()
	defer func() { r.opts.Metrics.ObserveEnhanceDuration(time.Since(start)) }()

	out, err := r.cb.Execute(func() (any, error) {
		return r.generate(ctx, text)
	})
	if err != nil {
		r.l.Warnf(ctx, "enhancer.Remote.Enhance: falling back to local enhancer: %v", err)
		r.opts.Metrics.IncEnhancement(metrics.OutcomeFallback)
		return r.fallback.Enhance(ctx, text)
	}

	r.opts.Metrics.IncEnhancement(metrics.OutcomeRemote)
	return out.(string)
}

func (r *Remote) generate(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	resp, err := r.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: systemPrompt,
		Messages:     []llmprovider.Message{{Role: llmprovider.RoleUser, Text: buildUserPrompt(text)}},
		Temperature:  r.opts.Temperature,
		MaxTokens:    r.opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	out := strings.TrimSpace(resp.Text)
	if strings.HasPrefix(out, "```") {
		return "", errFencedOutput
	}
	if out = dropPreamble(out); out == "" {
		return "", errEmptyOutput
	}
	return out, nil
}

// dropPreamble removes an introductory first line such as "Aqui estão:" so it
// is not segmented into a task.
func dropPreamble(out string) string {
	first, rest, _ := strings.Cut(out, "\n")
	if strings.HasSuffix(strings.TrimSpace(first), ":") {
		return strings.TrimSpace(rest)
	}
	return out
}
