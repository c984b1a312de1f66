package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-task-planner/config"
	"ai-task-planner/pkg/log"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	failTimes int
	delay     time.Duration
	blank     bool
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	if m.blank {
		return &Response{Text: " \n", ProviderName: m.name, ModelName: m.model}, nil
	}
	return &Response{Text: "ok from " + m.name, ProviderName: m.name, ModelName: m.model}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

func request() *Request {
	return &Request{
		SystemPrompt: "system",
		Messages:     []Message{{Role: RoleUser, Text: "Hello"}},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model"}
	secondary := &mockProvider{name: "secondary", model: "secondary-model"}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), request())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "ok from primary" {
		t.Errorf("unexpected response: %q", resp.Text)
	}
	if primary.callCount != 1 || secondary.callCount != 0 {
		t.Errorf("expected only primary to be called, got %d/%d", primary.callCount, secondary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary"}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), request())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary, got %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected primary to be retried twice, got %d", primary.callCount)
	}
}

func TestGenerateContent_RetryThenSucceed(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: 1}

	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, log.NewNop())

	if _, err := manager.GenerateContent(context.Background(), request()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if primary.callCount != 2 {
		t.Errorf("expected 2 calls, got %d", primary.callCount)
	}
}

func TestGenerateContent_ZeroRetryAttemptsStillCallsOnce(t *testing.T) {
	primary := &mockProvider{name: "primary"}

	manager := NewManager([]Provider{primary}, &Config{}, log.NewNop())

	if _, err := manager.GenerateContent(context.Background(), request()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("expected 1 call, got %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary"}

	manager := NewManager([]Provider{primary, secondary}, &Config{RetryAttempts: 1}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), request())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called when fallback is disabled")
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, nil, log.NewNop())

	if _, err := manager.GenerateContent(context.Background(), request()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
	if manager.Name() != "none" || manager.Model() != "" {
		t.Errorf("unexpected identity for empty manager")
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second}
	next := &mockProvider{name: "next"}

	manager := NewManager([]Provider{slow, next}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, log.NewNop())

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), request())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("manager did not honour MaxTotalTimeout")
	}
	if next.callCount != 0 {
		t.Errorf("no provider should run after the deadline")
	}
}

func TestGenerateContent_DefaultPolicyIsSingleAttempt(t *testing.T) {
	cfg, err := NewManagerConfig(&config.LLMConfig{RetryAttempts: 1, RetryDelay: "1ms"})
	if err != nil {
		t.Fatalf("NewManagerConfig: %v", err)
	}
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary"}

	manager := NewManager([]Provider{primary, secondary}, cfg, log.NewNop())

	_, err = manager.GenerateContent(context.Background(), request())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("expected exactly one call to the primary, got %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called without fallback")
	}
}

func TestGenerateContent_BlankResponseFallsBack(t *testing.T) {
	primary := &mockProvider{name: "primary", blank: true}
	secondary := &mockProvider{name: "secondary"}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), request())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary, got %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected blank primary to be retried, got %d calls", primary.callCount)
	}
}

func TestGenerateContent_BlankResponseOnly(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "primary", blank: true}}, nil, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), request())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "primary" {
		t.Errorf("expected a ProviderError naming primary, got %v", err)
	}
}

func TestGenerateContent_CancelledContextStopsRetries(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary"}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   5,
		RetryDelay:      time.Hour,
	}, log.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := manager.GenerateContent(ctx, request())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if primary.callCount != 1 || secondary.callCount != 0 {
		t.Errorf("expected 1/0 calls after cancel, got %d/%d", primary.callCount, secondary.callCount)
	}
}
