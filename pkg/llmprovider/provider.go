package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "huggingface", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a normalized single-shot text generation request
type Request struct {
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

// Message is one conversation turn
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Response is a normalized generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
