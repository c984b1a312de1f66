package openai

import "time"

const (
	// DefaultModel is the default chat model served by the HuggingFace router
	DefaultModel = "meta-llama/Meta-Llama-3-8B-Instruct"

	// DefaultBaseURL is the HuggingFace OpenAI-compatible router
	DefaultBaseURL = "https://router.huggingface.co/v1"

	// DeepSeekBaseURL is the DeepSeek OpenAI-compatible endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// QwenBaseURL is the DashScope OpenAI-compatible endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
