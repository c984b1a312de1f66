package enhancer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-planner/config"
	"ai-task-planner/pkg/log"
)

func TestFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("local mode", func(t *testing.T) {
		e, err := FromConfig(ctx, log.NewNop(), config.AIConfig{Enhancer: config.EnhancerLocal}, config.LLMConfig{}, nil)
		require.NoError(t, err)
		assert.IsType(t, localOnly{}, e)
	})

	t.Run("remote without providers falls back to local", func(t *testing.T) {
		e, err := FromConfig(ctx, log.NewNop(), config.AIConfig{Enhancer: config.EnhancerRemote}, config.LLMConfig{}, nil)
		require.NoError(t, err)
		assert.IsType(t, localOnly{}, e)
	})

	t.Run("remote with a provider", func(t *testing.T) {
		llm := config.LLMConfig{Providers: []config.ProviderConfig{{
			Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.0-flash",
		}}}
		e, err := FromConfig(ctx, log.NewNop(), config.AIConfig{Enhancer: config.EnhancerRemote, Timeout: "5s"}, llm, nil)
		require.NoError(t, err)
		assert.IsType(t, &Remote{}, e)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := FromConfig(ctx, log.NewNop(), config.AIConfig{Enhancer: config.EnhancerLocal, BreakerTimeout: "soon"}, config.LLMConfig{}, nil)
		assert.ErrorContains(t, err, "ai.breaker.timeout")
	})
}
