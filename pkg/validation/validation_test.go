package validation_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-planner/pkg/validation"
)

func TestRegister(t *testing.T) {
	require.NoError(t, validation.Register())
	require.NoError(t, validation.Register())

	type req struct {
		Text string `binding:"notblank"`
	}
	assert.Error(t, binding.Validator.ValidateStruct(req{Text: " \t "}))
	assert.NoError(t, binding.Validator.ValidateStruct(req{Text: "reunião"}))
}
