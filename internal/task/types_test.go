package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-planner/internal/task"
)

func TestResolveEnd(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	minutes := func(n int) *int { return &n }

	t.Run("same day", func(t *testing.T) {
		start := time.Date(2024, 6, 10, 8, 0, 0, 0, loc)
		end, dur := task.ResolveEnd(start, false, minutes(120))

		require.NotNil(t, end)
		assert.Equal(t, time.Date(2024, 6, 10, 10, 0, 0, 0, loc), *end)
		assert.Equal(t, 120, *dur)
	})

	t.Run("wraps on the same calendar day", func(t *testing.T) {
		start := time.Date(2024, 6, 10, 23, 0, 0, 0, loc)
		end, _ := task.ResolveEnd(start, false, minutes(120))

		require.NotNil(t, end)
		assert.Equal(t, time.Date(2024, 6, 10, 1, 0, 0, 0, loc), *end)
	})

	t.Run("all day clears both", func(t *testing.T) {
		end, dur := task.ResolveEnd(time.Now(), true, minutes(60))
		assert.Nil(t, end)
		assert.Nil(t, dur)
	})

	t.Run("no duration", func(t *testing.T) {
		end, dur := task.ResolveEnd(time.Now(), false, nil)
		assert.Nil(t, end)
		assert.Nil(t, dur)
	})
}

func TestUpdateInput_Temporal(t *testing.T) {
	title := "x"
	done := true
	assert.False(t, task.UpdateInput{Title: &title, Done: &done}.Temporal())

	allDay := false
	assert.True(t, task.UpdateInput{AllDay: &allDay}.Temporal())
}
