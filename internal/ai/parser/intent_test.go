package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/ai/parser"
	"ai-task-planner/pkg/datemath"
)

func clock(h, m int) *datemath.ClockTime {
	return &datemath.ClockTime{Hour: h, Minute: m}
}

func minutes(n int) *int { return &n }

func TestInferIntent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		kind     ai.IntentKind
		start    *datemath.ClockTime
		duration *int
		allDay   bool
	}{
		{
			name: "part of day with duration",
			text: "estudar de manhã por 2 horas",
			kind: ai.IntentPartOfDay, start: clock(8, 0), duration: minutes(120), allDay: false,
		},
		{
			name: "nothing",
			text: "reunião",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "connector hour",
			text: "às 10 Reunião, às 14 Almoço",
			kind: ai.IntentExplicitTime, start: clock(10, 0), allDay: true,
		},
		{
			name: "colon clock",
			text: "Dentista 15:30",
			kind: ai.IntentExplicitTime, start: clock(15, 30), allDay: true,
		},
		{
			name: "suffix clock with minutes",
			text: "call with team 9h30 for 1 hour",
			kind: ai.IntentExplicitTime, start: clock(9, 30), duration: minutes(60), allDay: false,
		},
		{
			name: "explicit wins over part of day",
			text: "academia à noite às 20h por 1h",
			kind: ai.IntentExplicitTime, start: clock(20, 0), duration: minutes(60), allDay: false,
		},
		{
			name: "duration token is not a clock",
			text: "estudar por 2h",
			kind: ai.IntentAllDay, duration: minutes(120), allDay: false,
		},
		{
			name: "afternoon before evening",
			text: "revisar relatório à tarde ou à noite",
			kind: ai.IntentPartOfDay, start: clock(14, 0), allDay: true,
		},
		{
			name: "diacritic free morning",
			text: "correr de manha",
			kind: ai.IntentPartOfDay, start: clock(8, 0), allDay: true,
		},
		{
			name: "english evening",
			text: "Read a book in the evening",
			kind: ai.IntentPartOfDay, start: clock(19, 0), allDay: true,
		},
		{
			name: "bare duration",
			text: "pintar a sala 3 horas",
			kind: ai.IntentAllDay, duration: minutes(180), allDay: false,
		},
		{
			name: "hour unit after clock connector is a clock",
			text: "almoço às 12 horas",
			kind: ai.IntentExplicitTime, start: clock(12, 0), allDay: true,
		},
		{
			name: "invalid hour ignored",
			text: "às 25 algo",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "zero duration ignored",
			text: "pausa por 0 horas",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "decimal hours are not a duration",
			text: "estudar por 1.5 horas",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "decimal comma hours are neither duration nor clock",
			text: "estudar por 1,5h",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "spaced short unit without connector",
			text: "estudar 2 h",
			kind: ai.IntentAllDay, duration: minutes(120), allDay: false,
		},
		{
			name: "attached long unit without connector",
			text: "estudar 2horas",
			kind: ai.IntentAllDay, duration: minutes(120), allDay: false,
		},
		{
			name: "attached short unit without connector is a clock",
			text: "estudar 2h",
			kind: ai.IntentExplicitTime, start: clock(2, 0), allDay: true,
		},
		{
			name: "full day is the longest duration",
			text: "plantão por 24 horas",
			kind: ai.IntentAllDay, duration: minutes(1440), allDay: false,
		},
		{
			name: "more than a day ignored",
			text: "correr por 40000000 horas",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "count that would overflow minutes ignored",
			text: "correr por 153722867280912932 horas",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "count beyond int range ignored",
			text: "correr 99999999999999999999999 horas",
			kind: ai.IntentAllDay, allDay: true,
		},
		{
			name: "leftmost clock wins",
			text: "sair 18:00, jantar às 20",
			kind: ai.IntentExplicitTime, start: clock(18, 0), allDay: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.InferIntent(tt.text)

			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.start, got.StartTime)
			assert.Equal(t, tt.duration, got.DurationMinutes)
			assert.Equal(t, tt.allDay, got.IsAllDay)
		})
	}
}

func TestInferIntent_AllDayIffNoDuration(t *testing.T) {
	for _, text := range []string{
		"às 9 reunião",
		"de manhã",
		"nada aqui",
		"às 9 por 2 horas",
		"à tarde durante 3 horas",
		"por 1.5 horas",
		"correr por 153722867280912932 horas",
	} {
		got := parser.InferIntent(text)
		require.Equal(t, got.DurationMinutes == nil, got.IsAllDay, text)
	}
}

func TestInferIntent_DurationIsBoundedAndPositive(t *testing.T) {
	for _, text := range []string{
		"por 1 hora",
		"por 24 horas",
		"por 25 horas",
		"durante 9223372036854775807 horas",
		"2 h e depois 3 horas",
	} {
		got := parser.InferIntent(text)
		if got.DurationMinutes == nil {
			continue
		}
		assert.Positive(t, *got.DurationMinutes, text)
		assert.LessOrEqual(t, *got.DurationMinutes, 1440, text)
	}
}
