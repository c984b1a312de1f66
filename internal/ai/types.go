package ai

import (
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/datemath"
)

// IntentKind tells which rule produced a TimeIntent.
type IntentKind string

const (
	IntentExplicitTime IntentKind = "explicit_time"
	IntentPartOfDay    IntentKind = "part_of_day"
	IntentAllDay       IntentKind = "all_day"
)

// TimeIntent is the time information inferred from the user's original text.
// It applies to every task extracted from that text.
type TimeIntent struct {
	Kind            IntentKind
	StartTime       *datemath.ClockTime
	DurationMinutes *int
	IsAllDay        bool
}

// TaskCandidate is one task segmented out of (possibly enhanced) text.
type TaskCandidate struct {
	Title       string
	RawTime     *datemath.ClockTime
	Description string
}

// PlannedTask is a candidate resolved against a reference day, not yet persisted.
type PlannedTask struct {
	Title           string
	Description     string
	Date            time.Time
	EndDate         *time.Time
	AllDay          bool
	DurationMinutes *int
	Reminders       []time.Time
}

// --- UseCase Inputs ---

type CreateFromTextInput struct {
	Text string
}

type EnhanceTextInput struct {
	Text string
}

// PreviewInput runs the pipeline without persisting anything.
// Day is an optional relative day ("tomorrow", "2024-06-10"); empty means today.
type PreviewInput struct {
	Text string
	Day  string
}

// --- UseCase Outputs ---

type CreateFromTextOutput struct {
	EnhancedText string
	Intent       TimeIntent
	Tasks        []model.Task
}

type EnhanceTextOutput struct {
	Text string
}

type PreviewOutput struct {
	EnhancedText string
	Intent       TimeIntent
	Tasks        []PlannedTask
}
