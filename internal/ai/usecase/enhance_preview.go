package usecase

import (
	"context"

	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/datemath"
)

// EnhanceText returns the rewritten text without extracting tasks.
func (uc *implUseCase) EnhanceText(ctx context.Context, input ai.EnhanceTextInput) (ai.EnhanceTextOutput, error) {
	text, err := validText(input.Text, 1)
	if err != nil {
		return ai.EnhanceTextOutput{}, err
	}
	return ai.EnhanceTextOutput{Text: uc.enhancer.Enhance(ctx, text)}, nil
}

// Preview runs the whole pipeline against a reference day and persists nothing.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input ai.PreviewInput) (ai.PreviewOutput, error) {
	text, err := validText(input.Text, minTextRunes)
	if err != nil {
		return ai.PreviewOutput{}, err
	}

	day, err := datemath.NewParserIn(sc.Location(uc.defaultLoc)).Parse(input.Day, uc.now())
	if err != nil {
		return ai.PreviewOutput{}, ai.ErrInvalidDay
	}

	enhanced, intent, planned, err := uc.plan(ctx, text, day)
	if err != nil {
		return ai.PreviewOutput{}, err
	}
	return ai.PreviewOutput{EnhancedText: enhanced, Intent: intent, Tasks: planned}, nil
}
