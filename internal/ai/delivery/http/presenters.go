package http

import (
	"time"

	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required,notblank,min=3,max=2000"`
}

func (r createReq) toInput() ai.CreateFromTextInput {
	return ai.CreateFromTextInput{Text: r.Text}
}

type enhanceReq struct {
	Text string `json:"text" binding:"required,notblank,max=2000"`
}

func (r enhanceReq) toInput() ai.EnhanceTextInput {
	return ai.EnhanceTextInput{Text: r.Text}
}

type previewReq struct {
	Text string `json:"text" binding:"required,notblank,min=3,max=2000"`
	// Day is "today", "amanhã", "next friday", "2024-06-10"... Empty means today.
	Day string `json:"day" binding:"max=32"`
}

func (r previewReq) toInput() ai.PreviewInput {
	return ai.PreviewInput{Text: r.Text, Day: r.Day}
}

// --- Response DTOs ---

type intentResp struct {
	Kind            string `json:"kind"`
	StartTime       string `json:"start_time,omitempty"`
	DurationMinutes *int   `json:"duration_minutes"`
	AllDay          bool   `json:"all_day"`
}

func newIntentResp(in ai.TimeIntent) intentResp {
	resp := intentResp{Kind: string(in.Kind), DurationMinutes: in.DurationMinutes, AllDay: in.IsAllDay}
	if in.StartTime != nil {
		resp.StartTime = in.StartTime.String()
	}
	return resp
}

type taskResp struct {
	ID              string             `json:"id,omitempty"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Date            response.DateTime  `json:"date"`
	EndDate         *response.DateTime `json:"end_date"`
	AllDay          bool               `json:"all_day"`
	DurationMinutes *int               `json:"duration_minutes"`
}

type createResp struct {
	EnhancedText string     `json:"enhanced_text"`
	Intent       intentResp `json:"intent"`
	Tasks        []taskResp `json:"tasks"`
}

func (h *handler) newCreateResp(out ai.CreateFromTextOutput) createResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return createResp{EnhancedText: out.EnhancedText, Intent: newIntentResp(out.Intent), Tasks: tasks}
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Date:            response.DateTime(t.Date),
		EndDate:         response.NewDateTimePtr(t.EndDate),
		AllDay:          t.AllDay,
		DurationMinutes: t.DurationMinutes,
	}
}

type enhanceResp struct {
	Text string `json:"text"`
}

type plannedResp struct {
	taskResp
	Reminders []response.DateTime `json:"reminders"`
}

type previewResp struct {
	EnhancedText string        `json:"enhanced_text"`
	Intent       intentResp    `json:"intent"`
	Tasks        []plannedResp `json:"tasks"`
}

func (h *handler) newPreviewResp(out ai.PreviewOutput) previewResp {
	tasks := make([]plannedResp, len(out.Tasks))
	for i, p := range out.Tasks {
		tasks[i] = plannedResp{
			taskResp: taskResp{
				Title:           p.Title,
				Description:     p.Description,
				Date:            response.DateTime(p.Date),
				EndDate:         response.NewDateTimePtr(p.EndDate),
				AllDay:          p.AllDay,
				DurationMinutes: p.DurationMinutes,
			},
			Reminders: dateTimes(p.Reminders),
		}
	}
	return previewResp{EnhancedText: out.EnhancedText, Intent: newIntentResp(out.Intent), Tasks: tasks}
}

func dateTimes(ts []time.Time) []response.DateTime {
	out := make([]response.DateTime, len(ts))
	for i, t := range ts {
		out[i] = response.DateTime(t)
	}
	return out
}
