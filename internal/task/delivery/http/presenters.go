package http

import (
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title           string     `json:"title"            binding:"required,max=255"`
	Description     string     `json:"description"      binding:"max=2000"`
	Date            *time.Time `json:"date"             binding:"required"`
	AllDay          bool       `json:"all_day"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:           r.Title,
		Description:     r.Description,
		Date:            *r.Date,
		AllDay:          r.AllDay,
		DurationMinutes: r.DurationMinutes,
	}
}

// ---

type idReq struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ---

type updateReq struct {
	ID              string     `json:"-"`
	Title           *string    `json:"title"            binding:"omitempty,max=255"`
	Description     *string    `json:"description"      binding:"omitempty,max=2000"`
	Date            *time.Time `json:"date"`
	Done            *bool      `json:"done"`
	AllDay          *bool      `json:"all_day"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
}

func (r updateReq) validate() error {
	if r.Title == nil && r.Description == nil && r.Date == nil &&
		r.Done == nil && r.AllDay == nil && r.DurationMinutes == nil {
		return errEmptyUpdate
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Date:            r.Date,
		Done:            r.Done,
		AllDay:          r.AllDay,
		DurationMinutes: r.DurationMinutes,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Date            response.DateTime  `json:"date"`
	EndDate         *response.DateTime `json:"end_date"`
	AllDay          bool               `json:"all_day"`
	DurationMinutes *int               `json:"duration_minutes"`
	Done            bool               `json:"done"`
	CreatedAt       response.DateTime  `json:"created_at"`
	UpdatedAt       response.DateTime  `json:"updated_at"`
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
		Done:            t.Done,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
}

type reminderResp struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	SendAt response.DateTime `json:"send_at"`
}

type createResp struct {
	Task          taskResp       `json:"task"`
	Notifications []reminderResp `json:"notifications"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	reminders := make([]reminderResp, len(out.Notifications))
	for i, n := range out.Notifications {
		reminders[i] = reminderResp{ID: n.ID, Title: n.Title, Body: n.Body, SendAt: response.DateTime(n.SendAt)}
	}
	return createResp{Task: newTaskResp(out.Task), Notifications: reminders}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
