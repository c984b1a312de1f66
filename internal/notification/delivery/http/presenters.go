package http

import (
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/notification"
	"ai-task-planner/pkg/response"
)

type createReq struct {
	TaskID *string    `json:"task_id" binding:"omitempty,uuid"`
	Title  string     `json:"title"   binding:"required,max=255"`
	Body   string     `json:"body"    binding:"max=1000"`
	SendAt *time.Time `json:"send_at" binding:"required"`
}

func (r createReq) toInput() notification.CreateInput {
	return notification.CreateInput{
		TaskID: r.TaskID,
		Title:  r.Title,
		Body:   r.Body,
		SendAt: *r.SendAt,
	}
}

type idReq struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type updateReq struct {
	ID   string `json:"-"`
	Sent *bool  `json:"sent" binding:"required"`
}

func (r updateReq) toInput() notification.UpdateInput {
	return notification.UpdateInput{ID: r.ID, Sent: *r.Sent}
}

type notificationResp struct {
	ID        string            `json:"id"`
	TaskID    *string           `json:"task_id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	SendAt    response.DateTime `json:"send_at"`
	Sent      bool              `json:"sent"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:        n.ID,
		TaskID:    n.TaskID,
		Title:     n.Title,
		Body:      n.Body,
		SendAt:    response.DateTime(n.SendAt),
		Sent:      n.Sent,
		CreatedAt: response.DateTime(n.CreatedAt),
	}
}

type itemResp struct {
	Notification notificationResp `json:"notification"`
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newListResp(out notification.ListOutput) listResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = newNotificationResp(n)
	}
	return listResp{Notifications: items}
}
