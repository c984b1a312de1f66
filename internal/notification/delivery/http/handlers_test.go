package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/notification"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

const notificationID = "5f1e0c9a-3b2d-4c5e-8f70-112233445566"

type stubUseCase struct {
	notification.UseCase
	created notification.CreateInput
	updated notification.UpdateInput
	err     error
}

func (s *stubUseCase) Create(ctx context.Context, sc model.Scope, in notification.CreateInput) (notification.CreateOutput, error) {
	s.created = in
	return notification.CreateOutput{Notification: model.Notification{ID: notificationID, Title: in.Title, SendAt: in.SendAt}}, s.err
}

func (s *stubUseCase) Update(ctx context.Context, sc model.Scope, in notification.UpdateInput) (notification.UpdateOutput, error) {
	s.updated = in
	return notification.UpdateOutput{Notification: model.Notification{ID: in.ID, Sent: in.Sent}}, s.err
}

func newRouter(uc notification.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetPayloadToContext(c.Request.Context(), scope.Payload{UserID: "u-1"}))
	})
	h := New(log.NewNop(), uc)
	r.POST("/notifications", h.Create)
	r.PATCH("/notifications/:id", h.Update)
	return r
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreate(t *testing.T) {
	uc := &stubUseCase{}
	r := newRouter(uc)

	w := send(r, http.MethodPost, "/notifications", `{"title":"Beber água","send_at":"2024-06-10T15:00:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Beber água", uc.created.Title)
	assert.True(t, uc.created.SendAt.Equal(time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)))

	w = send(r, http.MethodPost, "/notifications", `{"title":"x","send_at":"2024-06-10T15:00:00Z","task_id":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	uc.err = notification.ErrTaskNotFound
	w = send(r, http.MethodPost, "/notifications", `{"title":"x","send_at":"2024-06-10T15:00:00Z","task_id":"`+notificationID+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdate(t *testing.T) {
	uc := &stubUseCase{}
	r := newRouter(uc)

	w := send(r, http.MethodPatch, "/notifications/"+notificationID, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPatch, "/notifications/"+notificationID, `{"sent":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, notificationID, uc.updated.ID)
	assert.False(t, uc.updated.Sent)
}
