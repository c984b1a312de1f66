package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

const taskID = "0b0c5b7e-7d38-4a77-9c55-1c0f3a1f0e11"

type fakeUseCase struct {
	createIn  task.CreateInput
	updateIn  task.UpdateInput
	deleteErr error
	sc        model.Scope
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, in task.CreateInput) (task.CreateOutput, error) {
	f.sc, f.createIn = sc, in
	return task.CreateOutput{Task: model.Task{ID: taskID, Title: in.Title, Date: in.Date}}, nil
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	f.sc = sc
	return task.ListOutput{Tasks: []model.Task{{ID: taskID, Title: "Reunião"}}}, nil
}

func (f *fakeUseCase) Update(ctx context.Context, sc model.Scope, in task.UpdateInput) (task.UpdateOutput, error) {
	f.sc, f.updateIn = sc, in
	return task.UpdateOutput{Task: model.Task{ID: in.ID}}, nil
}

func (f *fakeUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	f.sc = sc
	return f.deleteErr
}

func newTestRouter(uc task.UseCase, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) {
			ctx := scope.SetPayloadToContext(c.Request.Context(), scope.Payload{UserID: "u-1", Timezone: "America/Sao_Paulo"})
			c.Request = c.Request.WithContext(ctx)
		})
	}
	h := New(log.NewNop(), uc)
	r.POST("/tasks", h.Create)
	r.GET("/tasks", h.List)
	r.PATCH("/tasks/:id", h.Update)
	r.DELETE("/tasks/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc, true)

	w := do(r, http.MethodPost, "/tasks", `{"title":"Reunião","date":"2024-06-10T10:00:00-03:00","duration_minutes":30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.sc.UserID != "u-1" {
		t.Errorf("expected scope from context, got %+v", uc.sc)
	}
	if uc.createIn.DurationMinutes == nil || *uc.createIn.DurationMinutes != 30 {
		t.Errorf("duration not forwarded: %+v", uc.createIn)
	}
	want := time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC)
	if !uc.createIn.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, uc.createIn.Date)
	}

	var body struct {
		Data struct {
			Task struct {
				Date string `json:"date"`
			} `json:"task"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Task.Date != "2024-06-10T10:00:00-03:00" {
		t.Errorf("unexpected date rendering %q", body.Data.Task.Date)
	}
}

func TestCreateHandler_Validation(t *testing.T) {
	r := newTestRouter(&fakeUseCase{}, true)

	cases := map[string]string{
		"missing title":     `{"date":"2024-06-10T10:00:00Z"}`,
		"missing date":      `{"title":"x"}`,
		"zero duration":     `{"title":"x","date":"2024-06-10T10:00:00Z","duration_minutes":0}`,
		"malformed payload": `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if w := do(r, http.MethodPost, "/tasks", body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestHandlers_RequireScope(t *testing.T) {
	r := newTestRouter(&fakeUseCase{}, false)

	if w := do(r, http.MethodGet, "/tasks", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestUpdateHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc, true)

	if w := do(r, http.MethodPatch, "/tasks/not-a-uuid", `{"done":true}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid id: expected 400, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, "/tasks/"+taskID, `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty update: expected 400, got %d", w.Code)
	}

	w := do(r, http.MethodPatch, "/tasks/"+taskID, `{"all_day":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.updateIn.ID != taskID || uc.updateIn.AllDay == nil || !*uc.updateIn.AllDay {
		t.Errorf("unexpected update input: %+v", uc.updateIn)
	}
}

func TestDeleteHandler_NotFound(t *testing.T) {
	r := newTestRouter(&fakeUseCase{deleteErr: task.ErrTaskNotFound}, true)

	if w := do(r, http.MethodDelete, "/tasks/"+taskID, ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestListHandler(t *testing.T) {
	r := newTestRouter(&fakeUseCase{}, true)

	w := do(r, http.MethodGet, "/tasks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"end_date":null`) {
		t.Errorf("expected null end_date in %s", w.Body.String())
	}
}
