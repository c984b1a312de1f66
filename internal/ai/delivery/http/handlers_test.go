package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/datemath"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
	"ai-task-planner/pkg/validation"
)

type stubUseCase struct {
	err error
}

func (s stubUseCase) CreateFromText(ctx context.Context, sc model.Scope, in ai.CreateFromTextInput) (ai.CreateFromTextOutput, error) {
	start := datemath.ClockTime{Hour: 8}
	minutes := 120
	date := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	end := date.Add(2 * time.Hour)
	return ai.CreateFromTextOutput{
		EnhancedText: in.Text,
		Intent:       ai.TimeIntent{Kind: ai.IntentPartOfDay, StartTime: &start, DurationMinutes: &minutes},
		Tasks:        []model.Task{{ID: "t-1", Title: "Estudar", Date: date, EndDate: &end, DurationMinutes: &minutes}},
	}, s.err
}

func (s stubUseCase) EnhanceText(ctx context.Context, in ai.EnhanceTextInput) (ai.EnhanceTextOutput, error) {
	return ai.EnhanceTextOutput{Text: strings.ToUpper(in.Text)}, s.err
}

func (s stubUseCase) Preview(ctx context.Context, sc model.Scope, in ai.PreviewInput) (ai.PreviewOutput, error) {
	date := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	return ai.PreviewOutput{Tasks: []ai.PlannedTask{{Title: "Reunião", Date: date, AllDay: true}}}, s.err
}

func newRouter(t *testing.T, uc ai.UseCase) *gin.Engine {
	t.Helper()
	require.NoError(t, validation.Register())
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetPayloadToContext(c.Request.Context(), scope.Payload{UserID: "u-1"}))
	})
	h := New(log.NewNop(), uc)
	r.POST("/ai/create", h.CreateFromText)
	r.POST("/ai/enhance", h.EnhanceText)
	r.POST("/ai/preview", h.Preview)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateFromText(t *testing.T) {
	r := newRouter(t, stubUseCase{})

	w := post(r, "/ai/create", `{"text":"estudar de manhã por 2 horas"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Intent struct {
				Kind      string `json:"kind"`
				StartTime string `json:"start_time"`
			} `json:"intent"`
			Tasks []struct {
				EndDate string `json:"end_date"`
			} `json:"tasks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "part_of_day", body.Data.Intent.Kind)
	assert.Equal(t, "08:00", body.Data.Intent.StartTime)
	require.Len(t, body.Data.Tasks, 1)
	assert.Equal(t, "2024-06-10T10:00:00Z", body.Data.Tasks[0].EndDate)
}

func TestCreateFromText_Validation(t *testing.T) {
	r := newRouter(t, stubUseCase{})

	for _, body := range []string{`{}`, `{"text":"   "}`, `{"text":"ab"}`} {
		w := post(r, "/ai/create", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ai.ErrNoTasksExtracted, http.StatusBadRequest},
		{ai.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("%w: insert failed", ai.ErrPersistence), http.StatusInternalServerError},
	}
	for _, c := range cases {
		r := newRouter(t, stubUseCase{err: c.err})
		w := post(r, "/ai/create", `{"text":"reunião"}`)
		assert.Equal(t, c.want, w.Code, c.err.Error())
	}
}

func TestEnhanceAndPreview(t *testing.T) {
	r := newRouter(t, stubUseCase{})

	w := post(r, "/ai/enhance", `{"text":"x"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"text":"X"`)

	w = post(r, "/ai/preview", `{"text":"reunião","day":"amanhã"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reminders":[]`)

	r = newRouter(t, stubUseCase{err: ai.ErrInvalidDay})
	w = post(r, "/ai/preview", `{"text":"reunião","day":"someday"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
