package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/ai/enhancer"
	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/gcalendar"
	"ai-task-planner/pkg/llmprovider"
	"ai-task-planner/pkg/log"
)

type fakeStore struct {
	inputs []task.CreateInput
	failAt int // 1-based; 0 never fails
}

func (f *fakeStore) Create(ctx context.Context, sc model.Scope, in task.CreateInput) (task.CreateOutput, error) {
	if f.failAt == len(f.inputs)+1 {
		return task.CreateOutput{}, errors.New("insert failed")
	}
	f.inputs = append(f.inputs, in)
	end, dur := task.ResolveEnd(in.Date, in.AllDay, in.DurationMinutes)
	return task.CreateOutput{Task: model.Task{
		ID: fmt.Sprintf("t-%d", len(f.inputs)), UserID: sc.UserID, Title: in.Title,
		Date: in.Date, EndDate: end, AllDay: in.AllDay, DurationMinutes: dur,
	}}, nil
}

type fakeCalendar struct {
	reqs []gcalendar.CreateEventRequest
	err  error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{ID: "ev-1"}, nil
}

type deadProvider struct{}

func (deadProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

var (
	saoPaulo, _ = time.LoadLocation("America/Sao_Paulo")
	user        = model.Scope{UserID: "u-1", Timezone: "America/Sao_Paulo"}
	// 2024-06-10 15:00 in São Paulo.
	fixedNow = time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)
)

func newUseCase(store ai.TaskStore, opts Options) *implUseCase {
	uc := New(log.NewNop(), enhancer.NewNull(), store, opts)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, saoPaulo)
}

func TestCreateFromText_ClockClauses(t *testing.T) {
	store := &fakeStore{}
	uc := newUseCase(store, Options{})

	out, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "às 10 Reunião, às 14 Almoço"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)

	assert.Equal(t, "Reunião", out.Tasks[0].Title)
	assert.True(t, out.Tasks[0].Date.Equal(at(10, 0)))
	assert.Equal(t, "Almoço", out.Tasks[1].Title)
	assert.True(t, out.Tasks[1].Date.Equal(at(14, 0)))

	// No duration anywhere in the text: every task is all day.
	for _, tk := range out.Tasks {
		assert.True(t, tk.AllDay)
		assert.Nil(t, tk.EndDate)
	}
	assert.Equal(t, ai.IntentExplicitTime, out.Intent.Kind)
}

func TestCreateFromText_PartOfDayWithDuration(t *testing.T) {
	store := &fakeStore{}
	uc := newUseCase(store, Options{})

	out, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "estudar de manhã por 2 horas"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)

	tk := out.Tasks[0]
	assert.False(t, tk.AllDay)
	assert.True(t, tk.Date.Equal(at(8, 0)))
	require.NotNil(t, tk.EndDate)
	assert.True(t, tk.EndDate.Equal(at(10, 0)))
	require.NotNil(t, tk.DurationMinutes)
	assert.Equal(t, 120, *tk.DurationMinutes)
}

func TestCreateFromText_NoTimeWords(t *testing.T) {
	store := &fakeStore{}
	uc := newUseCase(store, Options{})

	out, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "reunião"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)

	tk := out.Tasks[0]
	assert.True(t, tk.AllDay)
	assert.True(t, tk.Date.Equal(at(0, 0)))
	assert.Nil(t, tk.EndDate)
}

func TestCreateFromText_UnreachableProvider(t *testing.T) {
	store := &fakeStore{}
	remote := enhancer.NewRemote(log.NewNop(), deadProvider{}, enhancer.Options{Timeout: time.Second})
	uc := New(log.NewNop(), remote, store, Options{})
	uc.now = func() time.Time { return fixedNow }

	out, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "às 10 Reunião, às 14 Almoço"})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
	assert.Equal(t, "Às 10 reunião, às 14 almoço", out.EnhancedText)
}

func TestCreateFromText_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeStore{}, Options{})

	for _, text := range []string{"", "  a  ", "ab"} {
		_, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: text})
		assert.ErrorIs(t, err, ai.ErrInvalidInput, "text %q", text)
	}

	long := make([]rune, maxTextRunes+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: string(long)})
	assert.ErrorIs(t, err, ai.ErrInvalidInput)
}

func TestCreateFromText_PersistenceFailure(t *testing.T) {
	store := &fakeStore{failAt: 2}
	uc := newUseCase(store, Options{})

	_, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "comprar pão\npagar contas\nlavar louça"})
	assert.ErrorIs(t, err, ai.ErrPersistence)
	// Earlier rows are not rolled back.
	assert.Len(t, store.inputs, 1)
}

func TestCreateFromText_CalendarMirror(t *testing.T) {
	cal := &fakeCalendar{}
	uc := newUseCase(&fakeStore{}, Options{Calendar: cal})

	_, err := uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "reunião às 15h por 30 minutos"})
	require.NoError(t, err)
	require.Len(t, cal.reqs, 1)
	assert.True(t, cal.reqs[0].StartTime.Equal(at(15, 0)))
	assert.True(t, cal.reqs[0].EndTime.Equal(at(15, 30)))
	assert.Equal(t, "America/Sao_Paulo", cal.reqs[0].Timezone)

	// All-day tasks are not mirrored and calendar errors are not fatal.
	cal.err = errors.New("quota exceeded")
	_, err = uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "reunião"})
	require.NoError(t, err)
	assert.Len(t, cal.reqs, 1)

	_, err = uc.CreateFromText(context.Background(), user, ai.CreateFromTextInput{Text: "reunião às 15h por 30 minutos"})
	assert.NoError(t, err)
}

func TestEnhanceText(t *testing.T) {
	uc := newUseCase(&fakeStore{}, Options{})

	out, err := uc.EnhanceText(context.Background(), ai.EnhanceTextInput{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "X", out.Text)

	_, err = uc.EnhanceText(context.Background(), ai.EnhanceTextInput{Text: "   "})
	assert.ErrorIs(t, err, ai.ErrInvalidInput)
}

func TestPreview(t *testing.T) {
	store := &fakeStore{}
	uc := newUseCase(store, Options{})

	out, err := uc.Preview(context.Background(), user, ai.PreviewInput{Text: "estudar de manhã por 2 horas", Day: "amanhã"})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Empty(t, store.inputs, "preview must not persist")

	p := out.Tasks[0]
	want := time.Date(2024, 6, 11, 8, 0, 0, 0, saoPaulo)
	assert.True(t, p.Date.Equal(want))
	require.Len(t, p.Reminders, 2)
	assert.True(t, p.Reminders[1].Equal(want.Add(2*time.Hour)))

	_, err = uc.Preview(context.Background(), user, ai.PreviewInput{Text: "reunião", Day: "someday"})
	assert.ErrorIs(t, err, ai.ErrInvalidDay)
}
