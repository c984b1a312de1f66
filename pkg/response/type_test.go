package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"ai-task-planner/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00-03:00"` {
		t.Errorf("unexpected JSON %s", b)
	}
}

func TestNewDateTimePtr(t *testing.T) {
	if response.NewDateTimePtr(nil) != nil {
		t.Errorf("expected nil for nil input")
	}

	now := time.Now()
	b, err := json.Marshal(struct {
		At *response.DateTime `json:"at"`
	}{At: response.NewDateTimePtr(&now)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) < 20 {
		t.Errorf("marshaled string too short: %s", b)
	}
}
