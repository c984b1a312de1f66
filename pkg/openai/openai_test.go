package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-task-planner/pkg/openai"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := openai.New(openai.Config{}); !errors.Is(err, openai.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := openai.New(openai.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != openai.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"bad token","type":"auth"}}`))
			return
		}

		var req struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			Messages  []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Messages[len(req.Messages)-1].Content {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream down"))
			return
		case "no_choices":
			_, _ = w.Write([]byte(`{"choices":[]}`))
			return
		}

		if req.Model != "test-model" || req.MaxTokens != 512 || req.Messages[0].Role != "system" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{
			"id": "x",
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Reunião\nAlmoço"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
		}`))
	}))
	defer ts.Close()

	newClient := func(key string) openai.IClient {
		c, err := openai.New(openai.Config{APIKey: key, Model: "test-model", BaseURL: ts.URL + "/v1/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return c
	}
	request := func(text string) *openai.Request {
		return &openai.Request{
			MaxTokens: 512,
			Messages: []openai.Message{
				{Role: openai.RoleSystem, Content: "system"},
				{Role: openai.RoleUser, Content: text},
			},
		}
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := newClient("test-key").ChatCompletion(context.Background(), request("reunião e almoço"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Reunião\nAlmoço" {
			t.Errorf("unexpected text: %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 14 || resp.FinishReason != "stop" {
			t.Errorf("unexpected metadata: %+v", resp)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := newClient("test-key").ChatCompletion(context.Background(), request("cause_500"))
		if err == nil || !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected 500 error, got %v", err)
		}
	})

	t.Run("API Error Message", func(t *testing.T) {
		_, err := newClient("wrong").ChatCompletion(context.Background(), request("x"))
		if err == nil || !strings.Contains(err.Error(), "bad token") {
			t.Fatalf("expected api error message, got %v", err)
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		_, err := newClient("test-key").ChatCompletion(context.Background(), request("no_choices"))
		if !errors.Is(err, openai.ErrEmptyChoices) {
			t.Fatalf("expected ErrEmptyChoices, got %v", err)
		}
	})
}
