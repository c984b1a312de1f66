package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ai-task-planner/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, calendarID string) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient, calendarID)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	if _, err := gcalendar.New(ctx, gcalendar.Config{}); !errors.Is(err, gcalendar.ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: "missing-file.json"}); err == nil {
		t.Error("expected read error")
	}
	if _, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: writeFile(t, "c.json", `{"broken":true}`)}); err == nil {
		t.Error("expected decoding failure")
	}

	creds := writeFile(t, "creds.json", installedCreds)
	if _, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: creds}); !errors.Is(err, gcalendar.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}

	badToken := writeFile(t, "bad.json", `{"broken": true`)
	if _, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: creds, TokenPath: badToken}); err == nil {
		t.Error("expected token parse failure")
	}

	token := writeFile(t, "token.json", `{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`)
	if _, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: creds, TokenPath: token}); err != nil {
		t.Fatalf("expected installed-app credentials to load: %v", err)
	}
}

func TestCreateEvent(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	start := time.Date(2024, 6, 10, 8, 0, 0, 0, loc)

	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			DateTime string `json:"dateTime"`
			TimeZone string `json:"timeZone"`
		} `json:"start"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/work/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Write([]byte(`{"id":"event-123","htmlLink":"https://calendar.google.com/event-uri"}`))
	}, "work")

	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Estudar",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Timezone:  "America/Sao_Paulo",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}
	if got.Summary != "Estudar" || got.Start.DateTime != "2024-06-10T08:00:00-03:00" || got.Start.TimeZone != "America/Sao_Paulo" {
		t.Errorf("unexpected request body: %+v", got)
	}
}

func TestCreateEvent_Errors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "")

	now := time.Now()
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: now, EndTime: now}); !errors.Is(err, gcalendar.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: now, EndTime: now.Add(time.Hour)}); err == nil {
		t.Error("expected api error")
	}
}
