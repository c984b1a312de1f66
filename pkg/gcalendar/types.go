package gcalendar

import "time"

const defaultCalendarID = "primary"

// Config selects the credentials and target calendar.
// TokenPath is only read for OAuth desktop-app credentials.
type Config struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// CreateEventRequest is the input for creating a timed calendar event.
// An empty CalendarID uses the client's calendar.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/Sao_Paulo"
}

// Event is the part of a created event the service keeps.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
