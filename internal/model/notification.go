package model

import "time"

// Notification is a reminder that becomes due at SendAt.
type Notification struct {
	ID        string
	UserID    string
	TaskID    *string
	Title     string
	Body      string
	SendAt    time.Time
	Sent      bool
	CreatedAt time.Time
}
