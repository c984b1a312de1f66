package model

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Timezone     string
	CreatedAt    time.Time
}
