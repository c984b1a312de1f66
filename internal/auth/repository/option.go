package repository

type CreateUserOptions struct {
	Email        string
	PasswordHash string
	Name         string
	Timezone     string
}

// GetOneUserOptions filters by every non-empty field.
type GetOneUserOptions struct {
	ID    string
	Email string
}
