package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert notification")
	ErrFailedToGet    = errors.New("failed to get notification")
	ErrFailedToList   = errors.New("failed to list notifications")
	ErrFailedToUpdate = errors.New("failed to update notification")
	ErrFailedToDelete = errors.New("failed to delete notification")
)
