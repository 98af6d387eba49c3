package user

import "github.com/KirkDiggler/forfeit/internal/models"

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.User
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}
