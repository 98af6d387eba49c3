package models

// User is the subset of an account the engine needs for display
type User struct {
	// ID is the unique identifier of the user
	ID string

	// Name is the display name of the user
	Name string

	// Email is the contact address of the user
	Email string
}
