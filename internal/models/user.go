package models

// User is the authenticated account the store holds data for.
// It is set on successful sign-in and cleared on logout.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
