package auth

import (
	"context"
	"errors"

	"chronotask/internal/models"
)

// ErrInvalidCredentials is returned when the identifier/secret pair does not
// match any account. It is user-visible and non-fatal.
var ErrInvalidCredentials = errors.New("identifiants invalides")

// Provider is the external authentication collaborator. The store and server
// call it; they never implement it.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (models.User, error)
	SignOut(ctx context.Context) error
}

type credential struct {
	id       string
	email    string
	password string
}

// Mock is the development auth provider with a fixed credential pair, kept
// from the original application.
type Mock struct {
	users []credential
}

func NewMock() *Mock {
	return &Mock{
		users: []credential{
			{id: "1", email: "admin", password: "admin"},
		},
	}
}

func (m *Mock) SignIn(ctx context.Context, email, password string) (models.User, error) {
	for _, u := range m.users {
		if u.email == email && u.password == password {
			return models.User{ID: u.id, Email: u.email}, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

func (m *Mock) SignOut(ctx context.Context) error {
	return nil
}
