package auth

import (
	"context"
	"errors"
	"testing"
)

func TestMockSignIn(t *testing.T) {
	mock := NewMock()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid pair", "admin", "admin", false},
		{"wrong password", "admin", "secret", true},
		{"unknown email", "someone@example.com", "admin", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := mock.SignIn(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Fatalf("SignIn() error = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SignIn() error = %v", err)
			}
			if user.ID != "1" || user.Email != "admin" {
				t.Errorf("SignIn() user = %+v", user)
			}
		})
	}
}
