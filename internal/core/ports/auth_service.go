package ports

import "context"

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login and token revocation.
type AuthService interface {
	// Register creates the user and mints a bearer token for it.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login verifies the credentials and mints a new bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Logout revokes every token currently issued to the user.
	Logout(ctx context.Context, userID string) error
}
