package user

import "context"

// UserRepository defines read access to user accounts.
type UserRepository interface {
	// GetByID retrieves a user by ID. Returns ErrUserNotFound when missing.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByRUT retrieves a user by RUT for password login.
	GetByRUT(ctx context.Context, rut string) (User, error)

	// GetByQRSecret retrieves a user by their QR login secret.
	GetByQRSecret(ctx context.Context, secret string) (User, error)

	// ListActiveIDs retrieves the IDs of every active user.
	ListActiveIDs(ctx context.Context) ([]string, error)
}
