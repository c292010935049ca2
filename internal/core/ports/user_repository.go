package ports

import (
	"context"

	"restaurant/internal/core/domain/model/user"
)

// UserRepository stores back-office accounts.
type UserRepository interface {
	// Add returns errs.ObjectConflictError when the email is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByEmail looks an account up by its normalized email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
