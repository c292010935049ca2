package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a back-office account. It is issued from the CLI.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(userID kernel.UUID, email, password string, role user.Role) (CreateUserCommand, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return CreateUserCommand{}, err
	}
	return CreateUserCommand{
		userID:   userID,
		email:    email,
		password: password,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }
func (c CreateUserCommand) Email() string       { return c.email }
func (c CreateUserCommand) Password() string    { return c.password }
func (c CreateUserCommand) Role() user.Role     { return c.role }
