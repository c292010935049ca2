package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// LoginResult is the session issued to an authenticated user.
type LoginResult struct {
	Session ports.Session
	UserID  kernel.UUID
	Email   string
	Role    user.Role
}

// LoginCommandHandler checks credentials and issues a session.
// An unknown email and a wrong password both yield user.ErrInvalidCredentials.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     ports.SessionIssuer
}

func NewLoginCommandHandler(uowFactory UserUoWFactory, issuer ports.SessionIssuer) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, issuer: issuer}
}

func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, user.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err = u.Authenticate(cmd.Password()); err != nil {
		return LoginResult{}, err
	}

	session, err := h.issuer.Issue(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Session: session,
		UserID:  u.ID(),
		Email:   u.Email(),
		Role:    u.Role(),
	}, nil
}
