// Package user models staff accounts allowed into the back office.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 8

	hashCost = 10
)

var (
	// ErrUserIsNotConstructed is returned when a User was not built by NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Role grants access levels in the back office.
type Role string

const (
	Admin Role = "ADMIN"
	Staff Role = "STAFF"
)

func (r Role) Validate() error {
	if r != Admin && r != Staff {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// User is a back-office account.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an account, hashing password with bcrypt.
func NewUser(id kernel.UUID, email, password string, role Role) (*User, error) {
	u := &User{
		role:          role,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		u.setEmail(email),
		role.Validate(),
		validatePassword(password),
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.id = id
	u.passwordHash = string(hash)
	return u, nil
}

// RestoreUser rebuilds a stored account.
func RestoreUser(id kernel.UUID, email, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	u := &User{
		id:            id,
		passwordHash:  passwordHash,
		role:          role,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := errors.Join(id.Validate(), u.setEmail(email), role.Validate()); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Authenticate returns ErrInvalidCredentials unless password matches the stored hash.
func (u *User) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters long", MinPasswordLength))
	}
	return nil
}
