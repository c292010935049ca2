package ports

import (
	"time"

	"restaurant/internal/core/domain/model/user"
)

// Session is a signed credential handed to a logged-in user.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// SessionIssuer signs sessions for authenticated users.
type SessionIssuer interface {
	Issue(u *user.User) (Session, error)
}
