package session

import (
	"context"
	"errors"
	"time"

	"github.com/cagb07/gestor-centros-app/internal/domain/user"
	"github.com/cagb07/gestor-centros-app/pkg/id"
)

var ErrNotFound = errors.New("session not found")

// Session is the explicit per-login context: who is acting, with which
// role, and which reference-catalog record (if any) they attached for
// form pre-filling.
type Session struct {
	Token          string    `json:"token"`
	UserID         uint64    `json:"user_id"`
	Username       string    `json:"username"`
	Role           user.Role `json:"role"`
	FullName       string    `json:"full_name"`
	AttachedCenter string    `json:"attached_center,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func New(u *user.User) *Session {
	return &Session{
		Token:     id.NewToken32(),
		UserID:    u.ID,
		Username:  u.Username,
		Role:      u.Role,
		FullName:  u.FullName,
		CreatedAt: time.Now().UTC(),
	}
}

type Store interface {
	Put(ctx context.Context, s *Session) error
	// Get returns ErrNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
