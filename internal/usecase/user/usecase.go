package user

import (
	"context"
	"errors"
	"strings"

	"github.com/cagb07/gestor-centros-app/internal/auth"
	"github.com/cagb07/gestor-centros-app/internal/domain/uow"
	"github.com/cagb07/gestor-centros-app/internal/domain/user"

	"go.uber.org/zap"
)

type Usecase struct {
	uow  uow.UnitOfWork
	repo user.Repository
	log  *zap.Logger
}

func NewUsecase(u uow.UnitOfWork, r user.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: u, repo: r, log: log}
}

type CreateUserInput struct {
	Username string    `json:"username" validate:"required,max=50,username"`
	Password string    `json:"password" validate:"required,min=8"`
	Role     user.Role `json:"role" validate:"required,role"`
	FullName string    `json:"full_name" validate:"required,max=100"`
}

type UserDTO struct {
	ID       uint64    `json:"id"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
	FullName string    `json:"full_name"`
}

func toDTO(u *user.User) *UserDTO {
	return &UserDTO{ID: u.ID, Username: u.Username, Role: u.Role, FullName: u.FullName}
}

func (u *Usecase) Create(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	username := strings.TrimSpace(in.Username)
	fullName := strings.TrimSpace(in.FullName)
	if err := auth.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := auth.ValidateFullName(fullName); err != nil {
		return nil, err
	}
	if !user.ValidRole(in.Role) {
		return nil, user.ErrInvalidRole
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	created := &user.User{
		Username:     username,
		PasswordHash: hash,
		Role:         in.Role,
		FullName:     fullName,
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Users.GetByUsername(ctx, username)
		if err == nil {
			return user.ErrDuplicateUsername
		}
		if !errors.Is(err, user.ErrNotFound) {
			return err
		}
		return r.Users.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

func (u *Usecase) List(ctx context.Context) ([]UserDTO, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *toDTO(&users[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*UserDTO, error) {
	found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(found), nil
}

type UpdateUserInput struct {
	Role     *user.Role `json:"role" validate:"omitempty,role"`
	FullName *string    `json:"full_name" validate:"omitempty,max=100"`
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateUserInput) error {
	if in.Role == nil && in.FullName == nil {
		return nil
	}
	if in.Role != nil && !user.ValidRole(*in.Role) {
		return user.ErrInvalidRole
	}
	if in.FullName != nil {
		if err := auth.ValidateFullName(strings.TrimSpace(*in.FullName)); err != nil {
			return err
		}
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cur, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.Role != nil {
			cur.Role = *in.Role
		}
		if in.FullName != nil {
			cur.FullName = strings.TrimSpace(*in.FullName)
		}
		return r.Users.Save(ctx, cur)
	})
}

// Delete removes a user; the acting session's own user is protected.
func (u *Usecase) Delete(ctx context.Context, id, actingUserID uint64) error {
	if id == actingUserID {
		return user.ErrSelfDelete
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByID(ctx, id); err != nil {
			return err
		}
		return r.Users.Delete(ctx, id)
	})
}

// Authenticate verifies credentials and transparently re-hashes legacy
// password hashes with bcrypt on a successful login.
func (u *Usecase) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	found, err := u.repo.GetByUsername(ctx, username)
	if errors.Is(err, user.ErrNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	ok, needsUpgrade := auth.VerifyPassword(password, found.PasswordHash)
	if !ok {
		return nil, user.ErrInvalidCredentials
	}
	if needsUpgrade {
		if hash, herr := auth.HashPassword(password); herr == nil {
			found.PasswordHash = hash
			if serr := u.repo.Save(ctx, found); serr != nil {
				u.log.Warn("could not upgrade legacy password hash",
					zap.String("username", username), zap.Error(serr))
			}
		}
	}
	return found, nil
}

// SeedAdmin creates the bootstrap administrator once; an existing
// username makes this a no-op.
func (u *Usecase) SeedAdmin(ctx context.Context, username, password, fullName string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Users.GetByUsername(ctx, username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, user.ErrNotFound) {
			return err
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		return r.Users.Create(ctx, &user.User{
			Username:     username,
			PasswordHash: hash,
			Role:         user.RoleAdmin,
			FullName:     fullName,
		})
	})
}
