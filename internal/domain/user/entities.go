package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrSelfDelete         = errors.New("cannot delete the active session's own user")
	ErrInvalidRole        = errors.New("role must be admin or operador")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Role string

const (
	RoleAdmin Role = "admin"
	// RoleOperator keeps the literal the usuarios.role CHECK constraint uses.
	RoleOperator Role = "operador"
)

func ValidRole(r Role) bool { return r == RoleAdmin || r == RoleOperator }

type User struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"id"`
	Username     string `gorm:"column:username;size:50;uniqueIndex:ux_usuarios_username;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"column:role;size:20;not null" json:"role"`
	FullName     string `gorm:"column:full_name;size:100" json:"full_name"`
}

func (User) TableName() string { return "usuarios" }
