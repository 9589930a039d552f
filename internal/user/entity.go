// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Phone        *string   `db:"phone"`
	RoleID       string    `db:"role_id"`
	RoleName     string    `db:"role_name"`
	RegisteredAt time.Time `db:"registered_at"`
	Verified     bool      `db:"verified"`
}

func (u *User) IsAdmin() bool {
	return u.RoleName == "admin"
}
