// AngelaMos | 2026
// entity.go

package role

type Role struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

const (
	NameAdmin  = "admin"
	NameMember = "member"
)
