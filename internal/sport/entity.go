// AngelaMos | 2026
// entity.go

package sport

type Sport struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	ImageURL    *string `db:"image_url"`
}
