// AngelaMos | 2026
// entity.go

package court

type Court struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	SportID     string  `db:"sport_id"`
	Description *string `db:"description"`
	HourlyPrice float64 `db:"hourly_price"`
	ImageURL    *string `db:"image_url"`
	Active      bool    `db:"active"`
}
