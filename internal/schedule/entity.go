// AngelaMos | 2026
// entity.go

package schedule

// Slot is a recurring weekly time window offered by a court. Times are held
// as zero-padded "HH:MM" strings so lexical order matches chronological
// order; the repository normalizes the TIME columns on read.
type Slot struct {
	ID        string `db:"id"`
	CourtID   string `db:"court_id"`
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Available bool   `db:"available"`
}

// Overlaps reports whether two time ranges on the same court and day share
// at least one instant. The boundary check is inclusive: a slot ending at
// 11:00 blocks another starting at 11:00.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && aEnd >= bStart
}
