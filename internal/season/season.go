package season

import (
	"fmt"
	"time"
)

// Of returns the label of the sporting season containing d. Seasons run July
// to June: a June 2024 session belongs to "2023-2024", a July 2024 session to
// "2024-2025".
func Of(d time.Time) string {
	y := d.Year()
	if d.Month() < time.July {
		return fmt.Sprintf("%d-%d", y-1, y)
	}
	return fmt.Sprintf("%d-%d", y, y+1)
}
