package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"january belongs to previous season", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "2023-2024"},
		{"last day of june", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), "2023-2024"},
		{"first day of july rolls over", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"december belongs to current season", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "2024-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.date))
		})
	}
}
