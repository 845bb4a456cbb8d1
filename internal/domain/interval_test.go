package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourRange_Overlaps(t *testing.T) {
	base := HourRange{Start: 10, End: 12}

	tests := []struct {
		name  string
		other HourRange
		want  bool
	}{
		{"identical", HourRange{Start: 10, End: 12}, true},
		{"inside", HourRange{Start: 10, End: 11}, true},
		{"covers", HourRange{Start: 9, End: 13}, true},
		{"partial left", HourRange{Start: 9, End: 11}, true},
		{"partial right", HourRange{Start: 11, End: 13}, true},
		{"touching left edge", HourRange{Start: 8, End: 10}, false},
		{"touching right edge", HourRange{Start: 12, End: 14}, false},
		{"disjoint before", HourRange{Start: 7, End: 9}, false},
		{"disjoint after", HourRange{Start: 13, End: 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestHourRange_Blocks(t *testing.T) {
	assert.Equal(t, 1, HourRange{Start: 9, End: 10}.Blocks())
	assert.Equal(t, 2, HourRange{Start: 16, End: 18}.Blocks())
}
