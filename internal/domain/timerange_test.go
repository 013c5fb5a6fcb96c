package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func tr(t *testing.T, startHour, startMin, endHour, endMin int) TimeRange {
	t.Helper()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return TimeRange{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name    string
		a, b    TimeRange
		want    TimeRange
		overlap bool
	}{
		{
			name:    "partial overlap",
			a:       tr(t, 9, 0, 11, 0),
			b:       tr(t, 10, 0, 12, 0),
			want:    tr(t, 10, 0, 11, 0),
			overlap: true,
		},
		{
			name:    "containment",
			a:       tr(t, 9, 0, 18, 0),
			b:       tr(t, 12, 0, 13, 0),
			want:    tr(t, 12, 0, 13, 0),
			overlap: true,
		},
		{
			name:    "disjoint",
			a:       tr(t, 9, 0, 10, 0),
			b:       tr(t, 11, 0, 12, 0),
			overlap: false,
		},
		{
			name:    "touching boundaries are not an overlap",
			a:       tr(t, 9, 0, 10, 0),
			b:       tr(t, 10, 0, 11, 0),
			overlap: false,
		},
		{
			name:    "identical ranges",
			a:       tr(t, 9, 0, 10, 0),
			b:       tr(t, 9, 0, 10, 0),
			want:    tr(t, 9, 0, 10, 0),
			overlap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Overlap(tt.a, tt.b)
			require.Equal(t, tt.overlap, ok)
			if tt.overlap {
				assert.Equal(t, tt.want, got)
			}

			// Пересечение симметрично
			gotSym, okSym := Overlap(tt.b, tt.a)
			assert.Equal(t, ok, okSym)
			assert.Equal(t, got, gotSym)
		})
	}
}

func TestSubtractBusy(t *testing.T) {
	t.Run("busy splits free range in two", func(t *testing.T) {
		free := []TimeRange{tr(t, 9, 0, 18, 0)}

		got := SubtractBusy(free, tr(t, 12, 0, 13, 0))

		require.Len(t, got, 2)
		assert.Equal(t, tr(t, 9, 0, 12, 0), got[0])
		assert.Equal(t, tr(t, 13, 0, 18, 0), got[1])
	})

	t.Run("busy at the left edge keeps only right remainder", func(t *testing.T) {
		free := []TimeRange{tr(t, 9, 0, 18, 0)}

		got := SubtractBusy(free, tr(t, 8, 0, 10, 0))

		require.Len(t, got, 1)
		assert.Equal(t, tr(t, 10, 0, 18, 0), got[0])
	})

	t.Run("busy covering whole free range removes it", func(t *testing.T) {
		free := []TimeRange{tr(t, 9, 0, 18, 0)}

		got := SubtractBusy(free, tr(t, 8, 0, 19, 0))

		assert.Empty(t, got)
	})

	t.Run("disjoint busy leaves free set unchanged", func(t *testing.T) {
		free := []TimeRange{tr(t, 9, 0, 10, 0), tr(t, 14, 0, 16, 0)}

		got := SubtractBusy(free, tr(t, 11, 0, 12, 0))

		assert.Equal(t, free, got)
	})

	t.Run("adjacent busy does not trim free range", func(t *testing.T) {
		free := []TimeRange{tr(t, 9, 0, 10, 0)}

		got := SubtractBusy(free, tr(t, 10, 0, 11, 0))

		assert.Equal(t, free, got)
	})

	t.Run("sequential subtraction yields free minus all busy", func(t *testing.T) {
		free := []TimeRange{tr(t, 9, 0, 18, 0)}
		busy := []TimeRange{
			tr(t, 10, 0, 11, 0),
			tr(t, 12, 30, 13, 30),
			tr(t, 17, 0, 19, 0),
		}

		for _, b := range busy {
			free = SubtractBusy(free, b)
		}

		require.Len(t, free, 3)
		assert.Equal(t, tr(t, 9, 0, 10, 0), free[0])
		assert.Equal(t, tr(t, 11, 0, 12, 30), free[1])
		assert.Equal(t, tr(t, 13, 30, 17, 0), free[2])
	})
}

func TestMergeRanges(t *testing.T) {
	t.Run("overlapping ranges merge into covering span", func(t *testing.T) {
		got := MergeRanges([]TimeRange{
			tr(t, 11, 0, 13, 0),
			tr(t, 9, 0, 12, 0),
		})

		require.Len(t, got, 1)
		assert.Equal(t, tr(t, 9, 0, 13, 0), got[0])
	})

	t.Run("exactly contiguous ranges merge", func(t *testing.T) {
		got := MergeRanges([]TimeRange{
			tr(t, 9, 0, 10, 0),
			tr(t, 10, 0, 11, 0),
		})

		require.Len(t, got, 1)
		assert.Equal(t, tr(t, 9, 0, 11, 0), got[0])
	})

	t.Run("separate ranges stay separate and sorted", func(t *testing.T) {
		got := MergeRanges([]TimeRange{
			tr(t, 14, 0, 15, 0),
			tr(t, 9, 0, 10, 0),
		})

		require.Len(t, got, 2)
		assert.Equal(t, tr(t, 9, 0, 10, 0), got[0])
		assert.Equal(t, tr(t, 14, 0, 15, 0), got[1])
	})

	t.Run("merge is idempotent", func(t *testing.T) {
		input := []TimeRange{
			tr(t, 9, 0, 11, 0),
			tr(t, 10, 0, 12, 0),
			tr(t, 12, 0, 13, 0),
			tr(t, 15, 0, 16, 0),
		}

		once := MergeRanges(input)
		twice := MergeRanges(once)

		assert.Equal(t, once, twice)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MergeRanges(nil))
	})
}

func parseTimeOfDay(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	parsed, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return parsed
}

func TestTimeBlockPatch_Apply(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	reason := "lunch break"

	block := TimeBlock{
		StartDateTime: day.Add(12 * time.Hour),
		EndDateTime:   day.Add(13 * time.Hour),
		Type:          BlockTypeBreak,
		Reason:        &reason,
	}

	t.Run("patch keeps the block date and replaces time of day", func(t *testing.T) {
		newStart, newEnd := parseTimeOfDay(t, "14:00:00"), parseTimeOfDay(t, "15:30:00")
		patch := TimeBlockPatch{StartTime: &newStart, EndTime: &newEnd}

		updated, err := patch.Apply(block)
		require.NoError(t, err)

		assert.Equal(t, day.Add(14*time.Hour), updated.StartDateTime)
		assert.Equal(t, day.Add(15*time.Hour+30*time.Minute), updated.EndDateTime)
		assert.Equal(t, BlockTypeBreak, updated.Type)

		// Исходный снимок не изменён
		assert.Equal(t, day.Add(12*time.Hour), block.StartDateTime)
	})

	t.Run("empty patch returns equal record", func(t *testing.T) {
		updated, err := TimeBlockPatch{}.Apply(block)
		require.NoError(t, err)
		assert.Equal(t, block, updated)
	})
}
