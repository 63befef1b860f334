package domain

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateSeatCodes(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		rowWidth int
		want     []string
	}{
		{
			name:     "single partial row",
			capacity: 3,
			rowWidth: 8,
			want:     []string{"A-1", "A-2", "A-3"},
		},
		{
			name:     "exactly one full row",
			capacity: 8,
			rowWidth: 8,
			want:     []string{"A-1", "A-2", "A-3", "A-4", "A-5", "A-6", "A-7", "A-8"},
		},
		{
			name:     "truncated second row",
			capacity: 10,
			rowWidth: 8,
			want:     []string{"A-1", "A-2", "A-3", "A-4", "A-5", "A-6", "A-7", "A-8", "B-1", "B-2"},
		},
		{
			name:     "narrow rows",
			capacity: 5,
			rowWidth: 2,
			want:     []string{"A-1", "A-2", "B-1", "B-2", "C-1"},
		},
		{
			name:     "zero capacity",
			capacity: 0,
			rowWidth: 8,
			want:     nil,
		},
		{
			name:     "zero row width",
			capacity: 4,
			rowWidth: 0,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnumerateSeatCodes(tt.capacity, tt.rowWidth)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("seat codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnumerateSeatCodes_Distinct(t *testing.T) {
	for _, capacity := range []int{1, 7, 8, 9, 64, 100} {
		for _, rowWidth := range []int{1, 2, 8, 10} {
			name := fmt.Sprintf("capacity=%d,rowWidth=%d", capacity, rowWidth)

			t.Run(name, func(t *testing.T) {
				codes := EnumerateSeatCodes(capacity, rowWidth)
				require.Len(t, codes, capacity)

				seen := make(map[string]bool, len(codes))
				for _, code := range codes {
					assert.False(t, seen[code], "duplicate seat code %s", code)
					seen[code] = true
					assert.Regexp(t, `^[A-Z]-[1-9][0-9]*$`, code)
				}
			})
		}
	}
}

func TestEnumerateSeatCodes_RowLetterBound(t *testing.T) {
	// 26 full rows end at Z; the enumerator stays within single-letter rows
	// for every capacity up to 26 x rowWidth.
	codes := EnumerateSeatCodes(26*8, 8)

	require.Len(t, codes, 26*8)
	assert.Equal(t, "Z-8", codes[len(codes)-1])

	for _, code := range codes {
		assert.Regexp(t, `^[A-Z]-[1-9][0-9]*$`, code)
	}
}

func TestResolveSeatMap(t *testing.T) {
	sold := func(codes ...string) []Ticket {
		tickets := make([]Ticket, len(codes))
		for i, c := range codes {
			tickets[i] = Ticket{ID: i + 1, SeatCode: c}
		}
		return tickets
	}

	t.Run("single row with three sold seats", func(t *testing.T) {
		m := ResolveSeatMap(8, 8, sold("A-1", "A-3", "A-5"), "")

		require.Len(t, m.Seats, 8)
		assert.Equal(t, 3, m.Occupied)
		assert.Equal(t, 5, m.Remaining())
		assert.False(t, m.SoldOut())

		free := 0
		for _, s := range m.Seats {
			if s.State == SeatFree {
				free++
			}
		}
		assert.Equal(t, 5, free)

		state, ok := m.StateOf("A-3")
		require.True(t, ok)
		assert.Equal(t, SeatOccupied, state)
	})

	t.Run("selection marks a free seat", func(t *testing.T) {
		m := ResolveSeatMap(8, 8, sold("A-1"), "A-2")

		state, ok := m.StateOf("A-2")
		require.True(t, ok)
		assert.Equal(t, SeatSelected, state)
	})

	t.Run("selection of an occupied seat is ignored", func(t *testing.T) {
		m := ResolveSeatMap(8, 8, sold("A-2"), "A-2")

		state, ok := m.StateOf("A-2")
		require.True(t, ok)
		assert.Equal(t, SeatOccupied, state)
	})

	t.Run("out-of-grid ticket codes are excluded", func(t *testing.T) {
		m := ResolveSeatMap(4, 8, sold("A-1", "Z-9", ""), "")

		assert.Equal(t, 1, m.Occupied)

		_, ok := m.StateOf("Z-9")
		assert.False(t, ok)
	})

	t.Run("sold out at full occupancy", func(t *testing.T) {
		m := ResolveSeatMap(2, 8, sold("A-1", "A-2"), "")

		assert.Equal(t, 0, m.Remaining())
		assert.True(t, m.SoldOut())
	})

	t.Run("no error on resolving a sold out showtime", func(t *testing.T) {
		m := ResolveSeatMap(1, 8, sold("A-1"), "A-1")

		assert.True(t, m.SoldOut())

		state, ok := m.StateOf("A-1")
		require.True(t, ok)
		assert.Equal(t, SeatOccupied, state)
	})
}
