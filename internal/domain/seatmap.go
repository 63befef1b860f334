package domain

import "fmt"

// DefaultRowWidth is the fixed number of seats per row used when laying out
// a room's seating grid.
const DefaultRowWidth = 8

type SeatState string

const (
	SeatFree     SeatState = "FREE"
	SeatOccupied SeatState = "OCCUPIED"
	SeatSelected SeatState = "SELECTED"
)

type SeatMapEntry struct {
	Code  string
	State SeatState
}

// SeatMap is the resolved state of every seat in a room for one showtime.
// SELECTED is a per-session cursor over a free seat, never persisted; at
// most one entry carries it.
type SeatMap struct {
	Capacity int
	RowWidth int
	Seats    []SeatMapEntry
	Occupied int
}

// EnumerateSeatCodes produces the first capacity codes of the grid: rows
// A, B, C... of rowWidth seats each, numbered 1..rowWidth, truncated at
// capacity. Row letters are single characters, so the grid is addressable up
// to 26 rows (26 x rowWidth seats); beyond that the row rune leaves A-Z and
// the resulting codes fail the seat code format check, making such seats
// unselectable. Rooms that large do not exist in practice.
func EnumerateSeatCodes(capacity, rowWidth int) []string {
	if capacity < 1 || rowWidth < 1 {
		return nil
	}

	codes := make([]string, capacity)

	for i := 0; i < capacity; i++ {
		row := rune('A' + i/rowWidth)
		codes[i] = fmt.Sprintf("%c-%d", row, i%rowWidth+1)
	}

	return codes
}

// ResolveSeatMap derives the state of every seat from the tickets already
// sold for the showtime. Tickets carrying seat codes outside the enumerated
// grid (injected out-of-band, or left over from a capacity change) do not
// appear in the map and do not count as occupied. A selected code is only
// honored while the seat is still free.
func ResolveSeatMap(capacity, rowWidth int, sold []Ticket, selected string) *SeatMap {
	codes := EnumerateSeatCodes(capacity, rowWidth)

	occupied := make(map[string]bool, len(sold))
	for _, t := range sold {
		occupied[t.SeatCode] = true
	}

	m := &SeatMap{
		Capacity: capacity,
		RowWidth: rowWidth,
		Seats:    make([]SeatMapEntry, len(codes)),
	}

	for i, code := range codes {
		state := SeatFree

		switch {
		case occupied[code]:
			state = SeatOccupied
			m.Occupied++
		case code == selected:
			state = SeatSelected
		}

		m.Seats[i] = SeatMapEntry{Code: code, State: state}
	}

	return m
}

// Remaining may go negative when more tickets exist than the room holds;
// the store cannot prevent that, and callers only test for <= 0.
func (m *SeatMap) Remaining() int {
	return m.Capacity - m.Occupied
}

func (m *SeatMap) SoldOut() bool {
	return m.Remaining() <= 0
}

// Reselect moves the selection cursor to code, or clears it when code is
// empty. Occupied seats are unaffected; a cursor over an occupied or unknown
// code is simply dropped.
func (m *SeatMap) Reselect(code string) {
	for i := range m.Seats {
		if m.Seats[i].State == SeatSelected {
			m.Seats[i].State = SeatFree
		}
	}

	for i := range m.Seats {
		if m.Seats[i].Code == code && m.Seats[i].State == SeatFree {
			m.Seats[i].State = SeatSelected
		}
	}
}

// StateOf reports the state of a seat code, and whether the code belongs to
// the grid at all.
func (m *SeatMap) StateOf(code string) (SeatState, bool) {
	for _, s := range m.Seats {
		if s.Code == code {
			return s.State, true
		}
	}

	return "", false
}
