// Package selection tracks the operator's staged seat selection against the
// reserved state the authority last reported. The two sets are independent:
// selection is local input staging, reservation is authoritative and
// read-only on this side. Selecting a reserved seat is legal; whether that
// selection means "reserve" or "release" is decided only at submit time by
// which action the operator invokes.
package selection

import (
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"
)

// Board holds the per-seat selected/reserved booleans for the current grid.
// It is owned by the single goroutine driving commands and needs no locking.
type Board struct {
	rows     int
	cols     int
	selected map[protocol.Seat]struct{}
	reserved map[protocol.Seat]struct{}
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:     rows,
		cols:     cols,
		selected: make(map[protocol.Seat]struct{}),
		reserved: make(map[protocol.Seat]struct{}),
	}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Contains reports whether the seat lies inside the current grid.
func (b *Board) Contains(seat protocol.Seat) bool {
	return seat.Row >= 1 && seat.Row <= b.rows && seat.Col >= 1 && seat.Col <= b.cols
}

// Toggle flips the seat's selected state and returns the new state. Legal
// regardless of reserved state.
func (b *Board) Toggle(seat protocol.Seat) bool {
	if _, ok := b.selected[seat]; ok {
		delete(b.selected, seat)
		return false
	}
	b.selected[seat] = struct{}{}
	return true
}

// IsSelected reports whether the seat is currently staged.
func (b *Board) IsSelected(seat protocol.Seat) bool {
	_, ok := b.selected[seat]
	return ok
}

// IsReserved reports the authoritative reserved state from the last refresh.
func (b *Board) IsReserved(seat protocol.Seat) bool {
	_, ok := b.reserved[seat]
	return ok
}

// SelectionCount returns how many seats are staged.
func (b *Board) SelectionCount() int { return len(b.selected) }

// Selected returns the staged seats in row-major order.
func (b *Board) Selected() []protocol.Seat {
	return sortedSeats(b.selected)
}

// Reserved returns the reserved seats in row-major order.
func (b *Board) Reserved() []protocol.Seat {
	return sortedSeats(b.reserved)
}

// ClearSelection unconditionally empties the staged set. Reserved state is
// untouched.
func (b *Board) ClearSelection() {
	b.selected = make(map[protocol.Seat]struct{})
}

// Refresh replaces the reserved set wholesale from a fresh layout and
// unconditionally clears the selection: staged seats never survive a refresh.
// Grid dimensions follow the layout when it carries them.
func (b *Board) Refresh(layout protocol.Layout) {
	if layout.Rows > 0 {
		b.rows = layout.Rows
	}
	if layout.Cols > 0 {
		b.cols = layout.Cols
	}
	b.reserved = make(map[protocol.Seat]struct{}, len(layout.Reserved))
	for _, s := range layout.Reserved {
		b.reserved[s] = struct{}{}
	}
	b.selected = make(map[protocol.Seat]struct{})
}

// PartitionForRelease splits the staged seats into those eligible for a
// delete request (selected and reserved) and those that are selected but not
// reserved. The ineligible seats must never reach the authority.
func (b *Board) PartitionForRelease() (eligible, ineligible []protocol.Seat) {
	for seat := range b.selected {
		if _, ok := b.reserved[seat]; ok {
			eligible = append(eligible, seat)
		} else {
			ineligible = append(ineligible, seat)
		}
	}
	protocol.SortSeats(eligible)
	protocol.SortSeats(ineligible)
	return eligible, ineligible
}

func sortedSeats(set map[protocol.Seat]struct{}) []protocol.Seat {
	out := make([]protocol.Seat, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	protocol.SortSeats(out)
	return out
}
