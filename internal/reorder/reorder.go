// Package reorder implements the list-move arithmetic behind drag-and-drop
// reordering. Positions are redundant with list index; the write path keeps
// them contiguous, the schema does not.
package reorder

// Move returns a copy of ids with the element at index from relocated to
// index to: the element is removed and reinserted, shifting everything in
// between. Out-of-range indices return an unchanged copy.
func Move(ids []string, from, to int) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	rest := append(out[:to:to], append([]string{moved}, out[to:]...)...)
	return rest
}

// MoveByID relocates the element activeID to the position currently held by
// overID. Unknown ids leave the list unchanged.
func MoveByID(ids []string, activeID, overID string) []string {
	from, to := -1, -1
	for i, id := range ids {
		if id == activeID {
			from = i
		}
		if id == overID {
			to = i
		}
	}
	if from < 0 || to < 0 {
		out := make([]string, len(ids))
		copy(out, ids)
		return out
	}
	return Move(ids, from, to)
}

// PositionUpdate assigns a display position to one item.
type PositionUpdate struct {
	ID       string
	Position int
}

// Plan returns a position update for every id, position equal to the
// zero-based index. Every item gets an update, not only the moved span.
func Plan(ids []string) []PositionUpdate {
	updates := make([]PositionUpdate, len(ids))
	for i, id := range ids {
		updates[i] = PositionUpdate{ID: id, Position: i}
	}
	return updates
}

// Contiguous reports whether positions are exactly {0, 1, ..., n-1}: no
// duplicates, no gaps.
func Contiguous(positions []int) bool {
	seen := make([]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(positions) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// SameMembers reports whether a and b contain the same ids, in any order,
// with the same multiplicity.
func SameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}
