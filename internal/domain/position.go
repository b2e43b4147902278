package domain

import "sort"

// NextPosition returns the lowest free position (starting at 1) given the
// positions already taken in a scope. Gaps left by deletions are filled
// before appending after the maximum.
//
// Positions <= 0 are unplaced: they never occupy a slot.
func NextPosition(existing []int) int {
	taken := make([]int, 0, len(existing))
	for _, p := range existing {
		if p > 0 {
			taken = append(taken, p)
		}
	}
	if len(taken) == 0 {
		return 1
	}

	sort.Ints(taken)

	want := 1
	for _, p := range taken {
		if p > want {
			return want
		}
		if p == want {
			want++
		}
	}
	return want
}

// DisplayPosition maps an unplaced position (<= 0) to 1 for rendering and
// progress calculations. Placed positions are returned unchanged.
func DisplayPosition(p int) int {
	if p <= 0 {
		return 1
	}
	return p
}
