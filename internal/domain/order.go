package domain

// NextPosition computes the insertion position for a new ordered child row:
// one past the highest existing position, or base when the parent has no
// children yet. Stops start at 1, activities at 0.
//
// Gaps in existing are fine — only the maximum matters. Callers follow a
// read-then-insert pattern with no transactional guard, so two concurrent
// inserts under the same parent can compute the same position. That race is
// accepted: positions only need to be monotonically consistent with display
// order, not unique.
func NextPosition(existing []int, base int) int {
	if len(existing) == 0 {
		return base
	}
	max := existing[0]
	for _, v := range existing[1:] {
		if v > max {
			max = v
		}
	}
	return max + 1
}
