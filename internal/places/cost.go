package places

import "strings"

// EstimateCost maps a category label to a cost bucket. First matching
// substring wins, checked in fixed priority order; matching is
// case-sensitive with no normalization. Downstream clients depend on the
// exact thresholds and precedence, so "Food Museum" is 300, not 800.
func EstimateCost(category string) int {
	if strings.Contains(category, "Museum") {
		return 300
	}
	if strings.Contains(category, "Outdoor") {
		return 0
	}
	if strings.Contains(category, "Food") {
		return 800
	}
	return 500
}
