// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipe

import (
	"math"
	"strconv"
)

// MinServings is the lowest serving count a user can select.
const MinServings = 1

// ClampServings bounds a requested serving count to the allowed range.
// Decrementing never goes below MinServings; there is no upper bound.
func ClampServings(n int) int {
	if n < MinServings {
		return MinServings
	}
	return n
}

// Scale returns the quantity adjusted from baseServings to currentServings.
// The stored quantity is never mutated, so repeated adjustments do not
// accumulate rounding error.
func Scale(quantity float64, baseServings int, currentServings int) float64 {
	return quantity * float64(currentServings) / float64(baseServings)
}

// FormatQuantity renders a quantity for display: whole numbers without
// decimals, everything else rounded to one decimal place.
func FormatQuantity(q float64) string {
	rounded := math.Round(q*10) / 10
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}

// DisplayQuantity combines Scale and FormatQuantity for an ingredient line.
func DisplayQuantity(quantity float64, baseServings int, currentServings int) string {
	return FormatQuantity(Scale(quantity, baseServings, currentServings))
}
