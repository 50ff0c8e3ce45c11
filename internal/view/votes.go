package view

import (
	"math"
	"math/big"
)

// Split turns vote totals into percentages. The yes share is computed in
// floating point and truncated, and the no share is its complement, so the
// two always add up to 100. ok is false when nobody voted.
func Split(yes, no *big.Int) (yesPct, noPct int, ok bool) {
	y := toFloat(yes)
	n := toFloat(no)
	if y+n == 0 {
		return 0, 0, false
	}
	yesPct = int(math.Trunc(y / (y + n) * 100))
	return yesPct, 100 - yesPct, true
}

func toFloat(v *big.Int) float64 {
	if v == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
