package view

import (
	"math"
	"math/big"

	"crowdfunder/internal/ethereum"
)

var hundred = big.NewInt(100)

// NetRaised is the sum of donations minus the sum of withdrawals, in wei.
func NetRaised(donations []ethereum.Donation, withdrawals []ethereum.Withdrawal) *big.Int {
	total := new(big.Int)
	for _, d := range donations {
		if d.Amount != nil {
			total.Add(total, d.Amount)
		}
	}
	for _, w := range withdrawals {
		if w.Amount != nil {
			total.Sub(total, w.Amount)
		}
	}
	return total
}

// Percentage returns raised*100/target truncated toward zero. A missing or
// zero target yields 0.
func Percentage(raised, target *big.Int) int64 {
	if raised == nil || target == nil || target.Sign() == 0 {
		return 0
	}
	p := new(big.Int).Mul(raised, hundred)
	p.Quo(p, target)
	if !p.IsInt64() {
		if p.Sign() < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return p.Int64()
}
