package view

import (
	"math/big"
)

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// FormatEther renders wei as ether with the given number of decimals,
// rounding half away from zero.
func FormatEther(wei *big.Int, decimals int) string {
	if wei == nil {
		wei = new(big.Int)
	}
	return new(big.Rat).SetFrac(wei, weiPerEther).FloatString(decimals)
}

// USD converts wei to dollars at priceUSD per ether.
func USD(wei *big.Int, priceUSD float64) float64 {
	if wei == nil || priceUSD == 0 {
		return 0
	}
	ether := new(big.Float).Quo(new(big.Float).SetInt(wei), new(big.Float).SetInt(weiPerEther))
	usd, _ := ether.Mul(ether, big.NewFloat(priceUSD)).Float64()
	return usd
}
