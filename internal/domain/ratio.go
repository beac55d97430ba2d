package domain

import (
	"fmt"
	"math"
	"math/big"
)

// RatioDigits is the number of decimal digits ratios carry on chain (1e6 == 100%)
const RatioDigits = 6

// EncodeRatio scales a ratio in [0, 1] to an integer with the given number of digits
func EncodeRatio(ratio float64, digits int) (uint64, error) {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	return uint64(math.Round(ratio * math.Pow10(digits))), nil
}

// DecodeRatio is the inverse of EncodeRatio
func DecodeRatio(onChain *big.Int, digits int) float64 {
	if onChain == nil {
		return 0
	}
	f, _ := new(big.Rat).SetFrac(onChain, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)).Float64()
	return f
}

// DecodeRatioUint64 decodes a ratio already held in a machine integer
func DecodeRatioUint64(onChain uint64, digits int) float64 {
	return DecodeRatio(new(big.Int).SetUint64(onChain), digits)
}
