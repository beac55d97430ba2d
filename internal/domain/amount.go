package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseTokenAmount scales a decimal amount of whole tokens ("1.5") to base
// units of a token with the given decimals. More fraction digits than
// decimals, signs and exponents are rejected.
func ParseTokenAmount(amount string, decimals uint8) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	whole, frac, hasPoint := strings.Cut(amount, ".")
	if whole == "" {
		whole = "0"
	}
	if (hasPoint && frac == "" && whole == "0") || !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if len(frac) > int(decimals) {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, amount, decimals)
	}

	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return n, nil
}

// FormatTokenAmount is the inverse of ParseTokenAmount, trailing zeros trimmed
func FormatTokenAmount(units *big.Int, decimals uint8) string {
	if units == nil {
		return "0"
	}
	s := units.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if pad := int(decimals) + 1 - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	cut := len(s) - int(decimals)
	out := s[:cut]
	if frac := strings.TrimRight(s[cut:], "0"); frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
