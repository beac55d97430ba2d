package models

import "math/big"

// GasFeeEstimate is the approximate native-currency cost of a transaction
type GasFeeEstimate struct {
	Average *big.Int `json:"average" yaml:"average"`
	Max     *big.Int `json:"max" yaml:"max"`
}
