// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gputil

import (
	"fmt"
)

// DivisionError identifies an attempt to perform a fixed-point conversion
// with a zero frequency.
type DivisionError string

// Error returns the division error as a human-readable string and satisfies
// the error interface.
func (e DivisionError) Error() string {
	return "division by zero: " + string(e)
}

// CyclesToDascoin converts an amount of cycles into base dascoin units at
// the given fixed-point frequency.  The result is truncated toward zero.
// A zero frequency fails with a DivisionError.
//
// Note that conversion is not exact: composing CyclesToDascoin with
// DascoinToCycles at the same frequency may lose the floor-division
// remainder.  Consensus depends on the truncating behavior, so it must
// never be "improved" with rounding.
func CyclesToDascoin(cycles, frequency int64) (int64, error) {
	if frequency == 0 {
		str := fmt.Sprintf("cannot convert %d cycles with a zero frequency", cycles)
		return 0, DivisionError(str)
	}
	return cycles * AssetPrecision * FrequencyPrecision / frequency, nil
}

// DascoinToCycles converts an amount of base dascoin units back into cycles
// at the given fixed-point frequency, truncating toward zero.
func DascoinToCycles(dascoin, frequency int64) int64 {
	return dascoin * frequency / (AssetPrecision * FrequencyPrecision)
}

// ApplyPercentage increases value by percent percent, truncating toward
// zero.  A zero percent returns the value unchanged.  Percent is expected
// to be non-negative.
func ApplyPercentage(value, percent int64) int64 {
	return value + value*percent/100
}
