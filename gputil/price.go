// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gputil

// Price expresses an exchange rate between two assets as a base/quote pair
// of integer amounts.  The license subsystem passes prices through to the
// balance-limit policy without interpreting them.
type Price struct {
	Base  int64
	Quote int64
}

// IsZero reports whether the price carries no rate at all.
func (p Price) IsZero() bool {
	return p.Base == 0 && p.Quote == 0
}
