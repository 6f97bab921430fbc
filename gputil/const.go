// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gputil

const (
	// AssetPrecision is the number of base dascoin units in one dascoin.
	AssetPrecision = 1e5

	// FrequencyPrecision is the fixed-point scale applied to conversion
	// frequencies.  A frequency of 1.00 is stored as 100.
	FrequencyPrecision = 100

	// CycleSymbol is the ticker symbol of the cycle asset.
	CycleSymbol = "CYCLE"

	// DascoinSymbol is the ticker symbol of the dascoin asset.
	DascoinSymbol = "DSC"
)
