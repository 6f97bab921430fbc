// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// stateSnapshot holds a structural copy of all mutable license state.  A
// snapshot is taken before a transaction's operations are applied and is
// either discarded on success or restored on the first evaluation failure,
// which makes the transaction the unit of rollback.
type stateSnapshot struct {
	accounts     map[chaincfg.AccountID]*Account
	licenseTypes map[LicenseTypeID]*LicenseType
	licenseInfo  map[LicenseInformationID]*LicenseInformation

	nextAccountID     uint64
	nextLicenseTypeID uint64
	nextLicenseInfoID uint64
}

// snapshot returns a deep copy of the mutable state tables and counters.
//
// This function MUST be called with the state lock held (for reads).
func (s *State) snapshot() *stateSnapshot {
	snap := &stateSnapshot{
		accounts:     make(map[chaincfg.AccountID]*Account, len(s.accounts)),
		licenseTypes: make(map[LicenseTypeID]*LicenseType, len(s.licenseTypes)),
		licenseInfo:  make(map[LicenseInformationID]*LicenseInformation, len(s.licenseInfo)),

		nextAccountID:     s.nextAccountID,
		nextLicenseTypeID: s.nextLicenseTypeID,
		nextLicenseInfoID: s.nextLicenseInfoID,
	}
	for id, acc := range s.accounts {
		snap.accounts[id] = acc.Clone()
	}
	for id, lt := range s.licenseTypes {
		snap.licenseTypes[id] = lt.Clone()
	}
	for id, li := range s.licenseInfo {
		snap.licenseInfo[id] = li.Clone()
	}
	return snap
}

// restore replaces the mutable state with the contents of a previously
// taken snapshot.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) restore(snap *stateSnapshot) {
	s.accounts = snap.accounts
	s.licenseTypes = snap.licenseTypes
	s.licenseInfo = snap.licenseInfo
	s.nextAccountID = snap.nextAccountID
	s.nextLicenseTypeID = snap.nextLicenseTypeID
	s.nextLicenseInfoID = snap.nextLicenseInfoID
}
