// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"time"

	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// LicenseInformationID identifies a license information aggregate within
// the chain's license information table.  IDs are assigned sequentially
// starting at 1; 0 means the owning account has never been granted a
// license.
type LicenseInformationID uint64

// LicenseGrantRecord records a single license issuance event.  Records are
// immutable once created and only ever appended to an account's history.
type LicenseGrantRecord struct {
	LicenseType   LicenseTypeID
	GrantedAmount int64
	BaseAmount    int64
	BonusPercent  int64
	FrequencyLock int64
	ActivatedAt   time.Time
	IssuedAt      time.Time
}

// LicenseInformation aggregates all licenses ever granted to a single
// vault account.  It is created on the account's first issuance and never
// deleted.  The vault license kind is locked in by the first grant and
// never changes; every later grant must be of the same kind and must
// strictly improve on the current maximum license.
type LicenseInformation struct {
	ID      LicenseInformationID
	Account chaincfg.AccountID

	// VaultLicenseKind is the kind locked in at first issuance.
	VaultLicenseKind LicenseKind

	// History holds one record per grant, in issuance order.
	History []LicenseGrantRecord

	// MaxLicense is the granted license type that ranks highest under
	// the improvement order for VaultLicenseKind.
	MaxLicense LicenseTypeID

	// Cumulative upgrade totals, summed over the multiplier
	// contributions of every license type ever granted.
	BalanceUpgrade int64
	RequeueUpgrade int64
	ReturnUpgrade  int64
}

// Clone returns a deep copy of the license information aggregate.
func (li *LicenseInformation) Clone() *LicenseInformation {
	c := *li
	c.History = append([]LicenseGrantRecord(nil), li.History...)
	return &c
}

// addLicense appends a grant record, promotes the granted type to the
// maximum license if it ranks above the current one, and adds the type's
// multiplier contributions to the cumulative upgrade totals.  The caller
// has already verified the stacking invariant; this method performs no
// validation.  currentMax is the resolved current maximum license type, or
// nil when this is the first grant.
func (li *LicenseInformation) addLicense(lt *LicenseType, granted, base,
	bonusPercent, frequencyLock int64, activatedAt, issuedAt time.Time,
	currentMax *LicenseType) {

	li.History = append(li.History, LicenseGrantRecord{
		LicenseType:   lt.ID,
		GrantedAmount: granted,
		BaseAmount:    base,
		BonusPercent:  bonusPercent,
		FrequencyLock: frequencyLock,
		ActivatedAt:   activatedAt,
		IssuedAt:      issuedAt,
	})

	if currentMax == nil || lt.ImprovesUpon(currentMax) {
		li.MaxLicense = lt.ID
	}

	li.BalanceUpgrade += lt.BalanceUpgrade()
	li.RequeueUpgrade += lt.RequeueUpgrade()
	li.ReturnUpgrade += lt.ReturnUpgrade()
}

// TotalGrantedCycles returns the sum of granted amounts over the history.
func (li *LicenseInformation) TotalGrantedCycles() int64 {
	var total int64
	for _, rec := range li.History {
		total += rec.GrantedAmount
	}
	return total
}
