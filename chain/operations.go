// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"time"

	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// Operation is implemented by every ledger operation the license subsystem
// processes.  The set of operations is closed: processing dispatches on
// the concrete type with an exhaustive switch, and an unknown type is an
// internal consistency violation.
type Operation interface {
	// opName returns the canonical operation name used in log and
	// error messages.
	opName() string
}

// Transaction is an ordered group of operations applied atomically: if any
// operation fails evaluation, mutations from earlier operations in the
// same transaction are rolled back.
type Transaction struct {
	Operations []Operation
}

// CreateLicenseTypeOp creates a new license type definition.  Only the
// license administrator authority may perform it.
type CreateLicenseTypeOp struct {
	// Admin is the account authorizing the operation.  It must be the
	// chain's license administrator.
	Admin chaincfg.AccountID

	Kind   LicenseKind
	Name   string
	Amount int64

	BalanceMultipliers []uint16
	RequeueMultipliers []uint16
	ReturnMultipliers  []uint16

	EurLimit int64
}

func (op *CreateLicenseTypeOp) opName() string {
	return "create_license_type"
}

// EditLicenseTypeOp edits the mutable fields of an existing license type
// definition.  Only the license administrator authority may perform it.
// Each optional field is applied independently; a nil field leaves the
// stored value untouched.  The kind of a license type is never editable.
type EditLicenseTypeOp struct {
	// Authority is the account authorizing the operation.  It must be
	// the chain's license administrator.
	Authority chaincfg.AccountID

	// LicenseType is the definition being edited.
	LicenseType LicenseTypeID

	Name     *string
	Amount   *int64
	EurLimit *int64
}

func (op *EditLicenseTypeOp) opName() string {
	return "edit_license_type"
}

// IssueLicenseOp issues a license to a vault account.  Only the license
// issuer authority may perform it.
type IssueLicenseOp struct {
	// Issuer is the account authorizing the operation.  It must be the
	// chain's license issuer.
	Issuer chaincfg.AccountID

	// Account is the vault account receiving the license.
	Account chaincfg.AccountID

	// License is the license type being issued.
	License LicenseTypeID

	// BonusPercentage scales the license's base cycle amount upward.
	BonusPercentage int64

	// FrequencyLock fixes the conversion frequency applicable to the
	// grant.  It must be non-zero for chartered, promo and
	// locked_frequency licenses.
	FrequencyLock int64

	// ActivatedAt is the time the granted license becomes active.
	ActivatedAt time.Time
}

func (op *IssueLicenseOp) opName() string {
	return "issue_license"
}
