// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"github.com/powerchain-ltd/greenpower-blockchain/gputil"
)

// This file implements the application phase of operation processing.
// Each apply function consumes the typed intent produced by the matching
// evaluate function and commits the mutation.  Every business rule was
// checked during evaluation, so errors here are AssertErrors: they signal
// a divergence between the two phases and must be treated as fatal.

// applyCreateLicenseType stores the new license type definition and
// returns its id.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) applyCreateLicenseType(intent *createLicenseTypeIntent) LicenseTypeID {
	op := intent.op
	lt := s.createLicenseType(op.Kind, op.Name, op.Amount,
		op.BalanceMultipliers, op.RequeueMultipliers,
		op.ReturnMultipliers, op.EurLimit)

	log.Debugf("Created license type '%s' (%d) of kind %v with amount %d",
		lt.Name, lt.ID, lt.Kind, lt.Amount)
	return lt.ID
}

// applyEditLicenseType overwrites each independently supplied mutable
// field of the resolved license type.  Omitted fields are left untouched;
// the kind is never editable.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) applyEditLicenseType(intent *editLicenseTypeIntent) {
	op := intent.op
	lt := intent.licenseType

	if op.Name != nil {
		lt.Name = *op.Name
	}
	if op.Amount != nil {
		lt.Amount = *op.Amount
	}
	if op.EurLimit != nil {
		lt.EurLimit = *op.EurLimit
	}

	log.Debugf("Edited license type '%s' (%d)", lt.Name, lt.ID)
}

// applyIssueLicense commits a validated license issuance: it computes the
// bonus-scaled amount, creates or extends the account's license
// information, performs the kind-dependent issuance (immediate cycle
// credit or deferred queue submission plus audit record), and recomputes
// the account's dascoin balance limit.  It returns the id of the license
// information aggregate that recorded the grant.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) applyIssueLicense(intent *issueLicenseIntent) (LicenseInformationID, error) {
	op := intent.op
	licenseType := intent.licenseType
	account := intent.account
	amount := gputil.ApplyPercentage(licenseType.Amount,
		op.BonusPercentage)
	issuedAt := s.dynProps.HeadBlockTime

	licenseInfo := intent.licenseInfo
	if licenseInfo == nil {
		licenseInfo = s.newLicenseInformation(op.Account,
			intent.kind)
		licenseInfo.addLicense(licenseType, amount,
			licenseType.Amount, op.BonusPercentage,
			op.FrequencyLock, op.ActivatedAt, issuedAt, nil)
		account.LicenseInformation = licenseInfo.ID
	} else {
		currentMax, ok := s.licenseTypes[licenseInfo.MaxLicense]
		if !ok {
			return 0, AssertError(fmt.Sprintf("license "+
				"information %d references unknown maximum "+
				"license type %d", licenseInfo.ID,
				licenseInfo.MaxLicense))
		}
		licenseInfo.addLicense(licenseType, amount,
			licenseType.Amount, op.BonusPercentage,
			op.FrequencyLock, op.ActivatedAt, issuedAt,
			currentMax)
	}

	switch intent.kind {
	case KindRegular, KindLockedFrequency:
		s.creditCycles(account, amount)

	case KindChartered, KindPromo:
		s.queue.PushSubmission(OriginCharterLicense,
			[]LicenseTypeID{op.License}, op.Account, amount,
			op.FrequencyLock, "")
		s.audit.RecordCharterIssue(intent.issuerID, op.Account,
			amount, op.FrequencyLock)
		log.Debugf("Queued charter submission of %d cycles for "+
			"account '%s'", amount, account.Name)

	default:
		return 0, AssertError(fmt.Sprintf("issuance of unhandled "+
			"license kind %d", intent.kind))
	}

	price := s.dynProps.LastDailyDascoinPrice
	if limit, ok := s.limitPolicy.DascoinLimit(account, price); ok {
		s.adjustBalanceLimit(account, limit)
	}

	log.Debugf("Issued license '%s' to account '%s': %d cycles granted "+
		"(%d base, %d%% bonus)", licenseType.Name, account.Name,
		amount, licenseType.Amount, op.BonusPercentage)
	return licenseInfo.ID, nil
}
