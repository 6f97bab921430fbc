// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// This file implements the evaluation phase of operation processing.  Each
// evaluate function performs every authority and business-rule check for
// its operation against a consistent view of the state and, on success,
// returns a typed intent value holding the resolved entities.  The intent
// is the only input the matching apply function accepts, so application
// can never run on unvalidated input.  Evaluation has no side effects;
// a failed evaluation leaves the state untouched.

// createLicenseTypeIntent is the validated intent of a CreateLicenseTypeOp.
type createLicenseTypeIntent struct {
	op *CreateLicenseTypeOp
}

// editLicenseTypeIntent is the validated intent of an EditLicenseTypeOp,
// retaining the resolved license type for the application phase.
type editLicenseTypeIntent struct {
	op          *EditLicenseTypeOp
	licenseType *LicenseType
}

// issueLicenseIntent is the validated intent of an IssueLicenseOp.  It
// retains everything evaluation resolved so that application sees exactly
// what was validated and never re-resolves.
type issueLicenseIntent struct {
	op          *IssueLicenseOp
	issuerID    chaincfg.AccountID
	account     *Account
	licenseType *LicenseType
	kind        LicenseKind

	// licenseInfo is the account's existing license information
	// aggregate, or nil when this is the account's first issuance.
	licenseInfo *LicenseInformation
}

// evaluateCreateLicenseType checks a CreateLicenseTypeOp.  The only rule
// is that the operation is authorized by the license administrator.
//
// This function MUST be called with the state lock held (for reads).
func (s *State) evaluateCreateLicenseType(op *CreateLicenseTypeOp) (*createLicenseTypeIntent, error) {
	log.Tracef("Evaluating %s: %v", op.opName(),
		newLogClosure(func() string { return spew.Sdump(op) }))

	adminObj, err := s.fetchAccount(op.Admin)
	if err != nil {
		return nil, opError(op, err)
	}
	adminID := s.params.Authorities.LicenseAdministrator
	err = s.checkChainAuthority("license administration", adminID, adminObj)
	if err != nil {
		return nil, opError(op, err)
	}

	return &createLicenseTypeIntent{op: op}, nil
}

// evaluateEditLicenseType checks an EditLicenseTypeOp: administrator
// authority, and resolution of the target license type.
//
// This function MUST be called with the state lock held (for reads).
func (s *State) evaluateEditLicenseType(op *EditLicenseTypeOp) (*editLicenseTypeIntent, error) {
	log.Tracef("Evaluating %s: %v", op.opName(),
		newLogClosure(func() string { return spew.Sdump(op) }))

	authObj, err := s.fetchAccount(op.Authority)
	if err != nil {
		return nil, opError(op, err)
	}
	adminID := s.params.Authorities.LicenseAdministrator
	err = s.checkChainAuthority("license administration", adminID, authObj)
	if err != nil {
		return nil, opError(op, err)
	}

	licenseType, err := s.fetchLicenseType(op.LicenseType)
	if err != nil {
		return nil, opError(op, err)
	}

	return &editLicenseTypeIntent{op: op, licenseType: licenseType}, nil
}

// evaluateIssueLicense checks an IssueLicenseOp: issuer authority,
// resolution of the target account and license type, the frequency-lock
// policy for kinds that mandate one, the vault-account requirement, and,
// for accounts that already hold licenses, the kind lock-in and strict
// improvement rules.
//
// This function MUST be called with the state lock held (for reads).
func (s *State) evaluateIssueLicense(op *IssueLicenseOp) (*issueLicenseIntent, error) {
	log.Tracef("Evaluating %s: %v", op.opName(),
		newLogClosure(func() string { return spew.Sdump(op) }))

	issuerObj, err := s.fetchAccount(op.Issuer)
	if err != nil {
		return nil, opError(op, err)
	}
	issuerID := s.params.Authorities.LicenseIssuer
	err = s.checkChainAuthority("license issuing", issuerID, issuerObj)
	if err != nil {
		return nil, opError(op, err)
	}

	accountObj, err := s.fetchAccount(op.Account)
	if err != nil {
		return nil, opError(op, err)
	}
	newLicense, err := s.fetchLicenseType(op.License)
	if err != nil {
		return nil, opError(op, err)
	}

	if newLicense.Kind.requiresFrequencyLock() && op.FrequencyLock == 0 {
		str := fmt.Sprintf("cannot issue license '%s' on account "+
			"'%s': frequency lock cannot be zero", newLicense.Name,
			accountObj.Name)
		return nil, opError(op, ruleError(ErrZeroFrequencyLock, str))
	}

	if !accountObj.IsVault() {
		str := fmt.Sprintf("account '%s' is not a vault account",
			accountObj.Name)
		return nil, opError(op, ruleError(ErrNotVaultAccount, str))
	}

	intent := &issueLicenseIntent{
		op:          op,
		issuerID:    issuerID,
		account:     accountObj,
		licenseType: newLicense,
		kind:        newLicense.Kind,
	}

	// A license already held locks in its kind: further licenses must be
	// of the same kind and must strictly improve on the current maximum.
	if accountObj.LicenseInformation != 0 {
		licenseInfo, ok := s.licenseInfo[accountObj.LicenseInformation]
		if !ok {
			return nil, AssertError(fmt.Sprintf("account '%s' "+
				"references unknown license information %d",
				accountObj.Name, accountObj.LicenseInformation))
		}
		maxLicense, ok := s.licenseTypes[licenseInfo.MaxLicense]
		if !ok {
			return nil, AssertError(fmt.Sprintf("license "+
				"information %d references unknown maximum "+
				"license type %d", licenseInfo.ID,
				licenseInfo.MaxLicense))
		}

		if newLicense.Kind != licenseInfo.VaultLicenseKind {
			str := fmt.Sprintf("cannot issue license of kind "+
				"'%v' on account '%s': current license kind "+
				"is '%v'", newLicense.Kind, accountObj.Name,
				licenseInfo.VaultLicenseKind)
			return nil, opError(op,
				ruleError(ErrLicenseKindMismatch, str))
		}
		if !newLicense.ImprovesUpon(maxLicense) {
			str := fmt.Sprintf("cannot improve license '%s' on "+
				"account '%s': new license '%s' is not an "+
				"improvement", maxLicense.Name, accountObj.Name,
				newLicense.Name)
			return nil, opError(op,
				ruleError(ErrNotAnImprovement, str))
		}

		intent.licenseInfo = licenseInfo
	}

	return intent, nil
}

// opError prefixes a rule error's description with the offending operation
// name so that rejected transactions carry their full context to the
// caller.  Non-rule errors pass through unchanged.
func opError(op Operation, err error) error {
	var rerr RuleError
	if e, ok := err.(RuleError); ok {
		rerr = e
	} else {
		return err
	}
	rerr.Description = fmt.Sprintf("%s: %s", op.opName(),
		rerr.Description)
	return rerr
}
