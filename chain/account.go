// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// AccountKind enumerates the account classifications the license subsystem
// distinguishes.  Only vault accounts may receive licenses.
type AccountKind uint8

const (
	// AccountWallet is an ordinary account.
	AccountWallet AccountKind = iota

	// AccountVault is a restricted-purpose account eligible to receive
	// licenses.
	AccountVault
)

// String returns the AccountKind as a human-readable name.
func (k AccountKind) String() string {
	switch k {
	case AccountWallet:
		return "wallet"
	case AccountVault:
		return "vault"
	}
	return fmt.Sprintf("Unknown AccountKind (%d)", int(k))
}

// Account is the chain's view of an account as far as the license
// subsystem is concerned.  The wider account machinery (keys, authority
// structures, memberships) lives outside this package.
type Account struct {
	ID   chaincfg.AccountID
	Name string
	Kind AccountKind

	// Cycles is the account's cycle balance.
	Cycles int64

	// LicenseInformation refers to the account's license information
	// aggregate.  It is 0 until the account's first license issuance.
	LicenseInformation LicenseInformationID

	// DascoinLimit is the account's permissible dascoin balance limit
	// as last computed by the balance-limit policy.
	DascoinLimit int64
}

// IsVault reports whether the account is a vault account.
func (a *Account) IsVault() bool {
	return a.Kind == AccountVault
}

// Clone returns a copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
