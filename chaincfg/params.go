// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// AccountID identifies an account within the chain's account table.
// Account IDs are assigned sequentially starting at 1; 0 is never a valid
// account.
type AccountID uint64

// ChainAuthorities holds the privileged account identities recognized by
// the chain.  Every privileged operation names the authority it requires
// and is rejected unless it was authorized by exactly that account.
type ChainAuthorities struct {
	// LicenseAdministrator may create and edit license type definitions.
	LicenseAdministrator AccountID

	// LicenseIssuer may issue licenses to vault accounts.
	LicenseIssuer AccountID
}

// GenesisAccount describes an account created at chain initialization.
// Accounts are created in slice order, so the first entry receives
// AccountID 1.
type GenesisAccount struct {
	Name  string
	Vault bool
}

// GenesisLicense describes a license type definition created at chain
// initialization.  Kind must be one of the license kind names understood
// by the chain package ("regular", "locked_frequency", "chartered",
// "promo").
type GenesisLicense struct {
	Kind               string
	Name               string
	Amount             int64
	BalanceMultipliers []uint16
	RequeueMultipliers []uint16
	ReturnMultipliers  []uint16
	EurLimit           int64
}

// Params defines a GreenPower chain by its parameters.  These parameters
// are read-only configuration: the license subsystem receives them
// explicitly at construction and never consults ambient globals.
type Params struct {
	// Name defines a human-readable identifier for the chain.
	Name string

	// Authorities holds the privileged account identities for this
	// chain.  The referenced IDs must resolve against the accounts
	// created from GenesisAccounts.
	Authorities ChainAuthorities

	// GenesisAccounts lists the accounts created at initialization, in
	// ID order.
	GenesisAccounts []GenesisAccount

	// GenesisLicenses lists the license type definitions created at
	// initialization, in ID order.
	GenesisLicenses []GenesisLicense
}

// MainNetParams defines the chain parameters for the main GreenPower
// network.
var MainNetParams = Params{
	Name: "mainnet",

	Authorities: ChainAuthorities{
		LicenseAdministrator: 1,
		LicenseIssuer:        2,
	},

	GenesisAccounts: []GenesisAccount{
		{Name: "license-administrator"},
		{Name: "license-issuer"},
	},

	GenesisLicenses: []GenesisLicense{
		{
			Kind:               "regular",
			Name:               "standard",
			Amount:             1100,
			BalanceMultipliers: []uint16{2},
			RequeueMultipliers: []uint16{2},
			ReturnMultipliers:  []uint16{2},
			EurLimit:           100,
		},
		{
			Kind:               "regular",
			Name:               "manager",
			Amount:             5500,
			BalanceMultipliers: []uint16{2},
			RequeueMultipliers: []uint16{2},
			ReturnMultipliers:  []uint16{2},
			EurLimit:           500,
		},
		{
			Kind:               "regular",
			Name:               "pro",
			Amount:             24000,
			BalanceMultipliers: []uint16{2, 2},
			RequeueMultipliers: []uint16{2, 2},
			ReturnMultipliers:  []uint16{2, 2},
			EurLimit:           2000,
		},
		{
			Kind:               "regular",
			Name:               "executive",
			Amount:             63000,
			BalanceMultipliers: []uint16{2, 2, 2},
			RequeueMultipliers: []uint16{2, 2, 2},
			ReturnMultipliers:  []uint16{2, 2, 2},
			EurLimit:           5000,
		},
		{
			Kind:               "regular",
			Name:               "president",
			Amount:             270000,
			BalanceMultipliers: []uint16{2, 2, 2, 2},
			RequeueMultipliers: []uint16{2, 2, 2, 2},
			ReturnMultipliers:  []uint16{2, 2, 2, 2},
			EurLimit:           25000,
		},
	},
}

// SimNetParams defines the chain parameters for the simulation test
// network.  The network exists solely for testing: it carries a minimal
// license table and the same two privileged accounts as the main network.
var SimNetParams = Params{
	Name: "simnet",

	Authorities: ChainAuthorities{
		LicenseAdministrator: 1,
		LicenseIssuer:        2,
	},

	GenesisAccounts: []GenesisAccount{
		{Name: "license-administrator"},
		{Name: "license-issuer"},
	},

	GenesisLicenses: []GenesisLicense{
		{
			Kind:               "regular",
			Name:               "standard",
			Amount:             1000,
			BalanceMultipliers: []uint16{2},
			RequeueMultipliers: []uint16{2},
			ReturnMultipliers:  []uint16{2},
			EurLimit:           100,
		},
	},
}
