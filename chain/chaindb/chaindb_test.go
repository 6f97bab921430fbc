// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powerchain-ltd/greenpower-blockchain/chain"
	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

func testConfig() *chain.Config {
	return &chain.Config{
		ChainParams: &chaincfg.Params{
			Name: "dbtest",
			Authorities: chaincfg.ChainAuthorities{
				LicenseAdministrator: 1,
				LicenseIssuer:        2,
			},
			GenesisAccounts: []chaincfg.GenesisAccount{
				{Name: "license-administrator"},
				{Name: "license-issuer"},
			},
			GenesisLicenses: []chaincfg.GenesisLicense{
				{
					Kind:               "regular",
					Name:               "standard",
					Amount:             1000,
					BalanceMultipliers: []uint16{2},
					RequeueMultipliers: []uint16{3},
					ReturnMultipliers:  []uint16{4},
					EurLimit:           100,
				},
			},
		},
	}
}

// TestStateRoundTrip ensures a state survives a save/load cycle through
// the database, including license information created by issuance.
func TestStateRoundTrip(t *testing.T) {
	config := testConfig()
	s, err := chain.New(config)
	require.NoError(t, err)

	vault := s.CreateAccount("alice", chain.AccountVault)
	result, err := s.ProcessOperation(&chain.IssueLicenseOp{
		Issuer:          2,
		Account:         vault.ID,
		License:         1,
		BonusPercentage: 10,
	})
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "chaindb")
	db, err := Open(dbPath)
	require.NoError(t, err)

	require.NoError(t, db.SaveState(s))
	require.NoError(t, db.Close())

	db, err = Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	loaded, err := db.LoadState(config)
	require.NoError(t, err)

	acc, err := loaded.Account(vault.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1100), acc.Cycles)
	require.Equal(t, chain.LicenseInformationID(result),
		acc.LicenseInformation)

	li, err := loaded.LicenseInformation(acc.LicenseInformation)
	require.NoError(t, err)
	require.Len(t, li.History, 1)
	require.Equal(t, int64(1100), li.History[0].GrantedAmount)

	// A loaded state keeps accepting operations with fresh ids.
	lt, err := loaded.LicenseType(1)
	require.NoError(t, err)
	require.Equal(t, "standard", lt.Name)

	newID, err := loaded.ProcessOperation(&chain.CreateLicenseTypeOp{
		Admin:  1,
		Kind:   chain.KindRegular,
		Name:   "manager",
		Amount: 5000,
	})
	require.NoError(t, err)
	require.Equal(t, chain.ObjectID(2), newID)
}

// TestFetchSingleRecords ensures per-record fetches read back what the
// batch wrote.
func TestFetchSingleRecords(t *testing.T) {
	config := testConfig()
	s, err := chain.New(config)
	require.NoError(t, err)

	db, err := Open(filepath.Join(t.TempDir(), "chaindb"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.SaveState(s))

	acc, err := db.FetchAccount(1)
	require.NoError(t, err)
	require.Equal(t, "license-administrator", acc.Name)

	lt, err := db.FetchLicenseType(1)
	require.NoError(t, err)
	require.Equal(t, "standard", lt.Name)
	require.Equal(t, chain.KindRegular, lt.Kind)

	_, err = db.FetchAccount(99)
	require.Error(t, err)
}
