// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindb

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/powerchain-ltd/greenpower-blockchain/chain"
)

// SaveState persists the full license state in a single atomic batch.
// Records are written in ascending id order per table, so repeated saves
// of identical state produce identical databases.
func (db *DB) SaveState(s *chain.State) error {
	accounts, licenseTypes, licenseInfo := s.ExportRecords()

	batch := new(leveldb.Batch)
	for i := range accounts {
		if err := db.StoreAccount(batch, &accounts[i]); err != nil {
			return err
		}
	}
	for i := range licenseTypes {
		err := db.StoreLicenseType(batch, &licenseTypes[i])
		if err != nil {
			return err
		}
	}
	for i := range licenseInfo {
		err := db.StoreLicenseInformation(batch, &licenseInfo[i])
		if err != nil {
			return err
		}
	}
	return db.WriteBatch(batch)
}

// LoadState rebuilds a chain state from the persisted records using the
// provided configuration for chain parameters and collaborators.
func (db *DB) LoadState(config *chain.Config) (*chain.State, error) {
	var accounts []chain.Account
	err := db.ForEachAccount(func(acc *chain.Account) error {
		accounts = append(accounts, *acc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var licenseTypes []chain.LicenseType
	err = db.ForEachLicenseType(func(lt *chain.LicenseType) error {
		licenseTypes = append(licenseTypes, *lt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var licenseInfo []chain.LicenseInformation
	err = db.ForEachLicenseInformation(func(li *chain.LicenseInformation) error {
		licenseInfo = append(licenseInfo, *li)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return chain.LoadState(config, accounts, licenseTypes, licenseInfo)
}
