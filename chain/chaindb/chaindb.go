// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaindb persists the license subsystem's state in a leveldb
// database.  Only the entity shapes are fixed; records are stored as JSON
// under prefixed, big-endian-ordered keys so that iteration yields a
// deterministic order.
package chaindb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/powerchain-ltd/greenpower-blockchain/chain"
	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// Key prefixes for the persisted tables.
var (
	accountPrefix     = []byte("ac:")
	licenseTypePrefix = []byte("lt:")
	licenseInfoPrefix = []byte("li:")
)

// DB wraps a leveldb database holding the persisted license state.
type DB struct {
	ldb *leveldb.DB
}

// Open opens the database at the given path, creating it if needed.
func Open(dbPath string) (*DB, error) {
	opts := opt.Options{
		Strict:      opt.DefaultStrict,
		Compression: opt.NoCompression,
		Filter:      filter.NewBloomFilter(10),
	}
	ldb, err := leveldb.OpenFile(dbPath, &opts)
	if err != nil {
		return nil, err
	}
	return &DB{ldb: ldb}, nil
}

// Close releases the underlying database.
func (db *DB) Close() error {
	return db.ldb.Close()
}

func makeKey(prefix []byte, id uint64) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], id)
	return key
}

// StoreAccount persists one account record.
func (db *DB) StoreAccount(batch *leveldb.Batch, acc *chain.Account) error {
	serialized, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	batch.Put(makeKey(accountPrefix, uint64(acc.ID)), serialized)
	return nil
}

// StoreLicenseType persists one license type record.
func (db *DB) StoreLicenseType(batch *leveldb.Batch, lt *chain.LicenseType) error {
	serialized, err := json.Marshal(lt)
	if err != nil {
		return err
	}
	batch.Put(makeKey(licenseTypePrefix, uint64(lt.ID)), serialized)
	return nil
}

// StoreLicenseInformation persists one license information record.
func (db *DB) StoreLicenseInformation(batch *leveldb.Batch, li *chain.LicenseInformation) error {
	serialized, err := json.Marshal(li)
	if err != nil {
		return err
	}
	batch.Put(makeKey(licenseInfoPrefix, uint64(li.ID)), serialized)
	return nil
}

// WriteBatch atomically commits a batch of stored records.
func (db *DB) WriteBatch(batch *leveldb.Batch) error {
	return db.ldb.Write(batch, nil)
}

// FetchAccount loads one account record by id.
func (db *DB) FetchAccount(id chaincfg.AccountID) (*chain.Account, error) {
	serialized, err := db.ldb.Get(makeKey(accountPrefix, uint64(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("account %d: %v", id, err)
	}
	var acc chain.Account
	if err := json.Unmarshal(serialized, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// FetchLicenseType loads one license type record by id.
func (db *DB) FetchLicenseType(id chain.LicenseTypeID) (*chain.LicenseType, error) {
	serialized, err := db.ldb.Get(makeKey(licenseTypePrefix, uint64(id)),
		nil)
	if err != nil {
		return nil, fmt.Errorf("license type %d: %v", id, err)
	}
	var lt chain.LicenseType
	if err := json.Unmarshal(serialized, &lt); err != nil {
		return nil, err
	}
	return &lt, nil
}

// FetchLicenseInformation loads one license information record by id.
func (db *DB) FetchLicenseInformation(id chain.LicenseInformationID) (*chain.LicenseInformation, error) {
	serialized, err := db.ldb.Get(makeKey(licenseInfoPrefix, uint64(id)),
		nil)
	if err != nil {
		return nil, fmt.Errorf("license information %d: %v", id, err)
	}
	var li chain.LicenseInformation
	if err := json.Unmarshal(serialized, &li); err != nil {
		return nil, err
	}
	return &li, nil
}

// ForEachLicenseType invokes fn for every persisted license type record in
// ascending id order.
func (db *DB) ForEachLicenseType(fn func(*chain.LicenseType) error) error {
	iter := db.ldb.NewIterator(util.BytesPrefix(licenseTypePrefix), nil)
	defer iter.Release()

	for iter.Next() {
		var lt chain.LicenseType
		if err := json.Unmarshal(iter.Value(), &lt); err != nil {
			return err
		}
		if err := fn(&lt); err != nil {
			return err
		}
	}
	return iter.Error()
}

// ForEachAccount invokes fn for every persisted account record in
// ascending id order.
func (db *DB) ForEachAccount(fn func(*chain.Account) error) error {
	iter := db.ldb.NewIterator(util.BytesPrefix(accountPrefix), nil)
	defer iter.Release()

	for iter.Next() {
		var acc chain.Account
		if err := json.Unmarshal(iter.Value(), &acc); err != nil {
			return err
		}
		if err := fn(&acc); err != nil {
			return err
		}
	}
	return iter.Error()
}

// ForEachLicenseInformation invokes fn for every persisted license
// information record in ascending id order.
func (db *DB) ForEachLicenseInformation(fn func(*chain.LicenseInformation) error) error {
	iter := db.ldb.NewIterator(util.BytesPrefix(licenseInfoPrefix), nil)
	defer iter.Release()

	for iter.Next() {
		var li chain.LicenseInformation
		if err := json.Unmarshal(iter.Value(), &li); err != nil {
			return err
		}
		if err := fn(&li); err != nil {
			return err
		}
	}
	return iter.Error()
}
