// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"sort"

	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// This file provides the bridge between the in-memory state and whatever
// persistence layer the host wires up.  Export enumerates copies of every
// record in ascending id order so that persisted output is deterministic;
// LoadState rebuilds a state instance from previously exported records
// without re-running genesis seeding.

// ExportRecords returns copies of every account, license type and license
// information record, each slice in ascending id order.
//
// This function is safe for concurrent access.
func (s *State) ExportRecords() ([]Account, []LicenseType, []LicenseInformation) {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	accounts := make([]Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		accounts = append(accounts, *acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID < accounts[j].ID
	})

	licenseTypes := make([]LicenseType, 0, len(s.licenseTypes))
	for _, lt := range s.licenseTypes {
		licenseTypes = append(licenseTypes, *lt.Clone())
	}
	sort.Slice(licenseTypes, func(i, j int) bool {
		return licenseTypes[i].ID < licenseTypes[j].ID
	})

	licenseInfo := make([]LicenseInformation, 0, len(s.licenseInfo))
	for _, li := range s.licenseInfo {
		licenseInfo = append(licenseInfo, *li.Clone())
	}
	sort.Slice(licenseInfo, func(i, j int) bool {
		return licenseInfo[i].ID < licenseInfo[j].ID
	})

	return accounts, licenseTypes, licenseInfo
}

// LoadState rebuilds a State from previously exported records.  The
// configuration supplies the chain parameters and collaborators exactly as
// it does for New; genesis seeding is skipped since the records already
// contain the genesis entities.
func LoadState(config *Config, accounts []Account,
	licenseTypes []LicenseType,
	licenseInfo []LicenseInformation) (*State, error) {

	if config.ChainParams == nil {
		return nil, AssertError("chain parameters are required")
	}

	s := &State{
		params:       config.ChainParams,
		queue:        config.Queue,
		audit:        config.Audit,
		limitPolicy:  config.LimitPolicy,
		accounts:     make(map[chaincfg.AccountID]*Account, len(accounts)),
		licenseTypes: make(map[LicenseTypeID]*LicenseType, len(licenseTypes)),
		licenseInfo:  make(map[LicenseInformationID]*LicenseInformation, len(licenseInfo)),
	}
	if s.queue == nil {
		s.queue = noopQueue{}
	}
	if s.audit == nil {
		s.audit = noopAudit{}
	}
	if s.limitPolicy == nil {
		s.limitPolicy = noopLimitPolicy{}
	}

	for i := range accounts {
		acc := accounts[i].Clone()
		s.accounts[acc.ID] = acc
		if uint64(acc.ID) > s.nextAccountID {
			s.nextAccountID = uint64(acc.ID)
		}
	}
	for i := range licenseTypes {
		lt := licenseTypes[i].Clone()
		s.licenseTypes[lt.ID] = lt
		if uint64(lt.ID) > s.nextLicenseTypeID {
			s.nextLicenseTypeID = uint64(lt.ID)
		}
	}
	for i := range licenseInfo {
		li := licenseInfo[i].Clone()
		s.licenseInfo[li.ID] = li
		if uint64(li.ID) > s.nextLicenseInfoID {
			s.nextLicenseInfoID = uint64(li.ID)
		}
	}

	// The loaded records must be internally consistent before the state
	// can accept operations.
	auth := s.params.Authorities
	if _, ok := s.accounts[auth.LicenseAdministrator]; !ok {
		return nil, fmt.Errorf("license administrator account %d is "+
			"missing from the loaded records",
			auth.LicenseAdministrator)
	}
	if _, ok := s.accounts[auth.LicenseIssuer]; !ok {
		return nil, fmt.Errorf("license issuer account %d is missing "+
			"from the loaded records", auth.LicenseIssuer)
	}
	for _, acc := range s.accounts {
		if acc.LicenseInformation == 0 {
			continue
		}
		li, ok := s.licenseInfo[acc.LicenseInformation]
		if !ok {
			return nil, fmt.Errorf("account '%s' references "+
				"unknown license information %d", acc.Name,
				acc.LicenseInformation)
		}
		if _, ok := s.licenseTypes[li.MaxLicense]; !ok {
			return nil, fmt.Errorf("license information %d "+
				"references unknown maximum license type %d",
				li.ID, li.MaxLicense)
		}
	}

	log.Infof("Chain state loaded for %s: %d accounts, %d license types, "+
		"%d license information records", s.params.Name,
		len(s.accounts), len(s.licenseTypes), len(s.licenseInfo))
	return s, nil
}
