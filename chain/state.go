// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"sync"
	"time"

	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
	"github.com/powerchain-ltd/greenpower-blockchain/gputil"
)

// DynamicGlobalProperties carries chain-wide values that change outside
// the license subsystem but are read by it during operation application.
type DynamicGlobalProperties struct {
	// HeadBlockTime is the timestamp of the chain's current head block.
	// It stamps the IssuedAt field of new license grants.
	HeadBlockTime time.Time

	// LastDailyDascoinPrice is the most recent daily dascoin price.  It
	// feeds the balance-limit policy untouched.
	LastDailyDascoinPrice gputil.Price
}

// Config is a descriptor which specifies the license state instance
// configuration.
type Config struct {
	// ChainParams identifies the chain the state belongs to.  It seeds
	// the genesis accounts and license types and names the privileged
	// chain authorities.
	//
	// This field is required.
	ChainParams *chaincfg.Params

	// Queue receives deferred issuance submissions for chartered and
	// promo licenses.
	//
	// This field can be nil, in which case submissions are discarded.
	Queue QueueSubmitter

	// Audit receives the immutable audit records emitted alongside
	// deferred issuance submissions.
	//
	// This field can be nil, in which case records are discarded.
	Audit AuditRecorder

	// LimitPolicy computes permissible dascoin balance limits after
	// each issuance.
	//
	// This field can be nil, in which case no limits are ever applied.
	LimitPolicy BalanceLimitPolicy
}

// State is the license subsystem's view of the chain state: the account
// table, the license type table and the license information table,
// together with the state-transition logic that mutates them.
//
// Although the chain applies operations from a single writer, all public
// methods are safe for concurrent access so that RPC-style readers can
// inspect the state while it is in use.
type State struct {
	params      *chaincfg.Params
	queue       QueueSubmitter
	audit       AuditRecorder
	limitPolicy BalanceLimitPolicy

	// stateLock protects the tables and counters below.
	stateLock sync.RWMutex

	accounts     map[chaincfg.AccountID]*Account
	licenseTypes map[LicenseTypeID]*LicenseType
	licenseInfo  map[LicenseInformationID]*LicenseInformation

	nextAccountID     uint64
	nextLicenseTypeID uint64
	nextLicenseInfoID uint64

	dynProps DynamicGlobalProperties
}

// New returns a State instance built from the provided configuration,
// seeded with the chain's genesis accounts and license type definitions.
func New(config *Config) (*State, error) {
	if config.ChainParams == nil {
		return nil, AssertError("chain parameters are required")
	}

	s := &State{
		params:       config.ChainParams,
		queue:        config.Queue,
		audit:        config.Audit,
		limitPolicy:  config.LimitPolicy,
		accounts:     make(map[chaincfg.AccountID]*Account),
		licenseTypes: make(map[LicenseTypeID]*LicenseType),
		licenseInfo:  make(map[LicenseInformationID]*LicenseInformation),
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

	for _, ga := range s.params.GenesisAccounts {
		kind := AccountWallet
		if ga.Vault {
			kind = AccountVault
		}
		s.createAccount(ga.Name, kind)
	}
	for _, gl := range s.params.GenesisLicenses {
		kind, err := ParseLicenseKind(gl.Kind)
		if err != nil {
			return nil, fmt.Errorf("genesis license %q: %v",
				gl.Name, err)
		}
		s.createLicenseType(kind, gl.Name, gl.Amount,
			gl.BalanceMultipliers, gl.RequeueMultipliers,
			gl.ReturnMultipliers, gl.EurLimit)
	}

	auth := s.params.Authorities
	if _, ok := s.accounts[auth.LicenseAdministrator]; !ok {
		return nil, fmt.Errorf("license administrator account %d is "+
			"not a genesis account", auth.LicenseAdministrator)
	}
	if _, ok := s.accounts[auth.LicenseIssuer]; !ok {
		return nil, fmt.Errorf("license issuer account %d is not a "+
			"genesis account", auth.LicenseIssuer)
	}

	log.Infof("Chain state initialized for %s: %d accounts, %d license "+
		"types", s.params.Name, len(s.accounts), len(s.licenseTypes))
	return s, nil
}

// CreateAccount registers a new account with the given name and kind and
// returns a copy of it.  Account registration proper (keys, authority
// structures) is outside this subsystem; the method exists so a host can
// mirror its account table into the license state.
//
// This function is safe for concurrent access.
func (s *State) CreateAccount(name string, kind AccountKind) Account {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	return *s.createAccount(name, kind)
}

// createAccount registers a new account with the next sequential id.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) createAccount(name string, kind AccountKind) *Account {
	s.nextAccountID++
	acc := &Account{
		ID:   chaincfg.AccountID(s.nextAccountID),
		Name: name,
		Kind: kind,
	}
	s.accounts[acc.ID] = acc
	return acc
}

// createLicenseType stores a new license type definition with the next
// sequential id and returns it.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) createLicenseType(kind LicenseKind, name string,
	amount int64, balanceMults, requeueMults, returnMults []uint16,
	eurLimit int64) *LicenseType {

	s.nextLicenseTypeID++
	lt := &LicenseType{
		ID:                 LicenseTypeID(s.nextLicenseTypeID),
		Kind:               kind,
		Name:               name,
		Amount:             amount,
		BalanceMultipliers: append([]uint16(nil), balanceMults...),
		RequeueMultipliers: append([]uint16(nil), requeueMults...),
		ReturnMultipliers:  append([]uint16(nil), returnMults...),
		EurLimit:           eurLimit,
	}
	s.licenseTypes[lt.ID] = lt
	return lt
}

// newLicenseInformation creates an empty license information aggregate for
// the account with the given vault license kind.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) newLicenseInformation(account chaincfg.AccountID,
	kind LicenseKind) *LicenseInformation {

	s.nextLicenseInfoID++
	li := &LicenseInformation{
		ID:               LicenseInformationID(s.nextLicenseInfoID),
		Account:          account,
		VaultLicenseKind: kind,
	}
	s.licenseInfo[li.ID] = li
	return li
}

// fetchAccount resolves an account id against the account table.  Unknown
// ids fail with a RuleError of code ErrAccountNotFound.
//
// This function MUST be called with the state lock held (for reads).
func (s *State) fetchAccount(id chaincfg.AccountID) (*Account, error) {
	acc, ok := s.accounts[id]
	if !ok {
		str := fmt.Sprintf("account %d does not exist", id)
		return nil, ruleError(ErrAccountNotFound, str)
	}
	return acc, nil
}

// fetchLicenseType resolves a license type id against the license type
// table.  Unknown ids fail with a RuleError of code ErrLicenseTypeNotFound.
//
// This function MUST be called with the state lock held (for reads).
func (s *State) fetchLicenseType(id LicenseTypeID) (*LicenseType, error) {
	lt, ok := s.licenseTypes[id]
	if !ok {
		str := fmt.Sprintf("license type %d does not exist", id)
		return nil, ruleError(ErrLicenseTypeNotFound, str)
	}
	return lt, nil
}

// checkChainAuthority verifies that a privileged operation was authorized
// by the required chain authority account.  The role label names the
// authority in the error for diagnostics.  The check is a pure function of
// its inputs and has no side effects.
func (s *State) checkChainAuthority(role string,
	requiredID chaincfg.AccountID, actual *Account) error {

	if actual.ID != requiredID {
		str := fmt.Sprintf("operation must be authorized by the %s "+
			"authority (account %d), authorized by '%s' (account "+
			"%d) instead", role, requiredID, actual.Name, actual.ID)
		return ruleError(ErrNotAuthorized, str)
	}
	return nil
}

// creditCycles unconditionally increases the account's cycle balance.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) creditCycles(acc *Account, amount int64) {
	acc.Cycles += amount
	log.Debugf("Credited %d cycles to account '%s' (balance now %d)",
		amount, acc.Name, acc.Cycles)
}

// adjustBalanceLimit sets the account's permissible dascoin balance limit.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) adjustBalanceLimit(acc *Account, limit int64) {
	acc.DascoinLimit = limit
	log.Debugf("Adjusted dascoin balance limit of account '%s' to %d",
		acc.Name, limit)
}

// SetHeadBlockTime records the timestamp of the chain's current head
// block.  The block-production machinery calls this before applying the
// block's transactions.
//
// This function is safe for concurrent access.
func (s *State) SetHeadBlockTime(t time.Time) {
	s.stateLock.Lock()
	s.dynProps.HeadBlockTime = t
	s.stateLock.Unlock()
}

// SetLastDailyDascoinPrice records the most recent daily dascoin price.
//
// This function is safe for concurrent access.
func (s *State) SetLastDailyDascoinPrice(p gputil.Price) {
	s.stateLock.Lock()
	s.dynProps.LastDailyDascoinPrice = p
	s.stateLock.Unlock()
}

// DynamicProperties returns a copy of the chain-wide dynamic values the
// license subsystem reads during application.
//
// This function is safe for concurrent access.
func (s *State) DynamicProperties() DynamicGlobalProperties {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	return s.dynProps
}

// ChainParams returns the chain parameters the state was built from.
func (s *State) ChainParams() *chaincfg.Params {
	return s.params
}

// Account returns a copy of the account with the given id.
//
// This function is safe for concurrent access.
func (s *State) Account(id chaincfg.AccountID) (Account, error) {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	acc, err := s.fetchAccount(id)
	if err != nil {
		return Account{}, err
	}
	return *acc, nil
}

// LicenseType returns a copy of the license type with the given id.
//
// This function is safe for concurrent access.
func (s *State) LicenseType(id LicenseTypeID) (LicenseType, error) {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	lt, err := s.fetchLicenseType(id)
	if err != nil {
		return LicenseType{}, err
	}
	return *lt.Clone(), nil
}

// LicenseInformation returns a copy of the license information aggregate
// with the given id.
//
// This function is safe for concurrent access.
func (s *State) LicenseInformation(id LicenseInformationID) (LicenseInformation, error) {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	li, ok := s.licenseInfo[id]
	if !ok {
		str := fmt.Sprintf("license information %d does not exist", id)
		return LicenseInformation{}, ruleError(ErrLicenseInfoNotFound, str)
	}
	return *li.Clone(), nil
}
