// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
	"github.com/powerchain-ltd/greenpower-blockchain/gputil"
)

// Account IDs assigned to the genesis accounts of the test chain.
const (
	testAdminID  = chaincfg.AccountID(1)
	testIssuerID = chaincfg.AccountID(2)
)

// submission records one call to PushSubmission.
type submission struct {
	origin        string
	licenses      []LicenseTypeID
	account       chaincfg.AccountID
	amount        int64
	frequencyLock int64
	comment       string
}

// testQueue records deferred issuance submissions for inspection.
type testQueue struct {
	submissions []submission
}

func (q *testQueue) PushSubmission(origin string, licenses []LicenseTypeID,
	account chaincfg.AccountID, amount, frequencyLock int64,
	comment string) {

	q.submissions = append(q.submissions, submission{
		origin:        origin,
		licenses:      licenses,
		account:       account,
		amount:        amount,
		frequencyLock: frequencyLock,
		comment:       comment,
	})
}

// auditRecord records one call to RecordCharterIssue.
type auditRecord struct {
	issuer        chaincfg.AccountID
	account       chaincfg.AccountID
	amount        int64
	frequencyLock int64
}

// testAudit records audit entries for inspection.
type testAudit struct {
	records []auditRecord
}

func (a *testAudit) RecordCharterIssue(issuer, account chaincfg.AccountID,
	amount, frequencyLock int64) {

	a.records = append(a.records, auditRecord{
		issuer:        issuer,
		account:       account,
		amount:        amount,
		frequencyLock: frequencyLock,
	})
}

// fixedLimitPolicy produces the same limit for every account, or none.
type fixedLimitPolicy struct {
	limit int64
	ok    bool
}

func (p fixedLimitPolicy) DascoinLimit(account *Account,
	price gputil.Price) (int64, bool) {

	return p.limit, p.ok
}

// testParams returns chain parameters with only the two privileged genesis
// accounts and no genesis license types, so tests control the license
// table completely.
func testParams() *chaincfg.Params {
	return &chaincfg.Params{
		Name: "chaintest",
		Authorities: chaincfg.ChainAuthorities{
			LicenseAdministrator: testAdminID,
			LicenseIssuer:        testIssuerID,
		},
		GenesisAccounts: []chaincfg.GenesisAccount{
			{Name: "license-administrator"},
			{Name: "license-issuer"},
		},
	}
}

// newTestState builds a State around recording collaborators and a fixed
// head block time.
func newTestState(t *testing.T, limitPolicy BalanceLimitPolicy) (*State, *testQueue, *testAudit) {
	t.Helper()

	queue := &testQueue{}
	audit := &testAudit{}
	s, err := New(&Config{
		ChainParams: testParams(),
		Queue:       queue,
		Audit:       audit,
		LimitPolicy: limitPolicy,
	})
	require.NoError(t, err)

	s.SetHeadBlockTime(time.Unix(1500000000, 0).UTC())
	return s, queue, audit
}

// createTestLicense stores a license type through the regular operation
// path and returns its id.
func createTestLicense(t *testing.T, s *State, kind LicenseKind,
	name string, amount int64) LicenseTypeID {

	t.Helper()

	result, err := s.ProcessOperation(&CreateLicenseTypeOp{
		Admin:              testAdminID,
		Kind:               kind,
		Name:               name,
		Amount:             amount,
		BalanceMultipliers: []uint16{2},
		RequeueMultipliers: []uint16{3},
		ReturnMultipliers:  []uint16{4},
		EurLimit:           100,
	})
	require.NoError(t, err)
	return LicenseTypeID(result)
}

// newVaultAccount registers a vault account for tests.
func newVaultAccount(t *testing.T, s *State, name string) chaincfg.AccountID {
	t.Helper()

	acc := s.CreateAccount(name, AccountVault)
	return acc.ID
}

// requireRuleError asserts that err is a RuleError with the given code.
func requireRuleError(t *testing.T, err error, code ErrorCode) {
	t.Helper()

	rerr, ok := err.(RuleError)
	require.Truef(t, ok, "error %v (%T) is not a RuleError", err, err)
	require.Equal(t, code, rerr.ErrorCode, "unexpected rule error: %v",
		rerr)
}
