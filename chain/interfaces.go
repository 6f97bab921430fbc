// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
	"github.com/powerchain-ltd/greenpower-blockchain/gputil"
)

// OriginCharterLicense tags queue submissions created by chartered and
// promo license issuance.
const OriginCharterLicense = "charter_license"

// QueueSubmitter is the contract to the deferred-issuance queue.  The
// engine enqueues a submission for every chartered or promo license grant;
// the queue processor applies its balance effect asynchronously and is not
// part of this subsystem.  Enqueueing is at-least-once and must not fail.
type QueueSubmitter interface {
	// PushSubmission enqueues a deferred issuance request.
	PushSubmission(origin string, licenses []LicenseTypeID,
		account chaincfg.AccountID, amount, frequencyLock int64,
		comment string)
}

// AuditRecorder appends immutable, externally observable history entries
// for deferred license issuance.
type AuditRecorder interface {
	// RecordCharterIssue records that the issuer granted a deferred
	// license of the given amount and frequency lock to the account.
	RecordCharterIssue(issuer, account chaincfg.AccountID,
		amount, frequencyLock int64)
}

// BalanceLimitPolicy computes the permissible dascoin balance limit for an
// account.  The policy is opaque to the engine; when no limit is produced
// the engine leaves the account's limit untouched.
type BalanceLimitPolicy interface {
	// DascoinLimit returns the account's permissible dascoin balance
	// limit under the given last daily dascoin price.  The boolean
	// return reports whether a limit was produced at all.
	DascoinLimit(account *Account, price gputil.Price) (int64, bool)
}

// noopQueue discards submissions.  It stands in when no queue is wired up.
type noopQueue struct{}

func (noopQueue) PushSubmission(origin string, licenses []LicenseTypeID,
	account chaincfg.AccountID, amount, frequencyLock int64,
	comment string) {
}

// noopAudit discards audit records.
type noopAudit struct{}

func (noopAudit) RecordCharterIssue(issuer, account chaincfg.AccountID,
	amount, frequencyLock int64) {
}

// noopLimitPolicy never produces a limit.
type noopLimitPolicy struct{}

func (noopLimitPolicy) DascoinLimit(account *Account,
	price gputil.Price) (int64, bool) {

	return 0, false
}
