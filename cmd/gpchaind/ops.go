// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/powerchain-ltd/greenpower-blockchain/chain"
	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

// jsonTransaction is one batch entry: a group of operations applied
// atomically, optionally preceded by account registrations.
type jsonTransaction struct {
	// Accounts registers new accounts before the transaction runs.
	// Account registration is host machinery, not a ledger operation,
	// so it is not part of the transaction's rollback scope.
	Accounts []jsonAccount `json:"accounts,omitempty"`

	Operations []json.RawMessage `json:"operations"`
}

// jsonAccount registers an account.
type jsonAccount struct {
	Name  string `json:"name"`
	Vault bool   `json:"vault"`
}

// jsonOp is the common envelope of every serialized operation.
type jsonOp struct {
	Type string `json:"type"`

	// create_license_type / edit_license_type
	Admin              chaincfg.AccountID   `json:"admin,omitempty"`
	Authority          chaincfg.AccountID   `json:"authority,omitempty"`
	Kind               string               `json:"kind,omitempty"`
	Name               *string              `json:"name,omitempty"`
	Amount             *int64               `json:"amount,omitempty"`
	BalanceMultipliers []uint16             `json:"balance_multipliers,omitempty"`
	RequeueMultipliers []uint16             `json:"requeue_multipliers,omitempty"`
	ReturnMultipliers  []uint16             `json:"return_multipliers,omitempty"`
	EurLimit           *int64               `json:"eur_limit,omitempty"`
	LicenseType        chain.LicenseTypeID  `json:"license_type,omitempty"`

	// issue_license
	Issuer          chaincfg.AccountID  `json:"issuer,omitempty"`
	Account         chaincfg.AccountID  `json:"account,omitempty"`
	License         chain.LicenseTypeID `json:"license,omitempty"`
	BonusPercentage int64               `json:"bonus_percentage,omitempty"`
	FrequencyLock   int64               `json:"frequency_lock,omitempty"`
	ActivatedAt     time.Time           `json:"activated_at,omitempty"`
}

// decodeOperation converts one serialized operation into its chain
// operation.
func decodeOperation(raw json.RawMessage) (chain.Operation, error) {
	var op jsonOp
	if err := json.Unmarshal(raw, &op); err != nil {
		return nil, err
	}

	switch op.Type {
	case "create_license_type":
		kind, err := chain.ParseLicenseKind(op.Kind)
		if err != nil {
			return nil, err
		}
		create := &chain.CreateLicenseTypeOp{
			Admin:              op.Admin,
			Kind:               kind,
			BalanceMultipliers: op.BalanceMultipliers,
			RequeueMultipliers: op.RequeueMultipliers,
			ReturnMultipliers:  op.ReturnMultipliers,
		}
		if op.Name != nil {
			create.Name = *op.Name
		}
		if op.Amount != nil {
			create.Amount = *op.Amount
		}
		if op.EurLimit != nil {
			create.EurLimit = *op.EurLimit
		}
		return create, nil

	case "edit_license_type":
		return &chain.EditLicenseTypeOp{
			Authority:   op.Authority,
			LicenseType: op.LicenseType,
			Name:        op.Name,
			Amount:      op.Amount,
			EurLimit:    op.EurLimit,
		}, nil

	case "issue_license":
		return &chain.IssueLicenseOp{
			Issuer:          op.Issuer,
			Account:         op.Account,
			License:         op.License,
			BonusPercentage: op.BonusPercentage,
			FrequencyLock:   op.FrequencyLock,
			ActivatedAt:     op.ActivatedAt,
		}, nil
	}

	return nil, fmt.Errorf("unknown operation type %q", op.Type)
}

// readTransactions loads a batch file.
func readTransactions(path string) ([]jsonTransaction, error) {
	serialized, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var txns []jsonTransaction
	if err := json.Unmarshal(serialized, &txns); err != nil {
		return nil, fmt.Errorf("malformed batch file %s: %v", path,
			err)
	}
	return txns, nil
}
