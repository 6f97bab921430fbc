// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
)

// ObjectID is the generic identifier returned by operation application.
// Operations that create or extend an entity return its id; operations
// with no result return 0.  The concrete space the id belongs to is
// determined by the operation: create_license_type returns a
// LicenseTypeID, issue_license returns a LicenseInformationID.
type ObjectID uint64

// ProcessTransaction applies a transaction's operations in order as one
// atomic unit and returns the per-operation result ids.
//
// Each operation is evaluated against the state left behind by the
// operations before it plus the pending mutations of the transaction; the
// first evaluation failure rolls the whole transaction back to the
// snapshot taken on entry and returns the error, so a rejected transaction
// leaves zero state change.
//
// This function is safe for concurrent access.
func (s *State) ProcessTransaction(tx *Transaction) ([]ObjectID, error) {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	log.Tracef("Processing transaction with %d operations",
		len(tx.Operations))

	snap := s.snapshot()
	results := make([]ObjectID, 0, len(tx.Operations))
	for i, op := range tx.Operations {
		result, err := s.applyOperation(op)
		if err != nil {
			s.restore(snap)
			log.Debugf("Rejected transaction at operation %d "+
				"(%s): %v", i, op.opName(), err)
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// ProcessOperation applies a single operation as its own transaction.
//
// This function is safe for concurrent access.
func (s *State) ProcessOperation(op Operation) (ObjectID, error) {
	results, err := s.ProcessTransaction(&Transaction{
		Operations: []Operation{op},
	})
	if err != nil {
		return 0, err
	}
	return results[0], nil
}

// applyOperation runs the two processing phases for a single operation:
// evaluation against the current state, then, only if every rule passed,
// application of the validated intent.
//
// This function MUST be called with the state lock held (for writes).
func (s *State) applyOperation(op Operation) (ObjectID, error) {
	switch op := op.(type) {
	case *CreateLicenseTypeOp:
		intent, err := s.evaluateCreateLicenseType(op)
		if err != nil {
			return 0, err
		}
		return ObjectID(s.applyCreateLicenseType(intent)), nil

	case *EditLicenseTypeOp:
		intent, err := s.evaluateEditLicenseType(op)
		if err != nil {
			return 0, err
		}
		s.applyEditLicenseType(intent)
		return 0, nil

	case *IssueLicenseOp:
		intent, err := s.evaluateIssueLicense(op)
		if err != nil {
			return 0, err
		}
		id, err := s.applyIssueLicense(intent)
		if err != nil {
			// Application can only fail on an internal
			// consistency violation.  Surface it as-is so the
			// host treats it as fatal rather than as a rejected
			// transaction.
			return 0, err
		}
		return ObjectID(id), nil

	default:
		return 0, AssertError(fmt.Sprintf("unknown operation type %T",
			op))
	}
}
