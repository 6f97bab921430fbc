// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
)

// AssertError identifies an error that indicates an internal code
// consistency issue and should be treated as a critical and unrecoverable
// error.  In particular, any error raised during the application phase of
// an already-evaluated operation is an AssertError: by that point every
// business rule has been checked, so a failure means the evaluation and
// application logic have diverged.
type AssertError string

// Error returns the assertion error as a human-readable string and
// satisfies the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// UnknownKindError identifies an error that indicates a license kind name
// was specified that does not exist.
type UnknownKindError string

// Error returns the assertion error as a human-readable string and
// satisfies the error interface.
func (e UnknownKindError) Error() string {
	return fmt.Sprintf("license kind %q does not exist", string(e))
}

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrNotAuthorized indicates a privileged operation was authorized
	// by an account other than the chain authority it requires.
	ErrNotAuthorized ErrorCode = iota

	// ErrAccountNotFound indicates an operation referenced an account
	// id that does not exist.
	ErrAccountNotFound

	// ErrLicenseTypeNotFound indicates an operation referenced a
	// license type id that does not exist.
	ErrLicenseTypeNotFound

	// ErrLicenseInfoNotFound indicates a license information id was
	// referenced that does not exist.
	ErrLicenseInfoNotFound

	// ErrNotVaultAccount indicates an attempt to issue a license to an
	// account that is not a vault account.
	ErrNotVaultAccount

	// ErrZeroFrequencyLock indicates an attempt to issue a license of a
	// kind that mandates a frequency lock with a zero frequency lock.
	ErrZeroFrequencyLock

	// ErrLicenseKindMismatch indicates an attempt to issue a license
	// whose kind differs from the kind locked in by the account's first
	// license.
	ErrLicenseKindMismatch

	// ErrNotAnImprovement indicates an attempt to issue a license type
	// that does not rank strictly above the account's current maximum
	// license under the improvement order.
	ErrNotAnImprovement

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrNotAuthorized:       "ErrNotAuthorized",
	ErrAccountNotFound:     "ErrAccountNotFound",
	ErrLicenseTypeNotFound: "ErrLicenseTypeNotFound",
	ErrLicenseInfoNotFound: "ErrLicenseInfoNotFound",
	ErrNotVaultAccount:     "ErrNotVaultAccount",
	ErrZeroFrequencyLock:   "ErrZeroFrequencyLock",
	ErrLicenseKindMismatch: "ErrLicenseKindMismatch",
	ErrNotAnImprovement:    "ErrNotAnImprovement",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation.  It is used to indicate that
// evaluation of an operation failed due to one of the validation rules.
// The caller can use type assertions to determine if a failure was
// specifically due to a rule violation and access the ErrorCode field to
// ascertain the specific reason for the rule violation.  The description
// embeds the offending operation's data for diagnosability.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
