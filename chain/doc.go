// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chain implements the license-issuance state-transition engine.

The engine governs cycles, a scarce resource that vault accounts convert
into dascoin at a rate controlled by administratively issued licenses.  It
consists of the evaluators for the create_license_type, edit_license_type
and issue_license operations, the per-account license information ledger,
and the fixed-point conversion arithmetic shared with package gputil.

Every operation is processed in two strictly separated phases.  The
evaluation phase performs all authority and business-rule checks against a
consistent view of the state and produces a typed intent value; it has no
side effects.  The application phase consumes only that intent and commits
the mutation.  A failed evaluation therefore never leaves partial state
behind, and an error raised during application indicates an internal
consistency violation rather than an expected outcome.

Transactions group operations into an atomic unit: if any operation in a
transaction fails evaluation, mutations from earlier operations in the
same transaction are rolled back from a snapshot taken when the
transaction began.

The engine is a deterministic, single-writer state machine.  All
validating nodes process the same operations in the same order and must
arrive at identical state.
*/
package chain
