// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCreateLicenseType ensures the administrator can create license type
// definitions and that every other account is rejected.
func TestCreateLicenseType(t *testing.T) {
	s, _, _ := newTestState(t, nil)

	result, err := s.ProcessOperation(&CreateLicenseTypeOp{
		Admin:              testAdminID,
		Kind:               KindRegular,
		Name:               "standard",
		Amount:             1000,
		BalanceMultipliers: []uint16{2, 3},
		RequeueMultipliers: []uint16{4},
		ReturnMultipliers:  []uint16{5},
		EurLimit:           100,
	})
	require.NoError(t, err)

	lt, err := s.LicenseType(LicenseTypeID(result))
	require.NoError(t, err)
	require.Equal(t, KindRegular, lt.Kind)
	require.Equal(t, "standard", lt.Name)
	require.Equal(t, int64(1000), lt.Amount)
	require.Equal(t, []uint16{2, 3}, lt.BalanceMultipliers)
	require.Equal(t, int64(100), lt.EurLimit)

	// The issuer is not the license administrator.
	_, err = s.ProcessOperation(&CreateLicenseTypeOp{
		Admin:  testIssuerID,
		Kind:   KindRegular,
		Name:   "rogue",
		Amount: 1,
	})
	requireRuleError(t, err, ErrNotAuthorized)

	// An unknown admin account cannot authorize anything.
	_, err = s.ProcessOperation(&CreateLicenseTypeOp{
		Admin:  1000,
		Kind:   KindRegular,
		Name:   "ghost",
		Amount: 1,
	})
	requireRuleError(t, err, ErrAccountNotFound)
}

// TestEditLicenseType ensures each optional field of an edit is applied
// independently and omitted fields are left untouched.
func TestEditLicenseType(t *testing.T) {
	s, _, _ := newTestState(t, nil)
	id := createTestLicense(t, s, KindRegular, "standard", 1000)

	// Supplying only the eur limit must not disturb name or amount.
	newLimit := int64(250)
	_, err := s.ProcessOperation(&EditLicenseTypeOp{
		Authority:   testAdminID,
		LicenseType: id,
		EurLimit:    &newLimit,
	})
	require.NoError(t, err)

	lt, err := s.LicenseType(id)
	require.NoError(t, err)
	require.Equal(t, "standard", lt.Name)
	require.Equal(t, int64(1000), lt.Amount)
	require.Equal(t, int64(250), lt.EurLimit)

	// All three mutable fields at once.
	newName := "standard-v2"
	newAmount := int64(1500)
	newLimit = 300
	_, err = s.ProcessOperation(&EditLicenseTypeOp{
		Authority:   testAdminID,
		LicenseType: id,
		Name:        &newName,
		Amount:      &newAmount,
		EurLimit:    &newLimit,
	})
	require.NoError(t, err)

	lt, err = s.LicenseType(id)
	require.NoError(t, err)
	require.Equal(t, "standard-v2", lt.Name)
	require.Equal(t, int64(1500), lt.Amount)
	require.Equal(t, int64(300), lt.EurLimit)

	// The kind survives every edit.
	require.Equal(t, KindRegular, lt.Kind)
}

// TestEditLicenseTypeRejections ensures edit operations are fully
// validated before any field is touched.
func TestEditLicenseTypeRejections(t *testing.T) {
	s, _, _ := newTestState(t, nil)
	id := createTestLicense(t, s, KindRegular, "standard", 1000)

	newName := "hijacked"
	_, err := s.ProcessOperation(&EditLicenseTypeOp{
		Authority:   testIssuerID,
		LicenseType: id,
		Name:        &newName,
	})
	requireRuleError(t, err, ErrNotAuthorized)

	_, err = s.ProcessOperation(&EditLicenseTypeOp{
		Authority:   testAdminID,
		LicenseType: 1000,
		Name:        &newName,
	})
	requireRuleError(t, err, ErrLicenseTypeNotFound)

	// The stored definition is untouched by the rejected edits.
	lt, err := s.LicenseType(id)
	require.NoError(t, err)
	require.Equal(t, "standard", lt.Name)
}

// TestImprovementOrder exercises the per-kind total order on license
// types.
func TestImprovementOrder(t *testing.T) {
	small := &LicenseType{ID: 1, Kind: KindRegular, Amount: 100}
	big := &LicenseType{ID: 2, Kind: KindRegular, Amount: 500}
	equal := &LicenseType{ID: 3, Kind: KindRegular, Amount: 100}

	if !big.ImprovesUpon(small) {
		t.Errorf("larger amount must rank above smaller")
	}
	if small.ImprovesUpon(big) {
		t.Errorf("smaller amount must not rank above larger")
	}
	if small.ImprovesUpon(equal) || equal.ImprovesUpon(small) {
		t.Errorf("improvement order must be strict")
	}
	if small.ImprovesUpon(small) {
		t.Errorf("no type improves upon itself")
	}
}

// TestUpgradeContributions ensures multiplier tiers sum into the three
// upgrade contributions.
func TestUpgradeContributions(t *testing.T) {
	lt := &LicenseType{
		BalanceMultipliers: []uint16{2, 3, 4},
		RequeueMultipliers: []uint16{5},
		ReturnMultipliers:  nil,
	}

	if got := lt.BalanceUpgrade(); got != 9 {
		t.Errorf("balance upgrade: got %v, want 9", got)
	}
	if got := lt.RequeueUpgrade(); got != 5 {
		t.Errorf("requeue upgrade: got %v, want 5", got)
	}
	if got := lt.ReturnUpgrade(); got != 0 {
		t.Errorf("return upgrade: got %v, want 0", got)
	}
}
