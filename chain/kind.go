// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
)

// LicenseKind enumerates the kinds of licenses the chain recognizes.  The
// set is closed: issuance behavior dispatches on the kind with an
// exhaustive switch, and an unknown kind at that point is an internal
// consistency violation.
type LicenseKind uint8

const (
	// KindRegular licenses credit the granted cycles to the account
	// immediately upon issuance.
	KindRegular LicenseKind = iota

	// KindLockedFrequency licenses behave like regular licenses but fix
	// the conversion frequency applicable to the grant.
	KindLockedFrequency

	// KindChartered licenses defer issuance through the submission
	// queue instead of crediting cycles directly.
	KindChartered

	// KindPromo licenses defer issuance through the submission queue,
	// like chartered licenses.
	KindPromo

	// numLicenseKinds is the maximum license kind number used in tests.
	numLicenseKinds
)

// Map of LicenseKind values back to their wire names.
var licenseKindStrings = map[LicenseKind]string{
	KindRegular:         "regular",
	KindLockedFrequency: "locked_frequency",
	KindChartered:       "chartered",
	KindPromo:           "promo",
}

// String returns the LicenseKind as a human-readable name.
func (k LicenseKind) String() string {
	if s := licenseKindStrings[k]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown LicenseKind (%d)", int(k))
}

// ParseLicenseKind converts a license kind name into its LicenseKind
// value.  It fails with an UnknownKindError for unrecognized names.
func ParseLicenseKind(name string) (LicenseKind, error) {
	for kind, s := range licenseKindStrings {
		if s == name {
			return kind, nil
		}
	}
	return 0, UnknownKindError(name)
}

// requiresFrequencyLock reports whether issuing a license of this kind
// mandates a non-zero frequency lock.
func (k LicenseKind) requiresFrequencyLock() bool {
	return k == KindChartered || k == KindPromo || k == KindLockedFrequency
}
