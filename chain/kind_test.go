// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"testing"
)

// TestLicenseKindStringer tests the stringized output for the LicenseKind
// type.
func TestLicenseKindStringer(t *testing.T) {
	tests := []struct {
		in   LicenseKind
		want string
	}{
		{KindRegular, "regular"},
		{KindLockedFrequency, "locked_frequency"},
		{KindChartered, "chartered"},
		{KindPromo, "promo"},
		{0xff, "Unknown LicenseKind (255)"},
	}

	// Detect additional kinds that don't have the stringer added.
	if len(tests)-1 != int(numLicenseKinds) {
		t.Errorf("It appears a license kind was added without adding " +
			"an associated stringer test")
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
		}
	}
}

// TestParseLicenseKind ensures kind names round-trip through the parser
// and unknown names are rejected.
func TestParseLicenseKind(t *testing.T) {
	for kind := LicenseKind(0); kind < numLicenseKinds; kind++ {
		parsed, err := ParseLicenseKind(kind.String())
		if err != nil {
			t.Errorf("%v: unexpected error %v", kind, err)
			continue
		}
		if parsed != kind {
			t.Errorf("%v: parsed to %v", kind, parsed)
		}
	}

	if _, err := ParseLicenseKind("bogus"); err == nil {
		t.Errorf("unknown kind name was accepted")
	} else if _, ok := err.(UnknownKindError); !ok {
		t.Errorf("unexpected error type %T", err)
	}
}

// TestRequiresFrequencyLock ensures exactly the chartered, promo and
// locked frequency kinds mandate a non-zero frequency lock.
func TestRequiresFrequencyLock(t *testing.T) {
	tests := []struct {
		kind LicenseKind
		want bool
	}{
		{KindRegular, false},
		{KindLockedFrequency, true},
		{KindChartered, true},
		{KindPromo, true},
	}

	for _, test := range tests {
		if got := test.kind.requiresFrequencyLock(); got != test.want {
			t.Errorf("%v: got %v, want %v", test.kind, got,
				test.want)
		}
	}
}
