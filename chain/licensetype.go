// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// LicenseTypeID identifies a license type definition within the chain's
// license type table.  IDs are assigned sequentially starting at 1; 0 is
// never a valid license type.
type LicenseTypeID uint64

// LicenseType is an administratively issued license definition.  The kind
// is immutable after creation; name, amount and eur limit may be edited by
// the license administrator.  The multiplier tiers scale the owning
// account's limits elsewhere and contribute to the cumulative upgrade
// totals of every account the type is granted to.
type LicenseType struct {
	ID     LicenseTypeID
	Kind   LicenseKind
	Name   string
	Amount int64

	BalanceMultipliers []uint16
	RequeueMultipliers []uint16
	ReturnMultipliers  []uint16

	EurLimit int64
}

// ImprovesUpon reports whether lt ranks strictly above other under the
// improvement order.  License types are totally ordered within a kind by
// their base amount; comparison across kinds is undefined and callers must
// ensure both types share a kind before comparing.
func (lt *LicenseType) ImprovesUpon(other *LicenseType) bool {
	return lt.Amount > other.Amount
}

// BalanceUpgrade returns the contribution of the balance multiplier tiers
// to an account's cumulative balance upgrade total.
func (lt *LicenseType) BalanceUpgrade() int64 {
	return sumMultipliers(lt.BalanceMultipliers)
}

// RequeueUpgrade returns the contribution of the requeue multiplier tiers
// to an account's cumulative requeue upgrade total.
func (lt *LicenseType) RequeueUpgrade() int64 {
	return sumMultipliers(lt.RequeueMultipliers)
}

// ReturnUpgrade returns the contribution of the return multiplier tiers
// to an account's cumulative return upgrade total.
func (lt *LicenseType) ReturnUpgrade() int64 {
	return sumMultipliers(lt.ReturnMultipliers)
}

// Clone returns a deep copy of the license type.
func (lt *LicenseType) Clone() *LicenseType {
	c := *lt
	c.BalanceMultipliers = append([]uint16(nil), lt.BalanceMultipliers...)
	c.RequeueMultipliers = append([]uint16(nil), lt.RequeueMultipliers...)
	c.ReturnMultipliers = append([]uint16(nil), lt.ReturnMultipliers...)
	return &c
}

func sumMultipliers(tiers []uint16) int64 {
	var sum int64
	for _, m := range tiers {
		sum += int64(m)
	}
	return sum
}
