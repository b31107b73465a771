package contract

import (
	"github.com/holiman/uint256"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// DefaultCostPerByte is the storage price per byte of new persisted
// state, in the chain's smallest denomination (NEAR charges 1e19 yocto
// per byte).
var DefaultCostPerByte = uint256.MustFromDecimal("10000000000000000000")

// allowedEntryBaseBytes covers the per-entry key overhead of the
// allow-list table.
const allowedEntryBaseBytes = 8

// storageCost returns bytes × costPerByte.
func (c *Contract) storageCost(bytes uint64) *uint256.Int {
	cost := new(uint256.Int).SetUint64(bytes)
	return cost.Mul(cost, c.costPerByte)
}

// chargeStorage checks that the attached deposit covers bytes of new
// state and returns the refundable excess. The deposit itself is held by
// the host; the contract only verifies sufficiency.
func (c *Contract) chargeStorage(call Call, bytes uint64) (*uint256.Int, error) {
	required := c.storageCost(bytes)
	attached := call.attached()
	if attached.Lt(required) {
		return nil, types.ErrInsufficientDeposit
	}
	return new(uint256.Int).Sub(attached, required), nil
}

// allowListBytes sizes a full allow-list replacement.
func allowListBytes(addrs []types.AccountID) uint64 {
	var n uint64
	for _, a := range addrs {
		n += allowedEntryBaseBytes + uint64(len(a))
	}
	return n
}
