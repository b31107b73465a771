package types

import "time"

// ContractState is the singleton record holding the contract
// administrator and the contract-level metadata. It exists after Init
// and is never deleted.
type ContractState struct {
	OwnerID   AccountID        // contract administrator
	Metadata  ContractMetadata // mutable by the administrator only
	UpdatedAt time.Time
}
