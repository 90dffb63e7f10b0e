package types

import (
	"fmt"
)

// WithdrawRequestRecord is an outstanding withdraw request exported at
// genesis: the user's enable window starts at EnableTime.
type WithdrawRequestRecord struct {
	PoolId     string `json:"pool_id"`
	User       string `json:"user"`
	EnableTime int64  `json:"enable_time"`
}

// GenesisState holds the full x/vault module state.
type GenesisState struct {
	Params           Params                  `json:"params"`
	WithdrawRequests []WithdrawRequestRecord `json:"withdraw_requests"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		WithdrawRequests: []WithdrawRequestRecord{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	requestIndexMap := make(map[string]struct{})
	for _, elem := range gs.WithdrawRequests {
		if elem.PoolId == "" {
			return fmt.Errorf("withdraw request with empty pool id")
		}
		if elem.User == "" {
			return fmt.Errorf("withdraw request with empty user address")
		}
		if elem.EnableTime <= 0 {
			return fmt.Errorf("withdraw request for %s/%s has a non-positive enable time", elem.PoolId, elem.User)
		}
		index := elem.PoolId + "/" + elem.User
		if _, ok := requestIndexMap[index]; ok {
			return fmt.Errorf("duplicated withdraw request for %s", index)
		}
		requestIndexMap[index] = struct{}{}
	}

	return gs.Params.Validate()
}
