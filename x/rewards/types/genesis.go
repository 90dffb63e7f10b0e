package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// PoolRecord pairs a pool identifier with its accrual state for genesis
// import and export.
type PoolRecord struct {
	PoolId string    `json:"pool_id"`
	State  PoolState `json:"state"`
}

// AccountRecord pairs a (pool, user) key with its reward account for genesis
// import and export.
type AccountRecord struct {
	PoolId  string        `json:"pool_id"`
	User    string        `json:"user"`
	Account RewardAccount `json:"account"`
}

// GenesisState holds the full x/rewards module state.
type GenesisState struct {
	Params    Params              `json:"params"`
	Schedule  EpochSchedule       `json:"schedule"`
	WeightLog []WeightUpdateEntry `json:"weight_log"`
	PoolList  []PoolRecord        `json:"pool_list"`
	Accounts  []AccountRecord     `json:"accounts"`
}

// DefaultGenesis returns the default genesis state: an empty platform with a
// zero-rate schedule starting at block zero.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Schedule:  NewEpochSchedule(0, 100_000, math.ZeroInt()),
		WeightLog: []WeightUpdateEntry{},
		PoolList:  []PoolRecord{},
		Accounts:  []AccountRecord{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Schedule.Validate(); err != nil {
		return err
	}

	// The weight update log must be strictly ordered with at most one entry
	// per block and non-negative aggregate weights.
	lastBlock := int64(-1)
	for i, entry := range gs.WeightLog {
		if entry.AtBlock <= lastBlock {
			return fmt.Errorf("weight log entry %d is not strictly ordered by block", i)
		}
		if entry.AggregateWeight.IsNil() || entry.AggregateWeight.IsNegative() {
			return fmt.Errorf("weight log entry %d has an invalid aggregate weight", i)
		}
		lastBlock = entry.AtBlock
	}

	poolIndexMap := make(map[string]struct{})
	for _, elem := range gs.PoolList {
		if elem.PoolId == "" {
			return fmt.Errorf("pool record with empty pool id")
		}
		if _, ok := poolIndexMap[elem.PoolId]; ok {
			return fmt.Errorf("duplicated pool id %s", elem.PoolId)
		}
		poolIndexMap[elem.PoolId] = struct{}{}

		if elem.State.Weight.IsNil() || elem.State.Weight.IsNegative() {
			return fmt.Errorf("pool %s has an invalid weight", elem.PoolId)
		}
		if elem.State.AccRewardPerShare.IsNil() || elem.State.AccRewardPerShare.IsNegative() {
			return fmt.Errorf("pool %s has an invalid reward accumulator", elem.PoolId)
		}
		if len(gs.WeightLog) == 0 && elem.State.LastProcessedLogIndex != 0 {
			return fmt.Errorf("pool %s references a weight log entry but the log is empty", elem.PoolId)
		}
		if len(gs.WeightLog) > 0 && elem.State.LastProcessedLogIndex >= uint64(len(gs.WeightLog)) {
			return fmt.Errorf("pool %s references weight log index %d past the log end", elem.PoolId, elem.State.LastProcessedLogIndex)
		}
	}

	accountIndexMap := make(map[string]struct{})
	for _, elem := range gs.Accounts {
		if _, ok := poolIndexMap[elem.PoolId]; !ok {
			return fmt.Errorf("account for unknown pool %s", elem.PoolId)
		}
		if elem.User == "" {
			return fmt.Errorf("account record with empty user address")
		}
		index := elem.PoolId + "/" + elem.User
		if _, ok := accountIndexMap[index]; ok {
			return fmt.Errorf("duplicated account for %s", index)
		}
		accountIndexMap[index] = struct{}{}

		if elem.Account.RewardDebt.IsNil() || elem.Account.RewardDebt.IsNegative() {
			return fmt.Errorf("account %s has an invalid reward debt", index)
		}
		if elem.Account.Unclaimed.IsNil() || elem.Account.Unclaimed.IsNegative() {
			return fmt.Errorf("account %s has an invalid unclaimed balance", index)
		}
	}

	return gs.Params.Validate()
}
