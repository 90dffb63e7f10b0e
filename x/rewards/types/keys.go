package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "rewards"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_rewards"
)

var (
	ParamsKey         = collections.NewPrefix(0)
	ScheduleKey       = collections.NewPrefix(1)
	WeightLogKey      = collections.NewPrefix(2)
	WeightLogCountKey = collections.NewPrefix(3)
	PoolsKey          = collections.NewPrefix(4)
	AccountsKey       = collections.NewPrefix(5)
)
