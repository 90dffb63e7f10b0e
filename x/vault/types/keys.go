package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "vault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_vault"
)

var (
	ParamsKey             = collections.NewPrefix(0)
	WithdrawEnableTimeKey = collections.NewPrefix(1)
)
