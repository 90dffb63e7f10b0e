package keeper

import (
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/internal/collcodec"
	"github.com/vaultline/vaultline/x/rewards/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing admin messages. Typically, this
		// should be the x/gov module account.
		authority string

		shareKeeper    types.ShareKeeper
		bankKeeper     types.BankKeeper
		registryKeeper types.RegistryKeeper

		Params         collections.Item[types.Params]
		Schedule       collections.Item[types.EpochSchedule]
		WeightLog      collections.Map[uint64, types.WeightUpdateEntry]
		WeightLogCount collections.Item[uint64]
		Pools          collections.Map[string, types.PoolState]
		Accounts       collections.Map[collections.Pair[string, string], types.RewardAccount]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	shareKeeper types.ShareKeeper,
	bankKeeper types.BankKeeper,
	registryKeeper types.RegistryKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		shareKeeper:    shareKeeper,
		bankKeeper:     bankKeeper,
		registryKeeper: registryKeeper,

		Params: collections.NewItem(
			sb,
			types.ParamsKey,
			"params",
			collcodec.JSONValue[types.Params]("params"),
		),
		Schedule: collections.NewItem(
			sb,
			types.ScheduleKey,
			"schedule",
			collcodec.JSONValue[types.EpochSchedule]("schedule"),
		),
		WeightLog: collections.NewMap(
			sb,
			types.WeightLogKey,
			"weight_log",
			collections.Uint64Key,
			collcodec.JSONValue[types.WeightUpdateEntry]("weight_update_entry"),
		),
		WeightLogCount: collections.NewItem(
			sb,
			types.WeightLogCountKey,
			"weight_log_count",
			collections.Uint64Value,
		),
		Pools: collections.NewMap(
			sb,
			types.PoolsKey,
			"pools",
			collections.StringKey,
			collcodec.JSONValue[types.PoolState]("pool_state"),
		),
		Accounts: collections.NewMap(
			sb,
			types.AccountsKey,
			"accounts",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collcodec.JSONValue[types.RewardAccount]("reward_account"),
		),
	}
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// SetParams stores the module parameters after validation.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}

// GetParams returns the current module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Params{}
		}
		panic(err)
	}
	return params
}

// GetPool retrieves a pool's accrual state.
func (k Keeper) GetPool(ctx sdk.Context, poolId string) (types.PoolState, bool) {
	pool, err := k.Pools.Get(ctx, poolId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PoolState{}, false
		}
		panic(err)
	}
	return pool, true
}

// SetPool stores a pool's accrual state.
func (k Keeper) SetPool(ctx sdk.Context, poolId string, pool types.PoolState) {
	if err := k.Pools.Set(ctx, poolId, pool); err != nil {
		panic(err)
	}
}

// GetAllPools returns every pool record, for genesis export.
func (k Keeper) GetAllPools(ctx sdk.Context) []types.PoolRecord {
	var pools []types.PoolRecord
	err := k.Pools.Walk(ctx, nil, func(poolId string, state types.PoolState) (bool, error) {
		pools = append(pools, types.PoolRecord{PoolId: poolId, State: state})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return pools
}

// GetAccount retrieves the reward account for a (pool, user) pair, returning a
// zeroed account when none exists yet.
func (k Keeper) GetAccount(ctx sdk.Context, poolId, user string) types.RewardAccount {
	account, err := k.Accounts.Get(ctx, collections.Join(poolId, user))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NewRewardAccount()
		}
		panic(err)
	}
	return account
}

// SetAccount stores the reward account for a (pool, user) pair.
func (k Keeper) SetAccount(ctx sdk.Context, poolId, user string, account types.RewardAccount) {
	if err := k.Accounts.Set(ctx, collections.Join(poolId, user), account); err != nil {
		panic(err)
	}
}

// GetAllAccounts returns every reward account record, for genesis export.
func (k Keeper) GetAllAccounts(ctx sdk.Context) []types.AccountRecord {
	var accounts []types.AccountRecord
	err := k.Accounts.Walk(ctx, nil, func(key collections.Pair[string, string], account types.RewardAccount) (bool, error) {
		accounts = append(accounts, types.AccountRecord{
			PoolId:  key.K1(),
			User:    key.K2(),
			Account: account,
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return accounts
}

// weightLogLen returns the number of entries in the weight update log.
func (k Keeper) weightLogLen(ctx sdk.Context) uint64 {
	count, err := k.WeightLogCount.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0
		}
		panic(err)
	}
	return count
}

// weightLogEntry returns the log entry at the given index. The index must be
// within bounds; the log is append-only so entries are never deleted.
func (k Keeper) weightLogEntry(ctx sdk.Context, index uint64) types.WeightUpdateEntry {
	entry, err := k.WeightLog.Get(ctx, index)
	if err != nil {
		panic(err)
	}
	return entry
}

// SetWeightLogEntry writes the log entry at the given index, extending the
// count when appending. Used by weight changes and genesis import; the log is
// otherwise append-only.
func (k Keeper) SetWeightLogEntry(ctx sdk.Context, index uint64, entry types.WeightUpdateEntry) {
	if err := k.WeightLog.Set(ctx, index, entry); err != nil {
		panic(err)
	}
	if count := k.weightLogLen(ctx); index >= count {
		if err := k.WeightLogCount.Set(ctx, index+1); err != nil {
			panic(err)
		}
	}
}

// GetWeightLog returns the full weight update log in order, for genesis export
// and queries.
func (k Keeper) GetWeightLog(ctx sdk.Context) []types.WeightUpdateEntry {
	count := k.weightLogLen(ctx)
	entries := make([]types.WeightUpdateEntry, 0, count)
	for i := uint64(0); i < count; i++ {
		entries = append(entries, k.weightLogEntry(ctx, i))
	}
	return entries
}
