package keeper

import (
	"errors"
	"fmt"
	"sync/atomic"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/internal/collcodec"
	"github.com/vaultline/vaultline/x/vault/types"
)

// entryGuard is the call-scoped mutual exclusion for the withdrawal operation
// class. Execution is transaction-atomic, so the only hazard is a nested call
// re-entering a guarded operation before it completes; entry is rejected, not
// queued.
type entryGuard struct {
	active atomic.Bool
}

func (g *entryGuard) enter() bool {
	return g.active.CompareAndSwap(false, true)
}

func (g *entryGuard) exit() {
	g.active.Store(false)
}

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing admin messages. Typically, this
		// should be the x/gov module account.
		authority string

		rewardsKeeper types.RewardsKeeper
		shareKeeper   types.ShareKeeper
		bankKeeper    types.BankKeeper
		claimKeeper   types.ClaimKeeper

		guard *entryGuard

		Params             collections.Item[types.Params]
		WithdrawEnableTime collections.Map[collections.Pair[string, string], uint64]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	rewardsKeeper types.RewardsKeeper,
	shareKeeper types.ShareKeeper,
	bankKeeper types.BankKeeper,
	claimKeeper types.ClaimKeeper,
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

		rewardsKeeper: rewardsKeeper,
		shareKeeper:   shareKeeper,
		bankKeeper:    bankKeeper,
		claimKeeper:   claimKeeper,

		guard: &entryGuard{},

		Params: collections.NewItem(
			sb,
			types.ParamsKey,
			"params",
			collcodec.JSONValue[types.Params]("params"),
		),
		WithdrawEnableTime: collections.NewMap(
			sb,
			types.WithdrawEnableTimeKey,
			"withdraw_enable_time",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			collections.Uint64Value,
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

// GetWithdrawEnableTime returns the start of a user's enable window, zero when
// no request is outstanding.
func (k Keeper) GetWithdrawEnableTime(ctx sdk.Context, poolId, user string) int64 {
	enableTime, err := k.WithdrawEnableTime.Get(ctx, collections.Join(poolId, user))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0
		}
		panic(err)
	}
	return int64(enableTime)
}

// SetWithdrawEnableTime stores the start of a user's enable window.
func (k Keeper) SetWithdrawEnableTime(ctx sdk.Context, poolId, user string, enableTime int64) {
	if err := k.WithdrawEnableTime.Set(ctx, collections.Join(poolId, user), uint64(enableTime)); err != nil {
		panic(err)
	}
}

// resetWithdrawRequest returns a user to the idle gate state.
func (k Keeper) resetWithdrawRequest(ctx sdk.Context, poolId, user string) {
	err := k.WithdrawEnableTime.Remove(ctx, collections.Join(poolId, user))
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		panic(err)
	}
}

// GetAllWithdrawRequests returns every outstanding withdraw request, for
// genesis export.
func (k Keeper) GetAllWithdrawRequests(ctx sdk.Context) []types.WithdrawRequestRecord {
	var requests []types.WithdrawRequestRecord
	err := k.WithdrawEnableTime.Walk(ctx, nil, func(key collections.Pair[string, string], enableTime uint64) (bool, error) {
		requests = append(requests, types.WithdrawRequestRecord{
			PoolId:     key.K1(),
			User:       key.K2(),
			EnableTime: int64(enableTime),
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return requests
}
