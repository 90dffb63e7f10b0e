package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/rewards/types"
)

// SetSchedule validates and stores the emission schedule. Called at genesis;
// later changes go through UpdateEpochRate so started epochs stay immutable.
func (k Keeper) SetSchedule(ctx sdk.Context, schedule types.EpochSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	return k.Schedule.Set(ctx, schedule)
}

// GetSchedule returns the stored emission schedule.
func (k Keeper) GetSchedule(ctx sdk.Context) (types.EpochSchedule, bool) {
	schedule, err := k.Schedule.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.EpochSchedule{}, false
		}
		panic(err)
	}
	return schedule, true
}

// UpdateEpochRate reconfigures the per-block rate of a single epoch. Only
// epochs that have not started yet may change; rates already reached are
// immutable.
func (k Keeper) UpdateEpochRate(ctx context.Context, authority string, epochIndex uint64, rate math.Int) error {
	if k.authority != authority {
		return errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.authority, authority)
	}
	if rate.IsNil() || rate.IsNegative() {
		return errorsmod.Wrap(types.ErrInvalidSchedule, "epoch rate must be a non-negative integer")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	schedule, found := k.GetSchedule(sdkCtx)
	if !found {
		return errorsmod.Wrap(types.ErrInvalidSchedule, "no emission schedule configured")
	}
	if epochIndex >= types.EpochCount {
		return errorsmod.Wrapf(types.ErrEpochOutOfRange, "epoch %d, schedule has %d epochs", epochIndex, types.EpochCount)
	}
	if schedule.EpochStartBlock(int(epochIndex)) <= sdkCtx.BlockHeight() {
		return errorsmod.Wrapf(types.ErrEpochAlreadyStarted, "epoch %d started at block %d, current block %d",
			epochIndex, schedule.EpochStartBlock(int(epochIndex)), sdkCtx.BlockHeight())
	}

	schedule.RatePerBlock[epochIndex] = rate
	if err := k.Schedule.Set(sdkCtx, schedule); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateEpochRate,
			sdk.NewAttribute(types.AttributeKeyEpochIndex, fmt.Sprintf("%d", epochIndex)),
			sdk.NewAttribute(types.AttributeKeyRate, rate.String()),
		),
	)

	k.Logger().Info("epoch rate updated",
		"epoch_index", epochIndex,
		"rate", rate.String(),
	)

	return nil
}

// EmissionInRange computes the reward a pool of the given weight earns over
// [fromBlock, toBlock) against the supplied aggregate weight. Read-only view
// over the stored schedule; returns zero when no schedule is configured.
func (k Keeper) EmissionInRange(ctx sdk.Context, fromBlock, toBlock int64, weight, totalWeight math.Int) math.Int {
	schedule, found := k.GetSchedule(ctx)
	if !found {
		return math.ZeroInt()
	}
	return schedule.EmissionInRange(fromBlock, toBlock, weight, totalWeight)
}
