package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/rewards/types"
)

// SetPoolWeight changes a pool's share of the platform-wide emission and
// records the new aggregate weight in the weight update log. The pool is
// checkpointed first so the old weight is fully credited for every block up to
// now. Unknown pools are bootstrapped with zero state on first use.
func (k Keeper) SetPoolWeight(ctx context.Context, authority, poolId string, newWeight math.Int) error {
	if k.authority != authority {
		return errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.authority, authority)
	}
	if newWeight.IsNil() || newWeight.IsNegative() {
		return errorsmod.Wrapf(types.ErrInvalidWeight, "got %s", newWeight)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, found := k.GetPool(sdkCtx, poolId); !found {
		k.SetPool(sdkCtx, poolId, types.NewPoolState())
	}

	// Credit the old weight for all blocks up to the current one before the
	// change takes effect.
	if err := k.CheckpointPool(sdkCtx, poolId); err != nil {
		return err
	}

	pool, _ := k.GetPool(sdkCtx, poolId)
	delta := newWeight.Sub(pool.Weight)

	height := sdkCtx.BlockHeight()
	count := k.weightLogLen(sdkCtx)
	switch {
	case count == 0:
		k.SetWeightLogEntry(sdkCtx, 0, types.WeightUpdateEntry{
			AtBlock:         height,
			AggregateWeight: newWeight,
		})
	default:
		last := k.weightLogEntry(sdkCtx, count-1)
		if last.AtBlock == height {
			// Same-block changes overwrite the tail entry instead of
			// appending, so the log keeps one entry per block.
			last.AggregateWeight = last.AggregateWeight.Add(delta)
			k.SetWeightLogEntry(sdkCtx, count-1, last)
		} else {
			k.SetWeightLogEntry(sdkCtx, count, types.WeightUpdateEntry{
				AtBlock:         height,
				AggregateWeight: last.AggregateWeight.Add(delta),
			})
		}
	}

	pool.Weight = newWeight
	k.SetPool(sdkCtx, poolId, pool)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetPoolWeight,
			sdk.NewAttribute(types.AttributeKeyPoolId, poolId),
			sdk.NewAttribute(types.AttributeKeyWeight, newWeight.String()),
		),
	)

	k.Logger().Info("pool weight updated",
		"pool_id", poolId,
		"weight", newWeight.String(),
		"delta", delta.String(),
	)

	return nil
}
