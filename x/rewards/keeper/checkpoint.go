package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/rewards/types"
)

// CheckpointPool advances a pool's accumulated reward per share up to the
// current block by replaying the weight update log since the pool's last
// checkpoint. Idempotent within a block.
func (k Keeper) CheckpointPool(ctx sdk.Context, poolId string) error {
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "pool %s", poolId)
	}

	height := ctx.BlockHeight()
	if pool.LastCheckpointBlock == 0 {
		// First checkpoint: no reward accrues before this point. The cursor
		// starts at the log tail so earlier segments never replay.
		start := int64(0)
		if schedule, ok := k.GetSchedule(ctx); ok {
			start = schedule.StartBlock
		}
		pool.LastCheckpointBlock = height
		if start > height {
			pool.LastCheckpointBlock = start
		}
		if count := k.weightLogLen(ctx); count > 0 {
			pool.LastProcessedLogIndex = count - 1
		}
		k.SetPool(ctx, poolId, pool)
		return nil
	}

	if height <= pool.LastCheckpointBlock {
		return nil
	}

	totalShares := k.shareKeeper.TotalShares(ctx, poolId)
	if totalShares.IsPositive() {
		reward := k.accruedReward(ctx, pool, pool.LastCheckpointBlock)
		if reward.IsPositive() {
			pool.AccRewardPerShare = pool.AccRewardPerShare.Add(
				reward.Mul(types.SharePrecision).Quo(totalShares))
		}
	}

	pool.LastCheckpointBlock = height
	if count := k.weightLogLen(ctx); count > 0 {
		pool.LastProcessedLogIndex = count - 1
	}
	k.SetPool(ctx, poolId, pool)

	return nil
}

// accruedReward replays the weight update log from the pool's cursor and sums
// the emission earned since fromBlock. Every segment is priced with the pool's
// current weight against the historical aggregate weight: only the denominator
// is historical. That asymmetry matches the platform's accounting rules and
// must not be changed in isolation.
func (k Keeper) accruedReward(ctx sdk.Context, pool types.PoolState, fromBlock int64) math.Int {
	count := k.weightLogLen(ctx)
	if count == 0 {
		return math.ZeroInt()
	}
	schedule, found := k.GetSchedule(ctx)
	if !found {
		return math.ZeroInt()
	}

	reward := math.ZeroInt()
	from := fromBlock
	for i := pool.LastProcessedLogIndex; i+1 < count; i++ {
		entry := k.weightLogEntry(ctx, i)
		next := k.weightLogEntry(ctx, i+1)
		reward = reward.Add(schedule.EmissionInRange(from, next.AtBlock, pool.Weight, entry.AggregateWeight))
		from = next.AtBlock
	}

	last := k.weightLogEntry(ctx, count-1)
	return reward.Add(schedule.EmissionInRange(from, ctx.BlockHeight(), pool.Weight, last.AggregateWeight))
}

// PoolReward is the read-only view of the emission a pool has earned since
// fromBlock, without mutating any checkpoint state.
func (k Keeper) PoolReward(ctx sdk.Context, poolId string, fromBlock int64) (math.Int, error) {
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrPoolNotFound, "pool %s", poolId)
	}
	return k.accruedReward(ctx, pool, fromBlock), nil
}
