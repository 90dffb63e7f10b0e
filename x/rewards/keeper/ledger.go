package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/rewards/types"
)

// Commit refreshes a user's reward bookkeeping around a share balance change.
// The share ledger still holds the pre-delta balance when this is called; the
// delta describes the change about to be applied. Detached pools skip entirely.
func (k Keeper) Commit(ctx context.Context, poolId, user string, delta math.Int, increase bool) error {
	if k.registryKeeper.IsRewardControllerDetached(ctx, poolId) {
		return nil
	}
	if delta.IsNil() || delta.IsNegative() {
		return errorsmod.Wrapf(types.ErrInvalidShareDelta, "got %s", delta)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, found := k.GetPool(sdkCtx, poolId); !found {
		// Pools may see deposits before their first weight assignment; they
		// accrue nothing until weighted.
		k.SetPool(sdkCtx, poolId, types.NewPoolState())
	}
	if err := k.CheckpointPool(sdkCtx, poolId); err != nil {
		return err
	}
	pool, _ := k.GetPool(sdkCtx, poolId)

	balance := k.shareKeeper.ShareBalance(ctx, poolId, user)
	account := k.GetAccount(sdkCtx, poolId, user)

	if balance.IsPositive() {
		accrued := balance.Mul(pool.AccRewardPerShare).Quo(types.SharePrecision).Sub(account.RewardDebt)
		account.Unclaimed = account.Unclaimed.Add(accrued)
	}

	newBalance := balance
	if increase {
		newBalance = balance.Add(delta)
	} else {
		newBalance = balance.Sub(delta)
		if newBalance.IsNegative() {
			return errorsmod.Wrapf(types.ErrInsufficientShares,
				"balance %s, decrease %s", balance, delta)
		}
	}

	account.RewardDebt = newBalance.Mul(pool.AccRewardPerShare).Quo(types.SharePrecision)
	k.SetAccount(sdkCtx, poolId, user, account)

	return nil
}

// ClaimReward pays out a user's unclaimed rewards. The account is refreshed
// with a balance-neutral commit first, then the unclaimed balance is zeroed
// and transferred from the module account.
func (k Keeper) ClaimReward(ctx context.Context, poolId, user string) (math.Int, error) {
	if err := k.Commit(ctx, poolId, user, math.ZeroInt(), true); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	account := k.GetAccount(sdkCtx, poolId, user)
	amount := account.Unclaimed
	if !amount.IsPositive() {
		return math.ZeroInt(), nil
	}

	userAddr, err := sdk.AccAddressFromBech32(user)
	if err != nil {
		return math.ZeroInt(), errorsmod.Wrapf(err, "invalid user address %s", user)
	}

	account.Unclaimed = math.ZeroInt()
	k.SetAccount(sdkCtx, poolId, user, account)

	params := k.GetParams(sdkCtx)
	coins := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, userAddr, coins); err != nil {
		return math.ZeroInt(), errorsmod.Wrapf(err, "failed to pay out reward to %s", user)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimReward,
			sdk.NewAttribute(types.AttributeKeyPoolId, poolId),
			sdk.NewAttribute(types.AttributeKeyUser, user),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	k.Logger().Info("reward claimed",
		"pool_id", poolId,
		"user", user,
		"amount", amount.String(),
	)

	return amount, nil
}

// PendingReward computes what a user could claim right now, simulating a
// checkpoint without mutating state. Detached pools return only the frozen
// unclaimed balance.
func (k Keeper) PendingReward(ctx context.Context, poolId, user string) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool, found := k.GetPool(sdkCtx, poolId)
	if !found {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrPoolNotFound, "pool %s", poolId)
	}
	account := k.GetAccount(sdkCtx, poolId, user)

	if k.registryKeeper.IsRewardControllerDetached(ctx, poolId) {
		return account.Unclaimed, nil
	}

	acc := pool.AccRewardPerShare
	totalShares := k.shareKeeper.TotalShares(ctx, poolId)
	if pool.LastCheckpointBlock != 0 && sdkCtx.BlockHeight() > pool.LastCheckpointBlock && totalShares.IsPositive() {
		reward := k.accruedReward(sdkCtx, pool, pool.LastCheckpointBlock)
		acc = acc.Add(reward.Mul(types.SharePrecision).Quo(totalShares))
	}

	balance := k.shareKeeper.ShareBalance(ctx, poolId, user)
	return balance.Mul(acc).Quo(types.SharePrecision).Add(account.Unclaimed).Sub(account.RewardDebt), nil
}
