package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/vault/types"
)

// Deposit escrows assets into the pool, mints the matching shares and commits
// the balance change to the reward engine. A deposit always returns the user's
// withdrawal gate to idle, so a fresh request is needed before exiting.
func (k Keeper) Deposit(ctx context.Context, msg types.MsgDeposit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	depositorAddr, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return err
	}

	params := k.GetParams(sdkCtx)
	coins := sdk.NewCoins(sdk.NewCoin(params.AssetDenom, msg.Amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositorAddr, types.ModuleName, coins); err != nil {
		return errorsmod.Wrapf(err, "failed to escrow deposit from %s", msg.Depositor)
	}

	shares := k.shareKeeper.AssetsToShares(ctx, msg.PoolId, msg.Amount)
	if err := k.rewardsKeeper.Commit(ctx, msg.PoolId, msg.Depositor, shares, true); err != nil {
		return err
	}
	if err := k.shareKeeper.MintShares(ctx, msg.PoolId, msg.Depositor, shares); err != nil {
		return err
	}

	k.resetWithdrawRequest(sdkCtx, msg.PoolId, msg.Depositor)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyPoolId, msg.PoolId),
			sdk.NewAttribute(types.AttributeKeyUser, msg.Depositor),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	k.Logger().Info("deposit",
		"pool_id", msg.PoolId,
		"user", msg.Depositor,
		"amount", msg.Amount.String(),
		"shares", shares.String(),
	)

	return nil
}

// Withdraw exits assets from a pool after the timing gate opens. The matching
// shares are burned, the reward engine is committed with the decrease, and the
// gate returns to idle.
func (k Keeper) Withdraw(ctx context.Context, msg types.MsgWithdraw) error {
	if !k.guard.enter() {
		return types.ErrReentrantCall
	}
	defer k.guard.exit()

	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if !msg.Amount.IsPositive() {
		return types.ErrWithdrawMustBeGreaterThanZero
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := k.checkWithdrawable(sdkCtx, msg.PoolId, msg.Withdrawer); err != nil {
		return err
	}

	balance := k.shareKeeper.ShareBalance(ctx, msg.PoolId, msg.Withdrawer)
	maxAssets := k.shareKeeper.SharesToAssets(ctx, msg.PoolId, balance)
	if msg.Amount.GT(maxAssets) {
		return errorsmod.Wrapf(types.ErrWithdrawMoreThanMax,
			"requested %s, entitlement %s", msg.Amount, maxAssets)
	}

	shares := k.shareKeeper.AssetsToShares(ctx, msg.PoolId, msg.Amount)
	if err := k.payOut(sdkCtx, msg.PoolId, msg.Withdrawer, msg.Amount, shares, true); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyPoolId, msg.PoolId),
			sdk.NewAttribute(types.AttributeKeyUser, msg.Withdrawer),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	k.Logger().Info("withdraw",
		"pool_id", msg.PoolId,
		"user", msg.Withdrawer,
		"amount", msg.Amount.String(),
		"shares", shares.String(),
	)

	return nil
}

// Redeem exits a pool by share count. The share amount is converted to assets
// by the share ledger; a redemption that rounds to zero assets is rejected.
func (k Keeper) Redeem(ctx context.Context, msg types.MsgRedeem) error {
	if !k.guard.enter() {
		return types.ErrReentrantCall
	}
	defer k.guard.exit()

	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := k.checkWithdrawable(sdkCtx, msg.PoolId, msg.Redeemer); err != nil {
		return err
	}

	balance := k.shareKeeper.ShareBalance(ctx, msg.PoolId, msg.Redeemer)
	if msg.Shares.GT(balance) {
		return errorsmod.Wrapf(types.ErrRedeemMoreThanMax,
			"requested %s, balance %s", msg.Shares, balance)
	}

	assets := k.shareKeeper.SharesToAssets(ctx, msg.PoolId, msg.Shares)
	if !assets.IsPositive() {
		return types.ErrWithdrawMustBeGreaterThanZero
	}

	if err := k.payOut(sdkCtx, msg.PoolId, msg.Redeemer, assets, msg.Shares, true); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRedeem,
			sdk.NewAttribute(types.AttributeKeyPoolId, msg.PoolId),
			sdk.NewAttribute(types.AttributeKeyUser, msg.Redeemer),
			sdk.NewAttribute(types.AttributeKeyAmount, assets.String()),
			sdk.NewAttribute(types.AttributeKeyShares, msg.Shares.String()),
		),
	)

	k.Logger().Info("redeem",
		"pool_id", msg.PoolId,
		"user", msg.Redeemer,
		"amount", assets.String(),
		"shares", msg.Shares.String(),
	)

	return nil
}

// EmergencyWithdraw exits a user's entire position while the gate is open,
// forfeiting unclaimed rewards: the reward engine is deliberately not
// committed, so the stale debt dissolves on the next zero-balance commit.
func (k Keeper) EmergencyWithdraw(ctx context.Context, msg types.MsgEmergencyWithdraw) error {
	if !k.guard.enter() {
		return types.ErrReentrantCall
	}
	defer k.guard.exit()

	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := k.checkWithdrawable(sdkCtx, msg.PoolId, msg.Withdrawer); err != nil {
		return err
	}

	shares := k.shareKeeper.ShareBalance(ctx, msg.PoolId, msg.Withdrawer)
	if !shares.IsPositive() {
		return types.ErrWithdrawMustBeGreaterThanZero
	}
	assets := k.shareKeeper.SharesToAssets(ctx, msg.PoolId, shares)

	if err := k.payOut(sdkCtx, msg.PoolId, msg.Withdrawer, assets, shares, false); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyWithdraw,
			sdk.NewAttribute(types.AttributeKeyPoolId, msg.PoolId),
			sdk.NewAttribute(types.AttributeKeyUser, msg.Withdrawer),
			sdk.NewAttribute(types.AttributeKeyAmount, assets.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	k.Logger().Info("emergency withdraw",
		"pool_id", msg.PoolId,
		"user", msg.Withdrawer,
		"amount", assets.String(),
		"shares", shares.String(),
	)

	return nil
}

// payOut performs the common exit sequence: optional reward commit, share
// burn, asset transfer, and gate reset.
func (k Keeper) payOut(ctx sdk.Context, poolId, user string, assets, shares math.Int, commitRewards bool) error {
	if commitRewards {
		if err := k.rewardsKeeper.Commit(ctx, poolId, user, shares, false); err != nil {
			return err
		}
	}
	if err := k.shareKeeper.BurnShares(ctx, poolId, user, shares); err != nil {
		return err
	}

	userAddr, err := sdk.AccAddressFromBech32(user)
	if err != nil {
		return err
	}
	params := k.GetParams(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(params.AssetDenom, assets))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, userAddr, coins); err != nil {
		return errorsmod.Wrapf(err, "failed to pay out to %s", user)
	}

	k.resetWithdrawRequest(ctx, poolId, user)
	return nil
}
