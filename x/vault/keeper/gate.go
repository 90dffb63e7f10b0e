package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/vault/types"
)

// RequestWithdraw starts the withdrawal cooldown for a user. Allowed only when
// no request is outstanding or the previous enable window has expired; the new
// enable window opens a full pending period from now.
func (k Keeper) RequestWithdraw(ctx context.Context, msg types.MsgRequestWithdraw) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params := k.GetParams(sdkCtx)
	now := sdkCtx.BlockTime().Unix()

	current := k.GetWithdrawEnableTime(sdkCtx, msg.PoolId, msg.Requester)
	if current != 0 && now < current+params.WithdrawRequestEnablePeriod {
		return errorsmod.Wrapf(types.ErrPendingWithdrawRequest,
			"enable window for %s runs until %d, current time %d",
			msg.Requester, current+params.WithdrawRequestEnablePeriod, now)
	}

	enableTime := now + params.WithdrawRequestPendingPeriod
	k.SetWithdrawEnableTime(sdkCtx, msg.PoolId, msg.Requester, enableTime)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestWithdraw,
			sdk.NewAttribute(types.AttributeKeyPoolId, msg.PoolId),
			sdk.NewAttribute(types.AttributeKeyUser, msg.Requester),
			sdk.NewAttribute(types.AttributeKeyEnableTime, fmt.Sprintf("%d", enableTime)),
		),
	)

	k.Logger().Info("withdraw requested",
		"pool_id", msg.PoolId,
		"user", msg.Requester,
		"enable_time", enableTime,
	)

	return nil
}

// WithdrawEnabled reports whether a user may withdraw right now: the global
// safety cycle must be open and the user must be inside their enable window.
func (k Keeper) WithdrawEnabled(ctx sdk.Context, poolId, user string) bool {
	params := k.GetParams(ctx)
	enableStart := k.GetWithdrawEnableTime(ctx, poolId, user)
	return types.WithdrawEnabled(ctx.BlockTime().Unix(), enableStart, params)
}

// checkWithdrawable verifies every precondition of a withdrawal exit: no
// active external claim and an open gate.
func (k Keeper) checkWithdrawable(ctx sdk.Context, poolId, user string) error {
	if k.claimKeeper.HasActiveClaim(ctx, user) {
		return errorsmod.Wrapf(types.ErrInvalidWithdrawRequest,
			"an active claim blocks withdrawals for %s", user)
	}
	if !k.WithdrawEnabled(ctx, poolId, user) {
		return errorsmod.Wrapf(types.ErrInvalidWithdrawRequest,
			"withdraw window closed for %s in pool %s", user, poolId)
	}
	return nil
}
