package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgRequestWithdraw starts the withdrawal cooldown for a depositor.
type MsgRequestWithdraw struct {
	PoolId    string `json:"pool_id"`
	Requester string `json:"requester"`
}

func (m MsgRequestWithdraw) ValidateBasic() error {
	if strings.TrimSpace(m.PoolId) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "pool id cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(m.Requester); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid requester address: %s", err)
	}
	return nil
}

// MsgDeposit adds assets to a pool in exchange for shares.
type MsgDeposit struct {
	PoolId    string   `json:"pool_id"`
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

func (m MsgDeposit) ValidateBasic() error {
	if strings.TrimSpace(m.PoolId) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "pool id cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid depositor address: %s", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "deposit amount must be positive")
	}
	return nil
}

// MsgWithdraw exits assets from a pool, burning the matching shares.
type MsgWithdraw struct {
	PoolId     string   `json:"pool_id"`
	Withdrawer string   `json:"withdrawer"`
	Amount     math.Int `json:"amount"`
}

func (m MsgWithdraw) ValidateBasic() error {
	if strings.TrimSpace(m.PoolId) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "pool id cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(m.Withdrawer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid withdrawer address: %s", err)
	}
	if m.Amount.IsNil() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "withdraw amount cannot be nil")
	}
	return nil
}

// MsgRedeem exits a pool by share count rather than asset amount.
type MsgRedeem struct {
	PoolId   string   `json:"pool_id"`
	Redeemer string   `json:"redeemer"`
	Shares   math.Int `json:"shares"`
}

func (m MsgRedeem) ValidateBasic() error {
	if strings.TrimSpace(m.PoolId) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "pool id cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(m.Redeemer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid redeemer address: %s", err)
	}
	if m.Shares.IsNil() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "redeem shares cannot be nil")
	}
	return nil
}

// MsgEmergencyWithdraw exits a user's full position, forfeiting any unclaimed
// rewards.
type MsgEmergencyWithdraw struct {
	PoolId     string `json:"pool_id"`
	Withdrawer string `json:"withdrawer"`
}

func (m MsgEmergencyWithdraw) ValidateBasic() error {
	if strings.TrimSpace(m.PoolId) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "pool id cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(m.Withdrawer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid withdrawer address: %s", err)
	}
	return nil
}
