package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/vault module sentinel errors
var (
	ErrInvalidSigner                 = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for admin message")
	ErrPendingWithdrawRequest        = sdkerrors.Register(ModuleName, 1101, "a withdraw request is already pending for this account")
	ErrInvalidWithdrawRequest        = sdkerrors.Register(ModuleName, 1102, "withdraw is not enabled for this account")
	ErrWithdrawMustBeGreaterThanZero = sdkerrors.Register(ModuleName, 1103, "withdraw amount must be greater than zero")
	ErrWithdrawMoreThanMax           = sdkerrors.Register(ModuleName, 1104, "withdraw amount exceeds entitlement")
	ErrRedeemMoreThanMax             = sdkerrors.Register(ModuleName, 1105, "redeem shares exceed balance")
	ErrReentrantCall                 = sdkerrors.Register(ModuleName, 1106, "nested call into a guarded withdrawal operation")
)
