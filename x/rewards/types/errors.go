package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/rewards module sentinel errors
var (
	ErrInvalidSigner       = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for admin message")
	ErrEpochLengthZero     = sdkerrors.Register(ModuleName, 1101, "epoch length must be greater than zero")
	ErrInvalidSchedule     = sdkerrors.Register(ModuleName, 1102, "invalid emission schedule")
	ErrEpochAlreadyStarted = sdkerrors.Register(ModuleName, 1103, "cannot change the rate of a started epoch")
	ErrEpochOutOfRange     = sdkerrors.Register(ModuleName, 1104, "epoch index out of range")
	ErrPoolNotFound        = sdkerrors.Register(ModuleName, 1105, "pool not found")
	ErrInvalidWeight       = sdkerrors.Register(ModuleName, 1106, "pool weight cannot be negative")
	ErrInvalidShareDelta   = sdkerrors.Register(ModuleName, 1107, "share delta cannot be negative")
	ErrInsufficientShares  = sdkerrors.Register(ModuleName, 1108, "share decrease exceeds current balance")
)
