package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareKeeper is the pool unit ledger this engine reads balances from. Share
// minting and burning stay outside the reward core; the engine only ever sees
// pre-delta balances.
type ShareKeeper interface {
	TotalShares(ctx context.Context, poolId string) math.Int
	ShareBalance(ctx context.Context, poolId string, user string) math.Int
}

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// RegistryKeeper reports whether a pool has been administratively detached
// from this reward engine. Detached pools freeze: commits become no-ops and
// only already-unclaimed rewards remain payable.
type RegistryKeeper interface {
	IsRewardControllerDetached(ctx context.Context, poolId string) bool
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
