package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RewardsKeeper is the reward engine notified around every share balance
// change.
type RewardsKeeper interface {
	Commit(ctx context.Context, poolId, user string, delta math.Int, increase bool) error
}

// ShareKeeper is the share-token ledger backing each pool. Conversion
// arithmetic between shares and assets lives there, outside this module.
type ShareKeeper interface {
	TotalShares(ctx context.Context, poolId string) math.Int
	ShareBalance(ctx context.Context, poolId string, user string) math.Int
	MintShares(ctx context.Context, poolId string, user string, shares math.Int) error
	BurnShares(ctx context.Context, poolId string, user string, shares math.Int) error
	SharesToAssets(ctx context.Context, poolId string, shares math.Int) math.Int
	AssetsToShares(ctx context.Context, poolId string, assets math.Int) math.Int
}

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// ClaimKeeper reports whether an external claim blocks a user's withdrawals.
type ClaimKeeper interface {
	HasActiveClaim(ctx context.Context, user string) bool
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
