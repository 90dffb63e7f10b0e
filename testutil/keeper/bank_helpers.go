package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"
)

// ExpectAny lets any bank transfer through without asserting arguments.
func (bank *MockBankKeeper) ExpectAny(ctx sdk.Context) {
	bank.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	bank.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

// ExpectPayout asserts a single module-to-account payout of the given amount.
func (bank *MockBankKeeper) ExpectPayout(ctx sdk.Context, module string, who string, denom string, amount int64) *gomock.Call {
	whoAddr, err := sdk.AccAddressFromBech32(who)
	if err != nil {
		panic(err)
	}
	return bank.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), module, whoAddr,
		sdk.NewCoins(sdk.NewInt64Coin(denom, amount)))
}
