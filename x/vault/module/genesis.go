package vault

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/vault/keeper"
	"github.com/vaultline/vaultline/x/vault/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	// Set all the outstanding withdraw requests
	for _, elem := range genState.WithdrawRequests {
		k.SetWithdrawEnableTime(ctx, elem.PoolId, elem.User, elem.EnableTime)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.WithdrawRequests = k.GetAllWithdrawRequests(ctx)

	return genesis
}
