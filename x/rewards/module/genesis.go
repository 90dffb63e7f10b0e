package rewards

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultline/vaultline/x/rewards/keeper"
	"github.com/vaultline/vaultline/x/rewards/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetSchedule(ctx, genState.Schedule); err != nil {
		panic(err)
	}

	// Replay the weight update log in order
	for i, entry := range genState.WeightLog {
		k.SetWeightLogEntry(ctx, uint64(i), entry)
	}

	// Set all the pool states
	for _, elem := range genState.PoolList {
		k.SetPool(ctx, elem.PoolId, elem.State)
	}

	// Set all the reward accounts
	for _, elem := range genState.Accounts {
		k.SetAccount(ctx, elem.PoolId, elem.User, elem.Account)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	if schedule, found := k.GetSchedule(ctx); found {
		genesis.Schedule = schedule
	}

	genesis.WeightLog = k.GetWeightLog(ctx)
	genesis.PoolList = k.GetAllPools(ctx)
	genesis.Accounts = k.GetAllAccounts(ctx)

	return genesis
}
