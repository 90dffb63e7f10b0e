package vault_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/vaultline/vaultline/testutil/keeper"
	"github.com/vaultline/vaultline/testutil/sample"
	vault "github.com/vaultline/vaultline/x/vault/module"
	"github.com/vaultline/vaultline/x/vault/types"
)

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		WithdrawRequests: []types.WithdrawRequestRecord{
			{PoolId: "pool-a", User: sample.AccAddress(), EnableTime: 604800},
			{PoolId: "pool-b", User: sample.AccAddress(), EnableTime: 1209600},
		},
	}
	require.NoError(t, genesisState.Validate())

	k, ctx := keepertest.VaultKeeper(t)
	vault.InitGenesis(ctx, k, genesisState)
	got := vault.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.ElementsMatch(t, genesisState.WithdrawRequests, got.WithdrawRequests)
}
