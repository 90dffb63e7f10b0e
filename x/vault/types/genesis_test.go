package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultline/vaultline/x/vault/types"
)

func TestGenesisState_Validate(t *testing.T) {
	tests := []struct {
		desc     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			desc:     "default is valid",
			genState: types.DefaultGenesis(),
			valid:    true,
		},
		{
			desc: "valid genesis state",
			genState: &types.GenesisState{
				Params: types.DefaultParams(),
				WithdrawRequests: []types.WithdrawRequestRecord{
					{PoolId: "pool-a", User: "user-1", EnableTime: 1000},
					{PoolId: "pool-a", User: "user-2", EnableTime: 2000},
				},
			},
			valid: true,
		},
		{
			desc: "duplicated withdraw request",
			genState: &types.GenesisState{
				Params: types.DefaultParams(),
				WithdrawRequests: []types.WithdrawRequestRecord{
					{PoolId: "pool-a", User: "user-1", EnableTime: 1000},
					{PoolId: "pool-a", User: "user-1", EnableTime: 2000},
				},
			},
			valid: false,
		},
		{
			desc: "non-positive enable time",
			genState: &types.GenesisState{
				Params: types.DefaultParams(),
				WithdrawRequests: []types.WithdrawRequestRecord{
					{PoolId: "pool-a", User: "user-1", EnableTime: 0},
				},
			},
			valid: false,
		},
		{
			desc: "invalid params",
			genState: &types.GenesisState{
				Params: types.NewParams("uvlt", 0, 3600, 604800, 432000),
			},
			valid: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
