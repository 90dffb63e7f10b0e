package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/vaultline/vaultline/x/rewards/types"
)

func TestGenesisState_Validate(t *testing.T) {
	validPool := types.PoolRecord{
		PoolId: "pool-a",
		State: types.PoolState{
			AccRewardPerShare:     math.ZeroInt(),
			LastProcessedLogIndex: 0,
			LastCheckpointBlock:   100,
			Weight:                math.NewInt(1),
		},
	}

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
				Params:   types.DefaultParams(),
				Schedule: types.NewEpochSchedule(100, 1000, math.NewInt(5)),
				WeightLog: []types.WeightUpdateEntry{
					{AtBlock: 100, AggregateWeight: math.NewInt(4)},
					{AtBlock: 200, AggregateWeight: math.NewInt(5)},
				},
				PoolList: []types.PoolRecord{validPool},
				Accounts: []types.AccountRecord{
					{
						PoolId:  "pool-a",
						User:    "user-1",
						Account: types.NewRewardAccount(),
					},
				},
			},
			valid: true,
		},
		{
			desc: "unordered weight log",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Schedule: types.NewEpochSchedule(100, 1000, math.NewInt(5)),
				WeightLog: []types.WeightUpdateEntry{
					{AtBlock: 200, AggregateWeight: math.NewInt(4)},
					{AtBlock: 100, AggregateWeight: math.NewInt(5)},
				},
			},
			valid: false,
		},
		{
			desc: "two weight log entries for one block",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Schedule: types.NewEpochSchedule(100, 1000, math.NewInt(5)),
				WeightLog: []types.WeightUpdateEntry{
					{AtBlock: 100, AggregateWeight: math.NewInt(4)},
					{AtBlock: 100, AggregateWeight: math.NewInt(5)},
				},
			},
			valid: false,
		},
		{
			desc: "duplicated pool",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Schedule: types.NewEpochSchedule(100, 1000, math.NewInt(5)),
				PoolList: []types.PoolRecord{validPool, validPool},
			},
			valid: false,
		},
		{
			desc: "pool cursor past the log end",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Schedule: types.NewEpochSchedule(100, 1000, math.NewInt(5)),
				WeightLog: []types.WeightUpdateEntry{
					{AtBlock: 100, AggregateWeight: math.NewInt(4)},
				},
				PoolList: []types.PoolRecord{
					{
						PoolId: "pool-a",
						State: types.PoolState{
							AccRewardPerShare:     math.ZeroInt(),
							LastProcessedLogIndex: 1,
							LastCheckpointBlock:   100,
							Weight:                math.NewInt(1),
						},
					},
				},
			},
			valid: false,
		},
		{
			desc: "account for unknown pool",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Schedule: types.NewEpochSchedule(100, 1000, math.NewInt(5)),
				Accounts: []types.AccountRecord{
					{
						PoolId:  "pool-z",
						User:    "user-1",
						Account: types.NewRewardAccount(),
					},
				},
			},
			valid: false,
		},
		{
			desc: "invalid schedule rate",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Schedule: types.NewEpochSchedule(100, 1000, math.NewInt(-5)),
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
