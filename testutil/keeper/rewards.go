package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vaultline/vaultline/x/rewards/keeper"
	"github.com/vaultline/vaultline/x/rewards/types"
)

// RewardsMocks holds the collaborators wired into a test rewards keeper.
type RewardsMocks struct {
	ShareKeeper    *InMemoryShareKeeper
	BankKeeper     *MockBankKeeper
	RegistryKeeper *InMemoryRegistryKeeper
}

func RewardsKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := RewardsKeeperWithMocks(t)
	return k, ctx
}

func RewardsKeeperWithMocks(t testing.TB) (keeper.Keeper, sdk.Context, RewardsMocks) {
	ctrl := gomock.NewController(t)
	mocks := RewardsMocks{
		ShareKeeper:    NewInMemoryShareKeeper(),
		BankKeeper:     NewMockBankKeeper(ctrl),
		RegistryKeeper: NewInMemoryRegistryKeeper(),
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		mocks.ShareKeeper,
		mocks.BankKeeper,
		mocks.RegistryKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx, mocks
}
