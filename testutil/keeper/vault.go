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

	rewardskeeper "github.com/vaultline/vaultline/x/rewards/keeper"
	rewardstypes "github.com/vaultline/vaultline/x/rewards/types"
	"github.com/vaultline/vaultline/x/vault/keeper"
	"github.com/vaultline/vaultline/x/vault/types"
)

// VaultMocks holds the collaborators wired into a test vault keeper. The
// rewards keeper is the real one, mounted on the same multistore, so gate and
// ledger interact the way they do in a host app.
type VaultMocks struct {
	RewardsKeeper rewardskeeper.Keeper
	ShareKeeper   *InMemoryShareKeeper
	BankKeeper    *MockBankKeeper
	ClaimKeeper   *InMemoryClaimKeeper
	Registry      *InMemoryRegistryKeeper
}

func VaultKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := VaultKeeperWithMocks(t)
	return k, ctx
}

func VaultKeeperWithMocks(t testing.TB) (keeper.Keeper, sdk.Context, VaultMocks) {
	ctrl := gomock.NewController(t)
	shareKeeper := NewInMemoryShareKeeper()
	bankKeeper := NewMockBankKeeper(ctrl)
	claimKeeper := NewInMemoryClaimKeeper()
	registryKeeper := NewInMemoryRegistryKeeper()

	vaultStoreKey := storetypes.NewKVStoreKey(types.StoreKey)
	rewardsStoreKey := storetypes.NewKVStoreKey(rewardstypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(vaultStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(rewardsStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	rewardsK := rewardskeeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(rewardsStoreKey),
		log.NewNopLogger(),
		authority.String(),
		shareKeeper,
		bankKeeper,
		registryKeeper,
	)

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(vaultStoreKey),
		log.NewNopLogger(),
		authority.String(),
		rewardsK,
		shareKeeper,
		bankKeeper,
		claimKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := rewardsK.SetParams(ctx, rewardstypes.DefaultParams()); err != nil {
		panic(err)
	}
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	mocks := VaultMocks{
		RewardsKeeper: rewardsK,
		ShareKeeper:   shareKeeper,
		BankKeeper:    bankKeeper,
		ClaimKeeper:   claimKeeper,
		Registry:      registryKeeper,
	}

	return k, ctx, mocks
}
