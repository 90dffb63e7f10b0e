package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/vaultline/vaultline/testutil/keeper"
	"github.com/vaultline/vaultline/testutil/sample"
	"github.com/vaultline/vaultline/x/rewards/keeper"
	"github.com/vaultline/vaultline/x/rewards/types"
)

type WeightTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper keeper.Keeper
}

func (suite *WeightTestSuite) SetupTest() {
	k, ctx := keepertest.RewardsKeeper(suite.T())
	suite.ctx = ctx.WithBlockHeight(100)
	suite.keeper = k
}

func TestWeightTestSuite(t *testing.T) {
	suite.Run(t, new(WeightTestSuite))
}

func (suite *WeightTestSuite) TestSetPoolWeightRejectsBadInput() {
	err := suite.keeper.SetPoolWeight(suite.ctx, sample.AccAddress(), "pool-a", math.NewInt(1))
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)

	err = suite.keeper.SetPoolWeight(suite.ctx, suite.keeper.GetAuthority(), "pool-a", math.NewInt(-1))
	suite.Require().ErrorIs(err, types.ErrInvalidWeight)
}

func (suite *WeightTestSuite) TestSetPoolWeightBootstrapsUnknownPool() {
	authority := suite.keeper.GetAuthority()

	_, found := suite.keeper.GetPool(suite.ctx, "pool-a")
	suite.Require().False(found)

	err := suite.keeper.SetPoolWeight(suite.ctx, authority, "pool-a", math.NewInt(2))
	suite.Require().NoError(err)

	pool, found := suite.keeper.GetPool(suite.ctx, "pool-a")
	suite.Require().True(found)
	suite.Require().Equal(math.NewInt(2), pool.Weight)
	suite.Require().True(pool.AccRewardPerShare.IsZero())
}

func (suite *WeightTestSuite) TestWeightLogSameBlockOverwritesTail() {
	authority := suite.keeper.GetAuthority()

	suite.Require().NoError(suite.keeper.SetPoolWeight(suite.ctx, authority, "pool-a", math.NewInt(1)))
	suite.Require().NoError(suite.keeper.SetPoolWeight(suite.ctx, authority, "pool-b", math.NewInt(3)))

	log := suite.keeper.GetWeightLog(suite.ctx)
	suite.Require().Len(log, 1)
	suite.Require().Equal(int64(100), log[0].AtBlock)
	suite.Require().Equal(math.NewInt(4), log[0].AggregateWeight)
}

func (suite *WeightTestSuite) TestWeightLogAppendsAcrossBlocks() {
	authority := suite.keeper.GetAuthority()

	suite.Require().NoError(suite.keeper.SetPoolWeight(suite.ctx, authority, "pool-a", math.NewInt(1)))

	ctx := suite.ctx.WithBlockHeight(200)
	suite.Require().NoError(suite.keeper.SetPoolWeight(ctx, authority, "pool-b", math.NewInt(3)))

	ctx = ctx.WithBlockHeight(300)
	suite.Require().NoError(suite.keeper.SetPoolWeight(ctx, authority, "pool-a", math.NewInt(2)))

	log := suite.keeper.GetWeightLog(ctx)
	suite.Require().Len(log, 3)
	suite.Require().Equal(types.WeightUpdateEntry{AtBlock: 100, AggregateWeight: math.NewInt(1)}, log[0])
	suite.Require().Equal(types.WeightUpdateEntry{AtBlock: 200, AggregateWeight: math.NewInt(4)}, log[1])
	suite.Require().Equal(types.WeightUpdateEntry{AtBlock: 300, AggregateWeight: math.NewInt(5)}, log[2])

	pool, found := suite.keeper.GetPool(ctx, "pool-a")
	suite.Require().True(found)
	suite.Require().Equal(math.NewInt(2), pool.Weight)
}

func (suite *WeightTestSuite) TestWeightLogRecordsRemovals() {
	authority := suite.keeper.GetAuthority()

	suite.Require().NoError(suite.keeper.SetPoolWeight(suite.ctx, authority, "pool-a", math.NewInt(1)))
	suite.Require().NoError(suite.keeper.SetPoolWeight(suite.ctx, authority, "pool-b", math.NewInt(3)))

	ctx := suite.ctx.WithBlockHeight(200)
	suite.Require().NoError(suite.keeper.SetPoolWeight(ctx, authority, "pool-b", math.NewInt(0)))

	log := suite.keeper.GetWeightLog(ctx)
	suite.Require().Len(log, 2)
	suite.Require().Equal(math.NewInt(1), log[1].AggregateWeight)
}
