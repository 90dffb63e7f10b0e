package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/vaultline/vaultline/testutil/keeper"
	"github.com/vaultline/vaultline/testutil/sample"
	"github.com/vaultline/vaultline/x/vault/keeper"
	"github.com/vaultline/vaultline/x/vault/types"
)

// baseTime is aligned to the start of a withdraw/safety cycle so window
// arithmetic in the tests stays readable.
var baseTime = int64(40000) * (types.DefaultWithdrawPeriod + types.DefaultSafetyPeriod)

type GateTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper keeper.Keeper
	user   string
}

func (suite *GateTestSuite) SetupTest() {
	k, ctx := keepertest.VaultKeeper(suite.T())
	suite.ctx = ctx.WithBlockTime(time.Unix(baseTime, 0))
	suite.keeper = k
	suite.user = sample.AccAddress()
}

func TestGateTestSuite(t *testing.T) {
	suite.Run(t, new(GateTestSuite))
}

func (suite *GateTestSuite) at(offset int64) sdk.Context {
	return suite.ctx.WithBlockTime(time.Unix(baseTime+offset, 0))
}

func (suite *GateTestSuite) TestRequestWithdrawSetsEnableTime() {
	err := suite.keeper.RequestWithdraw(suite.ctx, types.MsgRequestWithdraw{
		PoolId:    "pool-a",
		Requester: suite.user,
	})
	suite.Require().NoError(err)

	enableTime := suite.keeper.GetWithdrawEnableTime(suite.ctx, "pool-a", suite.user)
	suite.Require().Equal(baseTime+types.DefaultWithdrawRequestPendingPeriod, enableTime)
}

func (suite *GateTestSuite) TestRequestWithdrawRejectsWhileOutstanding() {
	msg := types.MsgRequestWithdraw{PoolId: "pool-a", Requester: suite.user}
	suite.Require().NoError(suite.keeper.RequestWithdraw(suite.ctx, msg))

	// Still cooling down, and even inside the enable window: no new request.
	err := suite.keeper.RequestWithdraw(suite.at(1), msg)
	suite.Require().ErrorIs(err, types.ErrPendingWithdrawRequest)

	err = suite.keeper.RequestWithdraw(suite.at(types.DefaultWithdrawRequestPendingPeriod), msg)
	suite.Require().ErrorIs(err, types.ErrPendingWithdrawRequest)

	// Window expired: a fresh request starts a new cooldown.
	expiry := types.DefaultWithdrawRequestPendingPeriod + types.DefaultWithdrawRequestEnablePeriod
	ctx := suite.at(expiry)
	suite.Require().NoError(suite.keeper.RequestWithdraw(ctx, msg))

	enableTime := suite.keeper.GetWithdrawEnableTime(ctx, "pool-a", suite.user)
	suite.Require().Equal(baseTime+expiry+types.DefaultWithdrawRequestPendingPeriod, enableTime)
}

func (suite *GateTestSuite) TestWithdrawEnabledLifecycle() {
	suite.Require().False(suite.keeper.WithdrawEnabled(suite.ctx, "pool-a", suite.user))

	msg := types.MsgRequestWithdraw{PoolId: "pool-a", Requester: suite.user}
	suite.Require().NoError(suite.keeper.RequestWithdraw(suite.ctx, msg))

	pending := types.DefaultWithdrawRequestPendingPeriod
	cycle := types.DefaultWithdrawPeriod + types.DefaultSafetyPeriod

	// Cooling down.
	suite.Require().False(suite.keeper.WithdrawEnabled(suite.at(pending-1), "pool-a", suite.user))

	// Enable time reached, cycle open.
	suite.Require().True(suite.keeper.WithdrawEnabled(suite.at(pending), "pool-a", suite.user))

	// Global safety blackout closes the gate even inside the enable window.
	suite.Require().False(suite.keeper.WithdrawEnabled(suite.at(pending+types.DefaultWithdrawPeriod), "pool-a", suite.user))
	suite.Require().True(suite.keeper.WithdrawEnabled(suite.at(pending+cycle), "pool-a", suite.user))

	// Enable window closes after the enable period.
	suite.Require().True(suite.keeper.WithdrawEnabled(suite.at(pending+types.DefaultWithdrawRequestEnablePeriod), "pool-a", suite.user))
	suite.Require().False(suite.keeper.WithdrawEnabled(suite.at(pending+types.DefaultWithdrawRequestEnablePeriod+1), "pool-a", suite.user))
}

func (suite *GateTestSuite) TestRequestWithdrawValidatesMsg() {
	err := suite.keeper.RequestWithdraw(suite.ctx, types.MsgRequestWithdraw{
		PoolId:    "",
		Requester: suite.user,
	})
	suite.Require().Error(err)

	err = suite.keeper.RequestWithdraw(suite.ctx, types.MsgRequestWithdraw{
		PoolId:    "pool-a",
		Requester: "not-an-address",
	})
	suite.Require().Error(err)
}
