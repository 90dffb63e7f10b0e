package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

const (
	// EpochCount is the fixed number of emission epochs in a schedule. Once
	// the final epoch ends the platform emits nothing.
	EpochCount = 24
)

// SharePrecision is the fixed-point scale applied to accumulated reward per
// share values.
var SharePrecision = math.NewInt(1_000_000_000_000)

// EpochSchedule is the fixed-length table of per-block emission rates. Epoch i
// covers blocks [StartBlock + i*EpochLength, StartBlock + (i+1)*EpochLength).
type EpochSchedule struct {
	StartBlock   int64      `json:"start_block"`
	EpochLength  int64      `json:"epoch_length"`
	RatePerBlock []math.Int `json:"rate_per_block"`
}

// NewEpochSchedule builds a schedule with the same rate for every epoch.
func NewEpochSchedule(startBlock, epochLength int64, rate math.Int) EpochSchedule {
	rates := make([]math.Int, EpochCount)
	for i := range rates {
		rates[i] = rate
	}
	return EpochSchedule{
		StartBlock:   startBlock,
		EpochLength:  epochLength,
		RatePerBlock: rates,
	}
}

// Validate checks the structural invariants of the schedule.
func (s EpochSchedule) Validate() error {
	if s.EpochLength <= 0 {
		return ErrEpochLengthZero
	}
	if s.StartBlock < 0 {
		return errorsmod.Wrapf(ErrInvalidSchedule, "start block cannot be negative: %d", s.StartBlock)
	}
	if len(s.RatePerBlock) != EpochCount {
		return errorsmod.Wrapf(ErrInvalidSchedule, "expected %d epoch rates, got %d", EpochCount, len(s.RatePerBlock))
	}
	for i, rate := range s.RatePerBlock {
		if rate.IsNil() || rate.IsNegative() {
			return errorsmod.Wrapf(ErrInvalidSchedule, "epoch %d rate must be a non-negative integer", i)
		}
	}
	return nil
}

// EpochStartBlock returns the first block of epoch i.
func (s EpochSchedule) EpochStartBlock(i int) int64 {
	return s.StartBlock + int64(i)*s.EpochLength
}

// EndBlock returns the first block past the final epoch.
func (s EpochSchedule) EndBlock() int64 {
	return s.EpochStartBlock(EpochCount)
}

// EmissionInRange computes the reward emitted to a pool of the given weight
// over [fromBlock, toBlock), assuming the platform-wide aggregate weight held
// at totalWeight for the whole range. Returns zero when fromBlock precedes the
// schedule start, the range is empty or inverted, or totalWeight is zero.
// Proportional scaling truncates toward zero; residual dust accrues to no one.
func (s EpochSchedule) EmissionInRange(fromBlock, toBlock int64, weight, totalWeight math.Int) math.Int {
	if fromBlock < s.StartBlock || toBlock < fromBlock || !totalWeight.IsPositive() {
		return math.ZeroInt()
	}

	total := math.ZeroInt()
	cursor := fromBlock
	for i := int((fromBlock - s.StartBlock) / s.EpochLength); i < EpochCount && cursor < toBlock; i++ {
		segmentEnd := s.EpochStartBlock(i + 1)
		if toBlock < segmentEnd {
			segmentEnd = toBlock
		}
		total = total.Add(s.RatePerBlock[i].MulRaw(segmentEnd - cursor))
		cursor = segmentEnd
	}
	// Blocks past the final epoch emit nothing.

	return total.Mul(weight).Quo(totalWeight)
}

// WeightUpdateEntry is one snapshot in the append-only weight update log: the
// platform-wide aggregate weight as of AtBlock. The log holds at most one
// entry per block height.
type WeightUpdateEntry struct {
	AtBlock         int64    `json:"at_block"`
	AggregateWeight math.Int `json:"aggregate_weight"`
}

// PoolState is the per-pool accrual state. AccRewardPerShare is a fixed-point
// value scaled by SharePrecision and is monotonically non-decreasing.
type PoolState struct {
	AccRewardPerShare     math.Int `json:"acc_reward_per_share"`
	LastProcessedLogIndex uint64   `json:"last_processed_log_index"`
	LastCheckpointBlock   int64    `json:"last_checkpoint_block"`
	Weight                math.Int `json:"weight"`
}

// NewPoolState returns the state of a pool that has never been checkpointed.
func NewPoolState() PoolState {
	return PoolState{
		AccRewardPerShare:     math.ZeroInt(),
		LastProcessedLogIndex: 0,
		LastCheckpointBlock:   0,
		Weight:                math.ZeroInt(),
	}
}

// RewardAccount is the per (pool, user) debt and unclaimed bookkeeping that
// turns the pool accumulator into an individual claimable balance.
type RewardAccount struct {
	RewardDebt math.Int `json:"reward_debt"`
	Unclaimed  math.Int `json:"unclaimed"`
}

// NewRewardAccount returns an account with zeroed debt and unclaimed balance.
func NewRewardAccount() RewardAccount {
	return RewardAccount{
		RewardDebt: math.ZeroInt(),
		Unclaimed:  math.ZeroInt(),
	}
}
