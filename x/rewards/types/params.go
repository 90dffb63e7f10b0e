package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Default parameter values
var (
	DefaultRewardDenom = "uvlt"
)

// Parameter store keys
var (
	KeyRewardDenom = []byte("RewardDenom")
)

// Params holds the x/rewards module parameters.
type Params struct {
	// RewardDenom is the denomination paid out on reward claims.
	RewardDenom string `json:"reward_denom"`
}

// ParamKeyTable the param key table for the rewards module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(rewardDenom string) Params {
	return Params{
		RewardDenom: rewardDenom,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultRewardDenom)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyRewardDenom, &p.RewardDenom, validateRewardDenom),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	return validateRewardDenom(p.RewardDenom)
}

// validateRewardDenom validates the RewardDenom param
func validateRewardDenom(v interface{}) error {
	rewardDenom, ok := v.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if err := sdk.ValidateDenom(rewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}

	return nil
}
