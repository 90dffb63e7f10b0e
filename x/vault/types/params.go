package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Default parameter values, all durations in seconds.
var (
	DefaultAssetDenom                   = "uvlt"
	DefaultWithdrawPeriod               = int64(11 * 60 * 60)     // 11 hours
	DefaultSafetyPeriod                 = int64(1 * 60 * 60)      // 1 hour
	DefaultWithdrawRequestPendingPeriod = int64(7 * 24 * 60 * 60) // 7 days
	DefaultWithdrawRequestEnablePeriod  = int64(5 * 24 * 60 * 60) // 5 days
)

// Parameter store keys
var (
	KeyAssetDenom                   = []byte("AssetDenom")
	KeyWithdrawPeriod               = []byte("WithdrawPeriod")
	KeySafetyPeriod                 = []byte("SafetyPeriod")
	KeyWithdrawRequestPendingPeriod = []byte("WithdrawRequestPendingPeriod")
	KeyWithdrawRequestEnablePeriod  = []byte("WithdrawRequestEnablePeriod")
)

// Params holds the x/vault module parameters. Withdrawals cycle through a
// recurring global window of WithdrawPeriod seconds followed by a blackout of
// SafetyPeriod seconds; each user additionally serves a pending period between
// requesting a withdrawal and the opening of their enable window.
type Params struct {
	AssetDenom                   string `json:"asset_denom"`
	WithdrawPeriod               int64  `json:"withdraw_period"`
	SafetyPeriod                 int64  `json:"safety_period"`
	WithdrawRequestPendingPeriod int64  `json:"withdraw_request_pending_period"`
	WithdrawRequestEnablePeriod  int64  `json:"withdraw_request_enable_period"`
}

// ParamKeyTable the param key table for the vault module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(
	assetDenom string,
	withdrawPeriod int64,
	safetyPeriod int64,
	withdrawRequestPendingPeriod int64,
	withdrawRequestEnablePeriod int64,
) Params {
	return Params{
		AssetDenom:                   assetDenom,
		WithdrawPeriod:               withdrawPeriod,
		SafetyPeriod:                 safetyPeriod,
		WithdrawRequestPendingPeriod: withdrawRequestPendingPeriod,
		WithdrawRequestEnablePeriod:  withdrawRequestEnablePeriod,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(
		DefaultAssetDenom,
		DefaultWithdrawPeriod,
		DefaultSafetyPeriod,
		DefaultWithdrawRequestPendingPeriod,
		DefaultWithdrawRequestEnablePeriod,
	)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyAssetDenom, &p.AssetDenom, validateAssetDenom),
		paramtypes.NewParamSetPair(KeyWithdrawPeriod, &p.WithdrawPeriod, validatePositivePeriod),
		paramtypes.NewParamSetPair(KeySafetyPeriod, &p.SafetyPeriod, validatePositivePeriod),
		paramtypes.NewParamSetPair(KeyWithdrawRequestPendingPeriod, &p.WithdrawRequestPendingPeriod, validatePositivePeriod),
		paramtypes.NewParamSetPair(KeyWithdrawRequestEnablePeriod, &p.WithdrawRequestEnablePeriod, validatePositivePeriod),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateAssetDenom(p.AssetDenom); err != nil {
		return err
	}
	for name, period := range map[string]int64{
		"withdraw period":                 p.WithdrawPeriod,
		"safety period":                   p.SafetyPeriod,
		"withdraw request pending period": p.WithdrawRequestPendingPeriod,
		"withdraw request enable period":  p.WithdrawRequestEnablePeriod,
	} {
		if period <= 0 {
			return fmt.Errorf("%s must be positive: %d", name, period)
		}
	}
	return nil
}

// validateAssetDenom validates the AssetDenom param
func validateAssetDenom(v interface{}) error {
	assetDenom, ok := v.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if err := sdk.ValidateDenom(assetDenom); err != nil {
		return fmt.Errorf("invalid asset denom: %w", err)
	}

	return nil
}

// validatePositivePeriod validates a duration param
func validatePositivePeriod(v interface{}) error {
	period, ok := v.(int64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if period <= 0 {
		return fmt.Errorf("period must be positive: %d", period)
	}

	return nil
}
