package types

// Event types
const (
	EventTypeRequestWithdraw   = "request_withdraw"
	EventTypeDeposit           = "deposit"
	EventTypeWithdraw          = "withdraw"
	EventTypeRedeem            = "redeem"
	EventTypeEmergencyWithdraw = "emergency_withdraw"

	AttributeKeyPoolId     = "pool_id"
	AttributeKeyUser       = "user"
	AttributeKeyAmount     = "amount"
	AttributeKeyShares     = "shares"
	AttributeKeyEnableTime = "enable_time"
)
