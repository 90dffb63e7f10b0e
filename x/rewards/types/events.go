package types

// Event types
const (
	EventTypeSetPoolWeight   = "set_pool_weight"
	EventTypeClaimReward     = "claim_reward"
	EventTypeUpdateEpochRate = "update_epoch_rate"

	AttributeKeyPoolId     = "pool_id"
	AttributeKeyUser       = "user"
	AttributeKeyWeight     = "weight"
	AttributeKeyAmount     = "amount"
	AttributeKeyEpochIndex = "epoch_index"
	AttributeKeyRate       = "rate"
)
