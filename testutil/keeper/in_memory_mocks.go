package keeper

// In-memory collaborators for keeper tests: share ledger, registry and claim
// flags backed by plain maps instead of a KV store.
import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"
)

// InMemoryShareKeeper is an in-memory share-token ledger. Shares convert to
// assets one-to-one, which keeps entitlement arithmetic transparent in tests.
type InMemoryShareKeeper struct {
	balances map[string]map[string]math.Int
	mu       sync.RWMutex
}

// NewInMemoryShareKeeper creates a new instance of InMemoryShareKeeper.
func NewInMemoryShareKeeper() *InMemoryShareKeeper {
	return &InMemoryShareKeeper{
		balances: make(map[string]map[string]math.Int),
	}
}

// TotalShares returns the outstanding share count of a pool.
func (keeper *InMemoryShareKeeper) TotalShares(ctx context.Context, poolId string) math.Int {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	total := math.ZeroInt()
	for _, balance := range keeper.balances[poolId] {
		total = total.Add(balance)
	}
	return total
}

// ShareBalance returns a user's share balance in a pool.
func (keeper *InMemoryShareKeeper) ShareBalance(ctx context.Context, poolId string, user string) math.Int {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	balance, ok := keeper.balances[poolId][user]
	if !ok {
		return math.ZeroInt()
	}
	return balance
}

// MintShares credits shares to a user.
func (keeper *InMemoryShareKeeper) MintShares(ctx context.Context, poolId string, user string, shares math.Int) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.balances[poolId] == nil {
		keeper.balances[poolId] = make(map[string]math.Int)
	}
	balance, ok := keeper.balances[poolId][user]
	if !ok {
		balance = math.ZeroInt()
	}
	keeper.balances[poolId][user] = balance.Add(shares)
	return nil
}

// BurnShares removes shares from a user.
func (keeper *InMemoryShareKeeper) BurnShares(ctx context.Context, poolId string, user string, shares math.Int) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	balance, ok := keeper.balances[poolId][user]
	if !ok || balance.LT(shares) {
		return fmt.Errorf("insufficient shares for %s in pool %s", user, poolId)
	}
	keeper.balances[poolId][user] = balance.Sub(shares)
	return nil
}

// SharesToAssets converts shares to assets (one-to-one).
func (keeper *InMemoryShareKeeper) SharesToAssets(ctx context.Context, poolId string, shares math.Int) math.Int {
	return shares
}

// AssetsToShares converts assets to shares (one-to-one).
func (keeper *InMemoryShareKeeper) AssetsToShares(ctx context.Context, poolId string, assets math.Int) math.Int {
	return assets
}

// InMemoryRegistryKeeper tracks which pools are detached from the reward
// engine.
type InMemoryRegistryKeeper struct {
	detached map[string]bool
	mu       sync.RWMutex
}

// NewInMemoryRegistryKeeper creates a new instance of InMemoryRegistryKeeper.
func NewInMemoryRegistryKeeper() *InMemoryRegistryKeeper {
	return &InMemoryRegistryKeeper{
		detached: make(map[string]bool),
	}
}

// SetDetached marks or unmarks a pool as detached.
func (keeper *InMemoryRegistryKeeper) SetDetached(poolId string, detached bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.detached[poolId] = detached
}

// IsRewardControllerDetached reports whether the pool is detached.
func (keeper *InMemoryRegistryKeeper) IsRewardControllerDetached(ctx context.Context, poolId string) bool {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	return keeper.detached[poolId]
}

// InMemoryClaimKeeper tracks which users have an active external claim.
type InMemoryClaimKeeper struct {
	active map[string]bool
	mu     sync.RWMutex
}

// NewInMemoryClaimKeeper creates a new instance of InMemoryClaimKeeper.
func NewInMemoryClaimKeeper() *InMemoryClaimKeeper {
	return &InMemoryClaimKeeper{
		active: make(map[string]bool),
	}
}

// SetActiveClaim marks or unmarks a user as blocked by an active claim.
func (keeper *InMemoryClaimKeeper) SetActiveClaim(user string, active bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.active[user] = active
}

// HasActiveClaim reports whether an active claim blocks the user.
func (keeper *InMemoryClaimKeeper) HasActiveClaim(ctx context.Context, user string) bool {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	return keeper.active[user]
}
