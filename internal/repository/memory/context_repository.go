package memory

import (
	"fmt"
	"time"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// IContextRepository is the injectable conversation-context store.
// Concurrent updates for the same user are last-write-wins; two
// near-simultaneous messages from one user may interleave their merges.
type IContextRepository interface {
	Get(userID string) *store.Context
	Update(userID string, update store.ContextUpdate) (*store.Context, error)
	Clear(userID string) bool
	Stats() store.Stats
}

// ContextRepository keeps per-user conversation context in an in-process
// TTL cache. Entries expire 30 minutes after their last update; the
// cache janitor sweeps expired entries every 5 minutes so the store
// stays bounded even for users who never return.
type ContextRepository struct {
	cache *cache.Cache
}

var _ IContextRepository = (*ContextRepository)(nil)

func NewContextRepository() *ContextRepository {
	c := cache.New(constant.ContextTTL, constant.ContextSweepInterval)
	return &ContextRepository{cache: c}
}

// Get returns the live context for userID, or nil when the id is empty,
// unknown, or the entry has expired. Expired entries are dropped on
// access; the janitor handles the rest.
func (r *ContextRepository) Get(userID string) *store.Context {
	if userID == "" {
		return nil
	}
	if x, found := r.cache.Get(userID); found {
		return x.(*store.Context)
	}
	return nil
}

// Update merges the partial update over the stored context (or a fresh
// one), stamps LastUpdated and re-arms the TTL. The update's Entities
// map replaces the stored one wholesale; callers merge entity keys
// before building the update.
func (r *ContextRepository) Update(userID string, update store.ContextUpdate) (*store.Context, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required to update context")
	}

	current := r.Get(userID)
	if current == nil {
		current = &store.Context{}
	}

	merged := *current
	if update.LastIntent != "" {
		merged.LastIntent = update.LastIntent
	}
	if update.Entities != nil {
		merged.Entities = update.Entities
	}
	if update.LastMessage != "" {
		merged.LastMessage = update.LastMessage
	}
	if update.PreferredDate != "" {
		merged.PreferredDate = update.PreferredDate
	}
	merged.LastUpdated = time.Now()

	r.cache.Set(userID, &merged, cache.DefaultExpiration)
	return &merged, nil
}

// Clear removes the entry for userID, reporting whether one existed.
func (r *ContextRepository) Clear(userID string) bool {
	if userID == "" {
		return false
	}
	if _, found := r.cache.Get(userID); !found {
		return false
	}
	r.cache.Delete(userID)
	return true
}

// Stats reports the live entry count and the oldest LastUpdated stamp.
func (r *ContextRepository) Stats() store.Stats {
	stats := store.Stats{OldestContext: time.Now()}
	for _, item := range r.cache.Items() {
		ctx, ok := item.Object.(*store.Context)
		if !ok {
			continue
		}
		stats.TotalContexts++
		if ctx.LastUpdated.Before(stats.OldestContext) {
			stats.OldestContext = ctx.LastUpdated
		}
	}
	return stats
}
