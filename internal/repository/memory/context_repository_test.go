package memory

import (
	"testing"
	"time"

	"nailaide-be/pkg/store"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestUpdateMergesPartialFields(t *testing.T) {
	repo := NewContextRepository()

	_, err := repo.Update("user-1", store.ContextUpdate{
		LastIntent:  "greeting",
		LastMessage: "hello there",
	})
	assert.NoError(t, err)

	// Second turn only sets entities; earlier fields must survive.
	got, err := repo.Update("user-1", store.ContextUpdate{
		LastIntent: "book_appointment",
		Entities:   map[string]string{"service": "Gel Manicure"},
	})
	assert.NoError(t, err)

	assert.Equal(t, "book_appointment", got.LastIntent)
	assert.Equal(t, "hello there", got.LastMessage)
	assert.Equal(t, "Gel Manicure", got.Entities["service"])
	assert.False(t, got.LastUpdated.IsZero())
}

func TestUpdateReplacesEntitiesWholesale(t *testing.T) {
	repo := NewContextRepository()

	repo.Update("user-1", store.ContextUpdate{
		Entities: map[string]string{"service": "Gel Manicure", "date": "2026-03-05"},
	})
	got, err := repo.Update("user-1", store.ContextUpdate{
		Entities: map[string]string{"service": "Nail Art"},
	})
	assert.NoError(t, err)

	assert.Equal(t, "Nail Art", got.Entities["service"])
	assert.Empty(t, got.Entities["date"], "old entity keys are not carried over by the store")
}

func TestUpdateRequiresUserId(t *testing.T) {
	repo := NewContextRepository()

	_, err := repo.Update("", store.ContextUpdate{LastIntent: "greeting"})

	assert.Error(t, err)
}

func TestGetUnknownUser(t *testing.T) {
	repo := NewContextRepository()

	assert.Nil(t, repo.Get("nobody"))
	assert.Nil(t, repo.Get(""))
}

func TestClear(t *testing.T) {
	repo := NewContextRepository()
	repo.Update("user-1", store.ContextUpdate{LastIntent: "greeting"})

	assert.True(t, repo.Clear("user-1"))
	assert.False(t, repo.Clear("user-1"), "second clear finds nothing")
	assert.Nil(t, repo.Get("user-1"))
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	// Short-TTL cache so the test doesn't wait half an hour.
	repo := &ContextRepository{cache: cache.New(20*time.Millisecond, time.Millisecond)}

	repo.Update("user-1", store.ContextUpdate{LastIntent: "greeting"})
	assert.NotNil(t, repo.Get("user-1"))

	time.Sleep(50 * time.Millisecond)

	assert.Nil(t, repo.Get("user-1"))
}

func TestStats(t *testing.T) {
	repo := NewContextRepository()

	assert.Equal(t, 0, repo.Stats().TotalContexts)

	repo.Update("user-1", store.ContextUpdate{LastIntent: "greeting"})
	repo.Update("user-2", store.ContextUpdate{LastIntent: "thanks"})

	stats := repo.Stats()
	assert.Equal(t, 2, stats.TotalContexts)
	assert.False(t, stats.OldestContext.After(time.Now()))
}
