package sync

import (
	stdsync "sync"

	"github.com/dukerupert/larder/internal/model"
)

// Memo caches the recipe matches computed for one inventory snapshot,
// keyed by the snapshot's identity. Any change to the inventory produces
// a different key and so invalidates the cache.
type Memo struct {
	mu      stdsync.RWMutex
	key     string
	matches []model.RecipeMatch
}

// RememberRecipeMatches memoizes the matches computed for the inventory
// snapshot identified by key.
func (m *Memo) RememberRecipeMatches(key string, matches []model.RecipeMatch) {
	m.mu.Lock()
	m.key = key
	m.matches = matches
	m.mu.Unlock()
}

// CachedRecipeMatches returns the memoized matches when key identifies
// the same inventory snapshot they were computed for.
func (m *Memo) CachedRecipeMatches(key string) ([]model.RecipeMatch, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if key == "" || key != m.key {
		return nil, false
	}
	return m.matches, true
}

// MemoRegistry hands out one long-lived Memo per user for pull-based
// consumers that have no session-bound controller.
type MemoRegistry struct {
	mu    stdsync.Mutex
	memos map[string]*Memo
}

func NewMemoRegistry() *MemoRegistry {
	return &MemoRegistry{memos: make(map[string]*Memo)}
}

// ForUser returns the user's memo, creating it on first use.
func (r *MemoRegistry) ForUser(userID string) *Memo {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memos[userID]
	if !ok {
		m = &Memo{}
		r.memos[userID] = m
	}
	return m
}
