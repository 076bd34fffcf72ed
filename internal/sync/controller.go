// Package sync maintains the authoritative in-memory projection of a
// user's inventory and grocery list from realtime store snapshots.
package sync

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	stdsync "sync"

	"go.uber.org/multierr"

	"github.com/dukerupert/larder/internal/list"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/realtime"
)

// State of one collection's projection. A controller starts Listening the
// moment it is constructed (construction is the uninitialized-to-listening
// transition and requires a user identifier) and becomes Live once the
// first snapshot for that collection has been applied.
type State string

const (
	StateListening State = "listening"
	StateLive      State = "live"
)

const (
	eventBuffer = 16
	errorBuffer = 16
)

// Event is one projection update, carrying the freshly replaced list for
// the collection that changed.
type Event struct {
	Collection string                `json:"collection"`
	Inventory  []model.InventoryItem `json:"inventory,omitempty"`
	Grocery    []model.GroceryItem   `json:"grocery,omitempty"`
}

// Controller subscribes to both collections of one user session and keeps
// the projections current. Each snapshot wholesale-replaces the previous
// projection; nothing is merged. The projection has exactly one writer
// (the snapshot deliveries) and all accessors return copies.
//
// Close is mandatory when the owning session ends; an unclosed controller
// leaks two live store listeners.
type Controller struct {
	userID string
	logger *slog.Logger

	mu        stdsync.RWMutex
	inventory []model.InventoryItem
	grocery   []model.GroceryItem
	invState  State
	groState  State

	memo Memo

	events chan Event
	errs   chan error

	invSub *realtime.Subscription
	groSub *realtime.Subscription
}

// NewController starts listening on the user's inventory and grocery-list
// paths. The user identifier must be non-empty: without a session there is
// nothing to subscribe to.
func NewController(userID string, store realtime.Store, logger *slog.Logger) (*Controller, error) {
	if userID == "" {
		return nil, fmt.Errorf("sync controller requires a user identifier")
	}

	c := &Controller{
		userID:   userID,
		logger:   logger,
		invState: StateListening,
		groState: StateListening,
		events:   make(chan Event, eventBuffer),
		errs:     make(chan error, errorBuffer),
	}

	invSub, err := store.Subscribe(
		realtime.Path{UserID: userID, Collection: realtime.CollectionInventory},
		c.applyInventorySnapshot,
	)
	if err != nil {
		return nil, fmt.Errorf("subscribe inventory: %w", err)
	}
	c.invSub = invSub

	groSub, err := store.Subscribe(
		realtime.Path{UserID: userID, Collection: realtime.CollectionGroceryList},
		c.applyGrocerySnapshot,
	)
	if err != nil {
		invSub.Close()
		return nil, fmt.Errorf("subscribe grocery list: %w", err)
	}
	c.groSub = groSub

	return c, nil
}

// Close releases both subscriptions. Mandatory at end of session.
func (c *Controller) Close() error {
	return multierr.Append(c.invSub.Close(), c.groSub.Close())
}

// UserID returns the session's user identifier.
func (c *Controller) UserID() string {
	return c.userID
}

// Events delivers one Event per applied snapshot. When the consumer lags
// behind the buffer, the oldest pending event is dropped; every event
// carries the full replacement list, so the latest one is always complete.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Errors reports malformed snapshot children that were excluded from the
// projection. The channel is buffered and never blocks deliveries; if
// nobody drains it, reports are dropped and the warning log is the only
// trace, preserving silent-continue as the default behavior.
func (c *Controller) Errors() <-chan error {
	return c.errs
}

// Inventory returns a copy of the current inventory projection.
func (c *Controller) Inventory() []model.InventoryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.InventoryItem, len(c.inventory))
	copy(out, c.inventory)
	return out
}

// Grocery returns a copy of the current grocery-list projection.
func (c *Controller) Grocery() []model.GroceryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.GroceryItem, len(c.grocery))
	copy(out, c.grocery)
	return out
}

// InventoryState reports the inventory projection's lifecycle state.
func (c *Controller) InventoryState() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.invState
}

// GroceryState reports the grocery projection's lifecycle state.
func (c *Controller) GroceryState() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.groState
}

func (c *Controller) applyInventorySnapshot(snap realtime.Snapshot) {
	items, malformed := list.DecodeInventory(snap)
	c.reportMalformed(realtime.CollectionInventory, malformed)

	c.mu.Lock()
	c.inventory = items
	c.invState = StateLive
	c.mu.Unlock()

	c.emit(Event{Collection: realtime.CollectionInventory, Inventory: items})
}

func (c *Controller) applyGrocerySnapshot(snap realtime.Snapshot) {
	items, malformed := list.DecodeGrocery(snap)
	c.reportMalformed(realtime.CollectionGroceryList, malformed)

	c.mu.Lock()
	c.grocery = items
	c.groState = StateLive
	c.mu.Unlock()

	c.emit(Event{Collection: realtime.CollectionGroceryList, Grocery: items})
}

func (c *Controller) emit(ev Event) {
	for {
		select {
		case c.events <- ev:
			return
		default:
			select {
			case <-c.events:
				c.logger.Warn("slow event consumer, dropped stale projection event", "user_id", c.userID)
			default:
			}
		}
	}
}

func (c *Controller) reportMalformed(collection string, errs []error) {
	for _, err := range errs {
		c.logger.Warn("dropped malformed record from projection",
			"user_id", c.userID, "collection", collection, "error", err)
		select {
		case c.errs <- err:
		default:
		}
	}
}

// RememberRecipeMatches memoizes the recipe matches computed for the
// inventory snapshot identified by key.
func (c *Controller) RememberRecipeMatches(key string, matches []model.RecipeMatch) {
	c.memo.RememberRecipeMatches(key, matches)
}

// CachedRecipeMatches returns the memoized matches when key identifies the
// same inventory snapshot they were computed for.
func (c *Controller) CachedRecipeMatches(key string) ([]model.RecipeMatch, bool) {
	return c.memo.CachedRecipeMatches(key)
}

// SnapshotKey derives the identity of an inventory projection: every
// record's identifier, name, and quantity, order-insensitive. Two
// projections with the same key warrant no new recipe lookup.
func SnapshotKey(items []model.InventoryItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s|%s|%d", item.ID, item.Name, item.Quantity)
	}
	sort.Strings(parts)
	return strings.Join(parts, "\n")
}
