package realtime

import (
	"context"
	"encoding/json"
)

// Collections holding list records under a user node.
const (
	CollectionInventory   = "inventory"
	CollectionGroceryList = "groceryList"
)

// Path identifies one child collection of one user node,
// e.g. users/{userID}/groceryList.
type Path struct {
	UserID     string
	Collection string
}

// Snapshot is the full set of children under a path at one point in time,
// keyed by record identifier. Change notifications always carry complete
// snapshots, never diffs.
type Snapshot map[string]json.RawMessage

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for id, data := range s {
		out[id] = data
	}
	return out
}

// Store is a keyed, hierarchical, realtime-updating record store. Keys are
// assigned by the store and available to the caller before the write
// completes. A missing change delivery never means deletion; deletions are
// observed as the record's absence from the next snapshot.
type Store interface {
	// NewKey returns a fresh identifier for a child about to be created.
	NewKey() string

	// Write creates a new child under path with the given identifier.
	Write(ctx context.Context, path Path, id string, data []byte) error

	// Update overwrites the value at an existing identified path.
	Update(ctx context.Context, path Path, id string, data []byte) error

	// Delete removes the child. Deleting an absent child is not an error.
	Delete(ctx context.Context, path Path, id string) error

	// Children returns the current snapshot under path.
	Children(ctx context.Context, path Path) (Snapshot, error)

	// Subscribe registers a live listener. onChange is invoked once with
	// the current snapshot and again after every subsequent change to the
	// path. Deliveries within one subscription are ordered; when the
	// consumer lags, intermediate snapshots may be coalesced into the
	// latest. There is no ordering guarantee across subscriptions.
	// The returned Subscription must be closed when the owning session
	// ends, or the listener leaks.
	Subscribe(path Path, onChange func(Snapshot)) (*Subscription, error)
}
