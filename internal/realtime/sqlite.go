package realtime

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

const subscriptionBuffer = 1

// SQLiteStore implements Store on the records table. Every successful
// mutation reloads the affected path and broadcasts the new snapshot to
// its subscribers.
type SQLiteStore struct {
	db       *sql.DB
	notifier *notifier
	logger   *slog.Logger
}

func NewSQLiteStore(db *sql.DB, logger *slog.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:       db,
		notifier: newNotifier(),
		logger:   logger,
	}
}

// NewKey returns a fresh store-assigned identifier.
func (s *SQLiteStore) NewKey() string {
	return uuid.NewString()
}

func (s *SQLiteStore) Write(ctx context.Context, path Path, id string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (user_id, collection, id, data) VALUES (?, ?, ?, ?)`,
		path.UserID, path.Collection, id, string(data),
	)
	if err != nil {
		return fmt.Errorf("write %s/%s/%s: %w", path.UserID, path.Collection, id, err)
	}
	s.publish(ctx, path)
	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, path Path, id string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (user_id, collection, id, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, collection, id) DO UPDATE SET data = excluded.data`,
		path.UserID, path.Collection, id, string(data),
	)
	if err != nil {
		return fmt.Errorf("update %s/%s/%s: %w", path.UserID, path.Collection, id, err)
	}
	s.publish(ctx, path)
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, path Path, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE user_id = ? AND collection = ? AND id = ?`,
		path.UserID, path.Collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s/%s/%s: %w", path.UserID, path.Collection, id, err)
	}
	s.publish(ctx, path)
	return nil
}

func (s *SQLiteStore) Children(ctx context.Context, path Path) (Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM records WHERE user_id = ? AND collection = ? ORDER BY created_at ASC, id ASC`,
		path.UserID, path.Collection,
	)
	if err != nil {
		return nil, fmt.Errorf("children %s/%s: %w", path.UserID, path.Collection, err)
	}
	defer rows.Close()

	snap := make(Snapshot)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		snap[id] = json.RawMessage(data)
	}
	return snap, rows.Err()
}

func (s *SQLiteStore) Subscribe(path Path, onChange func(Snapshot)) (*Subscription, error) {
	sub := &Subscription{
		path:     path,
		onChange: onChange,
		ch:       make(chan Snapshot, subscriptionBuffer),
		done:     make(chan struct{}),
		release:  s.notifier.unregister,
	}

	// Register before the initial read so no change between the read and
	// the registration can be missed.
	s.notifier.register(sub)

	snap, err := s.Children(context.Background(), path)
	if err != nil {
		s.notifier.unregister(sub)
		return nil, err
	}

	go sub.run()
	sub.deliver(snap)
	return sub, nil
}

// publish reloads the path and broadcasts the snapshot. A reload failure
// suspends delivery for this change; subscribers pick the state up again
// on the next successful publish, mirroring a transient connectivity loss.
func (s *SQLiteStore) publish(ctx context.Context, path Path) {
	snap, err := s.Children(ctx, path)
	if err != nil {
		s.logger.Warn("snapshot reload failed, delivery suspended",
			"user_id", path.UserID, "collection", path.Collection, "error", err)
		return
	}
	s.notifier.broadcast(path, snap)
}
