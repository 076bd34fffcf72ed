// Package profile persists the small per-user profile node that sits next
// to the list collections (currently just the avatar URL).
package profile

import (
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// AvatarURL returns the user's avatar URL, or "" when none is set.
func (s *Store) AvatarURL(userID string) (string, error) {
	var url string
	err := s.db.QueryRow(`SELECT avatar_url FROM profiles WHERE user_id = ?`, userID).Scan(&url)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get avatar: %w", err)
	}
	return url, nil
}

// SetAvatarURL stores the user's avatar URL.
func (s *Store) SetAvatarURL(userID, url string) error {
	_, err := s.db.Exec(
		`INSERT INTO profiles (user_id, avatar_url, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id) DO UPDATE SET avatar_url = excluded.avatar_url, updated_at = CURRENT_TIMESTAMP`,
		userID, url,
	)
	if err != nil {
		return fmt.Errorf("set avatar: %w", err)
	}
	return nil
}
