package profile

import (
	"testing"

	"github.com/dukerupert/larder/internal/database"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestAvatarURLDefaultsEmpty(t *testing.T) {
	s := setupStore(t)
	url, err := s.AvatarURL("user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if url != "" {
		t.Errorf("url = %q, want empty", url)
	}
}

func TestSetAndGetAvatarURL(t *testing.T) {
	s := setupStore(t)

	if err := s.SetAvatarURL("user-1", "https://img.example/a.png"); err != nil {
		t.Fatalf("set: %v", err)
	}
	url, err := s.AvatarURL("user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if url != "https://img.example/a.png" {
		t.Errorf("url = %q", url)
	}

	// Overwrite.
	if err := s.SetAvatarURL("user-1", "https://img.example/b.png"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	url, err = s.AvatarURL("user-1")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if url != "https://img.example/b.png" {
		t.Errorf("url = %q", url)
	}
}
