package auth

import (
	"context"
	"testing"
)

func TestWithUserIDRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-1")
	if got := UserID(ctx); got != "user-1" {
		t.Errorf("UserID = %q, want user-1", got)
	}
}

func TestUserIDMissing(t *testing.T) {
	if got := UserID(context.Background()); got != "" {
		t.Errorf("UserID = %q, want empty for bare context", got)
	}
}
