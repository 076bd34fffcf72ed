package auth

import (
	"testing"
	"time"
)

func TestMintAndParse(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	signed, err := tokens.Mint("user-1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	userID, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("userID = %q, want user-1", userID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a", time.Hour).Mint("user-1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := NewTokens("secret-b", time.Hour).Parse(signed); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)
	signed, err := tokens.Mint("user-1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := tokens.Parse(signed); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	if _, err := tokens.Parse("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
