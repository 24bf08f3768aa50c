package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Run("hashes password and validates original password", func(t *testing.T) {
		password := "member123"

		hash, err := HashPassword(password)
		if err != nil {
			t.Fatalf("expected hashing to succeed, got error: %v", err)
		}
		if hash == "" || hash == password {
			t.Fatalf("expected opaque non-empty hash, got %q", hash)
		}
		if !CheckPassword(password, hash) {
			t.Fatal("expected password check to succeed for matching password and hash")
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		hash, err := HashPassword("correct1")
		if err != nil {
			t.Fatalf("failed to hash password for test: %v", err)
		}
		if CheckPassword("wrong1", hash) {
			t.Fatal("expected password check to fail for wrong password")
		}
	})

	t.Run("returns false for malformed hash", func(t *testing.T) {
		if CheckPassword("anything", "not-a-valid-bcrypt-hash") {
			t.Fatal("expected malformed hash comparison to return false")
		}
	})
}
