package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "pw123" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !CheckPassword("pw123", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword("pw124", digest) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestCheckPassword_DistinctPlaintexts(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("first")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("second", d1) {
		t.Fatalf("digest of one password must not verify another")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	// Malformed or empty digests are a verification failure, never a panic.
	if CheckPassword("pw", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must not verify")
	}
	if CheckPassword("pw", "") {
		t.Fatalf("empty digest must not verify")
	}
}
