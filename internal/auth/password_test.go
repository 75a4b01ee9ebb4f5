package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

// legacyHash builds a hash in the old pbkdf2:sha256:<iter>$<salt>$<hex>
// format for test fixtures.
func legacyHash(password, salt string, iter int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iter, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iter, salt, hex.EncodeToString(key))
}

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("claveSegura1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "claveSegura1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("claveSegura1", h) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("claveSegura2", h) {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckLegacyPassword(t *testing.T) {
	h := legacyHash("claveSegura1", "aBcD1234", 150000)

	if !IsLegacyHash(h) {
		t.Fatal("expected legacy hash to be detected")
	}
	if !CheckLegacyPassword("claveSegura1", h) {
		t.Fatal("correct password rejected against legacy hash")
	}
	if CheckLegacyPassword("claveSegura2", h) {
		t.Fatal("wrong password accepted against legacy hash")
	}
}

func TestCheckLegacyPassword_MalformedHashes(t *testing.T) {
	bad := []string{
		"",
		"pbkdf2:sha256",
		"pbkdf2:sha256:150000$saltonly",
		"pbkdf2:md5:150000$salt$abcd",
		"pbkdf2:sha256:abc$salt$abcd",
		"pbkdf2:sha256:150000$salt$not-hex",
	}
	for _, h := range bad {
		if CheckLegacyPassword("whatever", h) {
			t.Fatalf("malformed hash %q accepted", h)
		}
	}
}

func TestVerifyPassword(t *testing.T) {
	bcryptHash, err := HashPassword("claveSegura1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	ok, upgrade := VerifyPassword("claveSegura1", bcryptHash)
	if !ok || upgrade {
		t.Fatalf("bcrypt hash: got ok=%v upgrade=%v, want ok=true upgrade=false", ok, upgrade)
	}

	legacy := legacyHash("claveSegura1", "s4lt", 100000)
	ok, upgrade = VerifyPassword("claveSegura1", legacy)
	if !ok || !upgrade {
		t.Fatalf("legacy hash: got ok=%v upgrade=%v, want ok=true upgrade=true", ok, upgrade)
	}

	ok, _ = VerifyPassword("wrong", legacy)
	if ok {
		t.Fatal("wrong password accepted")
	}
}
