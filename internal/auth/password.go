package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// legacyPrefix marks hashes produced by the previous deployment's
// pbkdf2:sha256:<iterations>$<salt>$<hexdigest> scheme.
const legacyPrefix = "pbkdf2:sha256"

func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func IsLegacyHash(hash string) bool { return strings.HasPrefix(hash, legacyPrefix) }

// CheckLegacyPassword verifies against the old pbkdf2 format so existing
// credentials keep working until they are re-hashed.
func CheckLegacyPassword(password, hash string) bool {
	parts := strings.SplitN(hash, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return false
	}
	iter, err := strconv.Atoi(method[2])
	if err != nil || iter <= 0 {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(parts[1]), iter, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// VerifyPassword checks a password against either scheme. needsUpgrade is
// true when the stored hash is the legacy format and should be replaced
// with a bcrypt hash after this successful login.
func VerifyPassword(password, hash string) (ok bool, needsUpgrade bool) {
	if IsLegacyHash(hash) {
		return CheckLegacyPassword(password, hash), true
	}
	return CheckPassword(password, hash), false
}
