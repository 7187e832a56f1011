package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	apperrors "entry-tracker-backend/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashAlgorithm = "pbkdf2:sha256"
	saltLength    = 16
	keyLength     = 32
)

// PasswordHasher derives and checks salted PBKDF2-SHA256 credentials.
// Encoded credentials look like pbkdf2:sha256:<iterations>$<salt>$<hex digest>.
type PasswordHasher struct {
	iterations int
	dummy      string
}

// NewPasswordHasher creates a hasher with the given work factor
func NewPasswordHasher(iterations int) (*PasswordHasher, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	h := &PasswordHasher{iterations: iterations}
	dummy, err := h.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("create dummy credential: %w", err)
	}
	h.dummy = dummy

	return h, nil
}

// Hash returns an encoded credential for plaintext with a fresh random salt
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	saltBytes := make([]byte, saltLength)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := base64.RawURLEncoding.EncodeToString(saltBytes)

	digest := pbkdf2.Key([]byte(plaintext), []byte(salt), h.iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", hashAlgorithm, h.iterations, salt, hex.EncodeToString(digest)), nil
}

// Verify reports whether plaintext matches the encoded credential.
// Malformed credentials never match.
func (h *PasswordHasher) Verify(plaintext, credential string) bool {
	iterations, salt, expected, err := parseCredential(credential)
	if err != nil {
		return false
	}

	digest := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(digest, expected) == 1
}

// DummyVerify burns the same work as a real verification. Login calls it for
// unknown emails so response time does not reveal which accounts exist.
func (h *PasswordHasher) DummyVerify(plaintext string) {
	h.Verify(plaintext, h.dummy)
}

func parseCredential(credential string) (int, string, []byte, error) {
	method, rest, ok := strings.Cut(credential, "$")
	if !ok || !strings.HasPrefix(method, hashAlgorithm+":") {
		return 0, "", nil, apperrors.ErrInvalidPasswordHash
	}

	iterations, err := strconv.Atoi(strings.TrimPrefix(method, hashAlgorithm+":"))
	if err != nil || iterations <= 0 {
		return 0, "", nil, apperrors.ErrInvalidPasswordHash
	}

	salt, encoded, ok := strings.Cut(rest, "$")
	if !ok || salt == "" {
		return 0, "", nil, apperrors.ErrInvalidPasswordHash
	}

	expected, err := hex.DecodeString(encoded)
	if err != nil || len(expected) == 0 {
		return 0, "", nil, apperrors.ErrInvalidPasswordHash
	}

	return iterations, salt, expected, nil
}
