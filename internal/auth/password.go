// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// legacySalt is the fixed application-wide salt the original stored
// hashes were computed with. It exists only so pre-migration rows keep
// verifying; new hashes always use argon2id with a per-user salt.
const legacySalt = "fleetdesk-static-salt"

type PasswordConfig struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

type PasswordHasher struct {
	config PasswordConfig
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		config: PasswordConfig{
			time:    1,
			memory:  64 * 1024,
			threads: 4,
			keyLen:  32,
		},
	}
}

func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		p.config.time,
		p.config.memory,
		p.config.threads,
		p.config.keyLen,
	)

	// Format: $argon2id$v=19$m=65536,t=1,p=4$salt$hash
	encoded := fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.config.memory,
		p.config.time,
		p.config.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify checks a password against a stored hash. Stored values in the
// argon2id PHC format are verified with their embedded parameters;
// anything else is treated as a legacy static-salt digest.
func (p *PasswordHasher) Verify(password, encodedHash string) (bool, error) {
	if !strings.HasPrefix(encodedHash, "$argon2id$") {
		legacy := LegacyHash(password)
		return subtle.ConstantTimeCompare([]byte(legacy), []byte(encodedHash)) == 1, nil
	}

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}

	var config PasswordConfig
	_, err := fmt.Sscanf(
		parts[3],
		"m=%d,t=%d,p=%d",
		&config.memory,
		&config.time,
		&config.threads,
	)
	if err != nil {
		return false, fmt.Errorf("invalid hash format: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("invalid salt: %w", err)
	}

	decodedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("invalid hash: %w", err)
	}

	config.keyLen = uint32(len(decodedHash))

	comparisonHash := argon2.IDKey(
		[]byte(password),
		salt,
		config.time,
		config.memory,
		config.threads,
		config.keyLen,
	)

	return subtle.ConstantTimeCompare(decodedHash, comparisonHash) == 1, nil
}

// NeedsRehash reports whether a stored hash is in the legacy format and
// should be upgraded on the next successful login.
func (p *PasswordHasher) NeedsRehash(encodedHash string) bool {
	return !strings.HasPrefix(encodedHash, "$argon2id$")
}

// LegacyHash computes the deterministic static-salt SHA-256 digest used
// by pre-migration rows.
//
// Deprecated: the fixed salt makes identical passwords produce identical
// digests across users. Kept only for verifying existing hashes; never
// use it to store new ones.
func LegacyHash(password string) string {
	sum := sha256.Sum256([]byte(legacySalt + password))
	return hex.EncodeToString(sum[:])
}
