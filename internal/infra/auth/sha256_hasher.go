package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"habit/config"
	"habit/internal/domain/service"

	"github.com/pkg/errors"
)

const hashSecretCount = 3

// sha256Hasher derives Base64(SHA256(H(username) ‖ H(password) ‖ H(s1) ‖ H(s2) ‖ H(s3))).
// The username is the only per-member input, so the scheme is unsalted in the
// usual sense; it is kept so that existing stored digests stay valid.
type sha256Hasher struct {
	secretDigests [hashSecretCount][sha256.Size]byte
}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.PasswordHash == nil {
		return nil, errors.New("password hash secrets must be provided")
	}

	return newSHA256Hasher(cfg.PasswordHash.Secrets)
}

func newSHA256Hasher(secrets []string) (*sha256Hasher, error) {
	if len(secrets) != hashSecretCount {
		return nil, errors.Errorf("expected %d password hash secrets, got %d", hashSecretCount, len(secrets))
	}

	h := &sha256Hasher{}
	for i, secret := range secrets {
		h.secretDigests[i] = sha256.Sum256([]byte(secret))
	}

	return h, nil
}

// Hash implements service.PasswordHasher.
func (h *sha256Hasher) Hash(username, password string) string {
	usernameDigest := sha256.Sum256([]byte(username))
	passwordDigest := sha256.Sum256([]byte(password))

	outer := sha256.New()
	outer.Write(usernameDigest[:])
	outer.Write(passwordDigest[:])
	for _, d := range h.secretDigests {
		outer.Write(d[:])
	}

	return base64.StdEncoding.EncodeToString(outer.Sum(nil))
}
