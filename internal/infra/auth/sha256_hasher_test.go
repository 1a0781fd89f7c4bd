package auth

import (
	"encoding/base64"
	"testing"

	"habit/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecrets = []string{"secret-one", "secret-two", "secret-three"}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	hasher, err := newSHA256Hasher(testSecrets)
	require.NoError(t, err)

	first := hasher.Hash("tester01", "password")
	second := hasher.Hash("tester01", "password")
	assert.Equal(t, first, second)

	raw, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.Len(t, first, 44)
}

func TestSHA256Hasher_EveryInputChangesOutput(t *testing.T) {
	base, err := newSHA256Hasher(testSecrets)
	require.NoError(t, err)
	reference := base.Hash("tester01", "password")

	assert.NotEqual(t, reference, base.Hash("tester02", "password"))
	assert.NotEqual(t, reference, base.Hash("tester01", "password!"))

	for i := range testSecrets {
		changed := append([]string(nil), testSecrets...)
		changed[i] += "x"

		hasher, err := newSHA256Hasher(changed)
		require.NoError(t, err)
		assert.NotEqual(t, reference, hasher.Hash("tester01", "password"), "secret %d", i)
	}
}

func TestNewSHA256Hasher_RequiresThreeSecrets(t *testing.T) {
	_, err := NewSHA256Hasher(&config.Config{})
	assert.Error(t, err)

	_, err = NewSHA256Hasher(&config.Config{PasswordHash: &config.PasswordHashConfig{Secrets: []string{"a", "b"}}})
	assert.Error(t, err)

	hasher, err := NewSHA256Hasher(&config.Config{PasswordHash: &config.PasswordHashConfig{Secrets: testSecrets}})
	require.NoError(t, err)
	assert.NotEmpty(t, hasher.Hash("u", "p"))
}
