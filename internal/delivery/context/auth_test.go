package context

import (
	"context"
	"testing"

	"habit/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromContext(t *testing.T) {
	identity := &entity.Identity{ID: 1, Username: "tester01"}

	assert.Nil(t, IdentityFromContext(context.Background()))
	assert.Equal(t, identity, IdentityFromContext(WithIdentity(context.Background(), identity)))

	failed := WithAuthResult(context.Background(), AuthResult{Err: errors.New("expired")})
	assert.Nil(t, IdentityFromContext(failed))

	result, ok := GetAuthResult(failed)
	require.True(t, ok)
	assert.EqualError(t, result.Err, "expired")
}

func TestOperation(t *testing.T) {
	assert.Empty(t, GetOperation(context.Background()))
	assert.Equal(t, "login", GetOperation(WithOperation(context.Background(), "login")))
}
