package impl

import (
	"context"
	"testing"

	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipGuard_Check(t *testing.T) {
	schedules := map[int64]*entity.Schedule{
		1: {ID: 1, CreatedBy: memberOf(1, "owner01")},
		2: {ID: 2, CreatedBy: memberOf(2, "other02")},
	}
	loads := 0
	guard := newOwnershipGuard("schedule", func(_ context.Context, id int64) (*entity.Schedule, error) {
		loads++
		if s, ok := schedules[id]; ok {
			return s, nil
		}
		if id == 99 {
			return nil, errors.New("connection reset")
		}

		return nil, repository.ErrScheduleNotFound
	}, repository.ErrScheduleNotFound)

	t.Run("missing identity is rejected before loading", func(t *testing.T) {
		_, _, err := guard.check(context.Background(), 1)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.Zero(t, loads)
	})

	t.Run("missing resource", func(t *testing.T) {
		_, _, err := guard.check(ownerCtx(), 3)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("other creator", func(t *testing.T) {
		_, _, err := guard.check(ownerCtx(), 2)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("load failure is not reported as missing", func(t *testing.T) {
		_, _, err := guard.check(ownerCtx(), 99)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrNotFound)
		assert.NotErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("owner", func(t *testing.T) {
		schedule, identity, err := guard.check(ownerCtx(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), schedule.ID)
		assert.Equal(t, owner, identity)
	})
}
