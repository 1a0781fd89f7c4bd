package impl

import (
	"context"
	"testing"

	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	mockRepo "habit/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitService_FindUnit(t *testing.T) {
	t.Run("by id wins over name", func(t *testing.T) {
		unitRepo := mockRepo.NewMockUnitRepository(t)
		unitRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Unit{ID: 3, Name: "kg"}, nil)

		svc := NewUnitService(UnitServiceParams{UnitRepo: unitRepo, Logger: newDiscardLogger()})
		unit, err := svc.FindUnit(context.Background(), int64Ptr(3), strPtr("min"))

		require.NoError(t, err)
		assert.Equal(t, "kg", unit.Name)
	})

	t.Run("by name", func(t *testing.T) {
		unitRepo := mockRepo.NewMockUnitRepository(t)
		unitRepo.EXPECT().FindByName(mock.Anything, "min").Return(nil, repository.ErrUnitNotFound)

		svc := NewUnitService(UnitServiceParams{UnitRepo: unitRepo, Logger: newDiscardLogger()})
		unit, err := svc.FindUnit(context.Background(), nil, strPtr("min"))

		require.NoError(t, err)
		assert.Nil(t, unit)
	})

	t.Run("neither argument", func(t *testing.T) {
		svc := NewUnitService(UnitServiceParams{UnitRepo: mockRepo.NewMockUnitRepository(t), Logger: newDiscardLogger()})

		_, err := svc.FindUnit(context.Background(), nil, strPtr(""))

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		require.Len(t, validationErr.Failures(), 1)
		assert.Equal(t, "id", validationErr.Failures()[0].Name)
	})
}

func TestUnitService_CreateUnit(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		setup   func(repo *mockRepo.MockUnitRepository)
		wantErr error
	}{
		{
			name: "created",
			unit: "kg",
			setup: func(repo *mockRepo.MockUnitRepository) {
				repo.EXPECT().FindByName(mock.Anything, "kg").Return(nil, repository.ErrUnitNotFound)
				repo.EXPECT().Create(mock.Anything, &entity.Unit{Name: "kg"}).Return(nil)
			},
		},
		{
			name: "existing name",
			unit: "kg",
			setup: func(repo *mockRepo.MockUnitRepository) {
				repo.EXPECT().FindByName(mock.Anything, "kg").Return(&entity.Unit{ID: 1, Name: "kg"}, nil)
			},
			wantErr: domainerrors.ErrConflict,
		},
		{
			name: "concurrent insert",
			unit: "kg",
			setup: func(repo *mockRepo.MockUnitRepository) {
				repo.EXPECT().FindByName(mock.Anything, "kg").Return(nil, repository.ErrUnitNotFound)
				repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateUnit)
			},
			wantErr: domainerrors.ErrConflict,
		},
		{
			name: "too long",
			unit: "kilometers1",
			setup: func(repo *mockRepo.MockUnitRepository) {
				repo.EXPECT().FindByName(mock.Anything, "kilometers1").Return(nil, repository.ErrUnitNotFound)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "whitespace",
			unit: "k g",
			setup: func(repo *mockRepo.MockUnitRepository) {
				repo.EXPECT().FindByName(mock.Anything, "k g").Return(nil, repository.ErrUnitNotFound)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "symbols allowed",
			unit: "m/s^2",
			setup: func(repo *mockRepo.MockUnitRepository) {
				repo.EXPECT().FindByName(mock.Anything, "m/s^2").Return(nil, repository.ErrUnitNotFound)
				repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unitRepo := mockRepo.NewMockUnitRepository(t)
			tt.setup(unitRepo)

			svc := NewUnitService(UnitServiceParams{UnitRepo: unitRepo, Logger: newDiscardLogger()})
			unit, err := svc.CreateUnit(ownerCtx(), tt.unit)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, unit)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.unit, unit.Name)
		})
	}
}
