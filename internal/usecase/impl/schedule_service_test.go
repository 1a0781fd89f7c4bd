package impl

import (
	"context"
	"testing"
	"time"

	"habit/config"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	mockRepo "habit/internal/mocks/repository"
	"habit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	svc          usecase.ScheduleUsecase
	scheduleRepo *mockRepo.MockScheduleRepository
	unitRepo     *mockRepo.MockUnitRepository
	memberRepo   *mockRepo.MockMemberRepository
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	f := &scheduleFixture{
		scheduleRepo: mockRepo.NewMockScheduleRepository(t),
		unitRepo:     mockRepo.NewMockUnitRepository(t),
		memberRepo:   mockRepo.NewMockMemberRepository(t),
	}
	f.svc = NewScheduleService(ScheduleServiceParams{
		ScheduleRepo: f.scheduleRepo,
		UnitRepo:     f.unitRepo,
		MemberRepo:   f.memberRepo,
		Config:       &config.Config{Schedule: &config.ScheduleConfig{MaxDepth: 5, MaxChildren: 10}},
		Logger:       newDiscardLogger(),
	})

	return f
}

func ownedSchedule(id int64, depth int, username string) *entity.Schedule {
	return &entity.Schedule{ID: id, Depth: depth, CreatedBy: memberOf(1, username)}
}

func TestScheduleService_CreateSchedule_Root(t *testing.T) {
	f := newScheduleFixture(t)

	f.unitRepo.EXPECT().FindByIDs(mock.Anything, []int64{3, 4}).Return([]*entity.Unit{{ID: 3}, {ID: 4}}, nil)
	f.scheduleRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.Schedule) bool {
			return s.Name == "#운동" && s.Depth == entity.RootScheduleDepth && s.ParentID == nil && s.CreatedByID == owner.ID
		}), []int64{3, 4}).
		Run(func(_ context.Context, s *entity.Schedule, _ []int64) { s.ID = 11 }).
		Return(nil)

	schedule, err := f.svc.CreateSchedule(ownerCtx(), usecase.CreateScheduleInput{Name: "#운동", UnitIDs: []int64{3, 4, 3}})

	require.NoError(t, err)
	assert.Equal(t, int64(11), schedule.ID)
}

func TestScheduleService_CreateSchedule_Child(t *testing.T) {
	tests := []struct {
		name        string
		parentDepth int
		wantDepth   int
	}{
		{name: "nested under a mid-level parent", parentDepth: 2, wantDepth: 3},
		{name: "deepest allowed child", parentDepth: 4, wantDepth: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t)

			f.scheduleRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(ownedSchedule(7, tt.parentDepth, "owner01"), nil)
			f.scheduleRepo.EXPECT().CountChildren(mock.Anything, int64(7)).Return(9, nil)
			f.scheduleRepo.EXPECT().
				Create(mock.Anything, mock.MatchedBy(func(s *entity.Schedule) bool {
					return s.Depth == tt.wantDepth && s.ParentID != nil && *s.ParentID == 7
				}), []int64{}).
				Return(nil)

			_, err := f.svc.CreateSchedule(ownerCtx(), usecase.CreateScheduleInput{Name: "#스쿼트", ParentID: int64Ptr(7)})
			require.NoError(t, err)
		})
	}
}

func TestScheduleService_CreateSchedule_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		setup   func(f *scheduleFixture)
		input   usecase.CreateScheduleInput
		wantErr error
	}{
		{
			name:    "unauthenticated",
			ctx:     context.Background(),
			setup:   func(*scheduleFixture) {},
			input:   usecase.CreateScheduleInput{Name: "#운동"},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name: "parent of another member",
			ctx:  ownerCtx(),
			setup: func(f *scheduleFixture) {
				f.scheduleRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(ownedSchedule(7, 1, "other02"), nil)
			},
			input:   usecase.CreateScheduleInput{Name: "#운동", ParentID: int64Ptr(7)},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "missing parent",
			ctx:  ownerCtx(),
			setup: func(f *scheduleFixture) {
				f.scheduleRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, repository.ErrScheduleNotFound)
			},
			input:   usecase.CreateScheduleInput{Name: "#운동", ParentID: int64Ptr(7)},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name: "parent at maximum depth",
			ctx:  ownerCtx(),
			setup: func(f *scheduleFixture) {
				f.scheduleRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(ownedSchedule(7, 5, "owner01"), nil)
			},
			input:   usecase.CreateScheduleInput{Name: "#운동", ParentID: int64Ptr(7)},
			wantErr: domainerrors.ErrMaxDepthExceeded,
		},
		{
			name: "parent full",
			ctx:  ownerCtx(),
			setup: func(f *scheduleFixture) {
				f.scheduleRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(ownedSchedule(7, 1, "owner01"), nil)
				f.scheduleRepo.EXPECT().CountChildren(mock.Anything, int64(7)).Return(10, nil)
			},
			input:   usecase.CreateScheduleInput{Name: "#운동", ParentID: int64Ptr(7)},
			wantErr: domainerrors.ErrChildLimitExceeded,
		},
		{
			name:    "name without hash",
			ctx:     ownerCtx(),
			setup:   func(*scheduleFixture) {},
			input:   usecase.CreateScheduleInput{Name: "운동"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "too many units",
			ctx:     ownerCtx(),
			setup:   func(*scheduleFixture) {},
			input:   usecase.CreateScheduleInput{Name: "#운동", UnitIDs: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "unknown unit",
			ctx:  ownerCtx(),
			setup: func(f *scheduleFixture) {
				f.unitRepo.EXPECT().FindByIDs(mock.Anything, []int64{1, 99}).Return([]*entity.Unit{{ID: 1}}, nil)
			},
			input:   usecase.CreateScheduleInput{Name: "#운동", UnitIDs: []int64{1, 99}},
			wantErr: domainerrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t)
			tt.setup(f)

			schedule, err := f.svc.CreateSchedule(tt.ctx, tt.input)
			assert.Nil(t, schedule)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScheduleService_UpdateSchedule(t *testing.T) {
	f := newScheduleFixture(t)

	f.scheduleRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(ownedSchedule(7, 1, "owner01"), nil)
	f.scheduleRepo.EXPECT().
		Update(mock.Anything, int64(7), mock.MatchedBy(func(u repository.ScheduleUpdate) bool {
			return u.Name == nil && u.UnitIDs != nil && len(*u.UnitIDs) == 0
		})).
		Return(ownedSchedule(7, 1, "owner01"), nil)

	empty := []int64{}
	_, err := f.svc.UpdateSchedule(ownerCtx(), usecase.UpdateScheduleInput{ID: 7, UnitIDs: &empty})
	require.NoError(t, err)
}

func TestScheduleService_DeleteSchedule_Forbidden(t *testing.T) {
	f := newScheduleFixture(t)

	f.scheduleRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(ownedSchedule(7, 1, "other02"), nil)

	assert.ErrorIs(t, f.svc.DeleteSchedule(ownerCtx(), 7), domainerrors.ErrForbidden)
}

func TestScheduleService_GetSchedule(t *testing.T) {
	f := newScheduleFixture(t)

	f.scheduleRepo.EXPECT().
		FindDetail(mock.Anything, int64(7), mock.MatchedBy(func(day *entity.DayRange) bool {
			return day != nil &&
				day.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				day.To.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
		})).
		Return(ownedSchedule(7, 1, "owner01"), nil)
	f.scheduleRepo.EXPECT().FindDetail(mock.Anything, int64(8), (*entity.DayRange)(nil)).Return(nil, repository.ErrScheduleNotFound)

	schedule, err := f.svc.GetSchedule(context.Background(), 7, strPtr("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), schedule.ID)

	schedule, err = f.svc.GetSchedule(context.Background(), 8, nil)
	require.NoError(t, err)
	assert.Nil(t, schedule)

	_, err = f.svc.GetSchedule(context.Background(), 9, strPtr("2024-02-31"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestScheduleService_ListRootSchedules(t *testing.T) {
	f := newScheduleFixture(t)

	_, err := f.svc.ListRootSchedules(context.Background(), "owner01", "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.memberRepo.EXPECT().FindByUsername(mock.Anything, "ghost01").Return(nil, repository.ErrMemberNotFound)
	_, err = f.svc.ListRootSchedules(context.Background(), "ghost01", "2024-03-01")
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)

	f.memberRepo.EXPECT().FindByUsername(mock.Anything, "owner01").Return(memberOf(1, "owner01"), nil)
	f.scheduleRepo.EXPECT().FindRootsByMember(mock.Anything, int64(1), mock.AnythingOfType("entity.DayRange")).
		Return([]*entity.Schedule{ownedSchedule(1, 1, "owner01")}, nil)

	schedules, err := f.svc.ListRootSchedules(context.Background(), "owner01", "2024-03-01")
	require.NoError(t, err)
	assert.Len(t, schedules, 1)
}

func TestScheduleService_RepositoryFailureIsWrapped(t *testing.T) {
	f := newScheduleFixture(t)

	f.scheduleRepo.EXPECT().FindDetail(mock.Anything, int64(1), (*entity.DayRange)(nil)).Return(nil, errors.New("timeout"))

	_, err := f.svc.GetSchedule(context.Background(), 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
