package impl

import (
	"context"
	"log/slog"
	"regexp"

	"habit/config"
	deliverycontext "habit/internal/delivery/context"
	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/repository"
	"habit/internal/domain/validation"
	"habit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	scheduleNameMaxLength = 21
	scheduleUnitsMax      = 10
	scheduleUnitsMessage  = "단위는 최대 10개 까지 허용됩니다."

	defaultMaxDepth    = 5
	defaultMaxChildren = 10
)

var (
	scheduleNamePattern = regexp.MustCompile(`^#[a-zA-Z0-9ㄱ-힣_]+$`)

	scheduleNameName  = validation.Name{Eng: "name", Kor: "제목"}
	scheduleUnitsName = validation.Name{Eng: "units", Kor: "단위"}
	createdAtName     = validation.Name{Eng: "createdAt", Kor: "생성일"}
)

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	scheduleRepo  repository.ScheduleRepository
	unitRepo      repository.UnitRepository
	memberRepo    repository.MemberRepository
	scheduleGuard ownershipGuard[*entity.Schedule]
	maxDepth      int
	maxChildren   int
	logger        *slog.Logger
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	ScheduleRepo repository.ScheduleRepository
	UnitRepo     repository.UnitRepository
	MemberRepo   repository.MemberRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	srv := &scheduleService{
		scheduleRepo:  params.ScheduleRepo,
		unitRepo:      params.UnitRepo,
		memberRepo:    params.MemberRepo,
		scheduleGuard: newOwnershipGuard("schedule", params.ScheduleRepo.FindByID, repository.ErrScheduleNotFound),
		maxDepth:      defaultMaxDepth,
		maxChildren:   defaultMaxChildren,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Schedule != nil {
		if params.Config.Schedule.MaxDepth > 0 {
			srv.maxDepth = params.Config.Schedule.MaxDepth
		}
		if params.Config.Schedule.MaxChildren > 0 {
			srv.maxChildren = params.Config.Schedule.MaxChildren
		}
	}

	return srv
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSchedule returns the schedule with its ancestors, children and logs, or nil.
func (srv *scheduleService) GetSchedule(ctx context.Context, id int64, createdAt *string) (*entity.Schedule, error) {
	day, err := parseDay(ctx, "schedule", createdAtName, createdAt, false)
	if err != nil {
		return nil, err
	}

	schedule, err := srv.scheduleRepo.FindDetail(ctx, id, day)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find schedule")
	}

	return schedule, nil
}

// ListRootSchedules returns every root schedule of the member with the whole tree below it.
func (srv *scheduleService) ListRootSchedules(ctx context.Context, username, createdAt string) ([]*entity.Schedule, error) {
	day, err := parseDay(ctx, "allSchedulesByMember", createdAtName, &createdAt, true)
	if err != nil {
		return nil, err
	}

	member, err := srv.memberRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound.WrapMessage("[allSchedulesByMember] member with provided username does not exist")
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	schedules, err := srv.scheduleRepo.FindRootsByMember(ctx, member.ID, *day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schedules")
	}

	return schedules, nil
}

// CreateSchedule creates a root schedule, or a child under a parent owned by the caller.
func (srv *scheduleService) CreateSchedule(ctx context.Context, input usecase.CreateScheduleInput) (*entity.Schedule, error) {
	identity, err := requireIdentity(ctx, deliverycontext.IdentityFromContext)
	if err != nil {
		return nil, err
	}

	depth := entity.RootScheduleDepth
	if input.ParentID != nil {
		parent, _, err := srv.scheduleGuard.check(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}

		depth = parent.Depth + 1
		if depth > srv.maxDepth {
			return nil, domainerrors.ErrMaxDepthExceeded.WrapMessage("[createSchedule] the requested depth exceeds the maximum allowed depth")
		}

		children, err := srv.scheduleRepo.CountChildren(ctx, parent.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count child schedules")
		}
		if children >= int64(srv.maxChildren) {
			return nil, domainerrors.ErrChildLimitExceeded.WrapMessage("[createSchedule] parent schedule is full")
		}
	}

	if err := validate(ctx, "createSchedule", scheduleRules(&input.Name, input.UnitIDs, true)...); err != nil {
		return nil, err
	}

	unitIDs, err := srv.existingUnitIDs(ctx, input.UnitIDs)
	if err != nil {
		return nil, err
	}

	schedule := &entity.Schedule{
		Name:        input.Name,
		Depth:       depth,
		ParentID:    input.ParentID,
		CreatedByID: identity.ID,
	}
	if err := srv.scheduleRepo.Create(ctx, schedule, unitIDs); err != nil {
		return nil, errors.Wrap(err, "failed to create schedule")
	}
	srv.log(ctx).Info("Schedule created", slog.Int64("schedule_id", schedule.ID), slog.Int("depth", depth))

	return schedule, nil
}

// UpdateSchedule renames the schedule and/or replaces its unit set.
func (srv *scheduleService) UpdateSchedule(ctx context.Context, input usecase.UpdateScheduleInput) (*entity.Schedule, error) {
	if _, _, err := srv.scheduleGuard.check(ctx, input.ID); err != nil {
		return nil, err
	}

	var unitIDs []int64
	if input.UnitIDs != nil {
		unitIDs = *input.UnitIDs
	}
	if err := validate(ctx, "updateSchedule", scheduleRules(input.Name, unitIDs, false)...); err != nil {
		return nil, err
	}

	update := repository.ScheduleUpdate{Name: nonEmpty(input.Name)}
	if input.UnitIDs != nil {
		ids, err := srv.existingUnitIDs(ctx, *input.UnitIDs)
		if err != nil {
			return nil, err
		}
		update.UnitIDs = &ids
	}

	schedule, err := srv.scheduleRepo.Update(ctx, input.ID, update)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("schedule does not exist")
		}

		return nil, errors.Wrap(err, "failed to update schedule")
	}

	return schedule, nil
}

// DeleteSchedule removes the schedule with its descendants and logs.
func (srv *scheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if _, _, err := srv.scheduleGuard.check(ctx, id); err != nil {
		return err
	}

	if err := srv.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("schedule does not exist")
		}

		return errors.Wrap(err, "failed to delete schedule")
	}
	srv.log(ctx).Info("Schedule deleted", slog.Int64("schedule_id", id))

	return nil
}

// existingUnitIDs removes duplicate ids and fails when any id is unknown.
func (srv *scheduleService) existingUnitIDs(ctx context.Context, ids []int64) ([]int64, error) {
	unique := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return unique, nil
	}

	units, err := srv.unitRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find units")
	}
	if len(units) != len(unique) {
		return nil, domainerrors.ErrNotFound.WrapMessage("unit does not exist")
	}

	return unique, nil
}

func scheduleRules(name *string, unitIDs []int64, required bool) []validation.Rule {
	return []validation.Rule{
		validation.Length{
			Field: validation.Field{Name: scheduleNameName, Value: name, Required: required},
			Max:   scheduleNameMaxLength,
		},
		validation.Pattern{
			Field: validation.Field{Name: scheduleNameName, Value: name, Required: required},
			Expr:  scheduleNamePattern,
		},
		validation.Length{
			Field: validation.Field{Name: scheduleUnitsName, Value: unitIDs, Message: scheduleUnitsMessage},
			Max:   scheduleUnitsMax,
		},
	}
}
