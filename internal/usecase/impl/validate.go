package impl

import (
	"context"

	"habit/internal/domain/entity"
	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/validation"

	"github.com/pkg/errors"
)

// validate runs rules and turns the failures into a single VALIDATION_FAILURE
// error for op. A rule defect or a failing uniqueness lookup is returned as an
// internal error.
func validate(ctx context.Context, op string, rules ...validation.Rule) error {
	failures, err := validation.Validate(ctx, rules...)
	if err != nil {
		return errors.Wrapf(err, "[%s] validation could not run", op)
	}
	if len(failures) > 0 {
		return domainerrors.NewValidationError(op, failures)
	}

	return nil
}

// parseDay validates a YYYY-MM-DD filter and converts it to a day range. It
// returns nil for an absent optional value. A value that matches the format
// but is not a real date fails like a malformed one.
func parseDay(ctx context.Context, op string, name validation.Name, value *string, required bool) (*entity.DayRange, error) {
	if err := validate(ctx, op, validation.DateFormat{
		Field: validation.Field{Name: name, Value: value, Required: required},
	}); err != nil {
		return nil, err
	}
	if value == nil || *value == "" {
		return nil, nil
	}

	day, err := entity.NewDayRange(*value)
	if err != nil {
		return nil, domainerrors.NewValidationError(op, []validation.Failure{{
			Name:    name.Eng,
			Code:    validation.CodeWrongInput,
			Message: name.Kor + "의 형식을 확인해 주세요.",
		}})
	}

	return day, nil
}

// nonEmpty treats an empty optional argument as omitted.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
