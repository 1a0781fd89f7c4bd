package entity

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the calendar date format accepted by date filters.
const DateLayout = "2006-01-02"

// DayRange is the half-open UTC range [From, To) covering one calendar day.
type DayRange struct {
	From time.Time
	To   time.Time
}

// NewDayRange returns the range [date 00:00:00Z, next day 00:00:00Z).
func NewDayRange(date string) (*DayRange, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, errors.Wrapf(err, "parse date %q", date)
	}

	return &DayRange{
		From: day,
		To:   day.AddDate(0, 0, 1),
	}, nil
}
