// Package period contains budget-period-related use cases.
package period

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// SuggestRange returns the natural inclusive date bounds of the period
// containing ref for the given type: Monday..Sunday of the week, first..last
// day of the month, or Jan 1..Dec 31 of the year.
func SuggestRange(periodType entity.PeriodType, ref time.Time) (start, end time.Time, err error) {
	ref = entity.TruncateToDay(ref)

	switch periodType {
	case entity.PeriodTypeWeekly:
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = ref.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 6)
	case entity.PeriodTypeMonthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case entity.PeriodTypeYearly:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return time.Time{}, time.Time{}, domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriodType,
			"period type must be 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidPeriodType,
		)
	}

	return start, end, nil
}

// isValidPeriodType validates the period type.
func isValidPeriodType(periodType entity.PeriodType) bool {
	switch periodType {
	case entity.PeriodTypeWeekly, entity.PeriodTypeMonthly, entity.PeriodTypeYearly:
		return true
	default:
		return false
	}
}
