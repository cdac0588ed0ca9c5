// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// applyDateWindow narrows the query to rows whose column falls inside the
// window's calendar days. Bounds are passed as parameters; column is always a
// compile-time constant, never user input. Open bounds add no predicate.
func applyDateWindow(q *gorm.DB, column string, window entity.DateWindow) *gorm.DB {
	from, to := window.Bounds()
	if from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(column+" < ?", *to)
	}
	return q
}
