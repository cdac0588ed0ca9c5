// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// dateLayout is the calendar-day format accepted in query parameters and
// request bodies.
const dateLayout = "2006-01-02"

// parseDateQuery reads an optional YYYY-MM-DD query parameter. A missing or
// empty parameter yields nil; a malformed one yields an error.
func parseDateQuery(ctx *gin.Context, name string) (*time.Time, error) {
	value := ctx.Query(name)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return &parsed, nil
}

// parseWindowQuery reads the optional start_date/end_date pair into a
// calendar-day window.
func parseWindowQuery(ctx *gin.Context) (entity.DateWindow, error) {
	start, err := parseDateQuery(ctx, "start_date")
	if err != nil {
		return entity.DateWindow{}, err
	}

	end, err := parseDateQuery(ctx, "end_date")
	if err != nil {
		return entity.DateWindow{}, err
	}

	return entity.DateWindow{Start: start, End: end}, nil
}
