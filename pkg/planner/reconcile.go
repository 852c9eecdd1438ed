package planner

import (
	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// Reconcile classifies one assignment's delta between available and
// required headcount
func Reconcile(a models.AssignmentRow) models.ReconciliationRow {
	delta := a.Available - float64(a.Required)

	classification := models.ClassBalanced
	switch {
	case delta < 0:
		classification = models.ClassShortage
	case delta > 0:
		classification = models.ClassSurplus
	}

	return models.ReconciliationRow{
		Date:           a.Date,
		Season:         a.Season,
		Role:           a.Role,
		ShiftName:      a.ShiftName,
		Required:       a.Required,
		Available:      a.Available,
		Delta:          delta,
		Classification: classification,
	}
}
