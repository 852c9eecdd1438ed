package planner

import (
	"math"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// AllocateShifts distributes a role's daily requirement across its shifts,
// proportionally to each shift's share of the role's total coverage hours.
// Each share is rounded up independently; because that can overshoot, the
// last shift in configured order absorbs the negative remainder. The sum of
// allocations never drops below the daily requirement.
func AllocateShifts(date models.Date, season, role string, required int, shifts []models.ShiftDefinition) ([]models.ShiftRequirementRow, error) {
	if len(shifts) == 0 {
		if required > 0 {
			return nil, &NoShiftsDefinedError{Role: role, Date: date}
		}
		return nil, nil
	}

	rows := make([]models.ShiftRequirementRow, 0, len(shifts))
	if len(shifts) == 1 {
		rows = append(rows, models.ShiftRequirementRow{
			Date:      date,
			Season:    season,
			Role:      role,
			ShiftName: shifts[0].Name,
			Required:  required,
		})
		return rows, nil
	}

	var totalHours float64
	for _, s := range shifts {
		totalHours += s.Hours
	}

	allocated := 0
	for i, s := range shifts {
		var count int
		if i == len(shifts)-1 {
			count = required - allocated
			if count < 0 {
				count = 0
			}
		} else {
			share := float64(required) * s.Hours / totalHours
			count = int(math.Ceil(share))
		}
		allocated += count
		rows = append(rows, models.ShiftRequirementRow{
			Date:      date,
			Season:    season,
			Role:      role,
			ShiftName: s.Name,
			Required:  count,
		})
	}
	return rows, nil
}
