package planner

import (
	"math"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// AssignShift matches one shift requirement against the role's resource
// record. Assignment is a capacity clamp: min(required, effective FTE).
//
// Availability is read as the role's full effective pool for every shift of
// the day rather than being drawn down shift by shift. That mirrors the
// source accounting model, where the comparison is a per-shift coverage
// report, not a feasibility check. See DESIGN.md.
func AssignShift(req models.ShiftRequirementRow, def models.ShiftDefinition, res models.ResourceRecord, source string) models.AssignmentRow {
	effective := res.EffectiveFTE()
	assigned := math.Min(float64(req.Required), effective)

	return models.AssignmentRow{
		Date:        req.Date,
		Season:      req.Season,
		Role:        req.Role,
		ShiftName:   req.ShiftName,
		Start:       def.Start,
		End:         def.End,
		Hours:       def.Hours,
		Required:    req.Required,
		Assigned:    assigned,
		Available:   effective,
		ShiftSource: source,
	}
}
