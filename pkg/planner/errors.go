package planner

import (
	"fmt"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// UnclassifiedDateError is returned when a date matches no season rule
type UnclassifiedDateError struct {
	Date models.Date
}

func (e *UnclassifiedDateError) Error() string {
	return fmt.Sprintf("no season rule matches %s (month %d, weekday %d)",
		e.Date, int(e.Date.Month()), e.Date.WeekdayMon())
}

// InvalidRatioError is returned when a role's patients-per-staff ratio is
// zero or negative
type InvalidRatioError struct {
	Role  string
	Ratio float64
}

func (e *InvalidRatioError) Error() string {
	return fmt.Sprintf("role %s has invalid ratio %g: patients per staff must be positive", e.Role, e.Ratio)
}

// NoShiftsDefinedError is returned when a role needs staff on a date but has
// no configured shifts to place them in
type NoShiftsDefinedError struct {
	Role string
	Date models.Date
}

func (e *NoShiftsDefinedError) Error() string {
	return fmt.Sprintf("role %s requires staff on %s but has no shifts defined", e.Role, e.Date)
}

// DuplicateCensusError is returned when two census records share a date
type DuplicateCensusError struct {
	Date models.Date
}

func (e *DuplicateCensusError) Error() string {
	return fmt.Sprintf("duplicate census record for %s", e.Date)
}

// NegativeAvailabilityError is returned when a resource record's leave FTE
// exceeds its available FTE
type NegativeAvailabilityError struct {
	Role      string
	Available float64
	Leave     float64
}

func (e *NegativeAvailabilityError) Error() string {
	return fmt.Sprintf("role %s has leave FTE %g exceeding available FTE %g", e.Role, e.Leave, e.Available)
}
