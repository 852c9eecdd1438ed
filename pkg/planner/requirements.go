package planner

import "math"

// RequiredHeadcount converts a census figure and a patients-per-staff ratio
// into a whole staff requirement. Fractions always round up: a partial
// coverage need still occupies a whole staff member. Zero census requires
// zero staff regardless of ratio.
func RequiredHeadcount(role string, census, ratio float64) (int, error) {
	if ratio <= 0 {
		return 0, &InvalidRatioError{Role: role, Ratio: ratio}
	}
	if census == 0 {
		return 0, nil
	}
	return int(math.Ceil(census / ratio)), nil
}
