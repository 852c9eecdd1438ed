package models

// Classification of the availability-vs-requirement delta for a shift
const (
	ClassShortage = "Shortage"
	ClassSurplus  = "Surplus"
	ClassBalanced = "Balanced"
)

// Where a role's shift definitions came from
const (
	ShiftSourceInline   = "inline"
	ShiftSourceSettings = "settings"
)

// CensusRecord is the projected patient census for one date
type CensusRecord struct {
	Date            Date    `json:"date" binding:"required"`
	ProjectedCensus float64 `json:"projected_census"`
}

// StaffingRatio is the patients-per-staff target for a role. If a role
// appears more than once, the last definition wins.
type StaffingRatio struct {
	Role             string  `json:"role" binding:"required"`
	PatientsPerStaff float64 `json:"patients_per_staff"`
}

// ResourceRecord is the FTE availability for a role
type ResourceRecord struct {
	Role         string  `json:"role" binding:"required"`
	AvailableFTE float64 `json:"available_fte"`
	LeaveFTE     float64 `json:"leave_fte"`
}

// EffectiveFTE is available FTE minus FTE on leave
func (r ResourceRecord) EffectiveFTE() float64 {
	return r.AvailableFTE - r.LeaveFTE
}

// ShiftDefinition describes one shift in a role's coverage model.
// Start and End are hours of day; End < Start means the shift wraps midnight.
type ShiftDefinition struct {
	Role  string  `json:"role"`
	Name  string  `json:"name"`
	Start int     `json:"start_time"`
	End   int     `json:"end_time"`
	Hours float64 `json:"hours"`
}

// SeasonRule maps dates to a season label. A rule matches when the date's
// month is in Months and its weekday (0=Monday) is in Weekdays. Rules are
// evaluated in declaration order; the first match wins.
type SeasonRule struct {
	Months   []int  `json:"months" yaml:"months"`
	Weekdays []int  `json:"weekdays" yaml:"weekdays"`
	Season   string `json:"season" yaml:"season"`
}

// Matches reports whether the rule applies to the given date
func (r SeasonRule) Matches(d Date) bool {
	month := int(d.Month())
	weekday := d.WeekdayMon()

	monthOK := false
	for _, m := range r.Months {
		if m == month {
			monthOK = true
			break
		}
	}
	if !monthOK {
		return false
	}
	for _, w := range r.Weekdays {
		if w == weekday {
			return true
		}
	}
	return false
}

// Derived rows. Each stage of the pipeline emits these fresh per run; they
// are never mutated after being produced.

// RequirementRow is the required headcount for a role on a date
type RequirementRow struct {
	Date     Date    `json:"date"`
	Season   string  `json:"season"`
	Role     string  `json:"role"`
	Census   float64 `json:"census"`
	Ratio    float64 `json:"ratio_used"`
	Required int     `json:"required_headcount"`
}

// ShiftRequirementRow is a role's daily requirement allocated to one shift
type ShiftRequirementRow struct {
	Date      Date   `json:"date"`
	Season    string `json:"season"`
	Role      string `json:"role"`
	ShiftName string `json:"shift_name"`
	Required  int    `json:"required_headcount"`
}

// AssignmentRow is a concrete staff-to-shift assignment
type AssignmentRow struct {
	Date        Date    `json:"date"`
	Season      string  `json:"season"`
	Role        string  `json:"role"`
	ShiftName   string  `json:"shift_name"`
	Start       int     `json:"start_time"`
	End         int     `json:"end_time"`
	Hours       float64 `json:"hours"`
	Required    int     `json:"required_headcount"`
	Assigned    float64 `json:"assigned_headcount"`
	Available   float64 `json:"available_headcount"`
	ShiftSource string  `json:"shift_source"`
}

// ReconciliationRow compares required vs available headcount for one shift
type ReconciliationRow struct {
	Date           Date    `json:"date"`
	Season         string  `json:"season"`
	Role           string  `json:"role"`
	ShiftName      string  `json:"shift_name"`
	Required       int     `json:"required"`
	Available      float64 `json:"available"`
	Delta          float64 `json:"delta"`
	Classification string  `json:"classification"`
}

// SeasonSummaryRow is the rollup of reconciliation rows for one
// (season, role, shift) group across all dates
type SeasonSummaryRow struct {
	Season         string  `json:"season"`
	Role           string  `json:"role"`
	ShiftName      string  `json:"shift_name"`
	TotalRequired  int     `json:"total_required"`
	TotalAvailable float64 `json:"total_available"`
	TotalDelta     float64 `json:"total_delta"`
}

// UnresolvedRow records a (date, role) pair the run could not compute.
// The run continues past these; they never reach the season summary.
type UnresolvedRow struct {
	Date   Date   `json:"date"`
	Role   string `json:"role,omitempty"`
	Reason string `json:"reason"`
}

// PlanInput is the full set of input collections for one run. SeasonRules
// and Shifts may be omitted when the server's settings file provides them.
type PlanInput struct {
	Census      []CensusRecord    `json:"census" binding:"required"`
	Ratios      []StaffingRatio   `json:"ratios" binding:"required"`
	Resources   []ResourceRecord  `json:"resources"`
	Shifts      []ShiftDefinition `json:"shifts,omitempty"`
	SeasonRules []SeasonRule      `json:"season_rules,omitempty"`
}

// RunSummary holds the headline figures for one run
type RunSummary struct {
	PlanRows           int     `json:"plan_rows"`
	ScheduleRows       int     `json:"schedule_rows"`
	ReconciliationRows int     `json:"reconciliation_rows"`
	UniqueDates        int     `json:"unique_dates"`
	TotalAssigned      float64 `json:"total_assigned"`
	TotalShortage      float64 `json:"total_shortage"`
	TotalSurplus       float64 `json:"total_surplus"`
	UnresolvedRows     int     `json:"unresolved_rows"`
}

// PlanResult is the complete output of one pipeline run
type PlanResult struct {
	StaffingPlan      []RequirementRow      `json:"staffing_plan"`
	ShiftRequirements []ShiftRequirementRow `json:"shift_requirements"`
	Schedule          []AssignmentRow       `json:"schedule"`
	Reconciliation    []ReconciliationRow   `json:"reconciliation"`
	SeasonSummary     []SeasonSummaryRow    `json:"season_summary"`
	Unresolved        []UnresolvedRow       `json:"unresolved,omitempty"`
	Summary           RunSummary            `json:"summary"`
}
