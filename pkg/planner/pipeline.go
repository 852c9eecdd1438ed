package planner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// Pipeline runs the full staffing computation: season classification,
// requirement derivation, shift allocation, schedule assignment,
// reconciliation, and season rollup. It holds only immutable configuration;
// every run produces fresh rows in a fixed order (ascending date, then
// ratio-declaration role order, then configured shift order), so identical
// inputs always yield identical output.
type Pipeline struct {
	classifier     *SeasonClassifier
	fallbackShifts map[string][]models.ShiftDefinition
}

// NewPipeline builds a pipeline over the given season rules and the
// settings-file shift definitions used when a request carries none for a
// role. Rule-set problems are configuration errors and fail here, before
// any computation.
func NewPipeline(rules []models.SeasonRule, fallbackShifts map[string][]models.ShiftDefinition) (*Pipeline, error) {
	if len(rules) == 0 {
		return nil, errors.New("no season rules configured")
	}
	for i, r := range rules {
		if r.Season == "" {
			return nil, fmt.Errorf("season rule %d has no label", i)
		}
		if len(r.Months) == 0 || len(r.Weekdays) == 0 {
			return nil, fmt.Errorf("season rule %d (%s) must list months and weekdays", i, r.Season)
		}
		for _, m := range r.Months {
			if m < 1 || m > 12 {
				return nil, fmt.Errorf("season rule %d (%s) has month %d out of range 1-12", i, r.Season, m)
			}
		}
		for _, w := range r.Weekdays {
			if w < 0 || w > 6 {
				return nil, fmt.Errorf("season rule %d (%s) has weekday %d out of range 0-6", i, r.Season, w)
			}
		}
	}
	return &Pipeline{
		classifier:     NewSeasonClassifier(rules),
		fallbackShifts: fallbackShifts,
	}, nil
}

// Run executes the pipeline over one input snapshot. Input-level problems
// (duplicate census dates, leave exceeding availability, malformed shifts)
// abort the run; per-date and per-role calculation failures are collected
// as unresolved rows and the run continues.
func (p *Pipeline) Run(input models.PlanInput) (*models.PlanResult, error) {
	census, err := validateCensus(input.Census)
	if err != nil {
		return nil, err
	}
	pool, err := poolResources(input.Resources)
	if err != nil {
		return nil, err
	}
	inlineShifts, err := groupShifts(input.Shifts)
	if err != nil {
		return nil, err
	}
	roleOrder, ratios := indexRatios(input.Ratios)

	result := &models.PlanResult{}
	datesPlanned := make(map[string]bool)

	for _, c := range census {
		season, err := p.classifier.Classify(c.Date)
		if err != nil {
			result.Unresolved = append(result.Unresolved, models.UnresolvedRow{
				Date:   c.Date,
				Reason: err.Error(),
			})
			continue
		}

		for _, role := range roleOrder {
			required, err := RequiredHeadcount(role, c.ProjectedCensus, ratios[role])
			if err != nil {
				result.Unresolved = append(result.Unresolved, models.UnresolvedRow{
					Date:   c.Date,
					Role:   role,
					Reason: err.Error(),
				})
				continue
			}

			result.StaffingPlan = append(result.StaffingPlan, models.RequirementRow{
				Date:     c.Date,
				Season:   season,
				Role:     role,
				Census:   c.ProjectedCensus,
				Ratio:    ratios[role],
				Required: required,
			})
			datesPlanned[c.Date.String()] = true

			// Zero-need days produce a plan row but no schedule rows.
			if required == 0 {
				continue
			}

			shifts, source := p.shiftsForRole(role, inlineShifts)
			shiftReqs, err := AllocateShifts(c.Date, season, role, required, shifts)
			if err != nil {
				result.Unresolved = append(result.Unresolved, models.UnresolvedRow{
					Date:   c.Date,
					Role:   role,
					Reason: err.Error(),
				})
				continue
			}

			resource, ok := pool[role]
			if !ok {
				resource = models.ResourceRecord{Role: role}
			}

			for i, req := range shiftReqs {
				result.ShiftRequirements = append(result.ShiftRequirements, req)
				assignment := AssignShift(req, shifts[i], resource, source)
				result.Schedule = append(result.Schedule, assignment)
				result.Reconciliation = append(result.Reconciliation, Reconcile(assignment))
			}
		}
	}

	result.SeasonSummary = SummarizeBySeason(result.Reconciliation)
	result.Summary = summarize(result, datesPlanned)
	return result, nil
}

// shiftsForRole prefers shift definitions supplied with the request and
// falls back to the settings file for roles with none inline.
func (p *Pipeline) shiftsForRole(role string, inline map[string][]models.ShiftDefinition) ([]models.ShiftDefinition, string) {
	if defs := inline[role]; len(defs) > 0 {
		return defs, models.ShiftSourceInline
	}
	return p.fallbackShifts[role], models.ShiftSourceSettings
}

func validateCensus(records []models.CensusRecord) ([]models.CensusRecord, error) {
	seen := make(map[string]bool, len(records))
	for _, c := range records {
		if c.Date.IsZero() {
			return nil, errors.New("census record missing date")
		}
		if c.ProjectedCensus < 0 {
			return nil, fmt.Errorf("census for %s is negative (%g)", c.Date, c.ProjectedCensus)
		}
		if seen[c.Date.String()] {
			return nil, &DuplicateCensusError{Date: c.Date}
		}
		seen[c.Date.String()] = true
	}

	sorted := make([]models.CensusRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.BeforeDate(sorted[j].Date)
	})
	return sorted, nil
}

// poolResources folds resource records into one effective pool per role
func poolResources(records []models.ResourceRecord) (map[string]models.ResourceRecord, error) {
	pool := make(map[string]models.ResourceRecord, len(records))
	for _, r := range records {
		if r.AvailableFTE < 0 || r.LeaveFTE < 0 {
			return nil, fmt.Errorf("role %s has negative FTE values", r.Role)
		}
		if r.LeaveFTE > r.AvailableFTE {
			return nil, &NegativeAvailabilityError{Role: r.Role, Available: r.AvailableFTE, Leave: r.LeaveFTE}
		}
		agg := pool[r.Role]
		agg.Role = r.Role
		agg.AvailableFTE += r.AvailableFTE
		agg.LeaveFTE += r.LeaveFTE
		pool[r.Role] = agg
	}
	return pool, nil
}

func groupShifts(shifts []models.ShiftDefinition) (map[string][]models.ShiftDefinition, error) {
	grouped := make(map[string][]models.ShiftDefinition)
	for _, s := range shifts {
		if s.Hours <= 0 {
			return nil, fmt.Errorf("shift %s for role %s has non-positive hours (%g)", s.Name, s.Role, s.Hours)
		}
		for _, existing := range grouped[s.Role] {
			if existing.Name == s.Name {
				return nil, fmt.Errorf("role %s has duplicate shift name %s", s.Role, s.Name)
			}
		}
		grouped[s.Role] = append(grouped[s.Role], s)
	}
	return grouped, nil
}

// indexRatios returns roles in first-seen order and a last-wins ratio map
func indexRatios(ratios []models.StaffingRatio) ([]string, map[string]float64) {
	var order []string
	byRole := make(map[string]float64, len(ratios))
	for _, r := range ratios {
		if _, seen := byRole[r.Role]; !seen {
			order = append(order, r.Role)
		}
		byRole[r.Role] = r.PatientsPerStaff
	}
	return order, byRole
}

func summarize(result *models.PlanResult, datesPlanned map[string]bool) models.RunSummary {
	s := models.RunSummary{
		PlanRows:           len(result.StaffingPlan),
		ScheduleRows:       len(result.Schedule),
		ReconciliationRows: len(result.Reconciliation),
		UniqueDates:        len(datesPlanned),
		UnresolvedRows:     len(result.Unresolved),
	}
	for _, a := range result.Schedule {
		s.TotalAssigned += a.Assigned
	}
	for _, r := range result.Reconciliation {
		if r.Delta < 0 {
			s.TotalShortage += -r.Delta
		} else {
			s.TotalSurplus += r.Delta
		}
	}
	return s
}
