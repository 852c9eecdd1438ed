package planner

import (
	"sort"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// SummarizeBySeason rolls reconciliation rows up by (season, role, shift),
// summing required, available, and delta across all dates in each group.
// Output is sorted lexicographically by the group key so reports reproduce
// byte-for-byte between runs.
func SummarizeBySeason(rows []models.ReconciliationRow) []models.SeasonSummaryRow {
	type key struct {
		season, role, shift string
	}

	groups := make(map[key]*models.SeasonSummaryRow)
	for _, r := range rows {
		k := key{r.Season, r.Role, r.ShiftName}
		g, ok := groups[k]
		if !ok {
			g = &models.SeasonSummaryRow{
				Season:    r.Season,
				Role:      r.Role,
				ShiftName: r.ShiftName,
			}
			groups[k] = g
		}
		g.TotalRequired += r.Required
		g.TotalAvailable += r.Available
		g.TotalDelta += r.Delta
	}

	out := make([]models.SeasonSummaryRow, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		return out[i].ShiftName < out[j].ShiftName
	})
	return out
}
