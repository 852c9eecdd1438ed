package planner

import (
	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

// SeasonClassifier maps calendar dates to season labels using an ordered
// rule list. Rules are checked in declaration order and the first match
// wins, so overlapping rules resolve deterministically.
type SeasonClassifier struct {
	rules []models.SeasonRule
}

// NewSeasonClassifier creates a classifier over the given rules
func NewSeasonClassifier(rules []models.SeasonRule) *SeasonClassifier {
	return &SeasonClassifier{rules: rules}
}

// Classify returns the season label for a date. A date that matches no rule
// is an error, never a silent default: letting it through would corrupt the
// season rollups downstream.
func (c *SeasonClassifier) Classify(d models.Date) (string, error) {
	for _, rule := range c.rules {
		if rule.Matches(d) {
			return rule.Season, nil
		}
	}
	return "", &UnclassifiedDateError{Date: d}
}
