package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

func TestClassifyFirstMatchWins(t *testing.T) {
	// Both rules cover July weekdays; the first-declared one must win.
	rules := []models.SeasonRule{
		{Season: "High", Months: []int{7}, Weekdays: []int{0, 1, 2, 3, 4}},
		{Season: "Medium", Months: []int{7}, Weekdays: []int{0, 1, 2, 3, 4}},
	}
	c := NewSeasonClassifier(rules)

	// 2025-07-01 is a Tuesday (weekday 1)
	season, err := c.Classify(models.NewDate(2025, time.July, 1))
	if err != nil {
		t.Fatalf("expected a match, got error: %v", err)
	}
	if season != "High" {
		t.Errorf("expected first-declared rule High to win, got %s", season)
	}
}

func TestClassifyWeekdayConvention(t *testing.T) {
	// Weekend-only rule: Saturday is 5, Sunday is 6
	rules := []models.SeasonRule{
		{Season: "Low", Months: []int{6}, Weekdays: []int{5, 6}},
	}
	c := NewSeasonClassifier(rules)

	// 2025-06-07 is a Saturday
	season, err := c.Classify(models.NewDate(2025, time.June, 7))
	if err != nil {
		t.Fatalf("expected Saturday to match weekday 5, got error: %v", err)
	}
	if season != "Low" {
		t.Errorf("expected Low, got %s", season)
	}

	// 2025-06-09 is a Monday and must not match
	if _, err := c.Classify(models.NewDate(2025, time.June, 9)); err == nil {
		t.Error("expected Monday to miss a weekend-only rule")
	}
}

func TestClassifyUnmatchedDateFails(t *testing.T) {
	rules := []models.SeasonRule{
		{Season: "High", Months: []int{7}, Weekdays: []int{0, 1, 2, 3, 4}},
	}
	c := NewSeasonClassifier(rules)

	_, err := c.Classify(models.NewDate(2025, time.January, 6))
	if err == nil {
		t.Fatal("expected an error for a date outside all rules")
	}

	var unclassified *UnclassifiedDateError
	if !errors.As(err, &unclassified) {
		t.Fatalf("expected UnclassifiedDateError, got %T", err)
	}
	if unclassified.Date.String() != "2025-01-06" {
		t.Errorf("error should name the offending date, got %s", unclassified.Date)
	}
}
