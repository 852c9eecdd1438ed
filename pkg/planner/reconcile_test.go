package planner

import (
	"testing"
	"time"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
)

func TestAssignShiftClampsToAvailability(t *testing.T) {
	req := models.ShiftRequirementRow{
		Date:      models.NewDate(2025, time.June, 2),
		Season:    "High",
		Role:      "RN",
		ShiftName: "Day",
		Required:  4,
	}
	def := models.ShiftDefinition{Role: "RN", Name: "Day", Start: 7, End: 19, Hours: 12}
	res := models.ResourceRecord{Role: "RN", AvailableFTE: 3, LeaveFTE: 1}

	a := AssignShift(req, def, res, models.ShiftSourceInline)
	if a.Available != 2 {
		t.Errorf("expected effective availability 2, got %g", a.Available)
	}
	if a.Assigned != 2 {
		t.Errorf("expected assignment clamped to 2, got %g", a.Assigned)
	}

	// Requirement below the pool: the full requirement is assigned
	req.Required = 1
	a = AssignShift(req, def, res, models.ShiftSourceInline)
	if a.Assigned != 1 {
		t.Errorf("expected assignment of 1, got %g", a.Assigned)
	}
}

func TestAssignShiftFullLeaveMeansNobody(t *testing.T) {
	req := models.ShiftRequirementRow{
		Date:      models.NewDate(2025, time.June, 2),
		Season:    "High",
		Role:      "NA",
		ShiftName: "Night",
		Required:  2,
	}
	def := models.ShiftDefinition{Role: "NA", Name: "Night", Start: 19, End: 7, Hours: 12}
	res := models.ResourceRecord{Role: "NA", AvailableFTE: 2, LeaveFTE: 2}

	a := AssignShift(req, def, res, models.ShiftSourceSettings)
	if a.Available != 0 || a.Assigned != 0 {
		t.Errorf("available == leave should yield zero availability, got available=%g assigned=%g", a.Available, a.Assigned)
	}

	r := Reconcile(a)
	if r.Classification != models.ClassShortage {
		t.Errorf("required > 0 against zero availability must classify Shortage, got %s", r.Classification)
	}
	if r.Delta != -2 {
		t.Errorf("expected delta -2, got %g", r.Delta)
	}
}

func TestReconcileClassification(t *testing.T) {
	cases := []struct {
		name      string
		required  int
		available float64
		wantClass string
		wantDelta float64
	}{
		{"shortage", 5, 3, models.ClassShortage, -2},
		{"surplus", 2, 3.5, models.ClassSurplus, 1.5},
		{"balanced", 4, 4, models.ClassBalanced, 0},
		{"zero on zero is balanced", 0, 0, models.ClassBalanced, 0},
	}

	for _, tc := range cases {
		a := models.AssignmentRow{
			Date:      models.NewDate(2025, time.June, 2),
			Season:    "High",
			Role:      "RN",
			ShiftName: "Day",
			Required:  tc.required,
			Available: tc.available,
		}
		r := Reconcile(a)
		if r.Classification != tc.wantClass {
			t.Errorf("%s: got classification %s, want %s", tc.name, r.Classification, tc.wantClass)
		}
		if r.Delta != tc.wantDelta {
			t.Errorf("%s: got delta %g, want %g", tc.name, r.Delta, tc.wantDelta)
		}
	}
}
