package planner

import (
	"errors"
	"math"
	"testing"
)

func TestRequiredHeadcount(t *testing.T) {
	cases := []struct {
		name   string
		census float64
		ratio  float64
		want   int
	}{
		{"exact division", 24, 6, 4},
		{"rounds up", 25, 6, 5},
		{"partial need occupies whole staff", 1, 6, 1},
		{"zero census needs nobody", 0, 6, 0},
		{"fractional census", 10.5, 4, 3},
	}

	for _, tc := range cases {
		got, err := RequiredHeadcount("RN", tc.census, tc.ratio)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: RequiredHeadcount(%g, %g) = %d, want %d", tc.name, tc.census, tc.ratio, got, tc.want)
		}
	}
}

func TestRequiredHeadcountCeilingProperty(t *testing.T) {
	censuses := []float64{1, 7, 12.5, 24, 25, 99, 100}
	ratios := []float64{1, 2.5, 4, 6, 8}

	for _, census := range censuses {
		for _, ratio := range ratios {
			got, err := RequiredHeadcount("RN", census, ratio)
			if err != nil {
				t.Fatalf("unexpected error for census=%g ratio=%g: %v", census, ratio, err)
			}
			exact := census / ratio
			if float64(got) < exact {
				t.Errorf("census=%g ratio=%g: headcount %d understaffs exact need %g", census, ratio, got, exact)
			}
			if float64(got) >= exact+1 {
				t.Errorf("census=%g ratio=%g: headcount %d overshoots ceiling of %g", census, ratio, got, exact)
			}
			if got != int(math.Ceil(exact)) {
				t.Errorf("census=%g ratio=%g: headcount %d is not the ceiling", census, ratio, got)
			}
		}
	}
}

func TestRequiredHeadcountInvalidRatio(t *testing.T) {
	for _, ratio := range []float64{0, -1, -6.5} {
		_, err := RequiredHeadcount("NA", 10, ratio)
		if err == nil {
			t.Errorf("expected an error for ratio %g", ratio)
			continue
		}
		var invalid *InvalidRatioError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidRatioError for ratio %g, got %T", ratio, err)
			continue
		}
		if invalid.Role != "NA" {
			t.Errorf("error should name the role, got %q", invalid.Role)
		}
	}
}
