package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWeekdayMon(t *testing.T) {
	// 2025-06-02 is a Monday
	cases := []struct {
		day  int
		want int
	}{
		{2, 0}, // Monday
		{4, 2}, // Wednesday
		{7, 5}, // Saturday
		{8, 6}, // Sunday
	}
	for _, tc := range cases {
		d := NewDate(2025, time.June, tc.day)
		if got := d.WeekdayMon(); got != tc.want {
			t.Errorf("2025-06-%02d: WeekdayMon() = %d, want %d", tc.day, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-02")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.String() != "2025-06-02" {
		t.Errorf("round trip mismatch: %s", d)
	}

	if _, err := ParseDate("06/02/2025"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestDateJSON(t *testing.T) {
	var rec CensusRecord
	if err := json.Unmarshal([]byte(`{"date":"2025-06-02","projected_census":24}`), &rec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if rec.Date.String() != "2025-06-02" {
		t.Errorf("expected 2025-06-02, got %s", rec.Date)
	}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"date":"2025-06-02","projected_census":24}` {
		t.Errorf("unexpected JSON: %s", out)
	}
}
