package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSettings = `
seasons:
  - season: High
    months: [6, 7, 8]
    weekdays: [0, 1, 2, 3, 4]
  - season: Low
    months: [1, 2]
    weekdays: [0, 1, 2, 3, 4, 5, 6]

shifts:
  RN:
    - name: Day
      start: 7
      end: 19
      hours: 12
    - name: Night
      start: 19
      end: 7
      hours: 12
`

func TestParseValidSettings(t *testing.T) {
	s, err := Parse([]byte(validSettings))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(s.Seasons) != 2 {
		t.Errorf("expected 2 season rules, got %d", len(s.Seasons))
	}
	if s.Seasons[0].Season != "High" {
		t.Errorf("expected first rule High, got %s", s.Seasons[0].Season)
	}

	defs := s.ShiftDefinitions()
	rn := defs["RN"]
	if len(rn) != 2 {
		t.Fatalf("expected 2 RN shifts, got %d", len(rn))
	}
	if rn[0].Name != "Day" || rn[1].Name != "Night" {
		t.Errorf("shift order must follow the file: got %s, %s", rn[0].Name, rn[1].Name)
	}
	if rn[1].Start != 19 || rn[1].End != 7 {
		t.Errorf("overnight shift should keep end < start, got %d-%d", rn[1].Start, rn[1].End)
	}
	if rn[0].Role != "RN" {
		t.Errorf("shift definitions must carry their role, got %q", rn[0].Role)
	}
}

func TestParseEmptyPayload(t *testing.T) {
	s, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("empty settings should parse as absent, got %v", err)
	}
	if len(s.Seasons) != 0 || len(s.Shifts) != 0 {
		t.Errorf("expected empty settings, got %+v", s)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("seasons: [unclosed")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			"month out of range",
			"seasons:\n  - season: High\n    months: [13]\n    weekdays: [0]\n",
			"month 13",
		},
		{
			"weekday out of range",
			"seasons:\n  - season: High\n    months: [1]\n    weekdays: [7]\n",
			"weekday 7",
		},
		{
			"missing label",
			"seasons:\n  - months: [1]\n    weekdays: [0]\n",
			"no label",
		},
		{
			"zero hours",
			"shifts:\n  RN:\n    - name: Day\n      start: 7\n      end: 19\n      hours: 0\n",
			"non-positive hours",
		},
		{
			"duplicate shift name",
			"shifts:\n  RN:\n    - name: Day\n      start: 7\n      end: 19\n      hours: 12\n    - name: Day\n      start: 19\n      end: 7\n      hours: 12\n",
			"duplicate shift name",
		},
	}

	for _, tc := range cases {
		_, err := Parse([]byte(tc.payload))
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error %q should mention %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing settings file should not be an error, got %v", err)
	}
	if len(s.Seasons) != 0 {
		t.Errorf("expected empty settings for missing file")
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(validSettings), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(s.Shifts["RN"]) != 2 {
		t.Errorf("expected 2 RN shifts from disk, got %d", len(s.Shifts["RN"]))
	}
}
