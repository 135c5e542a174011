package goal

import (
	"errors"
	"testing"
)

func TestParse_ValidDocument(t *testing.T) {
	raw := []byte(`{
		"target_skills": ["dynamic_programming", "graph_traversal"],
		"target_level": 0.8,
		"duration_weeks": 8,
		"hours_per_week": 6
	}`)
	doc, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.TargetSkills) != 2 || doc.TargetSkills[0] != "dynamic_programming" {
		t.Errorf("target skills = %v", doc.TargetSkills)
	}
	if doc.TargetLevel != 0.8 || doc.DurationWeeks != 8 || doc.HoursPerWeek != 6 {
		t.Errorf("decoded document = %+v", doc)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{target_skills}`},
		{"empty skills", `{"target_skills":[],"target_level":0.8,"duration_weeks":8,"hours_per_week":6}`},
		{"zero level", `{"target_skills":["arrays"],"target_level":0,"duration_weeks":8,"hours_per_week":6}`},
		{"level above one", `{"target_skills":["arrays"],"target_level":1.2,"duration_weeks":8,"hours_per_week":6}`},
		{"missing duration", `{"target_skills":["arrays"],"target_level":0.8,"hours_per_week":6}`},
		{"fractional weeks", `{"target_skills":["arrays"],"target_level":0.8,"duration_weeks":2.5,"hours_per_week":6}`},
		{"unknown field", `{"target_skills":["arrays"],"target_level":0.8,"duration_weeks":8,"hours_per_week":6,"pace":"fast"}`},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.raw))
		var invalid *ErrInvalidDocument
		if !errors.As(err, &invalid) {
			t.Errorf("%s: err = %v, want ErrInvalidDocument", tt.name, err)
		}
	}
}
