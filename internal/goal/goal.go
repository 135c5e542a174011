package goal

// Document is the external goal payload, as submitted over the CLI or an
// import file. It is validated against Schema before being turned into a
// plan request.
type Document struct {
	TargetSkills  []string `json:"target_skills"`
	TargetLevel   float64  `json:"target_level"`
	DurationWeeks int      `json:"duration_weeks"`
	HoursPerWeek  int      `json:"hours_per_week"`
}

// Schema defines the JSON schema for goal documents.
var Schema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"target_skills": map[string]any{
			"type":        "array",
			"minItems":    1,
			"items":       map[string]any{"type": "string", "minLength": 1},
			"description": "Skill IDs from the skill graph the learner wants to reach",
		},
		"target_level": map[string]any{
			"type":             "number",
			"exclusiveMinimum": 0,
			"maximum":          1,
			"description":      "Mastery level to reach on every target skill, in (0,1]",
		},
		"duration_weeks": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     52,
			"description": "Plan horizon in weeks",
		},
		"hours_per_week": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     80,
			"description": "Weekly practice budget in hours",
		},
	},
	"required":             []any{"target_skills", "target_level", "duration_weeks", "hours_per_week"},
	"additionalProperties": false,
}
