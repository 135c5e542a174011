package adapt

// Config carries the outcome-signal weights and the trigger thresholds for
// the rolling success window.
type Config struct {
	// Signal weights. They should sum to 1 so the signal stays in [0,1].
	SuccessWeight    float64
	EfficiencyWeight float64
	HintWeight       float64

	// HintCap is the hint count treated as "fully assisted". Outcomes
	// reporting more hints than this are rejected.
	HintCap int

	// Rolling window over the most recent outcomes per skill.
	WindowSize int
	MinWindow  int

	// Trigger thresholds.
	LowSuccessRate  float64
	HighSuccessRate float64
	FastTimeRatio   float64

	// Remediation shape.
	InsertCount int
	EasierStep  int
	MinQuality  float64
}

func DefaultConfig() Config {
	return Config{
		SuccessWeight:    0.6,
		EfficiencyWeight: 0.25,
		HintWeight:       0.15,
		HintCap:          5,
		WindowSize:       5,
		MinWindow:        3,
		LowSuccessRate:   0.4,
		HighSuccessRate:  0.85,
		FastTimeRatio:    0.75,
		InsertCount:      2,
		EasierStep:       2,
		MinQuality:       40,
	}
}
