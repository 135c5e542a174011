package planner

// Config holds every planner tunable. The source heuristics carry many
// weights; keeping them in one struct lets tests vary them deterministically
// instead of scattering constants.
type Config struct {
	// Scoring weights: score(item) = GapWeight*gapCoverage
	// + RelevanceWeight*(relevance/100) + QualityWeight*(quality/100)
	// - DifficultyPenalty*(|targetDifficulty - difficulty|/15).
	GapWeight         float64
	RelevanceWeight   float64
	QualityWeight     float64
	DifficultyPenalty float64

	// TargetMargin is added to current mastery to form the initial target
	// difficulty level; WeeklyDifficultyStep is added for every further
	// week the skill stays scheduled.
	TargetMargin         float64
	WeeklyDifficultyStep float64

	// DifficultyWindow is the +/- range (on the 1..15 scale) around the
	// target difficulty accepted before relaxation.
	DifficultyWindow int

	// MinQuality is the initial catalog quality threshold. The relaxation
	// ladder lowers it by QualityRelaxStep down to QualityFloor before
	// widening the difficulty window.
	MinQuality       float64
	QualityRelaxStep float64
	QualityFloor     float64

	// PrereqGate is the minimum mastery every prerequisite must hold
	// before a skill's items may appear in a plan (unless the
	// prerequisite itself was scheduled in an earlier week).
	PrereqGate float64

	// Milestone criteria.
	MilestoneMastery      float64
	MilestoneMinCompleted int

	// Bounds keeping planning to a fixed number of catalog queries.
	MaxWeeklyItems int
	QueryLimit     int
}

// DefaultConfig returns the recommended planner settings.
func DefaultConfig() Config {
	return Config{
		GapWeight:             1.0,
		RelevanceWeight:       0.5,
		QualityWeight:         0.5,
		DifficultyPenalty:     0.4,
		TargetMargin:          0.05,
		WeeklyDifficultyStep:  0.1,
		DifficultyWindow:      1,
		MinQuality:            70,
		QualityRelaxStep:      15,
		QualityFloor:          40,
		PrereqGate:            0.4,
		MilestoneMastery:      0.6,
		MilestoneMinCompleted: 3,
		MaxWeeklyItems:        12,
		QueryLimit:            50,
	}
}
