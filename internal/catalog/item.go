package catalog

import "fmt"

// Band represents a coarse difficulty band.
type Band string

const (
	BandEasy   Band = "easy"
	BandMedium Band = "medium"
	BandHard   Band = "hard"
)

// BaseLevel returns the band's offset on the combined difficulty scale.
func (b Band) BaseLevel() int {
	switch b {
	case BandMedium:
		return 5
	case BandHard:
		return 10
	default:
		return 0
	}
}

// BandForLevel returns the band covering a combined difficulty level.
func BandForLevel(level int) Band {
	switch {
	case level > 10:
		return BandHard
	case level > 5:
		return BandMedium
	default:
		return BandEasy
	}
}

// MaxDifficulty is the top of the combined difficulty scale
// (hard band, sublevel 5).
const MaxDifficulty = 15

// Item is a practice problem owned by the external catalog. The engine
// treats items as read-only.
type Item struct {
	ID            string   `json:"id"`
	SkillTags     []string `json:"skill_tags"`
	Band          Band     `json:"difficulty_band"`
	Sublevel      int      `json:"difficulty_sublevel"` // 1..5 within the band
	Quality       float64  `json:"quality_score"`       // 0..100
	Relevance     float64  `json:"relevance_score"`     // 0..100
	EstimatedMins int      `json:"estimated_minutes"`
}

// Difficulty folds band and sublevel onto a single 1..15 scale.
func (it Item) Difficulty() int {
	return it.Band.BaseLevel() + it.Sublevel
}

// PrimarySkill returns the item's first skill tag, which by catalog
// convention is the skill the item primarily exercises.
func (it Item) PrimarySkill() string {
	if len(it.SkillTags) == 0 {
		return ""
	}
	return it.SkillTags[0]
}

// Validate checks the item's fields are in range, used when ingesting
// catalog data from external sources.
func (it Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item has no ID")
	}
	if len(it.SkillTags) == 0 {
		return fmt.Errorf("item %s has no skill tags", it.ID)
	}
	switch it.Band {
	case BandEasy, BandMedium, BandHard:
	default:
		return fmt.Errorf("item %s: unknown difficulty band %q", it.ID, it.Band)
	}
	if it.Sublevel < 1 || it.Sublevel > 5 {
		return fmt.Errorf("item %s: difficulty sublevel %d outside 1..5", it.ID, it.Sublevel)
	}
	if it.Quality < 0 || it.Quality > 100 {
		return fmt.Errorf("item %s: quality score %.1f outside 0..100", it.ID, it.Quality)
	}
	if it.Relevance < 0 || it.Relevance > 100 {
		return fmt.Errorf("item %s: relevance score %.1f outside 0..100", it.ID, it.Relevance)
	}
	if it.EstimatedMins < 1 {
		return fmt.Errorf("item %s: estimated minutes %d", it.ID, it.EstimatedMins)
	}
	return nil
}

// HasTag reports whether the item carries the given skill tag.
func (it Item) HasTag(skillID string) bool {
	for _, t := range it.SkillTags {
		if t == skillID {
			return true
		}
	}
	return false
}
