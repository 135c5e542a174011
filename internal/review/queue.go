package review

import (
	"sort"
	"time"
)

// DueCards filters to cards due at now and orders them for presentation:
// most overdue first, then by skill importance, then by skill ID so the
// queue is stable across calls.
func DueCards(cards []Card, importance func(skillID string) float64, now time.Time) []Card {
	var due []Card
	for _, c := range cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(now), due[j].OverdueDays(now)
		if oi != oj {
			return oi > oj
		}
		wi, wj := importance(due[i].SkillID), importance(due[j].SkillID)
		if wi != wj {
			return wi > wj
		}
		return due[i].SkillID < due[j].SkillID
	})
	return due
}
