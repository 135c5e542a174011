package catalog

import (
	"context"
	"sort"
)

// Filter narrows a catalog query. Zero values leave a dimension
// unconstrained (MaxDifficulty 0 means "no upper bound").
type Filter struct {
	SkillTags     []string
	MinDifficulty int
	MaxDifficulty int
	MinQuality    float64
	MinRelevance  float64
	ExcludeIDs    map[string]bool
	Limit         int
}

// Index is the narrow read-only capability the engine needs from the item
// catalog. Implementations must return results in a deterministic order.
type Index interface {
	Query(ctx context.Context, f Filter) ([]Item, error)
}

// Matches reports whether an item satisfies the filter, ignoring Limit.
func (f Filter) Matches(it Item) bool {
	if len(f.SkillTags) > 0 {
		tagged := false
		for _, tag := range f.SkillTags {
			if it.HasTag(tag) {
				tagged = true
				break
			}
		}
		if !tagged {
			return false
		}
	}
	d := it.Difficulty()
	if f.MinDifficulty > 0 && d < f.MinDifficulty {
		return false
	}
	if f.MaxDifficulty > 0 && d > f.MaxDifficulty {
		return false
	}
	if it.Quality < f.MinQuality {
		return false
	}
	if it.Relevance < f.MinRelevance {
		return false
	}
	if f.ExcludeIDs[it.ID] {
		return false
	}
	return true
}

// MemIndex is an in-memory Index. It backs tests and small deployments;
// production catalogs sit behind the same interface.
type MemIndex struct {
	items []Item
}

// NewMemIndex builds an in-memory index over the given items.
func NewMemIndex(items []Item) *MemIndex {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &MemIndex{items: sorted}
}

// Query returns all items matching the filter, ordered by ID.
func (m *MemIndex) Query(_ context.Context, f Filter) ([]Item, error) {
	var result []Item
	for _, it := range m.items {
		if !f.Matches(it) {
			continue
		}
		result = append(result, it)
		if f.Limit > 0 && len(result) >= f.Limit {
			break
		}
	}
	return result, nil
}
