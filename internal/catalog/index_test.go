package catalog

import (
	"context"
	"testing"
)

func testItems() []Item {
	return []Item{
		{ID: "p3", SkillTags: []string{"arrays"}, Band: BandMedium, Sublevel: 2, Quality: 90, Relevance: 80, EstimatedMins: 30},
		{ID: "p1", SkillTags: []string{"arrays", "hashing"}, Band: BandEasy, Sublevel: 1, Quality: 85, Relevance: 70, EstimatedMins: 15},
		{ID: "p2", SkillTags: []string{"hashing"}, Band: BandEasy, Sublevel: 4, Quality: 60, Relevance: 95, EstimatedMins: 20},
		{ID: "p4", SkillTags: []string{"dynamic_programming"}, Band: BandHard, Sublevel: 3, Quality: 95, Relevance: 90, EstimatedMins: 45},
	}
}

func TestDifficultyScale(t *testing.T) {
	tests := []struct {
		band     Band
		sublevel int
		want     int
	}{
		{BandEasy, 1, 1},
		{BandEasy, 5, 5},
		{BandMedium, 1, 6},
		{BandMedium, 5, 10},
		{BandHard, 1, 11},
		{BandHard, 5, 15},
	}
	for _, tt := range tests {
		it := Item{Band: tt.band, Sublevel: tt.sublevel}
		if got := it.Difficulty(); got != tt.want {
			t.Errorf("Difficulty(%s/%d) = %d, want %d", tt.band, tt.sublevel, got, tt.want)
		}
	}
}

func TestMemIndex_FilterBySkill(t *testing.T) {
	idx := NewMemIndex(testItems())
	items, err := idx.Query(context.Background(), Filter{SkillTags: []string{"hashing"}})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Results ordered by ID.
	if items[0].ID != "p1" || items[1].ID != "p2" {
		t.Errorf("got order %s, %s; want p1, p2", items[0].ID, items[1].ID)
	}
}

func TestMemIndex_DifficultyWindow(t *testing.T) {
	idx := NewMemIndex(testItems())
	items, err := idx.Query(context.Background(), Filter{MinDifficulty: 4, MaxDifficulty: 8})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for _, it := range items {
		if d := it.Difficulty(); d < 4 || d > 8 {
			t.Errorf("item %s difficulty %d outside window [4,8]", it.ID, d)
		}
	}
	if len(items) != 2 { // p2 (4) and p3 (7)
		t.Errorf("got %d items, want 2", len(items))
	}
}

func TestMemIndex_QualityAndExclusion(t *testing.T) {
	idx := NewMemIndex(testItems())
	items, err := idx.Query(context.Background(), Filter{
		MinQuality: 80,
		ExcludeIDs: map[string]bool{"p3": true},
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(items) != 2 { // p1, p4
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, it := range items {
		if it.ID == "p3" {
			t.Error("excluded item p3 returned")
		}
	}
}

func TestMemIndex_Limit(t *testing.T) {
	idx := NewMemIndex(testItems())
	items, err := idx.Query(context.Background(), Filter{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}
