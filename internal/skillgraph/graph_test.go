package skillgraph

import (
	"testing"
)

func testSkills() []Skill {
	return []Skill{
		{ID: "a", Name: "A", Category: CategoryFoundations, ImportanceWeight: 1.0},
		{ID: "b", Name: "B", Category: CategoryFoundations, ImportanceWeight: 0.5, Prerequisites: []string{"a"}},
		{ID: "c", Name: "C", Category: CategorySearchSort, ImportanceWeight: 0.8, Prerequisites: []string{"a"}},
		{ID: "d", Name: "D", Category: CategoryDynamic, ImportanceWeight: 0.9, Prerequisites: []string{"b", "c"}},
	}
}

func testGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New(testSkills())
	if err != nil {
		t.Fatalf("build test graph: %v", err)
	}
	return g
}

func TestTopologicalOrder_PrereqsFirst(t *testing.T) {
	g := testGraph(t)
	order := g.TopologicalOrder()
	if len(order) != 4 {
		t.Fatalf("got %d skills in topo order, want 4", len(order))
	}
	pos := make(map[string]int)
	for i, s := range order {
		pos[s.ID] = i
	}
	for _, s := range order {
		for _, prereq := range s.Prerequisites {
			if pos[prereq] >= pos[s.ID] {
				t.Errorf("prerequisite %q does not precede %q in topo order", prereq, s.ID)
			}
		}
	}
}

func TestTopologicalOrder_SeedGraph(t *testing.T) {
	g := Default()
	order := g.TopologicalOrder()
	if len(order) != len(g.All()) {
		t.Fatalf("topo order has %d skills, graph has %d", len(order), len(g.All()))
	}
	pos := make(map[string]int)
	for i, s := range order {
		pos[s.ID] = i
	}
	for _, s := range order {
		for _, prereq := range s.Prerequisites {
			if pos[prereq] >= pos[s.ID] {
				t.Errorf("seed graph: prerequisite %q does not precede %q", prereq, s.ID)
			}
		}
	}
}

func TestTopologicalOrder_Deterministic(t *testing.T) {
	first := Default().TopologicalOrder()
	second := Default().TopologicalOrder()
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("topo order differs at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestDepth(t *testing.T) {
	g := testGraph(t)
	tests := []struct {
		id   string
		want int
	}{
		{"a", 0},
		{"b", 1},
		{"c", 1},
		{"d", 2},
	}
	for _, tt := range tests {
		if got := g.Depth(tt.id); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestPrereqClosure(t *testing.T) {
	g := testGraph(t)
	got := g.PrereqClosure("d")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("PrereqClosure(d) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PrereqClosure(d)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	g := testGraph(t)
	if _, err := g.Get("nope"); err == nil {
		t.Fatal("expected error for unknown skill, got nil")
	}
}

func TestDependents(t *testing.T) {
	g := testGraph(t)
	deps := g.Dependents("a")
	if len(deps) != 2 {
		t.Fatalf("Dependents(a): got %d, want 2", len(deps))
	}
}

func TestSeedGraph_CategoriesPopulated(t *testing.T) {
	g := Default()
	for _, c := range AllCategories() {
		if len(g.ByCategory(c)) == 0 {
			t.Errorf("category %q has no skills in seed", c)
		}
	}
}
