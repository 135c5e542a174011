package skillgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the skill DAG with precomputed indices.
// A Graph is immutable after construction and safe for concurrent reads.
type Graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[Category][]Skill
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
	depth      map[string]int
	closure    map[string][]string
}

// New constructs a Graph from a slice of skills, validating the set first.
// A cyclic graph is a configuration bug: New returns a *CycleError and the
// caller is expected to treat it as fatal.
func New(skills []Skill) (*Graph, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}

	g := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[Category][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
		depth:      make(map[string]int, len(skills)),
		closure:    make(map[string][]string, len(skills)),
	}

	for i := range g.skills {
		g.byID[g.skills[i].ID] = &g.skills[i]
	}

	// Reverse edges.
	for i := range g.skills {
		for _, prereqID := range g.skills[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.skills[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm) with sorted queues so the
	// resulting order is deterministic across runs.
	inDegree := make(map[string]int, len(skills))
	for i := range g.skills {
		inDegree[g.skills[i].ID] = len(g.skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		skill := g.byID[id]
		g.topoOrder = append(g.topoOrder, *skill)

		sorted := slices.Clone(g.dependents[id])
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	for i, s := range g.topoOrder {
		g.topoIndex[s.ID] = i
	}

	// Depth = longest prerequisite chain; roots sit at depth 0.
	// Computed in topo order so prerequisites are always resolved first.
	for _, s := range g.topoOrder {
		d := 0
		for _, prereqID := range g.byID[s.ID].Prerequisites {
			if pd := g.depth[prereqID] + 1; pd > d {
				d = pd
			}
		}
		g.depth[s.ID] = d
	}

	// Transitive prerequisite closure, also in topo order.
	for _, s := range g.topoOrder {
		seen := make(map[string]bool)
		for _, prereqID := range g.byID[s.ID].Prerequisites {
			seen[prereqID] = true
			for _, anc := range g.closure[prereqID] {
				seen[anc] = true
			}
		}
		ids := make([]string, 0, len(seen))
		for id := range seen {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		g.closure[s.ID] = ids
	}

	for i := range g.skills {
		if len(g.skills[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.skills[i])
		}
	}

	// Group by category, ordered by topological position.
	for i := range g.skills {
		s := g.skills[i]
		g.byCategory[s.Category] = append(g.byCategory[s.Category], s)
	}
	for cat, group := range g.byCategory {
		sort.Slice(group, func(i, j int) bool {
			return g.topoIndex[group[i].ID] < g.topoIndex[group[j].ID]
		})
		g.byCategory[cat] = group
	}

	return g, nil
}

// MustNew is New but panics on validation failure. Intended for static
// seed data where an invalid graph is a programming error.
func MustNew(skills []Skill) *Graph {
	g, err := New(skills)
	if err != nil {
		panic(fmt.Sprintf("skillgraph: invalid skill set: %v", err))
	}
	return g
}

// Get returns a skill by ID, or an error if not found.
func (g *Graph) Get(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// Has reports whether the graph contains the given skill ID.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// All returns all skills in the graph.
func (g *Graph) All() []Skill {
	return slices.Clone(g.skills)
}

// ByCategory returns all skills in a category, in topological order.
func (g *Graph) ByCategory(c Category) []Skill {
	return slices.Clone(g.byCategory[c])
}

// Roots returns all skills with no prerequisites.
func (g *Graph) Roots() []Skill {
	return slices.Clone(g.roots)
}

// TopologicalOrder returns all skills such that every prerequisite
// precedes its dependents.
func (g *Graph) TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}

// TopoIndex returns the skill's position in the topological order.
func (g *Graph) TopoIndex(id string) int {
	return g.topoIndex[id]
}

// Depth returns the length of the longest prerequisite chain below the
// skill. Shallower skills are more foundational.
func (g *Graph) Depth(id string) int {
	return g.depth[id]
}

// Prerequisites returns the direct prerequisite skills for a skill ID.
func (g *Graph) Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// PrereqClosure returns the transitive prerequisite set for a skill ID,
// sorted by ID.
func (g *Graph) PrereqClosure(id string) []string {
	return slices.Clone(g.closure[id])
}

// Dependents returns skills that directly depend on the given skill ID.
func (g *Graph) Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// Importance returns the importance weight for a skill, or 0 if unknown.
func (g *Graph) Importance(id string) float64 {
	if s, ok := g.byID[id]; ok {
		return s.ImportanceWeight
	}
	return 0
}
