package skillgraph

import (
	"fmt"
	"strings"
)

// CycleError reports a prerequisite cycle. The skill graph must be a DAG;
// a cycle means the static configuration is broken and the process should
// not continue.
type CycleError struct {
	Skills []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("skill graph contains a prerequisite cycle involving: %s",
		strings.Join(e.Skills, ", "))
}

// validateSkills performs all structural checks on the given skill set.
// A cycle is reported as *CycleError; all other problems are combined into
// a single descriptive error.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
		}
		if s.ImportanceWeight < 0 || s.ImportanceWeight > 1 {
			errs = append(errs, fmt.Sprintf("skill %q: ImportanceWeight must be in [0,1], got %f", s.ID, s.ImportanceWeight))
		}
	}

	// Dangling prerequisites would confuse the peel below into reporting a
	// cycle, so structural problems are surfaced first.
	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}

	// Cycle check via Kahn's algorithm: any node left with positive
	// in-degree after the peel is part of (or downstream of) a cycle.
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		return &CycleError{Skills: cycleNodes}
	}

	hasRoot := false
	for _, s := range skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(skills) > 0 && !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
