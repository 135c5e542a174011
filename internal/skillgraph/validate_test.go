package skillgraph

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_CycleReturnsCycleError(t *testing.T) {
	skills := []Skill{
		{ID: "x", Category: CategoryFoundations, ImportanceWeight: 0.5, Prerequisites: []string{"z"}},
		{ID: "y", Category: CategoryFoundations, ImportanceWeight: 0.5, Prerequisites: []string{"x"}},
		{ID: "z", Category: CategoryFoundations, ImportanceWeight: 0.5, Prerequisites: []string{"y"}},
	}
	_, err := New(skills)
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected *CycleError, got %T: %v", err, err)
	}
	if len(cycleErr.Skills) == 0 {
		t.Error("CycleError should name the skills involved")
	}
}

func TestNew_DanglingPrerequisite(t *testing.T) {
	skills := []Skill{
		{ID: "a", Category: CategoryFoundations, ImportanceWeight: 0.5},
		{ID: "b", Category: CategoryFoundations, ImportanceWeight: 0.5, Prerequisites: []string{"missing"}},
	}
	_, err := New(skills)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name the missing prerequisite: %v", err)
	}
	var cycleErr *CycleError
	if errors.As(err, &cycleErr) {
		t.Errorf("dangling prerequisite reported as a cycle: %v", err)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	skills := []Skill{
		{ID: "a", Category: CategoryFoundations, ImportanceWeight: 0.5},
		{ID: "a", Category: CategoryFoundations, ImportanceWeight: 0.5},
	}
	if _, err := New(skills); err == nil {
		t.Fatal("expected error for duplicate skill ID, got nil")
	}
}

func TestNew_ImportanceOutOfRange(t *testing.T) {
	skills := []Skill{
		{ID: "a", Category: CategoryFoundations, ImportanceWeight: 1.5},
	}
	if _, err := New(skills); err == nil {
		t.Fatal("expected error for out-of-range importance weight, got nil")
	}
}

func TestDefault_Valid(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Default() panicked: %v", r)
		}
	}()
	g := Default()
	if len(g.All()) == 0 {
		t.Fatal("seed graph is empty")
	}
	if len(g.Roots()) == 0 {
		t.Fatal("seed graph has no root skills")
	}
}
