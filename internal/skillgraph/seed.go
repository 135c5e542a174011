package skillgraph

// Default returns the built-in interview-prep skill graph.
// The seed is static configuration: MustNew panics if it ever regresses
// into an invalid state, which is caught by the package tests.
func Default() *Graph {
	return MustNew(defaultSkills())
}

// defaultSkills lists the seed skill set. Importance weights bias the
// planner toward high-leverage skills when gaps are otherwise equal.
func defaultSkills() []Skill {
	return []Skill{
		// Foundations
		{ID: "arrays", Name: "Arrays & Iteration", Category: CategoryFoundations, ImportanceWeight: 1.0},
		{ID: "strings", Name: "String Manipulation", Category: CategoryFoundations, ImportanceWeight: 0.8},
		{ID: "hashing", Name: "Hash Maps & Sets", Category: CategoryFoundations, ImportanceWeight: 1.0, Prerequisites: []string{"arrays"}},
		{ID: "two_pointers", Name: "Two Pointers", Category: CategoryFoundations, ImportanceWeight: 0.7, Prerequisites: []string{"arrays"}},
		{ID: "sliding_window", Name: "Sliding Window", Category: CategoryFoundations, ImportanceWeight: 0.7, Prerequisites: []string{"two_pointers"}},
		{ID: "prefix_sums", Name: "Prefix Sums", Category: CategoryFoundations, ImportanceWeight: 0.5, Prerequisites: []string{"arrays"}},

		// Searching & sorting
		{ID: "sorting", Name: "Sorting Algorithms", Category: CategorySearchSort, ImportanceWeight: 0.8, Prerequisites: []string{"arrays"}},
		{ID: "binary_search", Name: "Binary Search", Category: CategorySearchSort, ImportanceWeight: 0.9, Prerequisites: []string{"sorting"}},
		{ID: "heaps", Name: "Heaps & Priority Queues", Category: CategorySearchSort, ImportanceWeight: 0.7, Prerequisites: []string{"sorting", "trees"}},
		{ID: "intervals", Name: "Interval Problems", Category: CategorySearchSort, ImportanceWeight: 0.5, Prerequisites: []string{"sorting"}},

		// Data structures
		{ID: "linked_lists", Name: "Linked Lists", Category: CategoryDataStructures, ImportanceWeight: 0.6},
		{ID: "stacks_queues", Name: "Stacks & Queues", Category: CategoryDataStructures, ImportanceWeight: 0.7, Prerequisites: []string{"arrays"}},
		{ID: "trees", Name: "Binary Trees", Category: CategoryDataStructures, ImportanceWeight: 0.9, Prerequisites: []string{"linked_lists"}},
		{ID: "bst", Name: "Binary Search Trees", Category: CategoryDataStructures, ImportanceWeight: 0.6, Prerequisites: []string{"trees", "binary_search"}},
		{ID: "tries", Name: "Tries", Category: CategoryDataStructures, ImportanceWeight: 0.4, Prerequisites: []string{"trees", "strings", "hashing"}},

		// Graphs
		{ID: "graph_traversal", Name: "BFS & DFS", Category: CategoryGraphs, ImportanceWeight: 0.9, Prerequisites: []string{"trees", "stacks_queues", "hashing"}},
		{ID: "topological_ordering", Name: "Topological Ordering", Category: CategoryGraphs, ImportanceWeight: 0.5, Prerequisites: []string{"graph_traversal"}},
		{ID: "shortest_paths", Name: "Shortest Paths", Category: CategoryGraphs, ImportanceWeight: 0.6, Prerequisites: []string{"graph_traversal", "heaps"}},
		{ID: "union_find", Name: "Union-Find", Category: CategoryGraphs, ImportanceWeight: 0.5, Prerequisites: []string{"graph_traversal"}},

		// Dynamic programming & friends
		{ID: "recursion", Name: "Recursion", Category: CategoryDynamic, ImportanceWeight: 0.8, Prerequisites: []string{"arrays"}},
		{ID: "backtracking", Name: "Backtracking", Category: CategoryDynamic, ImportanceWeight: 0.6, Prerequisites: []string{"recursion"}},
		{ID: "dynamic_programming", Name: "Dynamic Programming", Category: CategoryDynamic, ImportanceWeight: 1.0, Prerequisites: []string{"recursion", "hashing"}},
		{ID: "greedy", Name: "Greedy Algorithms", Category: CategoryDynamic, ImportanceWeight: 0.6, Prerequisites: []string{"sorting"}},
	}
}
