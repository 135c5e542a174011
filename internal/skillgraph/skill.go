package skillgraph

// Category represents a curriculum content area.
type Category string

const (
	CategoryFoundations    Category = "foundations"
	CategorySearchSort     Category = "searching-and-sorting"
	CategoryDataStructures Category = "data-structures"
	CategoryGraphs         Category = "graphs"
	CategoryDynamic        Category = "dynamic-programming"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFoundations,
		CategorySearchSort,
		CategoryDataStructures,
		CategoryGraphs,
		CategoryDynamic,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryFoundations:
		return "Foundations"
	case CategorySearchSort:
		return "Searching & Sorting"
	case CategoryDataStructures:
		return "Data Structures"
	case CategoryGraphs:
		return "Graphs"
	case CategoryDynamic:
		return "Dynamic Programming"
	default:
		return string(c)
	}
}

// Skill represents a single skill node in the prerequisite graph.
type Skill struct {
	ID               string
	Name             string
	Category         Category
	ImportanceWeight float64 // [0,1]; weighs the skill's gap during planning
	Prerequisites    []string
}
