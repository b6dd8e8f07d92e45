package model

import (
	"cmp"
	"slices"
)

func verify(schedule Schedule, graph *ConflictGraph) bool {
	scheduled := make(map[string]bool, graph.Len())

	for i, slot := range schedule {
		// Slots are numbered consecutively from 1
		if slot.Number != i+1 {
			return false
		}

		for j, course := range slot.Courses {
			// Check that:
			// - Course is a vertex of the graph
			// - Course was not already scheduled (in this or a previous slot)
			// - Course does not conflict with a course placed before it in the same slot
			if !graph.HasCourse(course) ||
				scheduled[course] ||
				slices.ContainsFunc(slot.Courses[:j], func(other string) bool { return graph.Conflicts(course, other) }) {
				return false
			}
			scheduled[course] = true
		}
	}

	// Check completeness
	return len(scheduled) == graph.Len()
}

// Returns the courses of the graph in the order the scheduler must visit them
func traversalOrder(graph *ConflictGraph, order VertexOrder) []string {
	courses := graph.Courses()

	switch order {
	case IdentifierOrder:
		slices.Sort(courses)
	case DegreeOrder:
		degrees := make(map[string]int, len(courses))
		for _, course := range courses {
			degrees[course] = graph.Degree(course)
		}
		slices.SortStableFunc(courses, func(a, b string) int {
			return cmp.Compare(degrees[b], degrees[a])
		})
	}

	return courses
}
