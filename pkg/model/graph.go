package model

import (
	"slices"

	"github.com/samber/lo"
)

// ConflictGraph is an undirected simple graph whose vertices are courses and where an edge
// indicates that at least one student takes both courses. Vertices keep their first-insertion order
type ConflictGraph struct {
	courses   []string
	index     map[string]int
	adjacency [][]bool // adjacency[i][j] = true if and only if course_i and course_j conflict. The diagonal is always false
	edges     int
}

func NewConflictGraph() *ConflictGraph {
	return &ConflictGraph{
		courses:   make([]string, 0),
		index:     make(map[string]int),
		adjacency: make([][]bool, 0),
	}
}

// BuildConflictGraph adds every course of the roster as a vertex and connects each pair of courses taken by the same student
func BuildConflictGraph(roster Roster) *ConflictGraph {
	graph := NewConflictGraph()

	for _, record := range roster {
		for _, course := range record.Courses {
			graph.AddCourse(course)
		}

		// Complete graph over the student's courses (6 pairs for 4 courses)
		for i := 0; i < len(record.Courses)-1; i++ {
			for j := i + 1; j < len(record.Courses); j++ {
				graph.AddConflict(record.Courses[i], record.Courses[j])
			}
		}
	}

	return graph
}

// AddCourse inserts the course if it is not present yet and returns its vertex id
func (graph *ConflictGraph) AddCourse(course string) int {
	if id, ok := graph.index[course]; ok {
		return id
	}

	id := len(graph.courses)
	graph.courses = append(graph.courses, course)
	graph.index[course] = id

	// Grow the matrix by one column and one row
	for i := range graph.adjacency {
		graph.adjacency[i] = append(graph.adjacency[i], false)
	}
	graph.adjacency = append(graph.adjacency, make([]bool, id+1))

	return id
}

// AddConflict connects course1 and course2, adding them as vertices when needed. A course never conflicts with itself
func (graph *ConflictGraph) AddConflict(course1, course2 string) {
	id1, id2 := graph.AddCourse(course1), graph.AddCourse(course2)
	if id1 == id2 || graph.adjacency[id1][id2] {
		return
	}

	graph.adjacency[id1][id2] = true
	graph.adjacency[id2][id1] = true
	graph.edges++
}

func (graph *ConflictGraph) Conflicts(course1, course2 string) bool {
	id1, ok1 := graph.index[course1]
	id2, ok2 := graph.index[course2]
	return ok1 && ok2 && graph.adjacency[id1][id2]
}

func (graph *ConflictGraph) HasCourse(course string) bool {
	_, ok := graph.index[course]
	return ok
}

// Courses returns the vertices in insertion order
func (graph *ConflictGraph) Courses() []string {
	return slices.Clone(graph.courses)
}

// Neighbors returns the courses conflicting with course in insertion order
func (graph *ConflictGraph) Neighbors(course string) []string {
	id, ok := graph.index[course]
	if !ok {
		return nil
	}
	return lo.Filter(graph.courses, func(_ string, neighbor int) bool {
		return graph.adjacency[id][neighbor]
	})
}

func (graph *ConflictGraph) Degree(course string) int {
	id, ok := graph.index[course]
	if !ok {
		return 0
	}
	return lo.CountBy(graph.adjacency[id], func(adjacent bool) bool { return adjacent })
}

func (graph *ConflictGraph) Len() int {
	return len(graph.courses)
}

func (graph *ConflictGraph) Edges() int {
	return graph.edges
}
