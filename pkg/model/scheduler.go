package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Scheduler interface {
	// Returns the exam slots of every course in the graph, where no two courses in the same slot conflict
	Build(graph *ConflictGraph) Schedule

	// Checks whether every course in the graph appears in exactly one slot and no slot holds conflicting courses
	Verify(schedule Schedule, graph *ConflictGraph) bool
}

// Slot is a time period (numbered from 1) holding mutually non-conflicting courses
type Slot struct {
	Number  int
	Courses []string
}

type Schedule []Slot

// CourseSlots maps every scheduled course to its slot number
func (schedule Schedule) CourseSlots() map[string]int {
	courseSlots := make(map[string]int)
	for _, slot := range schedule {
		for _, course := range slot.Courses {
			courseSlots[course] = slot.Number
		}
	}
	return courseSlots
}

// Courses returns the number of scheduled courses
func (schedule Schedule) Courses() int {
	return lo.SumBy(schedule, func(slot Slot) int { return len(slot.Courses) })
}

// VertexOrder is the order in which the greedy scheduler visits the courses on every pass
type VertexOrder int

const (
	InsertionOrder  VertexOrder = iota // First appearance in the roster
	IdentifierOrder                    // Course identifier, ascending
	DegreeOrder                        // Number of conflicts, descending. Ties keep insertion order
)

var vertexOrders = map[string]VertexOrder{
	"insertion":  InsertionOrder,
	"identifier": IdentifierOrder,
	"degree":     DegreeOrder,
}

var VertexOrders = []VertexOrder{InsertionOrder, IdentifierOrder, DegreeOrder}

func ParseVertexOrder(name string) (VertexOrder, error) {
	order, ok := vertexOrders[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%v is not a valid vertex order", name)
	}
	return order, nil
}

func (order VertexOrder) String() string {
	name, ok := lo.FindKey(vertexOrders, order)
	if !ok {
		return fmt.Sprintf("VertexOrder(%d)", int(order))
	}
	return name
}
