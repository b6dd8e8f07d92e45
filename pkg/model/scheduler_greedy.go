package model

import "github.com/samber/lo"

// greedyScheduler fills one slot at a time with every remaining course that does not conflict
// with the courses already placed in it (first-fit coloring). The number of slots is not guaranteed to be minimal
type greedyScheduler struct {
	order VertexOrder
}

func NewGreedyScheduler(order VertexOrder) Scheduler {
	return &greedyScheduler{
		order: order,
	}
}

func (scheduler *greedyScheduler) Build(graph *ConflictGraph) Schedule {
	traversal := traversalOrder(graph, scheduler.order)

	visited := make(map[string]bool, len(traversal))
	schedule := Schedule{}

	// Every pass places at least the first unvisited course, since it always fits an empty slot
	for visitedCount := 0; visitedCount < len(traversal); {
		slot := Slot{
			Number:  len(schedule) + 1,
			Courses: make([]string, 0),
		}

		for _, course := range traversal {
			if visited[course] {
				continue
			}

			if lo.SomeBy(slot.Courses, func(placed string) bool {
				return graph.Conflicts(course, placed)
			}) {
				continue
			}

			slot.Courses = append(slot.Courses, course)
			visited[course] = true
			visitedCount++
		}

		schedule = append(schedule, slot)
	}

	return schedule
}

func (scheduler *greedyScheduler) Verify(schedule Schedule, graph *ConflictGraph) bool {
	return verify(schedule, graph)
}
