package main

import (
	"fmt"
	"math/rand"

	"github.com/limaJavier/examscheduling/pkg/model"
)

// Generates a roster where every student takes 4 distinct courses drawn uniformly from a pool of the given size
func generateRoster(students, courses int, random *rand.Rand) model.Roster {
	if courses < model.CoursesPerStudent {
		panic(fmt.Sprintf("course pool must hold at least %d courses: %d", model.CoursesPerStudent, courses))
	}

	roster := make(model.Roster, 0, students)
	for student := 0; student < students; student++ {
		record := model.StudentRecord{Student: fmt.Sprintf("student%05d", student)}
		for i, course := range random.Perm(courses)[:model.CoursesPerStudent] {
			record.Courses[i] = fmt.Sprintf("COURSE%04d", course)
		}
		roster = append(roster, record)
	}
	return roster
}
