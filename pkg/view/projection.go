package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/examscheduling/pkg/model"
	"github.com/samber/lo"
)

const DefaultSlotLabel = "Slot %d"

// Labeler returns the display label of a slot number
type Labeler func(slot int) string

// NewLabeler builds a Labeler from a format holding a single %d verb, e.g. "Slot %d"
func NewLabeler(format string) (Labeler, error) {
	if strings.Count(format, "%d") != 1 || strings.Count(format, "%") != 1 {
		return nil, fmt.Errorf("slot label \"%v\" must contain exactly one %%d verb", format)
	}
	return func(slot int) string { return fmt.Sprintf(format, slot) }, nil
}

func DefaultLabeler(slot int) string {
	return fmt.Sprintf(DefaultSlotLabel, slot)
}

type SlotView struct {
	Label   string   `json:"label"`
	Courses []string `json:"courses"`
}

type CourseSlot struct {
	Course string `json:"course"`
	Slot   string `json:"slot"`
}

type StudentSchedule struct {
	Student string       `json:"student"`
	Exams   []CourseSlot `json:"exams"`
}

type Views struct {
	SlotMajor     []SlotView        `json:"slots"`
	CourseOrdered []CourseSlot      `json:"courses"`
	StudentMajor  []StudentSchedule `json:"students"`
}

// IntegrityError reports a course taken by a student that is missing from the schedule
type IntegrityError struct {
	Student string
	Course  string
}

func (err *IntegrityError) Error() string {
	return fmt.Sprintf("course \"%v\" taken by student \"%v\" is not present in the schedule", err.Course, err.Student)
}

// Project builds the slot-major, course-ordered and student-major views of the schedule
func Project(schedule model.Schedule, roster model.Roster, labeler Labeler) (Views, error) {
	studentMajor, err := StudentMajor(schedule, roster, labeler)
	if err != nil {
		return Views{}, err
	}

	return Views{
		SlotMajor:     SlotMajor(schedule, labeler),
		CourseOrdered: CourseOrdered(schedule, labeler),
		StudentMajor:  studentMajor,
	}, nil
}

func SlotMajor(schedule model.Schedule, labeler Labeler) []SlotView {
	return lo.Map(schedule, func(slot model.Slot, _ int) SlotView {
		return SlotView{
			Label:   labeler(slot.Number),
			Courses: slices.Clone(slot.Courses),
		}
	})
}

// CourseOrdered lists every course with its slot label, sorted by course identifier
func CourseOrdered(schedule model.Schedule, labeler Labeler) []CourseSlot {
	courseSlots := make([]CourseSlot, 0, schedule.Courses())
	for _, slot := range schedule {
		label := labeler(slot.Number)
		for _, course := range slot.Courses {
			courseSlots = append(courseSlots, CourseSlot{Course: course, Slot: label})
		}
	}

	slices.SortFunc(courseSlots, func(a, b CourseSlot) int {
		return cmp.Compare(a.Course, b.Course)
	})
	return courseSlots
}

// StudentMajor lists the exams of every student, students sorted by name. Students sharing a name keep roster order
func StudentMajor(schedule model.Schedule, roster model.Roster, labeler Labeler) ([]StudentSchedule, error) {
	courseSlots := schedule.CourseSlots()

	studentSchedules := make([]StudentSchedule, 0, len(roster))
	for _, record := range roster {
		exams := make([]CourseSlot, 0, len(record.Courses))
		for _, course := range record.Courses {
			slot, ok := courseSlots[course]
			if !ok {
				return nil, &IntegrityError{Student: record.Student, Course: course}
			}
			exams = append(exams, CourseSlot{Course: course, Slot: labeler(slot)})
		}

		studentSchedules = append(studentSchedules, StudentSchedule{
			Student: record.Student,
			Exams:   exams,
		})
	}

	slices.SortStableFunc(studentSchedules, func(a, b StudentSchedule) int {
		return cmp.Compare(a.Student, b.Student)
	})
	return studentSchedules, nil
}
