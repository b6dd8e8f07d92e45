package view

import (
	"fmt"
	"io"
	"strings"
)

// WriteText prints the three views one after the other, separated by a blank line
func WriteText(writer io.Writer, views Views) error {
	var builder strings.Builder

	for _, slot := range views.SlotMajor {
		fmt.Fprintf(&builder, "%v: %v\n", slot.Label, strings.Join(slot.Courses, " "))
	}
	builder.WriteString("\n")

	for _, courseSlot := range views.CourseOrdered {
		fmt.Fprintf(&builder, "%v: %v\n", courseSlot.Course, courseSlot.Slot)
	}

	for _, studentSchedule := range views.StudentMajor {
		fmt.Fprintf(&builder, "\n%v\n", studentSchedule.Student)
		for _, exam := range studentSchedule.Exams {
			fmt.Fprintf(&builder, "%v: %v\n", exam.Course, exam.Slot)
		}
	}

	_, err := io.WriteString(writer, builder.String())
	return err
}
