package view

import (
	"io"

	"github.com/gocarina/gocsv"
)

type examRow struct {
	Student string `csv:"Student"`
	Course  string `csv:"Course"`
	Slot    string `csv:"Slot"`
}

// WriteCsv writes one row per student exam, following the student-major view
func WriteCsv(writer io.Writer, views Views) error {
	rows := make([]*examRow, 0, len(views.StudentMajor)*4)
	for _, studentSchedule := range views.StudentMajor {
		for _, exam := range studentSchedule.Exams {
			rows = append(rows, &examRow{
				Student: studentSchedule.Student,
				Course:  exam.Course,
				Slot:    exam.Slot,
			})
		}
	}

	return gocsv.Marshal(&rows, writer)
}
