package model

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const CoursesPerStudent = 4

var InputFormats = []string{"text", "json", "csv"}

type StudentRecord struct {
	Student string
	Courses [CoursesPerStudent]string
}

type Roster []StudentRecord

type RawStudentRecord struct {
	Student string
	Courses []string
}

type csvStudentRecord struct {
	Student string `csv:"Student"`
	Course1 string `csv:"Course1"`
	Course2 string `csv:"Course2"`
	Course3 string `csv:"Course3"`
	Course4 string `csv:"Course4"`
}

// ParseError reports a roster record that does not have the expected shape. Record is 1-based
type ParseError struct {
	Record int
	Reason string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("record %d: %v", err.Record, err.Reason)
}

// Students returns the student names in roster order
func (roster Roster) Students() []string {
	return lo.Map(roster, func(record StudentRecord, _ int) string { return record.Student })
}

// Returns the format of a roster file given its extension, defaulting to "text"
func FormatFromPath(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	default:
		return "text"
	}
}

// RosterFromFile reads the roster stored in file. An empty format is inferred from the file extension
func RosterFromFile(file, format string, delimiter rune) (Roster, error) {
	if format == "" {
		format = FormatFromPath(file)
	}
	if !slices.Contains(InputFormats, format) {
		return nil, fmt.Errorf("%v is not a valid input format", format)
	}

	reader, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open roster file: %w", err)
	}
	defer reader.Close()

	switch format {
	case "json":
		return RosterFromJson(reader)
	case "csv":
		return RosterFromCsv(reader, delimiter)
	default:
		return RosterFromText(reader)
	}
}

// RosterFromText reads records made of a student-name line followed by one line per course.
// Blank lines between records are ignored
func RosterFromText(reader io.Reader) (Roster, error) {
	scanner := bufio.NewScanner(reader)
	rawRoster := make([]RawStudentRecord, 0)

	var current *RawStudentRecord
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if current == nil {
			if line == "" {
				continue
			}
			current = &RawStudentRecord{Student: line, Courses: make([]string, 0, CoursesPerStudent)}
			continue
		}

		if line == "" {
			return nil, &ParseError{
				Record: len(rawRoster) + 1,
				Reason: fmt.Sprintf("student \"%v\" lists %d courses, expected %d", current.Student, len(current.Courses), CoursesPerStudent),
			}
		}

		current.Courses = append(current.Courses, line)
		if len(current.Courses) == CoursesPerStudent {
			rawRoster = append(rawRoster, *current)
			current = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read roster: %w", err)
	}

	// Input ended in the middle of a record
	if current != nil {
		return nil, &ParseError{
			Record: len(rawRoster) + 1,
			Reason: fmt.Sprintf("student \"%v\" lists %d courses, expected %d", current.Student, len(current.Courses), CoursesPerStudent),
		}
	}

	return ProcessRawRoster(rawRoster)
}

// RosterFromJson reads an array of {"student": ..., "courses": [...]} objects
func RosterFromJson(reader io.Reader) (Roster, error) {
	bytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("cannot read roster: %w", err)
	}

	var inputJson []any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot parse roster json: %w", err)
	}

	var rawRoster []RawStudentRecord
	if err := mapstructure.Decode(inputJson, &rawRoster); err != nil {
		return nil, fmt.Errorf("cannot decode roster json: %w", err)
	}
	return ProcessRawRoster(rawRoster)
}

// RosterFromCsv reads a table with the header Student,Course1,Course2,Course3,Course4
func RosterFromCsv(reader io.Reader, delimiter rune) (Roster, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = CoursesPerStudent + 1 // Student name plus one column per course

	rows := []*csvStudentRecord{}
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		var csvError *csv.ParseError
		if errors.As(err, &csvError) && errors.Is(csvError.Err, csv.ErrFieldCount) {
			// Line 1 holds the header, so line n holds record n-1
			if csvError.StartLine <= 1 {
				return nil, fmt.Errorf("roster csv header must have %d columns: %w", CoursesPerStudent+1, err)
			}
			return nil, &ParseError{
				Record: csvError.StartLine - 1,
				Reason: fmt.Sprintf("expected a student and %d courses", CoursesPerStudent),
			}
		}
		return nil, fmt.Errorf("cannot parse roster csv: %w", err)
	}

	rawRoster := lo.Map(rows, func(row *csvStudentRecord, _ int) RawStudentRecord {
		courses := lo.Filter([]string{row.Course1, row.Course2, row.Course3, row.Course4}, func(course string, _ int) bool {
			return strings.TrimSpace(course) != ""
		})
		return RawStudentRecord{Student: row.Student, Courses: courses}
	})
	return ProcessRawRoster(rawRoster)
}

// ProcessRawRoster checks every raw record has a student name and exactly four non-empty courses
func ProcessRawRoster(rawRoster []RawStudentRecord) (Roster, error) {
	roster := make(Roster, 0, len(rawRoster))

	for i, rawRecord := range rawRoster {
		student := strings.TrimSpace(rawRecord.Student)
		if student == "" {
			return nil, &ParseError{Record: i + 1, Reason: "missing student name"}
		}
		if len(rawRecord.Courses) != CoursesPerStudent {
			return nil, &ParseError{
				Record: i + 1,
				Reason: fmt.Sprintf("student \"%v\" lists %d courses, expected %d", student, len(rawRecord.Courses), CoursesPerStudent),
			}
		}

		record := StudentRecord{Student: student}
		for j, course := range rawRecord.Courses {
			course = strings.TrimSpace(course)
			if course == "" {
				return nil, &ParseError{Record: i + 1, Reason: fmt.Sprintf("student \"%v\" has an empty course at position %d", student, j+1)}
			}
			record.Courses[j] = course
		}
		roster = append(roster, record)
	}

	return roster, nil
}
