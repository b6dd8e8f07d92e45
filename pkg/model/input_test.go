package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var smallRoster = Roster{
	{Student: "Alice Moreno", Courses: [4]string{"CSCI 136", "MATH 251", "PHYS 141", "ENGL 101"}},
	{Student: "Bruno Diaz", Courses: [4]string{"CSCI 136", "CSCI 256", "HIST 110", "ENGL 101"}},
	{Student: "Carla Soto", Courses: [4]string{"ARTS 100", "MATH 251", "HIST 110", "CHEM 151"}},
}

func TestRosterFromFile(t *testing.T) {
	t.Run("Every format yields the same roster", func(t *testing.T) {
		for _, file := range []string{"small.txt", "small.json", "small.csv"} {
			//** Act
			roster, err := RosterFromFile(rosterTestDirectory+file, "", ',')

			//** Assert
			assert.Nil(t, err)
			assert.Equal(t, smallRoster, roster, file)
		}
	})

	t.Run("Explicit format overrides the extension", func(t *testing.T) {
		_, err := RosterFromFile(rosterTestDirectory+"small.txt", "json", ',')
		assert.NotNil(t, err)
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := RosterFromFile(rosterTestDirectory+"small.txt", "xml", ',')
		assert.ErrorContains(t, err, "not a valid input format")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := RosterFromFile(rosterTestDirectory+"missing.txt", "", ',')
		assert.NotNil(t, err)
	})
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "json", FormatFromPath("roster.JSON"))
	assert.Equal(t, "csv", FormatFromPath("dir/roster.csv"))
	assert.Equal(t, "text", FormatFromPath("roster.txt"))
	assert.Equal(t, "text", FormatFromPath("roster"))
}

func TestRosterFromText(t *testing.T) {
	t.Run("Blank lines between records are ignored", func(t *testing.T) {
		//** Arrange
		input := "\nAlice\nA\nB\nC\nD\n\n\nBruno\n  A  \nE\nF\nG\n\n"

		//** Act
		roster, err := RosterFromText(strings.NewReader(input))

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, Roster{
			{Student: "Alice", Courses: [4]string{"A", "B", "C", "D"}},
			{Student: "Bruno", Courses: [4]string{"A", "E", "F", "G"}},
		}, roster)
		assert.Equal(t, []string{"Alice", "Bruno"}, roster.Students())
	})

	t.Run("Record cut short by the end of input", func(t *testing.T) {
		//** Act
		_, err := RosterFromText(strings.NewReader("Alice\nA\nB\nC\nD\nBruno\nA\nE\n"))

		//** Assert
		var parseError *ParseError
		assert.True(t, errors.As(err, &parseError))
		assert.Equal(t, 2, parseError.Record)
		assert.Contains(t, parseError.Reason, "lists 2 courses")
	})

	t.Run("Record cut short by a blank line", func(t *testing.T) {
		_, err := RosterFromText(strings.NewReader("Alice\nA\nB\n\nC\nD\n"))

		var parseError *ParseError
		assert.True(t, errors.As(err, &parseError))
		assert.Equal(t, 1, parseError.Record)
	})

	t.Run("Empty input", func(t *testing.T) {
		roster, err := RosterFromText(strings.NewReader(""))

		assert.Nil(t, err)
		assert.Empty(t, roster)
	})
}

func TestRosterFromJson(t *testing.T) {
	t.Run("Wrong number of courses", func(t *testing.T) {
		//** Arrange
		input := `[{"student": "Alice", "courses": ["A", "B", "C", "D"]}, {"student": "Bruno", "courses": ["A", "B", "C"]}]`

		//** Act
		_, err := RosterFromJson(strings.NewReader(input))

		//** Assert
		var parseError *ParseError
		assert.True(t, errors.As(err, &parseError))
		assert.Equal(t, 2, parseError.Record)
	})

	t.Run("Missing student name", func(t *testing.T) {
		_, err := RosterFromJson(strings.NewReader(`[{"courses": ["A", "B", "C", "D"]}]`))

		var parseError *ParseError
		assert.True(t, errors.As(err, &parseError))
		assert.Equal(t, "missing student name", parseError.Reason)
	})

	t.Run("Malformed json", func(t *testing.T) {
		_, err := RosterFromJson(strings.NewReader(`{"student": `))
		assert.NotNil(t, err)
	})
}

func TestRosterFromCsv(t *testing.T) {
	t.Run("Custom delimiter", func(t *testing.T) {
		//** Arrange
		input := "Student;Course1;Course2;Course3;Course4\nAlice;A;B;C;D\n"

		//** Act
		roster, err := RosterFromCsv(strings.NewReader(input), ';')

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, Roster{{Student: "Alice", Courses: [4]string{"A", "B", "C", "D"}}}, roster)
	})

	t.Run("Empty course field", func(t *testing.T) {
		//** Arrange
		input := "Student,Course1,Course2,Course3,Course4\nAlice,A,B,C,D\nBruno,A,,C,D\n"

		//** Act
		_, err := RosterFromCsv(strings.NewReader(input), ',')

		//** Assert
		var parseError *ParseError
		assert.True(t, errors.As(err, &parseError))
		assert.Equal(t, 2, parseError.Record)
		assert.Equal(t, "record 2: student \"Bruno\" lists 3 courses, expected 4", parseError.Error())
	})

	t.Run("Row with missing fields", func(t *testing.T) {
		_, err := RosterFromCsv(strings.NewReader("Student,Course1,Course2,Course3,Course4\nAlice,A,B\n"), ',')

		var parseError *ParseError
		assert.True(t, errors.As(err, &parseError))
		assert.Equal(t, 1, parseError.Record)
	})

	t.Run("Extra course column", func(t *testing.T) {
		//** Arrange
		input := "Student,Course1,Course2,Course3,Course4,Course5\nAlice,A,B,C,D,E\n"

		//** Act
		roster, err := RosterFromCsv(strings.NewReader(input), ',')

		//** Assert
		assert.Nil(t, roster)
		assert.ErrorContains(t, err, "header must have 5 columns")
	})

	t.Run("Extra course in a row", func(t *testing.T) {
		//** Arrange
		input := "Student,Course1,Course2,Course3,Course4\nAlice,A,B,C,D\nBruno,A,E,F,G,H\n"

		//** Act
		roster, err := RosterFromCsv(strings.NewReader(input), ',')

		//** Assert
		assert.Nil(t, roster)
		var parseError *ParseError
		assert.True(t, errors.As(err, &parseError))
		assert.Equal(t, 2, parseError.Record)
	})
}
