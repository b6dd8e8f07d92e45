package view

import (
	"fmt"
	"io"
	"slices"
)

var OutputFormats = []string{"text", "json", "csv"}

var writers = map[string]func(io.Writer, Views) error{
	"text": WriteText,
	"json": WriteJson,
	"csv":  WriteCsv,
}

// Write renders the views in the given output format
func Write(writer io.Writer, views Views, format string) error {
	if !slices.Contains(OutputFormats, format) {
		return fmt.Errorf("%v is not a valid output format", format)
	}
	return writers[format](writer, views)
}
