package view

import (
	"encoding/json"
	"fmt"
	"io"
)

func WriteJson(writer io.Writer, views Views) error {
	viewsJson, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}

	if _, err := writer.Write(append(viewsJson, '\n')); err != nil {
		return err
	}
	return nil
}
