package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/limaJavier/examscheduling/pkg/model"
	"github.com/limaJavier/examscheduling/pkg/view"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the scheduler settings that can be stored in a config.json (or config.yaml) file.
// Keys are matched case-insensitively, e.g. {"order": "degree", "slotLabel": "Period %d"}
type Config struct {
	Order        string // Vertex order used by the greedy scheduler: "insertion", "identifier" or "degree"
	SlotLabel    string // Format of the slot labels, holding one %d verb
	InputFormat  string // "text", "json" or "csv"; empty means it is inferred from the file extension
	OutputFormat string // "text", "json" or "csv"
	Delimiter    string // Field delimiter of csv rosters
}

func Default() Config {
	return Config{
		Order:        "insertion",
		SlotLabel:    view.DefaultSlotLabel,
		InputFormat:  "",
		OutputFormat: "text",
		Delimiter:    ",",
	}
}

// Load reads the config file at path on top of the default values. Values are not validated, so
// callers can still override them (e.g. with command-line flags) before calling Validate
func Load(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = json.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %v: %w", path, err)
	}

	config := Default()
	if err := mapstructure.Decode(raw, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file %v: %w", path, err)
	}
	return config, nil
}

func (config Config) Validate() error {
	if _, err := model.ParseVertexOrder(config.Order); err != nil {
		return err
	} else if config.InputFormat != "" && !slices.Contains(model.InputFormats, config.InputFormat) {
		return fmt.Errorf("%v is not a valid input format", config.InputFormat)
	} else if !slices.Contains(view.OutputFormats, config.OutputFormat) {
		return fmt.Errorf("%v is not a valid output format", config.OutputFormat)
	} else if _, err := view.NewLabeler(config.SlotLabel); err != nil {
		return err
	} else if utf8.RuneCountInString(config.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character: \"%v\"", config.Delimiter)
	}
	return nil
}

func (config Config) DelimiterRune() rune {
	delimiter, _ := utf8.DecodeRuneInString(config.Delimiter)
	return delimiter
}
