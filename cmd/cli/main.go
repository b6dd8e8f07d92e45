package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/limaJavier/examscheduling/pkg/config"
	"github.com/limaJavier/examscheduling/pkg/model"
	"github.com/limaJavier/examscheduling/pkg/view"
	"github.com/samber/lo"
)

const verificationFailedExitCode = 15

func main() {
	// Define arguments
	configPathPtr := flag.String("config", "", "Path to a config file (.json, .yaml or .yml); if empty, the config.json next to the executable is used when present")
	filePathPtr := flag.String("file", "", "Path to the roster file")
	formatPtr := flag.String("format", "", "Format of the roster file. Allowed values are: \"text\", \"json\", \"csv\"; if empty, it's inferred from the file extension")
	outputPtr := flag.String("output", "", "Format of the output. Allowed values are: \"text\", \"json\", \"csv\", where \"text\" is the default")
	orderPtr := flag.String("order", "", `Order in which courses are visited when filling a slot. Allowed values are:
- "insertion" (Order of first appearance in the roster, the default),
- "identifier" (Course identifiers sorted ascending) and
- "degree" (Courses with more conflicts first)`)
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	verbosePtr := flag.Bool("verbose", false, "Log roster and schedule statistics")
	flag.Parse()

	cfg := loadConfig(*configPathPtr)

	cfg = overrideConfig(cfg, *formatPtr, *outputPtr, *orderPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("a roster file must be specified")
	} else if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	order := lo.Must(model.ParseVertexOrder(cfg.Order))
	labeler := lo.Must(view.NewLabeler(cfg.SlotLabel))

	// Extract roster
	roster, err := model.RosterFromFile(filePath, cfg.InputFormat, cfg.DelimiterRune())
	if err != nil {
		log.Fatalf("cannot parse roster file: %v", err)
	}

	// Build schedule
	graph := model.BuildConflictGraph(roster)
	scheduler := model.NewGreedyScheduler(order)
	schedule := scheduler.Build(graph)

	if *verbosePtr {
		log.Printf("students: %v (%v distinct names), courses: %v, conflicts: %v", len(roster), len(lo.Uniq(roster.Students())), graph.Len(), graph.Edges())
		if course, neighbors, ok := mostConflicting(graph); ok {
			log.Printf("most conflicting course: %v (%v conflicts: %v)", course, len(neighbors), strings.Join(neighbors, ", "))
		}
		log.Printf("slots: %v (order \"%v\")", len(schedule), order)
	}

	// Verify schedule correctness
	if !scheduler.Verify(schedule, graph) {
		log.Printf("schedule verification failed")
		os.Exit(verificationFailedExitCode)
	}

	// Build output from schedule
	views, err := view.Project(schedule, roster, labeler)
	if err != nil {
		log.Fatalf("an error occurred while building the views: %v", err)
	}

	var output bytes.Buffer
	if err := view.Write(&output, views, cfg.OutputFormat); err != nil {
		log.Fatalf("an error occurred while rendering the output: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Print(output.String())
	} else {
		err := os.WriteFile(outFile, output.Bytes(), 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}

// Flags take precedence over the config file. Empty flags keep the config value
func overrideConfig(cfg config.Config, format, output, order string) config.Config {
	if format != "" {
		cfg.InputFormat = strings.ToLower(format)
	}
	if output != "" {
		cfg.OutputFormat = strings.ToLower(output)
	}
	if order != "" {
		cfg.Order = strings.ToLower(order)
	}
	return cfg
}

// Returns the course with the most conflicts (the first one in insertion order on ties) and its neighbors
func mostConflicting(graph *model.ConflictGraph) (string, []string, bool) {
	courses := graph.Courses()
	if len(courses) == 0 {
		return "", nil, false
	}

	course := lo.MaxBy(courses, func(a, b string) bool {
		return graph.Degree(a) > graph.Degree(b)
	})
	return course, graph.Neighbors(course), true
}

// Loads the given config file, or the config.json placed next to the executable. Defaults apply when neither exists
func loadConfig(configPath string) config.Config {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("cannot load config: %v", err)
		}
		return cfg
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = path.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if !slices.Contains(fileNames, "config.json") {
		return config.Default()
	}

	cfg, err := config.Load(execPath + "/config.json")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
