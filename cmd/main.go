package main

import (
	"log"
	"os"

	"github.com/limaJavier/examscheduling/pkg/model"
	"github.com/limaJavier/examscheduling/pkg/view"
)

func main() {
	const File string = "../test/rosters/medium.txt"

	roster, err := model.RosterFromFile(File, "text", ',')
	if err != nil {
		log.Fatalf("cannot parse roster file: %v", err)
	}

	graph := model.BuildConflictGraph(roster)
	// scheduler := model.NewGreedyScheduler(model.IdentifierOrder)
	// scheduler := model.NewGreedyScheduler(model.DegreeOrder)
	scheduler := model.NewGreedyScheduler(model.InsertionOrder)

	schedule := scheduler.Build(graph)
	if !scheduler.Verify(schedule, graph) {
		log.Fatal("Verification failed")
	}

	views, err := view.Project(schedule, roster, view.DefaultLabeler)
	if err != nil {
		log.Fatal(err)
	}

	if err := view.WriteText(os.Stdout, views); err != nil {
		log.Fatal(err)
	}
}
