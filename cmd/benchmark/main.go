package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/examscheduling/pkg/model"
	"github.com/samber/lo"
)

const (
	resultsFile = "benchmark_results.csv"
	seed        = 42
	repetitions = 5
)

type Scenario struct {
	Students int
	Courses  int
}

type BenchmarkResult struct {
	Order     string `csv:"Order"`
	Students  int    `csv:"Students"`
	Courses   int    `csv:"Courses"`
	Conflicts int    `csv:"Conflicts"`
	MaxDegree int    `csv:"MaxDegree"`
	Slots     int    `csv:"Slots"`
	Duration  int64  `csv:"Duration(us)"`
	Verified  bool   `csv:"Verified"`
}

func main() {
	scenarios := getScenarios()
	results := make([]*BenchmarkResult, 0, len(scenarios)*len(model.VertexOrders))
	random := rand.New(rand.NewSource(seed))

	for _, scenario := range scenarios {
		roster := generateRoster(scenario.Students, scenario.Courses, random)
		graph := model.BuildConflictGraph(roster)

		for _, order := range model.VertexOrders {
			fmt.Printf("Benchmarking %v students over %v courses with order \"%v\"\n", scenario.Students, scenario.Courses, order)
			results = append(results, measure(graph, order, scenario))
		}
	}

	toCsv(results)
}

func getScenarios() []Scenario {
	students := []int{50, 200, 1000, 5000}
	courses := []int{20, 80, 300, 300}
	return lo.Map(lo.Zip2(students, courses), func(tuple lo.Tuple2[int, int], _ int) Scenario {
		return Scenario{Students: tuple.A, Courses: tuple.B}
	})
}

// Measures the average build duration of the scheduler over several repetitions
func measure(graph *model.ConflictGraph, order model.VertexOrder, scenario Scenario) *BenchmarkResult {
	scheduler := model.NewGreedyScheduler(order)

	var schedule model.Schedule
	start := time.Now()
	for i := 0; i < repetitions; i++ {
		schedule = scheduler.Build(graph)
	}
	duration := time.Since(start) / repetitions

	return &BenchmarkResult{
		Order:     order.String(),
		Students:  scenario.Students,
		Courses:   graph.Len(),
		Conflicts: graph.Edges(),
		MaxDegree: lo.Max(lo.Map(graph.Courses(), func(course string, _ int) int { return graph.Degree(course) })),
		Slots:     len(schedule),
		Duration:  duration.Microseconds(),
		Verified:  scheduler.Verify(schedule, graph),
	}
}

func toCsv(results []*BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV results: %v", err)
	}
}
