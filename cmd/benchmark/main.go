package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/timetable-builder/internal/config"
	"github.com/limaJavier/timetable-builder/pkg/model"
	"github.com/samber/lo"
)

const defaultInputDirectory = "../../pkg/model/testdata/"

var similarityThresholds = []float64{50, 65, 80, 95}

type TestMetadata struct {
	Name        string
	Input       model.ModelInput
	Courses     int
	Instructors int
	Rooms       int
	Slots       int
}

type BenchmarkResult struct {
	Test                string  `csv:"test"`
	Courses             int     `csv:"courses"`
	Instructors         int     `csv:"instructors"`
	Rooms               int     `csv:"rooms"`
	Slots               int     `csv:"slots"`
	SimilarityThreshold float64 `csv:"similarity_threshold"`
	Seed                uint64  `csv:"seed"`
	Requested           int     `csv:"requested"`
	Accepted            int     `csv:"accepted"`
	Violations          int     `csv:"violations"`
	Duration            int64   `csv:"duration_us"`
}

func main() {
	directoryPtr := flag.String("dir", defaultInputDirectory, "Directory holding the input files to benchmark")
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where results are written")
	countPtr := flag.Int("count", 5, "Number of suggestions requested per run")
	seedsPtr := flag.Int("seeds", 5, "Number of seeds each configuration is run with")
	configPathPtr := flag.String("config", "", "Path to a configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	tests := getTests(*directoryPtr, cfg.Slots)
	results := make([]BenchmarkResult, 0, len(tests)*len(similarityThresholds)*(*seedsPtr))

	for _, test := range tests {
		for _, threshold := range similarityThresholds {
			for seed := uint64(1); seed <= uint64(*seedsPtr); seed++ {
				fmt.Printf("Benchmarking test \"%v\" with similarity \"%v\" and seed \"%v\"\n", test.Name, threshold, seed)
				results = append(results, measure(test, cfg, threshold, seed, *countPtr))
			}
		}
	}

	if err := toCsv(results, *outFilePtr); err != nil {
		log.Fatal(err)
	}
}

// getTests loads every json input of the directory, inputs without slots get the configured catalog
func getTests(directory string, slots config.SlotsConfig) []TestMetadata {
	testFiles, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		filename := filepath.Join(directory, file.Name())
		input, err := model.InputFromJson(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		if len(input.Slots) == 0 {
			input.Slots = model.GenerateSlotCatalog(slots.StartHour, slots.EndHour, slots.LabLength)
		}

		tests = append(tests, TestMetadata{
			Name:        filename,
			Input:       input,
			Courses:     len(input.Courses),
			Instructors: len(input.Instructors),
			Rooms:       len(input.Rooms),
			Slots:       len(input.Slots),
		})
	}

	return tests
}

func measure(test TestMetadata, cfg *config.Config, threshold float64, seed uint64, count int) BenchmarkResult {
	options := cfg.SchedulerOptions()
	options.SimilarityThreshold = threshold
	checker := model.NewConflictChecker(cfg.PolicyLimits())
	scheduler := model.NewAutoScheduler(checker, model.NewRandom(seed), nil, options)

	start := time.Now()
	suggestions := scheduler.GenerateSuggestions(test.Input.Courses, test.Input.Instructors, test.Input.Rooms, test.Input.Slots, count)
	duration := time.Since(start)

	return BenchmarkResult{
		Test:                test.Name,
		Courses:             test.Courses,
		Instructors:         test.Instructors,
		Rooms:               test.Rooms,
		Slots:               test.Slots,
		SimilarityThreshold: threshold,
		Seed:                seed,
		Requested:           count,
		Accepted:            len(suggestions),
		Violations: lo.SumBy(suggestions, func(schedule *model.Schedule) int {
			return len(checker.CheckPolicyCompliance(schedule))
		}),
		Duration: duration.Microseconds(),
	}
}

func toCsv(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		return fmt.Errorf("cannot write CSV records: %w", err)
	}
	return nil
}
