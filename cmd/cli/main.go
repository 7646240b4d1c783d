package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/limaJavier/timetable-builder/internal/config"
	"github.com/limaJavier/timetable-builder/internal/logger"
	"github.com/limaJavier/timetable-builder/pkg/export"
	"github.com/limaJavier/timetable-builder/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var validFormats = []string{"json", "csv"}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	formatPtr := flag.String("format", "json", "Output format. Allowed values are: \"json\" (suggestions with their policy violations) and \"csv\" (one row per session), where \"json\" is the default")
	countPtr := flag.Int("count", 0, "Number of suggestions to generate; if 0, the configured amount is used")
	seedPtr := flag.Uint64("seed", 0, "Seed of the random generator; if 0, the configured seed is used (a configured 0 seeds from the clock)")
	configPathPtr := flag.String("config", "", "Path to a configuration file; if empty, config.json next to the executable is used when present")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr
	format := strings.ToLower(*formatPtr)
	configPath := *configPathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	} else if *countPtr < 0 {
		log.Fatalf("count must not be negative: %v", *countPtr)
	}
	if configPath == "" {
		configPath = defaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	if *countPtr > 0 {
		cfg.Scheduler.Suggestions = *countPtr
	}
	if *seedPtr != 0 {
		cfg.Scheduler.Seed = *seedPtr
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer zapLogger.Sync()

	// Extract input
	input, err := model.InputFromJson(filePath)
	if err != nil {
		zapLogger.Fatal("cannot parse input file", zap.String("file", filePath), zap.Error(err))
	}
	if len(input.Slots) == 0 {
		input.Slots = model.GenerateSlotCatalog(cfg.Slots.StartHour, cfg.Slots.EndHour, cfg.Slots.LabLength)
		zapLogger.Debug("generated slot catalog", zap.Int("slots", len(input.Slots)))
	}

	// Initialize engines
	checker := model.NewConflictChecker(cfg.PolicyLimits())
	scheduler := model.NewAutoScheduler(checker, model.NewRandom(cfg.Scheduler.Seed), zapLogger, cfg.SchedulerOptions())

	// Build suggestions
	suggestions := scheduler.GenerateSuggestions(input.Courses, input.Instructors, input.Rooms, input.Slots, cfg.Scheduler.Suggestions)
	report := export.NewReport(suggestions, checker)
	for _, suggestion := range report.Suggestions {
		zapLogger.Info("suggestion ready",
			zap.String("run", report.RunID.String()),
			zap.String("suggestion", suggestion.Name),
			zap.Int("sessions", len(suggestion.Entries)),
			zap.Int("violations", len(suggestion.Violations)),
		)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	var out io.Writer = os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			zapLogger.Fatal("cannot create output file", zap.String("file", outFile), zap.Error(err))
		}
		defer file.Close()
		out = file
	}

	if format == "csv" {
		err = export.WriteCSV(out, suggestions)
	} else {
		err = export.WriteJSON(out, report)
	}
	if err != nil {
		zapLogger.Fatal("an error occurred while writing the output", zap.Error(err))
	}

	if len(suggestions) == 0 {
		zapLogger.Warn("no timetable could be built", zap.String("run", report.RunID.String()))
		exit(20, zapLogger)
	}
	exit(10, zapLogger)
}

// exit flushes the logger since os.Exit skips deferred calls
func exit(code int, zapLogger *zap.Logger) {
	_ = zapLogger.Sync()
	os.Exit(code)
}

// defaultConfigPath returns the config.json placed next to the executable, or an empty path when there is none
func defaultConfigPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execPath = path.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		return ""
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if !slices.Contains(fileNames, "config.json") {
		return ""
	}
	return execPath + "/config.json"
}
