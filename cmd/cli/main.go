package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/limaJavier/timetabling-ga/internal/csvio"
	"github.com/limaJavier/timetabling-ga/pkg/genetic"
	"github.com/limaJavier/timetabling-ga/pkg/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

func main() {
	// A missing .env is fine, variables may come from the environment itself
	_ = godotenv.Load()

	// Define arguments
	dataDirPtr := flag.String("data", envOr("TIMETABLE_DATA_DIR", "."), "Directory holding groups.csv, subjects.csv, lecturers.csv and auditoriums.csv")
	delimPtr := flag.String("delim", ",", "Field separator of the catalogue CSV files")
	cataloguePtr := flag.String("catalogue", "", "Path to a JSON catalogue; when set, the CSV directory is ignored")
	configPtr := flag.String("config", envOr("TIMETABLE_CONFIG", ""), "Path to a JSON file with search parameters; explicit flags take precedence")
	generationsPtr := flag.Int("generations", genetic.DefaultGenerations, "Number of generations to run")
	populationPtr := flag.Int("population", genetic.DefaultPopulationSize, "Number of timetables per generation")
	seedPtr := flag.Uint64("seed", 0, "Random seed; 0 seeds from the clock")
	workersPtr := flag.Int("workers", 1, "Goroutines used to evaluate and breed timetables")
	stopOnZeroPtr := flag.Bool("stop-on-zero", false, "Stop as soon as a conflict-free timetable is found")
	sharedPtr := flag.Bool("shared-namespace", false, "Check lecturer, group and room ids in one namespace (legacy collision counting)")
	lecturerPtr := flag.Int("lecturer", -1, "Print the timetable of this lecturer")
	groupPtr := flag.Int("group", -1, "Print the timetable of this group")
	roomPtr := flag.Int("room", -1, "Print the timetable of this room")
	outFilePtr := flag.String("out", envOr("TIMETABLE_OUT", "schedule.csv"), "Path of the exported CSV; if empty, it'll be written into the Standard Output")
	logLevelPtr := flag.String("log-level", envOr("TIMETABLE_LOG_LEVEL", "info"), "Log level: debug, info, warn or error")
	flag.Parse()

	// Validate arguments
	logLevel := strings.ToLower(*logLevelPtr)
	if !slices.Contains(validLogLevels, logLevel) {
		log.Fatalf("%v is not a valid log level", logLevel)
	} else if len([]rune(*delimPtr)) != 1 {
		log.Fatalf("delimiter must be a single character: %q", *delimPtr)
	}

	logger := newLogger(logLevel).With(zap.String("run_id", uuid.NewString()))
	defer logger.Sync()

	// Build search config: defaults, then config file, then explicit flags
	config := genetic.DefaultConfig()
	if *configPtr != "" {
		var err error
		if config, err = genetic.ConfigFromJson(*configPtr); err != nil {
			logger.Fatal("cannot load config file", zap.String("file", *configPtr), zap.Error(err))
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "generations":
			config.Generations = *generationsPtr
		case "population":
			config.PopulationSize = *populationPtr
		case "seed":
			config.Seed = *seedPtr
		case "workers":
			config.Workers = *workersPtr
		case "stop-on-zero":
			config.StopOnZero = *stopOnZeroPtr
		case "shared-namespace":
			config.SharedNamespace = *sharedPtr
		}
	})

	// Extract catalogue
	catalogue, err := loadCatalogue(*cataloguePtr, *dataDirPtr, []rune(*delimPtr)[0])
	if err != nil {
		logger.Fatal("cannot load catalogue", zap.Error(err))
	}

	// Build timetable
	engine, err := genetic.NewEngine(catalogue, config, nil, logger)
	if err != nil {
		logger.Fatal("invalid search configuration", zap.Error(err))
	}
	result, err := engine.Run()
	if err != nil {
		logger.Fatal("an error occurred during timetable construction", zap.Error(err))
	}

	timetable := result.Best
	printSection("Timetable", timetable)
	if *lecturerPtr >= 0 {
		printSection(fmt.Sprintf("Lecturer %d", *lecturerPtr), timetable.ForLecturer(*lecturerPtr))
	}
	if *groupPtr >= 0 {
		printSection(fmt.Sprintf("Group %d", *groupPtr), timetable.ForGroup(*groupPtr))
	}
	if *roomPtr >= 0 {
		printSection(fmt.Sprintf("Room %d", *roomPtr), timetable.ForRoom(*roomPtr))
	}

	if err := export(timetable, *outFilePtr, os.Stdout); err != nil {
		logger.Fatal("an error occurred while writing the timetable", zap.Error(err))
	}
	if *outFilePtr != "" {
		logger.Info("timetable exported", zap.String("file", *outFilePtr))
	}
}

// export writes the timetable as CSV to file, or to w when file is empty
func export(timetable model.Timetable, file string, w io.Writer) error {
	if file != "" {
		return csvio.ExportTimetable(timetable, file)
	}

	content, err := csvio.ExportTimetableString(timetable)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content)
	return err
}

func loadCatalogue(jsonFile, dataDir string, delim rune) (model.Catalogue, error) {
	if jsonFile != "" {
		return model.CatalogueFromJson(jsonFile)
	}
	return csvio.LoadCatalogue(dataDir, delim)
}

func printSection(title string, timetable model.Timetable) {
	fmt.Printf("\n%v (%d entries)\n", title, len(timetable))
	if err := csvio.PrintTimetable(os.Stdout, timetable); err != nil {
		log.Fatalf("cannot print timetable: %v", err)
	}
}

func newLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	if level == "debug" {
		config = zap.NewDevelopmentConfig()
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		log.Fatalf("cannot parse log level: %v", err)
	}
	config.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := config.Build()
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	return logger
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
