package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/timetabling-ga/internal/csvio"
	"github.com/limaJavier/timetabling-ga/pkg/genetic"
	"github.com/limaJavier/timetabling-ga/pkg/model"
	"github.com/samber/lo"
)

const resultsFile = "benchmark_results.csv"

type Scenario struct {
	PopulationSize int
	Workers        int
	Seed           uint64
}

type BenchmarkResult struct {
	PopulationSize int     `csv:"population_size"`
	Workers        int     `csv:"workers"`
	Seed           uint64  `csv:"seed"`
	Generations    int     `csv:"generations"`
	Duration       int64   `csv:"duration_ms"`
	BestFitness    int     `csv:"best_fitness"`
	MeanFitness    float64 `csv:"mean_fitness"`
}

func main() {
	dataDirPtr := flag.String("data", ".", "Directory holding the catalogue CSV files")
	generationsPtr := flag.Int("generations", genetic.DefaultGenerations, "Generations per run")
	seedsPtr := flag.Int("seeds", 3, "Seeds per scenario")
	flag.Parse()

	catalogue, err := csvio.LoadCatalogue(*dataDirPtr, ',')
	if err != nil {
		log.Fatalf("cannot load catalogue: %v", err)
	}

	scenarios := getScenarios([]int{20, 50, 100}, []int{1, 4}, *seedsPtr)
	results := make([]BenchmarkResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		fmt.Printf("Benchmarking population %v with %v workers and seed %v\n", scenario.PopulationSize, scenario.Workers, scenario.Seed)

		result, err := measure(catalogue, scenario, *generationsPtr)
		if err != nil {
			log.Fatalf("an error occurred during the execution of scenario %+v: %v", scenario, err)
		}
		results = append(results, result)
	}

	toCsv(results)
}

func getScenarios(populations, workers []int, seeds int) []Scenario {
	return lo.FlatMap(populations, func(population int, _ int) []Scenario {
		return lo.FlatMap(workers, func(worker int, _ int) []Scenario {
			return lo.Times(seeds, func(i int) Scenario {
				return Scenario{
					PopulationSize: population,
					Workers:        worker,
					Seed:           uint64(i + 1),
				}
			})
		})
	})
}

func measure(catalogue model.Catalogue, scenario Scenario, generations int) (BenchmarkResult, error) {
	config := genetic.DefaultConfig()
	config.Generations = generations
	config.PopulationSize = scenario.PopulationSize
	config.Workers = scenario.Workers
	config.Seed = scenario.Seed

	engine, err := genetic.NewEngine(catalogue, config, nil, nil)
	if err != nil {
		return BenchmarkResult{}, err
	}

	start := time.Now()
	result, err := engine.Run()
	if err != nil {
		return BenchmarkResult{}, err
	}

	return BenchmarkResult{
		PopulationSize: scenario.PopulationSize,
		Workers:        scenario.Workers,
		Seed:           scenario.Seed,
		Generations:    result.Generations,
		Duration:       time.Since(start).Milliseconds(),
		BestFitness:    result.Fitness,
		MeanFitness:    meanFitness(result.History),
	}, nil
}

// meanFitness averages the best fitness over all generations, a rough measure of convergence speed
func meanFitness(history []int) float64 {
	if len(history) == 0 {
		return 0
	}
	return float64(lo.Sum(history)) / float64(len(history))
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV records: %v", err)
	}
}
