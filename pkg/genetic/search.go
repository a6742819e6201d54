package genetic

import (
	"math/rand/v2"

	"github.com/limaJavier/timetabling-ga/pkg/model"
	"go.uber.org/zap"
)

type State int

const (
	Initializing State = iota
	Evaluating
	Ranking
	Reproducing
	Done
)

func (state State) String() string {
	switch state {
	case Initializing:
		return "initializing"
	case Evaluating:
		return "evaluating"
	case Ranking:
		return "ranking"
	case Reproducing:
		return "reproducing"
	case Done:
		return "done"
	}
	return "unknown"
}

type Result struct {
	Best        model.Timetable
	Fitness     int
	Conflicts   Conflicts
	Generations int   // Generations actually run, smaller than configured only when StopOnZero fired
	History     []int // Best fitness of every generation
}

// Engine drives the generational loop: evaluate, rank and reproduce until the generation budget is spent
type Engine struct {
	catalogue  model.Catalogue
	config     Config
	evaluator  Evaluator
	reproducer Reproducer
	rng        *rand.Rand
	logger     *zap.Logger
	state      State
}

func NewEngine(catalogue model.Catalogue, config Config, rng *rand.Rand, logger *zap.Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(config.Seed)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		catalogue:  catalogue,
		config:     config,
		evaluator:  NewEvaluator(config.Penalty, config.SharedNamespace),
		reproducer: NewReproducer(NewMutator(catalogue, config.Slots), config.EliteCount, config.BreedingPool, config.Workers),
		rng:        rng,
		logger:     logger,
		state:      Initializing,
	}, nil
}

func (engine *Engine) State() State {
	return engine.state
}

func (engine *Engine) Run() (Result, error) {
	engine.transition(Initializing)
	population, err := InitializePopulation(engine.catalogue, engine.config.PopulationSize, engine.config.Slots, engine.rng)
	if err != nil {
		return Result{}, err
	}
	engine.logger.Info("population initialized",
		zap.Int("population_size", len(population)),
		zap.Int("entries", engine.catalogue.TotalHours()),
	)

	history := make([]int, 0, engine.config.Generations)
	for generation := 1; generation <= engine.config.Generations; generation++ {
		ranked := engine.evaluateAndRank(population)
		best := ranked[0]
		history = append(history, best.Fitness)
		engine.logger.Info("generation completed",
			zap.Int("generation", generation),
			zap.Int("best_fitness", best.Fitness),
		)

		if engine.config.StopOnZero && best.Fitness == 0 {
			engine.logger.Info("conflict-free timetable found, stopping early", zap.Int("generation", generation))
			return engine.finish(best, generation, history), nil
		}

		engine.transition(Reproducing)
		population, err = engine.reproducer.NextGeneration(ranked, engine.config.PopulationSize, engine.rng)
		if err != nil {
			return Result{}, err
		}
	}

	// The last reproduction produced unscored offspring; rank them once more to pick the answer
	ranked := engine.evaluateAndRank(population)
	return engine.finish(ranked[0], engine.config.Generations, history), nil
}

func (engine *Engine) evaluateAndRank(population []model.Timetable) []Individual {
	engine.transition(Evaluating)
	fitness := engine.evaluator.EvaluateAll(population, engine.config.Workers)
	engine.transition(Ranking)
	return Rank(population, fitness)
}

func (engine *Engine) finish(best Individual, generations int, history []int) Result {
	engine.transition(Done)
	conflicts := engine.evaluator.Conflicts(best.Timetable)
	engine.logger.Info("search finished",
		zap.Int("generations", generations),
		zap.Int("best_fitness", best.Fitness),
		zap.Int("lecturer_conflicts", conflicts.Lecturer),
		zap.Int("group_conflicts", conflicts.Group),
		zap.Int("room_conflicts", conflicts.Room),
	)
	return Result{
		Best:        best.Timetable,
		Fitness:     best.Fitness,
		Conflicts:   conflicts,
		Generations: generations,
		History:     history,
	}
}

func (engine *Engine) transition(state State) {
	engine.logger.Debug("state transition", zap.Stringer("from", engine.state), zap.Stringer("to", state))
	engine.state = state
}

// RunGeneticSearch runs the search with the default operators, a clock-seeded source and no logging
func RunGeneticSearch(catalogue model.Catalogue, generations, populationSize int) (model.Timetable, error) {
	config := DefaultConfig()
	config.Generations = generations
	config.PopulationSize = populationSize

	engine, err := NewEngine(catalogue, config, nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := engine.Run()
	if err != nil {
		return nil, err
	}
	return result.Best, nil
}
