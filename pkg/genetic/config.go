package genetic

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultGenerations    = 100
	DefaultPopulationSize = 50
	DefaultEliteCount     = 10
	DefaultBreedingPool   = 20
	DefaultSlots          = 20
	DefaultPenalty        = 5
)

type Config struct {
	Generations    int `mapstructure:"generations"`
	PopulationSize int `mapstructure:"population_size"`
	EliteCount     int `mapstructure:"elite_count"`
	BreedingPool   int `mapstructure:"breeding_pool"`
	Slots          int `mapstructure:"slots"`   // Time slots are numbered 1..Slots
	Penalty        int `mapstructure:"penalty"` // Added once per detected collision
	// SharedNamespace keys lecturer, group and room checks into one set, so equal ids of different kinds collide
	SharedNamespace bool `mapstructure:"shared_namespace"`
	// StopOnZero ends the search as soon as a generation's best fitness is 0
	StopOnZero bool   `mapstructure:"stop_on_zero"`
	Workers    int    `mapstructure:"workers"`
	Seed       uint64 `mapstructure:"seed"` // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Generations:    DefaultGenerations,
		PopulationSize: DefaultPopulationSize,
		EliteCount:     DefaultEliteCount,
		BreedingPool:   DefaultBreedingPool,
		Slots:          DefaultSlots,
		Penalty:        DefaultPenalty,
		Workers:        1,
	}
}

// ConfigFromJson overrides the default config with the keys present in the file
func ConfigFromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, err
	}
	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	config := DefaultConfig()
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}
	return config, config.Validate()
}

func (config Config) Validate() error {
	switch {
	case config.Generations <= 0:
		return fmt.Errorf("%w: generations must be positive: %d", ErrInvalidConfig, config.Generations)
	case config.PopulationSize <= 0:
		return fmt.Errorf("%w: population size must be positive: %d", ErrInvalidConfig, config.PopulationSize)
	case config.EliteCount < 0:
		return fmt.Errorf("%w: elite count must not be negative: %d", ErrInvalidConfig, config.EliteCount)
	case config.Slots <= 0:
		return fmt.Errorf("%w: slots must be positive: %d", ErrInvalidConfig, config.Slots)
	case config.Penalty <= 0:
		return fmt.Errorf("%w: penalty must be positive: %d", ErrInvalidConfig, config.Penalty)
	}

	if config.elite() < config.PopulationSize && config.pool() < 2 {
		return fmt.Errorf("%w: breeding pool of %d cannot provide two distinct parents", ErrInsufficientPopulation, config.pool())
	}
	return nil
}

// elite and pool clamp the configured slices to the population, so that a population smaller than the elite survives whole
func (config Config) elite() int {
	return min(config.EliteCount, config.PopulationSize)
}

func (config Config) pool() int {
	return min(config.BreedingPool, config.PopulationSize)
}

// NewRand returns a PCG-backed source; a zero seed is replaced by the current time
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
