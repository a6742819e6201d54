package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromJson(t *testing.T) {
	config, err := ConfigFromJson("../../testdata/config.json")

	require.NoError(t, err)
	assert.Equal(t, Config{
		Generations:    30,
		PopulationSize: 24,
		EliteCount:     DefaultEliteCount,
		BreedingPool:   DefaultBreedingPool,
		Slots:          DefaultSlots,
		Penalty:        DefaultPenalty,
		StopOnZero:     true,
		Workers:        4,
		Seed:           42,
	}, config)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	for _, mutate := range []func(config *Config){
		func(config *Config) { config.Generations = 0 },
		func(config *Config) { config.PopulationSize = -1 },
		func(config *Config) { config.EliteCount = -1 },
		func(config *Config) { config.Slots = 0 },
		func(config *Config) { config.Penalty = 0 },
	} {
		config := DefaultConfig()
		mutate(&config)
		assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
	}

	t.Run("Breeding pool is clamped to the population", func(t *testing.T) {
		config := DefaultConfig()
		config.PopulationSize = 1
		assert.NoError(t, config.Validate())

		config.EliteCount = 0
		assert.ErrorIs(t, config.Validate(), ErrInsufficientPopulation)
	})
}

func TestNewRand(t *testing.T) {
	assert.Equal(t, NewRand(3).Uint64(), NewRand(3).Uint64())
	assert.NotEqual(t, NewRand(3).Uint64(), NewRand(4).Uint64())
}
