package genetic

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/limaJavier/timetabling-ga/pkg/model"
	"github.com/sourcegraph/conc/pool"
)

// Individual is a timetable together with its fitness
type Individual struct {
	Timetable model.Timetable
	Fitness   int
}

// Rank pairs every timetable with its fitness and sorts them best first. Ties keep population order
func Rank(population []model.Timetable, fitness []int) []Individual {
	if len(population) != len(fitness) {
		log.Panicf("population and fitness must have the same length: %v != %v", len(population), len(fitness))
	}

	ranked := make([]Individual, len(population))
	for i := range population {
		ranked[i] = Individual{Timetable: population[i], Fitness: fitness[i]}
	}
	slices.SortStableFunc(ranked, func(a, b Individual) int { return a.Fitness - b.Fitness })
	return ranked
}

// Crossover splits both parents at the same random point in [1, len-1] and swaps their suffixes.
// Timetables shorter than 2 have no valid point and are copied unchanged
func Crossover(parent1, parent2 model.Timetable, rng *rand.Rand) (model.Timetable, model.Timetable) {
	if len(parent1) < 2 {
		return parent1.Clone(), parent2.Clone()
	}
	return CrossoverAt(parent1, parent2, 1+rng.IntN(len(parent1)-1))
}

func CrossoverAt(parent1, parent2 model.Timetable, point int) (model.Timetable, model.Timetable) {
	if len(parent1) != len(parent2) {
		log.Panicf("parents must have the same length: %v != %v", len(parent1), len(parent2))
	}

	child1 := make(model.Timetable, 0, len(parent1))
	child1 = append(child1, parent1[:point]...)
	child1 = append(child1, parent2[point:]...)

	child2 := make(model.Timetable, 0, len(parent2))
	child2 = append(child2, parent2[:point]...)
	child2 = append(child2, parent1[point:]...)

	return child1, child2
}

// Mutator redraws single entries of a timetable using the catalogue's eligibility and rooms
type Mutator struct {
	catalogue model.Catalogue
	slots     int
}

func NewMutator(catalogue model.Catalogue, slots int) Mutator {
	return Mutator{
		catalogue: catalogue,
		slots:     slots,
	}
}

// Mutate replaces one random entry in place with a fresh entry for the same group and subject and returns its index
func (mutator Mutator) Mutate(timetable model.Timetable, rng *rand.Rand) int {
	index := rng.IntN(len(timetable))
	entry := timetable[index]
	timetable[index] = randomEntry(
		entry.Group,
		entry.Subject,
		entry.Type,
		mutator.catalogue.EligibleLecturers(entry.Subject),
		mutator.catalogue.RoomIds(),
		mutator.slots,
		rng,
	)
	return index
}

// Reproducer builds the next generation out of a ranked one
type Reproducer struct {
	mutator      Mutator
	eliteCount   int
	breedingPool int
	workers      int
}

func NewReproducer(mutator Mutator, eliteCount, breedingPool, workers int) Reproducer {
	return Reproducer{
		mutator:      mutator,
		eliteCount:   eliteCount,
		breedingPool: breedingPool,
		workers:      workers,
	}
}

// NextGeneration keeps the elite verbatim and fills the remaining places with mutated crossover offspring
// of parents drawn from the breeding pool. With an odd number of places the last pair contributes one child.
//
// Every pair draws from its own source seeded from rng, so the outcome does not depend on the number of workers
func (reproducer Reproducer) NextGeneration(ranked []Individual, size int, rng *rand.Rand) ([]model.Timetable, error) {
	elite := min(reproducer.eliteCount, len(ranked), size)
	next := make([]model.Timetable, 0, size)
	for _, individual := range ranked[:elite] {
		next = append(next, individual.Timetable)
	}

	offspring := size - len(next)
	if offspring == 0 {
		return next, nil
	}

	breedingPool := min(reproducer.breedingPool, len(ranked))
	if breedingPool < 2 {
		return nil, fmt.Errorf("%w: breeding pool has %d individuals", ErrInsufficientPopulation, breedingPool)
	}

	pairs := make([][2]model.Timetable, (offspring+1)/2)
	seeds := make([][2]uint64, len(pairs))
	for i := range seeds {
		seeds[i] = [2]uint64{rng.Uint64(), rng.Uint64()}
	}

	breed := func(i int) {
		local := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))

		// Two distinct parents
		first := local.IntN(breedingPool)
		second := local.IntN(breedingPool - 1)
		if second >= first {
			second++
		}

		child1, child2 := Crossover(ranked[first].Timetable, ranked[second].Timetable, local)
		reproducer.mutator.Mutate(child1, local)
		reproducer.mutator.Mutate(child2, local)
		pairs[i] = [2]model.Timetable{child1, child2}
	}

	if reproducer.workers <= 1 {
		for i := range pairs {
			breed(i)
		}
	} else {
		p := pool.New().WithMaxGoroutines(reproducer.workers)
		for i := range pairs {
			p.Go(func() { breed(i) })
		}
		p.Wait()
	}

	for _, pair := range pairs {
		next = append(next, pair[0])
		if len(next) < size {
			next = append(next, pair[1])
		}
	}
	return next, nil
}
