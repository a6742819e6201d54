package genetic

import (
	"github.com/limaJavier/timetabling-ga/pkg/model"
	"github.com/sourcegraph/conc/pool"
)

type resourceKind int

const (
	lecturerResource resourceKind = iota
	groupResource
	roomResource
)

// Conflicts counts, per resource kind, the entries that reuse an already occupied (slot, resource) pair
type Conflicts struct {
	Lecturer int
	Group    int
	Room     int
}

func (conflicts Conflicts) Total() int {
	return conflicts.Lecturer + conflicts.Group + conflicts.Room
}

type Evaluator struct {
	penalty int
	shared  bool
}

// NewEvaluator returns an evaluator charging penalty per collision. With shared set, lecturer, group and room ids
// live in one namespace and e.g. lecturer 3 collides with group 3 at the same slot
func NewEvaluator(penalty int, shared bool) Evaluator {
	return Evaluator{
		penalty: penalty,
		shared:  shared,
	}
}

// Fitness is penalty times the number of collisions; 0 means conflict-free
func (evaluator Evaluator) Fitness(timetable model.Timetable) int {
	return evaluator.penalty * evaluator.Conflicts(timetable).Total()
}

func (evaluator Evaluator) Conflicts(timetable model.Timetable) Conflicts {
	occupied := make(map[[3]int]bool, 3*len(timetable))
	// A pair is recorded the first time it is seen, so every later reuse is charged against that first record
	occupy := func(kind resourceKind, slot, resource int) bool {
		if evaluator.shared {
			kind = lecturerResource
		}
		key := [3]int{int(kind), slot, resource}
		seen := occupied[key]
		occupied[key] = true
		return seen
	}

	var conflicts Conflicts
	for _, entry := range timetable {
		if occupy(lecturerResource, entry.Slot, entry.Lecturer) {
			conflicts.Lecturer++
		}
		if occupy(groupResource, entry.Slot, entry.Group) {
			conflicts.Group++
		}
		if occupy(roomResource, entry.Slot, entry.Room) {
			conflicts.Room++
		}
	}
	return conflicts
}

// EvaluateAll returns the fitness of every timetable, index-aligned with the population.
// More than one worker spreads the evaluations over a bounded goroutine pool
func (evaluator Evaluator) EvaluateAll(population []model.Timetable, workers int) []int {
	fitness := make([]int, len(population))
	if workers <= 1 {
		for i, timetable := range population {
			fitness[i] = evaluator.Fitness(timetable)
		}
		return fitness
	}

	p := pool.New().WithMaxGoroutines(workers)
	for i, timetable := range population {
		p.Go(func() {
			fitness[i] = evaluator.Fitness(timetable)
		})
	}
	p.Wait()
	return fitness
}
