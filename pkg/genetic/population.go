package genetic

import (
	"fmt"
	"math/rand/v2"

	"github.com/limaJavier/timetabling-ga/pkg/model"
)

// InitializePopulation builds size independent timetables. Every requirement contributes exactly Hours entries,
// each with a random slot, a random eligible lecturer and a random room. Collisions are left for the search to remove
func InitializePopulation(catalogue model.Catalogue, size, slots int, rng *rand.Rand) ([]model.Timetable, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: population size must be positive: %d", ErrInvalidConfig, size)
	} else if slots <= 0 {
		return nil, fmt.Errorf("%w: slots must be positive: %d", ErrInvalidConfig, slots)
	}

	requirements, err := catalogue.Requirements()
	if err != nil {
		return nil, err
	}
	rooms := catalogue.RoomIds()
	length := catalogue.TotalHours()

	population := make([]model.Timetable, 0, size)
	for range size {
		timetable := make(model.Timetable, 0, length)
		for _, requirement := range requirements {
			for range requirement.Hours {
				timetable = append(timetable, randomEntry(requirement.Group, requirement.Subject, requirement.Type, requirement.Lecturers, rooms, slots, rng))
			}
		}
		population = append(population, timetable)
	}
	return population, nil
}

func randomEntry(group, subject int, classType string, lecturers, rooms []int, slots int, rng *rand.Rand) model.Entry {
	return model.Entry{
		Slot:     1 + rng.IntN(slots),
		Group:    group,
		Lecturer: lecturers[rng.IntN(len(lecturers))],
		Room:     rooms[rng.IntN(len(rooms))],
		Subject:  subject,
		Type:     classType,
	}
}
