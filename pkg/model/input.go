package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type Group struct {
	Id int `csv:"group_id" mapstructure:"group_id"`
}

type Subject struct {
	Id    int    `csv:"subject_id" mapstructure:"subject_id"`
	Group int    `csv:"group_id" mapstructure:"group_id"`
	Hours int    `csv:"hours_per_semester" mapstructure:"hours_per_semester"`
	Type  string `csv:"type" mapstructure:"type"`
}

type Lecturer struct {
	Id       int   `mapstructure:"lecturer_id"`
	Subjects []int `mapstructure:"subjects"`
}

type Room struct {
	Id int `csv:"auditorium_id" mapstructure:"auditorium_id"`
}

type RawCatalogue struct {
	Groups    []Group    `mapstructure:"groups"`
	Subjects  []Subject  `mapstructure:"subjects"`
	Lecturers []Lecturer `mapstructure:"lecturers"`
	Rooms     []Room     `mapstructure:"rooms"`
}

// Requirement is a (group, subject) pair that has to be scheduled Hours times
type Requirement struct {
	Group     int
	Subject   int
	Type      string
	Hours     int
	Lecturers []int
}

// Catalogue is the read-only reference data the timetable is built from. It must be created through NewCatalogue
type Catalogue struct {
	Groups    []Group
	Subjects  []Subject
	Lecturers []Lecturer
	Rooms     []Room

	eligible     map[int][]int // Subject id -> ids of lecturers allowed to teach it, in catalogue order
	roomIds      []int
	requirements []Requirement
}

func CatalogueFromJson(file string) (Catalogue, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Catalogue{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Catalogue{}, err
	}

	var rawCatalogue RawCatalogue
	if err := mapstructure.Decode(inputJson, &rawCatalogue); err != nil {
		return Catalogue{}, fmt.Errorf("cannot decode catalogue: %w", err)
	}
	return NewCatalogue(rawCatalogue)
}

func NewCatalogue(raw RawCatalogue) (Catalogue, error) {
	if len(raw.Groups) == 0 {
		return Catalogue{}, fmt.Errorf("%w: no groups", ErrEmptyCatalogue)
	} else if len(raw.Subjects) == 0 {
		return Catalogue{}, fmt.Errorf("%w: no subjects", ErrEmptyCatalogue)
	} else if len(raw.Rooms) == 0 {
		return Catalogue{}, fmt.Errorf("%w: no rooms", ErrEmptyCatalogue)
	}

	//** Verify identifiers are unique
	groupIds := lo.Map(raw.Groups, func(group Group, _ int) int { return group.Id })
	if duplicates := lo.FindDuplicates(groupIds); len(duplicates) > 0 {
		return Catalogue{}, fmt.Errorf("%w: duplicate groups %v", ErrInvalidCatalogue, duplicates)
	}
	subjectIds := lo.Map(raw.Subjects, func(subject Subject, _ int) int { return subject.Id })
	if duplicates := lo.FindDuplicates(subjectIds); len(duplicates) > 0 {
		return Catalogue{}, fmt.Errorf("%w: duplicate subjects %v", ErrInvalidCatalogue, duplicates)
	}
	roomIds := lo.Map(raw.Rooms, func(room Room, _ int) int { return room.Id })
	if duplicates := lo.FindDuplicates(roomIds); len(duplicates) > 0 {
		return Catalogue{}, fmt.Errorf("%w: duplicate rooms %v", ErrInvalidCatalogue, duplicates)
	}

	if subject, ok := lo.Find(raw.Subjects, func(subject Subject) bool { return subject.Hours <= 0 }); ok {
		return Catalogue{}, fmt.Errorf("%w: subject %d has %d hours per semester", ErrInvalidCatalogue, subject.Id, subject.Hours)
	}

	//** Build eligibility relation
	eligible := make(map[int][]int)
	for _, lecturer := range raw.Lecturers {
		for _, subject := range lo.Uniq(lecturer.Subjects) {
			if !slices.Contains(eligible[subject], lecturer.Id) {
				eligible[subject] = append(eligible[subject], lecturer.Id)
			}
		}
	}

	//** Build requirements: groups in catalogue order, then their subjects in catalogue order.
	// Subjects whose group is not in the catalogue are never scheduled
	subjectsByGroup := lo.GroupBy(raw.Subjects, func(subject Subject) int { return subject.Group })
	requirements := make([]Requirement, 0, len(raw.Subjects))
	for _, group := range raw.Groups {
		for _, subject := range subjectsByGroup[group.Id] {
			requirements = append(requirements, Requirement{
				Group:     group.Id,
				Subject:   subject.Id,
				Type:      subject.Type,
				Hours:     subject.Hours,
				Lecturers: eligible[subject.Id],
			})
		}
	}
	if len(requirements) == 0 {
		return Catalogue{}, fmt.Errorf("%w: no subject belongs to a known group", ErrEmptyCatalogue)
	}

	return Catalogue{
		Groups:       raw.Groups,
		Subjects:     raw.Subjects,
		Lecturers:    raw.Lecturers,
		Rooms:        raw.Rooms,
		eligible:     eligible,
		roomIds:      roomIds,
		requirements: requirements,
	}, nil
}

// Requirements returns every (group, subject) pair to schedule, failing if one of them has no eligible lecturer
func (catalogue Catalogue) Requirements() ([]Requirement, error) {
	// Catalogues not built by NewCatalogue carry no requirements
	if len(catalogue.requirements) == 0 {
		return nil, fmt.Errorf("%w: no requirements", ErrEmptyCatalogue)
	}
	for _, requirement := range catalogue.requirements {
		if len(requirement.Lecturers) == 0 {
			return nil, fmt.Errorf("%w: subject %d of group %d", ErrNoEligibleLecturer, requirement.Subject, requirement.Group)
		}
	}
	return catalogue.requirements, nil
}

// EligibleLecturers returns the lecturers allowed to teach the subject
func (catalogue Catalogue) EligibleLecturers(subject int) []int {
	return catalogue.eligible[subject]
}

func (catalogue Catalogue) RoomIds() []int {
	return catalogue.roomIds
}

// TotalHours is the length every timetable built from the catalogue has
func (catalogue Catalogue) TotalHours() int {
	return lo.SumBy(catalogue.requirements, func(requirement Requirement) int { return requirement.Hours })
}
