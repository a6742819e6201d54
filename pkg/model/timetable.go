package model

import (
	"slices"

	"github.com/samber/lo"
)

// Entry is one scheduled class occurrence. Column names follow the exported CSV
type Entry struct {
	Slot     int    `csv:"time"`
	Group    int    `csv:"group_id"`
	Lecturer int    `csv:"lecturer_id"`
	Room     int    `csv:"auditorium_id"`
	Subject  int    `csv:"subject_id"`
	Type     string `csv:"type_of_class"`
}

type Timetable []Entry

func (timetable Timetable) Clone() Timetable {
	return slices.Clone(timetable)
}

func (timetable Timetable) ForLecturer(lecturer int) Timetable {
	return timetable.filter(func(entry Entry) bool { return entry.Lecturer == lecturer })
}

func (timetable Timetable) ForGroup(group int) Timetable {
	return timetable.filter(func(entry Entry) bool { return entry.Group == group })
}

func (timetable Timetable) ForRoom(room int) Timetable {
	return timetable.filter(func(entry Entry) bool { return entry.Room == room })
}

// SubjectHours counts the entries of every (group, subject) pair
func (timetable Timetable) SubjectHours() map[[2]int]int {
	hours := make(map[[2]int]int)
	for _, entry := range timetable {
		hours[[2]int{entry.Group, entry.Subject}]++
	}
	return hours
}

// filter keeps the matching entries sorted by time slot; entries sharing a slot keep their relative order
func (timetable Timetable) filter(predicate func(entry Entry) bool) Timetable {
	filtered := Timetable(lo.Filter(timetable, func(entry Entry, _ int) bool { return predicate(entry) }))
	slices.SortStableFunc(filtered, func(a, b Entry) int { return a.Slot - b.Slot })
	return filtered
}
