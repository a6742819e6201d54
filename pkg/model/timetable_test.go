package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleTimetable = Timetable{
	{Slot: 5, Group: 1, Lecturer: 1, Room: 101, Subject: 10, Type: "lecture"},
	{Slot: 2, Group: 2, Lecturer: 1, Room: 102, Subject: 20, Type: "lecture"},
	{Slot: 3, Group: 1, Lecturer: 2, Room: 101, Subject: 11, Type: "lab"},
	{Slot: 2, Group: 1, Lecturer: 3, Room: 102, Subject: 10, Type: "lecture"},
}

func TestQueries(t *testing.T) {
	t.Run("Lecturer", func(t *testing.T) {
		assert.Equal(t, Timetable{sampleTimetable[1], sampleTimetable[0]}, sampleTimetable.ForLecturer(1))
	})

	t.Run("Group", func(t *testing.T) {
		assert.Equal(t, Timetable{sampleTimetable[3], sampleTimetable[2], sampleTimetable[0]}, sampleTimetable.ForGroup(1))
	})

	t.Run("Room keeps order of entries sharing a slot", func(t *testing.T) {
		assert.Equal(t, Timetable{sampleTimetable[1], sampleTimetable[3]}, sampleTimetable.ForRoom(102))
	})

	t.Run("Unknown id", func(t *testing.T) {
		assert.Empty(t, sampleTimetable.ForRoom(999))
	})

	t.Run("Queries do not reorder the timetable", func(t *testing.T) {
		before := sampleTimetable.Clone()
		sampleTimetable.ForGroup(1)
		assert.Equal(t, before, sampleTimetable)
	})
}

func TestSubjectHours(t *testing.T) {
	assert.Equal(t, map[[2]int]int{
		{1, 10}: 2,
		{1, 11}: 1,
		{2, 20}: 1,
	}, sampleTimetable.SubjectHours())
}

func TestClone(t *testing.T) {
	clone := sampleTimetable.Clone()
	clone[0].Slot = 19

	assert.Equal(t, 5, sampleTimetable[0].Slot)
}
