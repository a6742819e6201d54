package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/timetabling-ga/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timetable = model.Timetable{
	{Slot: 2, Group: 1, Lecturer: 3, Room: 101, Subject: 10, Type: "lecture"},
}

const expectedCsv = "time,group_id,lecturer_id,auditorium_id,subject_id,type_of_class\n2,1,3,101,10,lecture\n"

func TestExport(t *testing.T) {
	t.Run("Empty file writes to the writer", func(t *testing.T) {
		var out bytes.Buffer

		err := export(timetable, "", &out)

		require.NoError(t, err)
		assert.Equal(t, expectedCsv, out.String())
	})

	t.Run("File leaves the writer untouched", func(t *testing.T) {
		//** Arrange
		var out bytes.Buffer
		file := filepath.Join(t.TempDir(), "schedule.csv")

		//** Act
		err := export(timetable, file, &out)

		//** Assert
		require.NoError(t, err)
		assert.Empty(t, out.String())
		content, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, expectedCsv, string(content))
	})
}
