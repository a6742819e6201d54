package csvio

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/timetabling-ga/pkg/model"
)

// ExportTimetable writes the entries to path as CSV, replacing any existing file
func ExportTimetable(timetable model.Timetable, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", path, err)
	}
	defer out.Close()

	entries := []model.Entry(timetable)
	if err := gocsv.MarshalFile(&entries, out); err != nil {
		return fmt.Errorf("cannot write %v: %w", path, err)
	}
	return nil
}

func ExportTimetableString(timetable model.Timetable) (string, error) {
	entries := []model.Entry(timetable)
	return gocsv.MarshalString(&entries)
}

// PrintTimetable renders the entries as an aligned table in their current order
func PrintTimetable(w io.Writer, timetable model.Timetable) error {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "Time\tGroup\tLecturer\tRoom\tSubject\tType")
	for _, entry := range timetable {
		fmt.Fprintf(table, "%d\t%d\t%d\t%d\t%d\t%s\n", entry.Slot, entry.Group, entry.Lecturer, entry.Room, entry.Subject, entry.Type)
	}
	return table.Flush()
}
