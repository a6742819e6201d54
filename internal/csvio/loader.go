package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/timetabling-ga/pkg/model"
	"github.com/samber/lo"
)

// Catalogue file names inside the data directory
const (
	GroupsFile    = "groups.csv"
	SubjectsFile  = "subjects.csv"
	LecturersFile = "lecturers.csv"
	RoomsFile     = "auditoriums.csv"
)

// lecturerRow is one eligibility pair; a lecturer appears once per subject they can teach
type lecturerRow struct {
	Lecturer int `csv:"lecturer_id"`
	Subject  int `csv:"subject_id"`
}

// LoadCatalogue reads the four catalogue files from dir, using delim as field separator.
func LoadCatalogue(dir string, delim rune) (model.Catalogue, error) {
	groups := []*model.Group{}
	if err := unmarshalFile(filepath.Join(dir, GroupsFile), delim, &groups); err != nil {
		return model.Catalogue{}, err
	}
	subjects := []*model.Subject{}
	if err := unmarshalFile(filepath.Join(dir, SubjectsFile), delim, &subjects); err != nil {
		return model.Catalogue{}, err
	}
	eligibility := []*lecturerRow{}
	if err := unmarshalFile(filepath.Join(dir, LecturersFile), delim, &eligibility); err != nil {
		return model.Catalogue{}, err
	}
	rooms := []*model.Room{}
	if err := unmarshalFile(filepath.Join(dir, RoomsFile), delim, &rooms); err != nil {
		return model.Catalogue{}, err
	}

	return model.NewCatalogue(model.RawCatalogue{
		Groups:    lo.FromSlicePtr(groups),
		Subjects:  lo.FromSlicePtr(subjects),
		Lecturers: groupLecturers(eligibility),
		Rooms:     lo.FromSlicePtr(rooms),
	})
}

// groupLecturers folds eligibility rows into lecturers, ordered by first appearance
func groupLecturers(rows []*lecturerRow) []model.Lecturer {
	subjects := lo.GroupBy(rows, func(row *lecturerRow) int { return row.Lecturer })
	ids := lo.Uniq(lo.Map(rows, func(row *lecturerRow, _ int) int { return row.Lecturer }))

	return lo.Map(ids, func(id int, _ int) model.Lecturer {
		return model.Lecturer{
			Id:       id,
			Subjects: lo.Map(subjects[id], func(row *lecturerRow, _ int) int { return row.Subject }),
		}
	})
}

func unmarshalFile(path string, delim rune, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %v: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delim
	reader.TrimLeadingSpace = true
	if err := gocsv.UnmarshalCSV(reader, out); err != nil {
		return fmt.Errorf("cannot parse %v: %w", path, err)
	}
	return nil
}
