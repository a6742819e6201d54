package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogueFile = "../../testdata/catalogue.json"

func sampleRawCatalogue() RawCatalogue {
	return RawCatalogue{
		Groups: []Group{{Id: 1}, {Id: 2}},
		Subjects: []Subject{
			{Id: 10, Group: 1, Hours: 3, Type: "lecture"},
			{Id: 20, Group: 2, Hours: 2, Type: "lecture"},
			{Id: 11, Group: 1, Hours: 2, Type: "lab"},
		},
		Lecturers: []Lecturer{
			{Id: 1, Subjects: []int{10, 20}},
			{Id: 2, Subjects: []int{11, 11}},
			{Id: 3, Subjects: []int{10}},
		},
		Rooms: []Room{{Id: 101}, {Id: 102}},
	}
}

func TestNewCatalogue(t *testing.T) {
	t.Run("Requirements follow group then subject order", func(t *testing.T) {
		//** Act
		catalogue, err := NewCatalogue(sampleRawCatalogue())
		require.NoError(t, err)
		requirements, err := catalogue.Requirements()

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, []Requirement{
			{Group: 1, Subject: 10, Type: "lecture", Hours: 3, Lecturers: []int{1, 3}},
			{Group: 1, Subject: 11, Type: "lab", Hours: 2, Lecturers: []int{2}},
			{Group: 2, Subject: 20, Type: "lecture", Hours: 2, Lecturers: []int{1}},
		}, requirements)
		assert.Equal(t, 7, catalogue.TotalHours())
		assert.Equal(t, []int{101, 102}, catalogue.RoomIds())
	})

	t.Run("Subjects of unknown groups are not scheduled", func(t *testing.T) {
		//** Arrange
		raw := sampleRawCatalogue()
		raw.Subjects = append(raw.Subjects, Subject{Id: 30, Group: 9, Hours: 4, Type: "lab"})

		//** Act
		catalogue, err := NewCatalogue(raw)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 7, catalogue.TotalHours())
	})

	t.Run("Empty catalogue", func(t *testing.T) {
		for _, mutate := range []func(raw *RawCatalogue){
			func(raw *RawCatalogue) { raw.Groups = nil },
			func(raw *RawCatalogue) { raw.Subjects = nil },
			func(raw *RawCatalogue) { raw.Rooms = nil },
			func(raw *RawCatalogue) { raw.Groups = []Group{{Id: 7}} },
		} {
			raw := sampleRawCatalogue()
			mutate(&raw)

			_, err := NewCatalogue(raw)
			assert.ErrorIs(t, err, ErrEmptyCatalogue)
		}
	})

	t.Run("Invalid catalogue", func(t *testing.T) {
		for _, mutate := range []func(raw *RawCatalogue){
			func(raw *RawCatalogue) { raw.Groups = append(raw.Groups, Group{Id: 1}) },
			func(raw *RawCatalogue) { raw.Subjects = append(raw.Subjects, Subject{Id: 10, Group: 2, Hours: 1}) },
			func(raw *RawCatalogue) { raw.Rooms = append(raw.Rooms, Room{Id: 101}) },
			func(raw *RawCatalogue) { raw.Subjects[0].Hours = 0 },
		} {
			raw := sampleRawCatalogue()
			mutate(&raw)

			_, err := NewCatalogue(raw)
			assert.ErrorIs(t, err, ErrInvalidCatalogue)
		}
	})

	t.Run("Subject without eligible lecturer", func(t *testing.T) {
		//** Arrange
		raw := sampleRawCatalogue()
		raw.Lecturers = raw.Lecturers[:1]

		//** Act
		catalogue, err := NewCatalogue(raw)
		require.NoError(t, err)
		_, err = catalogue.Requirements()

		//** Assert
		assert.ErrorIs(t, err, ErrNoEligibleLecturer)
	})
}

func TestCatalogueFromJson(t *testing.T) {
	g := NewWithT(t)

	catalogue, err := CatalogueFromJson(catalogueFile)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(catalogue.Groups).To(HaveLen(2))
	g.Expect(catalogue.Subjects).To(ContainElement(Subject{Id: 11, Group: 1, Hours: 2, Type: "lab"}))
	g.Expect(catalogue.EligibleLecturers(10)).To(ConsistOf(1, 3))
	g.Expect(catalogue.RoomIds()).To(ConsistOf(101, 102))
	g.Expect(catalogue.TotalHours()).To(Equal(7))
}

func TestCatalogueFromJsonMissingFile(t *testing.T) {
	_, err := CatalogueFromJson("../../testdata/missing.json")
	assert.Error(t, err)
}

func TestRequirementsOfLiteralCatalogue(t *testing.T) {
	catalogue := Catalogue{Groups: []Group{{Id: 1}}, Rooms: []Room{{Id: 1}}}

	_, err := catalogue.Requirements()

	assert.ErrorIs(t, err, ErrEmptyCatalogue)
}
