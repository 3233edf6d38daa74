package filter

import (
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctor(id, name string, video bool, fees, experience string, specialties ...string) entity.Doctor {
	d := entity.Doctor{
		ID:           entity.FlexString(id),
		Name:         name,
		VideoConsult: video,
		Fees:         entity.FlexString(fees),
		Experience:   entity.FlexString(experience),
	}
	for _, sp := range specialties {
		d.Specialities = append(d.Specialities, entity.Speciality{Name: sp})
	}
	d.Normalize()
	return d
}

func ids(doctors []entity.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.ID.String())
	}
	return out
}

func names(doctors []entity.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.Name)
	}
	return out
}

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		doctor("1", "Dr. Anna Rao", true, "₹500", "7 Years of experience", "Dentist"),
		doctor("2", "Dr. Ben Shah", false, "₹300", "12 Years of experience", "Cardiologist", "General Physician"),
		doctor("3", "Dr. Anand Iyer", false, "₹1,200", "3 Years of experience", "Dermatologist"),
		doctor("4", "Dr. Chitra Nair", true, "₹300", "20", "General Physician"),
		doctor("5", "", false, "", "", "Dentist"),
	}
}

func TestDeriveView_EmptyStateKeepsIngestionOrder(t *testing.T) {
	all := sampleDoctors()

	view := DeriveView(all, State{})

	assert.Equal(t, ids(all), ids(view))
}

func TestDeriveView_ClearedStateYieldsFullList(t *testing.T) {
	all := sampleDoctors()
	st := State{Search: "dr", Mode: entity.ConsultationModeVideo, Specialties: []string{"Dentist"}, Sort: SortFees}

	cleared := st.Cleared()
	view := DeriveView(all, cleared)

	assert.Equal(t, SortNone, cleared.Sort)
	assert.True(t, cleared.IsEmpty())
	assert.Equal(t, ids(all), ids(view))
}

func TestDeriveView_SearchIsCaseInsensitiveSubstringOnName(t *testing.T) {
	all := []entity.Doctor{
		doctor("1", "Anna", false, "", ""),
		doctor("2", "Ben", false, "", ""),
		doctor("3", "Anand", false, "", ""),
	}

	view := DeriveView(all, State{Search: "an"})

	assert.Equal(t, []string{"Anna", "Anand"}, names(view))
}

func TestDeriveView_SearchExcludesNamelessDoctors(t *testing.T) {
	view := DeriveView(sampleDoctors(), State{Search: "a"})

	for _, d := range view {
		assert.NotEmpty(t, d.Name)
	}
}

func TestDeriveView_SearchIgnoresSpecialtyAndClinic(t *testing.T) {
	d := doctor("1", "Dr. Ravi", false, "", "", "Dentist")
	d.Clinic = entity.Clinic{Name: "Dentist Care"}

	view := DeriveView([]entity.Doctor{d}, State{Search: "dentist"})

	assert.Empty(t, view)
}

func TestDeriveView_ModeFilterKeepsRelativeOrder(t *testing.T) {
	all := []entity.Doctor{
		doctor("1", "A", false, "", ""),
		doctor("2", "B", true, "", ""),
		doctor("3", "C", false, "", ""),
		doctor("4", "D", true, "", ""),
		doctor("5", "E", false, "", ""),
	}

	view := DeriveView(all, State{Mode: entity.ConsultationModeVideo})

	assert.Equal(t, []string{"2", "4"}, ids(view))
}

func TestDeriveView_ModeIsCaseSensitive(t *testing.T) {
	view := DeriveView(sampleDoctors(), State{Mode: "video consult"})

	assert.Empty(t, view)
}

func TestDeriveView_SpecialtiesAreUnionNotIntersection(t *testing.T) {
	all := sampleDoctors()

	view := DeriveView(all, State{Specialties: []string{"dentist", "Dermatologist"}})

	assert.Equal(t, []string{"1", "3", "5"}, ids(view))
}

func TestDeriveView_FiltersComposeWithAnd(t *testing.T) {
	all := sampleDoctors()

	view := DeriveView(all, State{
		Search:      "dr.",
		Mode:        entity.ConsultationModeInClinic,
		Specialties: []string{"General Physician", "Dermatologist"},
	})

	assert.Equal(t, []string{"2", "3"}, ids(view))
}

func TestDeriveView_FeesSortIsAscendingAndStable(t *testing.T) {
	all := []entity.Doctor{
		doctor("a", "A", false, "100", ""),
		doctor("b", "B", false, "50", ""),
		doctor("c", "C", false, "50", ""),
	}

	view := DeriveView(all, State{Sort: SortFees})

	assert.Equal(t, []string{"b", "c", "a"}, ids(view))
}

func TestDeriveView_FeesSortUsesNumericValue(t *testing.T) {
	view := DeriveView(sampleDoctors(), State{Sort: SortFees})

	// "" parses as zero, then 300, 300 (stable), 500, 1200
	assert.Equal(t, []string{"5", "2", "4", "1", "3"}, ids(view))
}

func TestDeriveView_ExperienceSortIsDescending(t *testing.T) {
	all := []entity.Doctor{
		doctor("a", "A", false, "", "2"),
		doctor("b", "B", false, "", "10"),
		doctor("c", "C", false, "", "5"),
	}

	view := DeriveView(all, State{Sort: SortExperience})

	assert.Equal(t, []string{"b", "c", "a"}, ids(view))
}

func TestDeriveView_UnknownSortPreservesOrder(t *testing.T) {
	all := sampleDoctors()

	view := DeriveView(all, State{Sort: "rating"})

	assert.Equal(t, ids(all), ids(view))
}

func TestDeriveView_DoesNotMutateInput(t *testing.T) {
	all := sampleDoctors()
	before := ids(all)

	_ = DeriveView(all, State{Sort: SortExperience})

	assert.Equal(t, before, ids(all))
}

func TestDeriveView_NeverRecomputesConsultationMode(t *testing.T) {
	d := doctor("1", "A", true, "", "")
	// Flipping the source flag after ingestion must not change how the record filters.
	d.VideoConsult = false

	view := DeriveView([]entity.Doctor{d}, State{Mode: entity.ConsultationModeVideo})

	require.Len(t, view, 1)
	assert.Equal(t, entity.ConsultationModeVideo, view[0].ConsultationMode)
}

func TestSuggest(t *testing.T) {
	all := []entity.Doctor{
		doctor("1", "Anna", false, "", ""),
		doctor("2", "Ben", false, "", ""),
		doctor("3", "Anand", false, "", ""),
		doctor("4", "Joanne", false, "", ""),
		doctor("5", "Hanan", false, "", ""),
	}

	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "limit caps matches", text: "AN", limit: 3, want: []string{"1", "3", "4"}},
		{name: "single match", text: "ben", limit: 3, want: []string{"2"}},
		{name: "empty text", text: "", limit: 3, want: []string{}},
		{name: "zero limit", text: "an", limit: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Suggest(all, tt.text, tt.limit)))
		})
	}
}

func TestFilterSpecialties(t *testing.T) {
	assert.Equal(t, entity.PredefinedSpecialties, FilterSpecialties(""))
	assert.Equal(t, []string{"Psychiatrist", "Psychologist"}, FilterSpecialties("psych"))
	assert.Equal(t, []string{"Dietitian/Nutritionist"}, FilterSpecialties("/nut"))
	assert.Empty(t, FilterSpecialties("veterinary"))
}
