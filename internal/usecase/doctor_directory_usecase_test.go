package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	status  service.LoadStatus
	doctors []entity.Doctor
	err     error
}

func (f *fakeReader) Status() service.LoadStatus { return f.status }
func (f *fakeReader) Doctors() []entity.Doctor   { return f.doctors }
func (f *fakeReader) Err() error                 { return f.err }

func newTestUsecase(reader DoctorReader) DoctorDirectoryUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDoctorDirectoryUsecase(log, reader, nil, 3)
}

func readyReader() *fakeReader {
	raw := []entity.Doctor{
		{ID: "1", Name: "Anna", VideoConsult: true, Fees: "₹ 700", Experience: "3", Specialities: []entity.Speciality{{Name: "Dentist"}}},
		{ID: "2", Name: "Ben", Fees: "₹ 200", Experience: "9", Specialities: []entity.Speciality{{Name: "ENT"}}, Clinic: entity.Clinic{Name: "City Clinic", City: "Pune"}},
		{ID: "3", Name: "Anand", VideoConsult: true, Fees: "₹ 450", Experience: "15"},
		{ID: "4", Name: "Hanna", Fees: "₹ 100", Experience: "1"},
	}
	for i := range raw {
		raw[i].Normalize()
	}
	return &fakeReader{status: service.StatusReady, doctors: raw}
}

func TestListDoctors(t *testing.T) {
	uc := newTestUsecase(readyReader())

	res, err := uc.ListDoctors(context.Background(), filter.State{Mode: entity.ConsultationModeVideo, Sort: filter.SortFees})

	require.NoError(t, err)
	require.Equal(t, 2, res.Total)
	assert.Equal(t, "3", res.Doctors[0].ID)
	assert.Equal(t, "1", res.Doctors[1].ID)
	assert.Equal(t, filter.SortFees, res.Filters.Sort)
	assert.Equal(t, []string{}, res.Doctors[0].Specialties)
}

func TestListDoctors_ClinicLabel(t *testing.T) {
	uc := newTestUsecase(readyReader())

	res, err := uc.ListDoctors(context.Background(), filter.State{Search: "ben"})

	require.NoError(t, err)
	require.Len(t, res.Doctors, 1)
	assert.Equal(t, "City Clinic, Pune", res.Doctors[0].ClinicLabel)
	assert.Equal(t, "B", res.Doctors[0].Initial)
}

func TestListDoctors_StoreNotReady(t *testing.T) {
	tests := []struct {
		name    string
		reader  *fakeReader
		wantErr error
	}{
		{name: "loading", reader: &fakeReader{status: service.StatusLoading}, wantErr: ErrDirectoryLoading},
		{name: "failed", reader: &fakeReader{status: service.StatusFailed, err: errors.New("boom")}, wantErr: ErrDirectoryUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUsecase(tt.reader)

			_, err := uc.ListDoctors(context.Background(), filter.State{})
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = uc.SuggestDoctors(context.Background(), "a")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSuggestDoctors(t *testing.T) {
	uc := newTestUsecase(readyReader())

	res, err := uc.SuggestDoctors(context.Background(), "AN")

	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	assert.Equal(t, "Anna", res.Suggestions[0].Name)
	assert.Equal(t, "Dentist", res.Suggestions[0].PrimarySpecialty)
	assert.Equal(t, "Anand", res.Suggestions[1].Name)
	assert.Equal(t, "Hanna", res.Suggestions[2].Name)
}

func TestListSpecialties(t *testing.T) {
	uc := newTestUsecase(&fakeReader{status: service.StatusLoading})

	res := uc.ListSpecialties(context.Background(), "logist")

	assert.Equal(t, len(res.Specialties), res.Total)
	assert.Contains(t, res.Specialties, "Cardiologist")
	assert.NotContains(t, res.Specialties, "Dentist")
}

func TestApplyFilterAction(t *testing.T) {
	start := filter.State{Search: "an", Specialties: []string{"ENT"}}

	tests := []struct {
		name      string
		req       dto.FilterActionRequest
		wantQuery string
	}{
		{name: "set mode", req: dto.FilterActionRequest{Action: FilterActionMode, Value: "In Clinic"}, wantQuery: "mode=In+Clinic&search=an&specialty=ENT"},
		{name: "toggle specialty on", req: dto.FilterActionRequest{Action: FilterActionSpecialty, Value: "Dentist"}, wantQuery: "search=an&specialty=ENT&specialty=Dentist"},
		{name: "toggle specialty off", req: dto.FilterActionRequest{Action: FilterActionSpecialty, Value: "ENT"}, wantQuery: "search=an"},
		{name: "clear search", req: dto.FilterActionRequest{Action: FilterActionSearch}, wantQuery: "specialty=ENT"},
		{name: "sort", req: dto.FilterActionRequest{Action: FilterActionSort, Value: "experience"}, wantQuery: "search=an&sort=experience&specialty=ENT"},
		{name: "clear all", req: dto.FilterActionRequest{Action: FilterActionClear}, wantQuery: ""},
	}

	uc := newTestUsecase(readyReader())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := uc.ApplyFilterAction(context.Background(), start, &tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, res.Query)
			if tt.wantQuery == "" {
				assert.Equal(t, "/", res.URL)
			} else {
				assert.Equal(t, "/?"+tt.wantQuery, res.URL)
			}
		})
	}

	assert.Equal(t, filter.State{Search: "an", Specialties: []string{"ENT"}}, start)
}

func TestApplyFilterAction_Unknown(t *testing.T) {
	uc := newTestUsecase(readyReader())

	_, err := uc.ApplyFilterAction(context.Background(), filter.State{}, &dto.FilterActionRequest{Action: "page"})

	assert.ErrorIs(t, err, ErrUnknownFilterAction)
}
