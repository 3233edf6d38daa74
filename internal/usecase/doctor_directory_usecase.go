package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"
	"doctor-directory/internal/infrastructure/metrics"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDirectoryLoading     = errors.New("doctor directory is still loading")
	ErrDirectoryUnavailable = errors.New("doctor directory is unavailable")
	ErrUnknownFilterAction  = errors.New("unknown filter action")
)

// Filter actions accepted by ApplyFilterAction
const (
	FilterActionSearch    = "search"
	FilterActionMode      = "mode"
	FilterActionSpecialty = "specialty"
	FilterActionSort      = "sort"
	FilterActionClear     = "clear"
)

// DoctorReader is the read side of the doctor store.
type DoctorReader interface {
	Status() service.LoadStatus
	Doctors() []entity.Doctor
	Err() error
}

type DoctorDirectoryUsecase interface {
	ListDoctors(ctx context.Context, st filter.State) (*dto.DoctorListResponse, error)
	SuggestDoctors(ctx context.Context, text string) (*dto.SuggestionListResponse, error)
	ListSpecialties(ctx context.Context, query string) *dto.SpecialtyListResponse
	ApplyFilterAction(ctx context.Context, st filter.State, req *dto.FilterActionRequest) (*dto.FilterStateResponse, error)
}

type doctorDirectoryUsecase struct {
	log             *logrus.Logger
	store           DoctorReader
	metrics         *metrics.DirectoryMetrics
	suggestionLimit int
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	store DoctorReader,
	m *metrics.DirectoryMetrics,
	suggestionLimit int,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:             log,
		store:           store,
		metrics:         m,
		suggestionLimit: suggestionLimit,
	}
}

func (u *doctorDirectoryUsecase) ListDoctors(ctx context.Context, st filter.State) (*dto.DoctorListResponse, error) {
	all, err := u.readyDoctors()
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	view := filter.DeriveView(all, st)
	u.metrics.ObserveDerive(time.Since(startTime).Seconds())

	u.log.Debugf("Derived %d of %d doctors for filters %q", len(view), len(all), st.Encode())

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(view),
		Total:   len(view),
		Filters: st,
	}, nil
}

func (u *doctorDirectoryUsecase) SuggestDoctors(ctx context.Context, text string) (*dto.SuggestionListResponse, error) {
	all, err := u.readyDoctors()
	if err != nil {
		return nil, err
	}

	suggestions := converter.DoctorsToSuggestions(filter.Suggest(all, text, u.suggestionLimit))

	return &dto.SuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}, nil
}

func (u *doctorDirectoryUsecase) ListSpecialties(ctx context.Context, query string) *dto.SpecialtyListResponse {
	specialties := filter.FilterSpecialties(query)

	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}
}

// ApplyFilterAction runs one mutator against st and returns the whole new state.
func (u *doctorDirectoryUsecase) ApplyFilterAction(ctx context.Context, st filter.State, req *dto.FilterActionRequest) (*dto.FilterStateResponse, error) {
	var next filter.State

	switch req.Action {
	case FilterActionSearch:
		next = st.WithSearch(req.Value)
	case FilterActionMode:
		next = st.WithMode(req.Value)
	case FilterActionSpecialty:
		next = st.ToggleSpecialty(req.Value)
	case FilterActionSort:
		next = st.WithSort(filter.SortKey(req.Value))
	case FilterActionClear:
		next = st.Cleared()
	default:
		u.log.Warnf("Failed to apply filter action: %+v", req.Action)
		return nil, ErrUnknownFilterAction
	}

	return converter.FilterStateToResponse(next), nil
}

func (u *doctorDirectoryUsecase) readyDoctors() ([]entity.Doctor, error) {
	switch u.store.Status() {
	case service.StatusReady:
		return u.store.Doctors(), nil
	case service.StatusFailed:
		u.log.Debugf("Directory unavailable: %+v", u.store.Err())
		return nil, ErrDirectoryUnavailable
	default:
		return nil, ErrDirectoryLoading
	}
}
