package handler

import (
	"net/http"
	"slices"
	"sort"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

const failedMessage = "Failed to fetch doctors data"

var sortOptions = []struct {
	key   filter.SortKey
	label string
}{
	{filter.SortFees, "Price: Low-High"},
	{filter.SortExperience, "Experience - Most Experience first"},
}

var modeOptions = []struct {
	mode  string
	label string
}{
	{entity.ConsultationModeVideo, "Video Consultation"},
	{entity.ConsultationModeInClinic, "In-clinic Consultation"},
}

// PageHandler serves the server-rendered directory page.
type PageHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
	renderer         *view.Renderer
	log              *logrus.Logger
}

func NewPageHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator, renderer *view.Renderer, log *logrus.Logger) *PageHandler {
	return &PageHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
		renderer:         renderer,
		log:              log,
	}
}

func (h *PageHandler) Directory(w http.ResponseWriter, r *http.Request) {
	st, validationErrors := readFilterState(r, h.validator)

	page := view.DirectoryPage{State: view.StateReady}
	status := http.StatusOK

	doctors, err := h.directoryUsecase.ListDoctors(r.Context(), st)
	switch err {
	case nil:
		page.Doctors = doctors.Doctors
		page.Total = doctors.Total
	case usecase.ErrDirectoryLoading:
		page.State = view.StateLoading
	case usecase.ErrDirectoryUnavailable:
		page.State = view.StateFailed
		page.ErrorMessage = failedMessage
		status = http.StatusServiceUnavailable
	default:
		h.log.Warnf("Failed to list doctors: %+v", err)
		page.State = view.StateFailed
		page.ErrorMessage = failedMessage
		status = http.StatusInternalServerError
	}

	if page.State == view.StateReady {
		fillFilterPanel(&page, st)
		if validationErrors != nil {
			page.ValidationErrors = validationErrors
			status = http.StatusBadRequest
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, "directory", page); err != nil {
		h.log.Errorf("Failed to render directory page: %+v", err)
	}
}

// ApplyFilter commits one mutator and redirects to the page for the new state.
func (h *PageHandler) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	res, ok := applyFilterAction(w, r, h.validator, h.directoryUsecase)
	if !ok {
		return
	}

	http.Redirect(w, r, res.URL, http.StatusSeeOther)
}

func fillFilterPanel(page *view.DirectoryPage, st filter.State) {
	page.Search = st.Search
	page.HasFilters = !st.IsEmpty()
	page.ClearURL = pageURL(st.Cleared())

	rest := st.WithSearch("").Values()
	keys := make([]string, 0, len(rest))
	for k := range rest {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range rest[k] {
			page.SearchFields = append(page.SearchFields, view.QueryField{Name: k, Value: v})
		}
	}

	for _, opt := range sortOptions {
		active := st.Sort == opt.key
		next := st.WithSort(opt.key)
		if active {
			next = st.WithSort(filter.SortNone)
		}
		page.SortOptions = append(page.SortOptions, view.Link{Label: opt.label, URL: pageURL(next), Active: active})
	}

	for _, opt := range modeOptions {
		active := st.Mode == opt.mode
		next := st.WithMode(opt.mode)
		if active {
			next = st.WithMode("")
		}
		page.ModeOptions = append(page.ModeOptions, view.Link{Label: opt.label, URL: pageURL(next), Active: active})
	}

	specialties := append([]string{}, entity.PredefinedSpecialties...)
	for _, sp := range st.Specialties {
		if !slices.Contains(specialties, sp) {
			specialties = append(specialties, sp)
		}
	}
	for _, sp := range specialties {
		page.SpecialtyOptions = append(page.SpecialtyOptions, view.Link{
			Label:  sp,
			URL:    pageURL(st.ToggleSpecialty(sp)),
			Active: st.HasSpecialty(sp),
		})
	}
}

func pageURL(st filter.State) string {
	return converter.FilterStateToResponse(st).URL
}
