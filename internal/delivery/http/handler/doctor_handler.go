package handler

import (
	"net/http"

	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	st, validationErrors := readFilterState(r, h.validator)
	if validationErrors != nil {
		response.ValidationError(w, validationErrors)
		return
	}

	doctors, err := h.directoryUsecase.ListDoctors(r.Context(), st)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.directoryUsecase.SuggestDoctors(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDirectoryError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := h.directoryUsecase.ListSpecialties(r.Context(), r.URL.Query().Get("q"))

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) ApplyFilterAction(w http.ResponseWriter, r *http.Request) {
	res, ok := applyFilterAction(w, r, h.validator, h.directoryUsecase)
	if !ok {
		return
	}

	response.Success(w, http.StatusOK, "Filters updated successfully", res)
}

func writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDirectoryLoading:
		response.ServiceUnavailable(w, "Doctor directory is loading", "loading")
	case usecase.ErrDirectoryUnavailable:
		response.ServiceUnavailable(w, "Failed to fetch doctors data", "failed")
	default:
		response.InternalServerError(w, fallback)
	}
}
