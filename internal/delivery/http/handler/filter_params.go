package handler

import (
	"net/http"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/filter"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
)

// readFilterState parses the filter state from the request query and validates it.
// Validation problems are returned as field messages alongside the parsed state.
func readFilterState(r *http.Request, v *validator.CustomValidator) (filter.State, map[string]string) {
	st := filter.FromQuery(r.URL.Query())
	if err := v.Validate(converter.FilterQueryFromState(st)); err != nil {
		return st, v.FormatValidationErrors(err)
	}
	return st, nil
}

// applyFilterAction runs the {action} mutator named in the path against the
// state carried by the query. It writes the error response itself and reports
// whether the caller may continue.
func applyFilterAction(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, uc usecase.DoctorDirectoryUsecase) (*dto.FilterStateResponse, bool) {
	req := dto.FilterActionRequest{
		Action: mux.Vars(r)["action"],
		Value:  r.URL.Query().Get("value"),
	}
	if err := v.Validate(&req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return nil, false
	}

	// The current state is taken as-is; only the result has to be valid.
	current := filter.FromQuery(r.URL.Query())

	res, err := uc.ApplyFilterAction(r.Context(), current, &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownFilterAction:
			response.NotFound(w, "Unknown filter action")
		default:
			response.InternalServerError(w, "Failed to apply filter")
		}
		return nil, false
	}

	if err := v.Validate(converter.FilterQueryFromState(res.Filters)); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return nil, false
	}

	return res, true
}
