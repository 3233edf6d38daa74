package converter

import (
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := doctorResponse(*doctor)
	return &resp
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = doctorResponse(doctor)
	}
	return responses
}

// DoctorsToSuggestions converts doctors to autocomplete suggestions
func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	responses := make([]dto.SuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = dto.SuggestionResponse{
			ID:    doctor.ID.String(),
			Name:  doctor.Name,
			Photo: doctor.Photo,
		}
		if len(doctor.Specialties) > 0 {
			responses[i].PrimarySpecialty = doctor.Specialties[0]
		}
	}
	return responses
}

// FilterQueryFromState converts a filter state to its validation DTO
func FilterQueryFromState(st filter.State) *dto.FilterQuery {
	return &dto.FilterQuery{
		Search:    st.Search,
		Mode:      st.Mode,
		Specialty: st.Specialties,
		Sort:      string(st.Sort),
	}
}

// FilterStateToResponse converts a filter state to FilterStateResponse DTO
func FilterStateToResponse(st filter.State) *dto.FilterStateResponse {
	query := st.Encode()
	url := "/"
	if query != "" {
		url += "?" + query
	}
	return &dto.FilterStateResponse{
		Filters: st,
		Query:   query,
		URL:     url,
	}
}

func doctorResponse(doctor entity.Doctor) dto.DoctorResponse {
	specialties := doctor.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return dto.DoctorResponse{
		ID:               doctor.ID.String(),
		Name:             doctor.Name,
		Initial:          doctor.Initial(),
		Photo:            doctor.Photo,
		ConsultationMode: doctor.ConsultationMode,
		Specialties:      specialties,
		Qualifications:   doctor.Qualifications,
		Experience:       doctor.Experience.String(),
		Fees:             doctor.Fees.String(),
		Clinic: dto.ClinicResponse{
			Name:     doctor.Clinic.Name,
			Locality: doctor.Clinic.Locality,
			City:     doctor.Clinic.City,
		},
		ClinicLabel: clinicLabel(doctor.Clinic),
		Languages:   doctor.Languages,
	}
}

// clinicLabel renders "name, locality, city", skipping empty parts. No name, no label.
func clinicLabel(c entity.Clinic) string {
	if c.Name == "" {
		return ""
	}
	parts := []string{c.Name}
	if c.Locality != "" {
		parts = append(parts, c.Locality)
	}
	if c.City != "" {
		parts = append(parts, c.City)
	}
	return strings.Join(parts, ", ")
}
