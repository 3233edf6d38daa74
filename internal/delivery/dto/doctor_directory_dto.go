package dto

import "doctor-directory/internal/filter"

// Request DTOs

// FilterQuery mirrors the URL query contract for validation.
type FilterQuery struct {
	Search    string   `json:"search" validate:"max=100"`
	Mode      string   `json:"mode" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
	Specialty []string `json:"specialty" validate:"max=24,dive,max=100"`
	Sort      string   `json:"sort" validate:"omitempty,oneof=fees experience"`
}

type FilterActionRequest struct {
	Action string `json:"action" validate:"required,oneof=search mode specialty sort clear"`
	Value  string `json:"value" validate:"max=100"`
}

// Response DTOs

type ClinicResponse struct {
	Name     string `json:"name,omitempty"`
	Locality string `json:"locality,omitempty"`
	City     string `json:"city,omitempty"`
}

type DoctorResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Initial          string         `json:"initial,omitempty"`
	Photo            string         `json:"photo,omitempty"`
	ConsultationMode string         `json:"consultation_mode"`
	Specialties      []string       `json:"specialties"`
	Qualifications   string         `json:"qualifications,omitempty"`
	Experience       string         `json:"experience"`
	Fees             string         `json:"fees"`
	Clinic           ClinicResponse `json:"clinic"`
	ClinicLabel      string         `json:"clinic_label,omitempty"`
	Languages        []string       `json:"languages,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
	Filters filter.State     `json:"filters"`
}

type SuggestionResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Photo            string `json:"photo,omitempty"`
	PrimarySpecialty string `json:"primary_specialty,omitempty"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	Total       int                  `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type FilterStateResponse struct {
	Filters filter.State `json:"filters"`
	Query   string       `json:"query"`
	URL     string       `json:"url"`
}
