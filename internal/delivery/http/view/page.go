package view

import "doctor-directory/internal/delivery/dto"

// Page states
const (
	StateLoading = "loading"
	StateFailed  = "failed"
	StateReady   = "ready"
)

type Link struct {
	Label  string
	URL    string
	Active bool
}

type QueryField struct {
	Name  string
	Value string
}

// DirectoryPage is the data behind templates/directory.html.
type DirectoryPage struct {
	State            string
	ErrorMessage     string
	ValidationErrors map[string]string

	Search       string
	SearchFields []QueryField
	HasFilters   bool
	ClearURL     string

	SortOptions      []Link
	ModeOptions      []Link
	SpecialtyOptions []Link

	Doctors []dto.DoctorResponse
	Total   int
}
