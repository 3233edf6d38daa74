package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Consultation modes derived from the upstream video_consult flag
const (
	ConsultationModeVideo    = "Video Consult"
	ConsultationModeInClinic = "In Clinic"
)

// Doctor represents a single directory entry as received from the upstream API.
// ConsultationMode and Specialties are derived once by Normalize and never recomputed.
type Doctor struct {
	ID                 FlexString   `json:"id"`
	Name               string       `json:"name"`
	Photo              string       `json:"photo,omitempty"`
	VideoConsult       bool         `json:"video_consult"`
	Specialities       []Speciality `json:"specialities"`
	Fees               FlexString   `json:"fees"`
	Experience         FlexString   `json:"experience"`
	Qualifications     string       `json:"qualifications,omitempty"`
	Clinic             Clinic       `json:"clinic"`
	Languages          []string     `json:"languages,omitempty"`
	DoctorIntroduction string       `json:"doctor_introduction,omitempty"`

	// Derived at ingestion
	ConsultationMode string   `json:"-"`
	Specialties      []string `json:"-"`
}

type Speciality struct {
	Name string `json:"name"`
}

type Clinic struct {
	Name     string `json:"name,omitempty"`
	Locality string `json:"locality,omitempty"`
	City     string `json:"city,omitempty"`
}

// Normalize fills the derived fields from the immutable source fields.
func (d *Doctor) Normalize() {
	if d.VideoConsult {
		d.ConsultationMode = ConsultationModeVideo
	} else {
		d.ConsultationMode = ConsultationModeInClinic
	}

	d.Specialties = make([]string, 0, len(d.Specialities))
	for _, s := range d.Specialities {
		d.Specialties = append(d.Specialties, s.Name)
	}
}

// Initial returns the first letter of the name for avatar placeholders.
func (d *Doctor) Initial() string {
	for _, r := range d.Name {
		return strings.ToUpper(string(r))
	}
	return ""
}

// FlexString decodes a JSON string or number into its textual form.
// Other JSON kinds (null, objects, arrays, booleans) decode to the empty string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexString(n.String())
	default:
		*f = ""
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
