package filter

import (
	"net/url"
	"slices"
)

// Query parameter names. The URL query is the only place filter state lives.
const (
	ParamSearch    = "search"
	ParamMode      = "mode"
	ParamSpecialty = "specialty"
	ParamSort      = "sort"
)

type SortKey string

const (
	SortNone       SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

// State is the filter tuple carried by the URL query.
// Values are treated as immutable: every mutator returns a new State.
type State struct {
	Search      string   `json:"search,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Specialties []string `json:"specialty,omitempty"`
	Sort        SortKey  `json:"sort,omitempty"`
}

// FromQuery reads a State from URL query values. Empty values count as absent and
// repeated specialties collapse to their first occurrence.
func FromQuery(q url.Values) State {
	st := State{
		Search: q.Get(ParamSearch),
		Mode:   q.Get(ParamMode),
		Sort:   SortKey(q.Get(ParamSort)),
	}
	for _, s := range q[ParamSpecialty] {
		if s == "" || slices.Contains(st.Specialties, s) {
			continue
		}
		st.Specialties = append(st.Specialties, s)
	}
	return st
}

// Values renders the state back into query values, omitting absent fields.
func (s State) Values() url.Values {
	q := url.Values{}
	if s.Search != "" {
		q.Set(ParamSearch, s.Search)
	}
	if s.Mode != "" {
		q.Set(ParamMode, s.Mode)
	}
	for _, sp := range s.Specialties {
		q.Add(ParamSpecialty, sp)
	}
	if s.Sort != SortNone {
		q.Set(ParamSort, string(s.Sort))
	}
	return q
}

// Encode returns the state as a query string without the leading '?'.
func (s State) Encode() string {
	return s.Values().Encode()
}

func (s State) IsEmpty() bool {
	return s.Search == "" && s.Mode == "" && len(s.Specialties) == 0 && s.Sort == SortNone
}

func (s State) HasSpecialty(name string) bool {
	return slices.Contains(s.Specialties, name)
}

func (s State) WithSearch(text string) State {
	next := s.clone()
	next.Search = text
	return next
}

// WithMode replaces the consultation mode; an empty mode clears it.
func (s State) WithMode(mode string) State {
	next := s.clone()
	next.Mode = mode
	return next
}

// ToggleSpecialty adds name when absent and removes it when present.
func (s State) ToggleSpecialty(name string) State {
	next := s.clone()
	if name == "" {
		return next
	}
	if next.HasSpecialty(name) {
		next.Specialties = slices.DeleteFunc(next.Specialties, func(sp string) bool {
			return sp == name
		})
		if len(next.Specialties) == 0 {
			next.Specialties = nil
		}
		return next
	}
	next.Specialties = append(next.Specialties, name)
	return next
}

func (s State) WithSort(key SortKey) State {
	next := s.clone()
	next.Sort = key
	return next
}

// Cleared drops every constraint at once.
func (s State) Cleared() State {
	return State{}
}

func (s State) clone() State {
	next := s
	if s.Specialties != nil {
		next.Specialties = slices.Clone(s.Specialties)
	}
	return next
}
