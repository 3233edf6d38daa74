package filter

import (
	"cmp"
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// DeriveView returns the visible subset of all for the given state.
// Filters compose with AND; sorting is stable and applied last. The input
// slice is never modified.
func DeriveView(all []entity.Doctor, st State) []entity.Doctor {
	view := make([]entity.Doctor, 0, len(all))

	search := strings.ToLower(st.Search)
	selected := make([]string, 0, len(st.Specialties))
	for _, sp := range st.Specialties {
		selected = append(selected, strings.ToLower(sp))
	}

	for _, d := range all {
		if search != "" && !MatchesName(d, search) {
			continue
		}
		if st.Mode != "" && d.ConsultationMode != st.Mode {
			continue
		}
		if len(selected) > 0 && !hasAnySpecialty(d, selected) {
			continue
		}
		view = append(view, d)
	}

	switch st.Sort {
	case SortFees:
		slices.SortStableFunc(view, func(a, b entity.Doctor) int {
			return ParseFee(a.Fees.String()).Cmp(ParseFee(b.Fees.String()))
		})
	case SortExperience:
		slices.SortStableFunc(view, func(a, b entity.Doctor) int {
			return cmp.Compare(ParseExperience(b.Experience.String()), ParseExperience(a.Experience.String()))
		})
	}

	return view
}

// Suggest returns up to limit doctors whose name contains text, in list order.
func Suggest(all []entity.Doctor, text string, limit int) []entity.Doctor {
	out := []entity.Doctor{}
	if text == "" || limit <= 0 {
		return out
	}
	needle := strings.ToLower(text)
	for _, d := range all {
		if MatchesName(d, needle) {
			out = append(out, d)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// FilterSpecialties narrows the predefined specialty list by a case-insensitive substring.
func FilterSpecialties(query string) []string {
	needle := strings.ToLower(query)
	out := make([]string, 0, len(entity.PredefinedSpecialties))
	for _, sp := range entity.PredefinedSpecialties {
		if strings.Contains(strings.ToLower(sp), needle) {
			out = append(out, sp)
		}
	}
	return out
}

// MatchesName reports whether the lower-cased needle occurs in the doctor's name.
// Doctors without a name never match.
func MatchesName(d entity.Doctor, needle string) bool {
	if d.Name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(d.Name), needle)
}

func hasAnySpecialty(d entity.Doctor, selected []string) bool {
	for _, own := range d.Specialties {
		if slices.Contains(selected, strings.ToLower(own)) {
			return true
		}
	}
	return false
}
