// services/filter.go - Filter predicate engine for admin submission views
package services

import (
	"strings"
	"time"

	"foundation-site-api/models"
)

// FilterConfig holds the active sub-filters for one admin view. Zero values
// mean "filter not active"; an empty config matches everything.
type FilterConfig struct {
	SearchText   string
	Country      string
	State        string
	Organization string
	IntendedUse  string
	DateFrom     *time.Time
	DateTo       *time.Time
}

// Matches reports whether the submission satisfies every active sub-filter.
// Inactive sub-filters are vacuously true.
func Matches(sub *models.Submission, filters FilterConfig) bool {
	if filters.SearchText != "" && !matchesSearch(sub, filters.SearchText) {
		return false
	}

	// Country and state are exact matches, but only for kinds that carry
	// the field at all: a contact submission has no country concept and is
	// never excluded by a country selection.
	if filters.Country != "" && models.KindHasField(sub.Kind, models.FieldCountry) {
		if deref(sub.Country) != filters.Country {
			return false
		}
	}
	if filters.State != "" && models.KindHasField(sub.Kind, models.FieldState) {
		if deref(sub.State) != filters.State {
			return false
		}
	}

	if filters.Organization != "" && OrganizationName(sub) != filters.Organization {
		return false
	}
	if filters.IntendedUse != "" && IntendedUseValue(sub) != filters.IntendedUse {
		return false
	}

	if filters.DateFrom != nil || filters.DateTo != nil {
		if !matchesDateRange(sub.SubmittedAt, filters.DateFrom, filters.DateTo) {
			return false
		}
	}

	return true
}

// matchesSearch does a case-insensitive substring match over the fields an
// admin would scan for: name, email, phone and organization.
func matchesSearch(sub *models.Submission, text string) bool {
	needle := strings.ToLower(text)
	haystacks := []string{
		DisplayName(sub),
		sub.Email,
		deref(sub.PhoneNumber),
		OrganizationName(sub),
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// matchesDateRange bounds submittedAt to whole days, both ends inclusive.
// A missing or unparseable timestamp fails any active range: records the
// system cannot date are excluded rather than silently included.
func matchesDateRange(submittedAt string, from, to *time.Time) bool {
	t, err := ParseSubmittedAt(submittedAt)
	if err != nil {
		return false
	}

	if from != nil {
		start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, t.Location())
		if t.Before(start) {
			return false
		}
	}
	if to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, t.Location())
		if t.After(end) {
			return false
		}
	}
	return true
}

// FilterSubmissions applies Matches to every element, preserving the input
// order of the survivors. The input slice is never mutated.
func FilterSubmissions(subs []models.Submission, filters FilterConfig) []models.Submission {
	filtered := make([]models.Submission, 0, len(subs))
	for i := range subs {
		if Matches(&subs[i], filters) {
			filtered = append(filtered, subs[i])
		}
	}
	return filtered
}

// submittedAtLayouts lists the timestamp formats accepted from stored
// submissions, most specific first.
var submittedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSubmittedAt parses an ISO-8601-ish submittedAt string.
func ParseSubmittedAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range submittedAtLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
