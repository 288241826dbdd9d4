// services/options.go - Distinct field values for admin filter dropdowns
package services

import (
	"sort"

	"foundation-site-api/models"
)

// OptionField identifies a field the dropdowns can be populated from.
type OptionField string

const (
	OptionCountry      OptionField = "country"
	OptionState        OptionField = "state"
	OptionOrganization OptionField = "organization"
	OptionIntendedUse  OptionField = "intendedUse"
)

// UniqueValues returns the sorted distinct non-empty values of the field
// across the collection. Country and state are read raw and only from kinds
// that carry them; organization and intendedUse go through the accessors so
// institution/organizationType records contribute too.
func UniqueValues(subs []models.Submission, field OptionField) []string {
	seen := make(map[string]bool)
	for i := range subs {
		v := optionValue(&subs[i], field)
		if v != "" {
			seen[v] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func optionValue(sub *models.Submission, field OptionField) string {
	switch field {
	case OptionCountry:
		if models.KindHasField(sub.Kind, models.FieldCountry) {
			return deref(sub.Country)
		}
	case OptionState:
		if models.KindHasField(sub.Kind, models.FieldState) {
			return deref(sub.State)
		}
	case OptionOrganization:
		return OrganizationName(sub)
	case OptionIntendedUse:
		return IntendedUseValue(sub)
	}
	return ""
}

// StateOptions narrows the collection to submissions from the selected
// country before indexing states, so the state dropdown only offers values
// that can still match. An empty country means no narrowing.
func StateOptions(subs []models.Submission, country string) []string {
	if country == "" {
		return UniqueValues(subs, OptionState)
	}

	narrowed := make([]models.Submission, 0, len(subs))
	for i := range subs {
		if models.KindHasField(subs[i].Kind, models.FieldCountry) && deref(subs[i].Country) == country {
			narrowed = append(narrowed, subs[i])
		}
	}
	return UniqueValues(narrowed, OptionState)
}
