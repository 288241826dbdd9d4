package services

import (
	"reflect"
	"testing"

	"foundation-site-api/models"
)

func optionFixture() []models.Submission {
	return []models.Submission{
		{Kind: models.KindAccessDay, Email: "a@x.org", Country: strp("US"), State: strp("NY"), Organization: strp("Acme")},
		{Kind: models.KindAccessDay, Email: "b@x.org", Country: strp("US"), State: strp("CA"), Organization: strp("Acme")},
		{Kind: models.KindLibrary, Email: "c@x.org", Country: strp("CA"), State: strp("ON"), Institution: strp("State U")},
		{Kind: models.KindContact, Email: "d@x.org", FullName: strp("No Location")},
		{Kind: models.KindREBS, Email: "e@x.org", Country: strp("US"), State: strp("NY"), OrganizationType: strp("Hospital"), IntendedUse: strp("Research")},
	}
}

func TestUniqueValuesSortedDistinctNonEmpty(t *testing.T) {
	subs := optionFixture()

	countries := UniqueValues(subs, OptionCountry)
	if !reflect.DeepEqual(countries, []string{"CA", "US"}) {
		t.Fatalf("unexpected countries: %v", countries)
	}

	orgs := UniqueValues(subs, OptionOrganization)
	if !reflect.DeepEqual(orgs, []string{"Acme", "Hospital", "State U"}) {
		t.Fatalf("unexpected organizations: %v", orgs)
	}

	uses := UniqueValues(subs, OptionIntendedUse)
	if !reflect.DeepEqual(uses, []string{"Research"}) {
		t.Fatalf("unexpected intended uses: %v", uses)
	}
}

func TestUniqueValuesIdempotent(t *testing.T) {
	subs := optionFixture()

	first := UniqueValues(subs, OptionState)
	second := UniqueValues(subs, OptionState)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs disagree: %v vs %v", first, second)
	}

	seen := make(map[string]bool)
	for _, v := range first {
		if v == "" {
			t.Fatal("unique values must not contain empty strings")
		}
		if seen[v] {
			t.Fatalf("duplicate value %q", v)
		}
		seen[v] = true
	}
}

func TestStateOptionsNarrowByCountry(t *testing.T) {
	subs := optionFixture()

	states := StateOptions(subs, "US")
	if !reflect.DeepEqual(states, []string{"CA", "NY"}) {
		t.Fatalf("expected [CA NY] for US, got %v", states)
	}

	states = StateOptions(subs, "CA")
	if !reflect.DeepEqual(states, []string{"ON"}) {
		t.Fatalf("expected [ON] for CA, got %v", states)
	}

	// No selection: every state contributes.
	states = StateOptions(subs, "")
	if !reflect.DeepEqual(states, []string{"CA", "NY", "ON"}) {
		t.Fatalf("expected all states, got %v", states)
	}
}

func TestUniqueValuesIgnoresKindsWithoutField(t *testing.T) {
	// A contact record with a stray country value must not leak into the
	// dropdown: its kind has no country concept.
	subs := []models.Submission{
		{Kind: models.KindContact, Email: "d@x.org", Country: strp("Narnia")},
		{Kind: models.KindPartner, Email: "p@x.org", Country: strp("US")},
	}

	countries := UniqueValues(subs, OptionCountry)
	if !reflect.DeepEqual(countries, []string{"US"}) {
		t.Fatalf("expected [US], got %v", countries)
	}
}
