package services

import (
	"testing"

	"foundation-site-api/models"
)

func strp(s string) *string {
	return &s
}

func TestDisplayNamePrefersFullName(t *testing.T) {
	sub := &models.Submission{
		FullName:  strp("Jane Doe"),
		FirstName: strp("Other"),
		LastName:  strp("Person"),
	}
	if got := DisplayName(sub); got != "Jane Doe" {
		t.Fatalf("expected full name to win, got %q", got)
	}
}

func TestDisplayNameFallbacks(t *testing.T) {
	cases := []struct {
		name string
		sub  models.Submission
		want string
	}{
		{"first and last", models.Submission{FirstName: strp("Jane"), LastName: strp("Doe")}, "Jane Doe"},
		{"first only", models.Submission{FirstName: strp("Jane")}, "Jane"},
		{"last only", models.Submission{LastName: strp("Doe")}, "Doe"},
		{"nothing", models.Submission{}, "Unknown"},
		{"whitespace only", models.Submission{FullName: strp("   ")}, "Unknown"},
	}

	for _, tc := range cases {
		if got := DisplayName(&tc.sub); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestOrganizationNameFallbacks(t *testing.T) {
	cases := []struct {
		name string
		sub  models.Submission
		want string
	}{
		{"organization wins", models.Submission{Organization: strp("Acme"), Institution: strp("State U")}, "Acme"},
		{"institution second", models.Submission{Institution: strp("State U"), OrganizationType: strp("Hospital")}, "State U"},
		{"organization type last", models.Submission{OrganizationType: strp("Hospital")}, "Hospital"},
		{"nothing", models.Submission{}, ""},
	}

	for _, tc := range cases {
		if got := OrganizationName(&tc.sub); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestIntendedUseValue(t *testing.T) {
	if got := IntendedUseValue(&models.Submission{IntendedUse: strp("Research")}); got != "Research" {
		t.Fatalf("expected Research, got %q", got)
	}
	if got := IntendedUseValue(&models.Submission{}); got != "" {
		t.Fatalf("expected empty string for absent field, got %q", got)
	}
}
