// services/accessors.go - Normalized field access across submission kinds
package services

import (
	"strings"

	"foundation-site-api/models"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DisplayName returns a best-effort display name for any submission kind.
// Preference order: fullName, then "firstName lastName", then whichever of
// the two is present, then "Unknown".
func DisplayName(sub *models.Submission) string {
	if full := strings.TrimSpace(deref(sub.FullName)); full != "" {
		return full
	}

	first := strings.TrimSpace(deref(sub.FirstName))
	last := strings.TrimSpace(deref(sub.LastName))

	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return "Unknown"
}

// OrganizationName returns the submission's organization under whichever
// field its kind uses: organization, then institution, then organizationType.
// Empty string when none is present.
func OrganizationName(sub *models.Submission) string {
	if org := deref(sub.Organization); org != "" {
		return org
	}
	if inst := deref(sub.Institution); inst != "" {
		return inst
	}
	return deref(sub.OrganizationType)
}

// IntendedUseValue returns the intendedUse field, or empty string for kinds
// that do not collect it.
func IntendedUseValue(sub *models.Submission) string {
	return deref(sub.IntendedUse)
}
