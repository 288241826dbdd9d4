// services/export.go - Shared export plumbing: guards, filenames, sections
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foundation-site-api/models"
	"foundation-site-api/utils"
)

// Guard errors reported to the user before any output is produced.
var (
	ErrNoColumnsSelected = errors.New("select at least one column to export")
	ErrNoSubmissions     = errors.New("there are no submissions to export")
)

// KindTitle returns the human name of a submission kind for titles and
// email subjects.
func KindTitle(kind models.SubmissionKind) string {
	switch kind {
	case models.KindAccessDay:
		return "Access Day"
	case models.KindLibrary:
		return "Library"
	case models.KindNursing:
		return "Nursing"
	case models.KindREBS:
		return "REBS"
	case models.KindRRG:
		return "RRG"
	case models.KindContact:
		return "Contact"
	case models.KindPartner:
		return "Partner"
	}
	return string(kind)
}

// CollectionFilename builds the deterministic download name for a
// collection export: {kind}-submissions-{yyyy-mm-dd}.{ext}.
func CollectionFilename(kind models.SubmissionKind, ext string, generatedAt time.Time) string {
	return fmt.Sprintf("%s-submissions-%s.%s", kind, generatedAt.Format("2006-01-02"), ext)
}

// SingleFilename builds the download name for a single-record export:
// {kind}-{name-slug}-{yyyy-mm-dd}.{ext}.
func SingleFilename(sub *models.Submission, ext string, generatedAt time.Time) string {
	slug := utils.Slugify(DisplayName(sub))
	if slug == "" {
		slug = "submission"
	}
	return fmt.Sprintf("%s-%s-%s.%s", sub.Kind, slug, generatedAt.Format("2006-01-02"), ext)
}

// ExportField is one label/value pair in a single-record export.
type ExportField struct {
	Label string
	Value string
}

// ExportSection groups the fields of a single-record export under a
// semantic heading.
type ExportSection struct {
	Title  string
	Fields []ExportField
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// SubmissionSections groups every present field of one submission into the
// fixed section layout used by single-record CSV and PDF exports. Absent
// fields are skipped; sections with no present fields are dropped entirely.
func SubmissionSections(sub *models.Submission) []ExportSection {
	addIf := func(fields []ExportField, label string, value *string) []ExportField {
		if value != nil && *value != "" {
			fields = append(fields, ExportField{Label: label, Value: *value})
		}
		return fields
	}

	contact := []ExportField{
		{Label: "Name", Value: DisplayName(sub)},
		{Label: "Email", Value: sub.Email},
	}
	contact = addIf(contact, "Phone", sub.PhoneNumber)

	var organization []ExportField
	organization = addIf(organization, "Organization", sub.Organization)
	organization = addIf(organization, "Institution", sub.Institution)
	organization = addIf(organization, "Organization Type", sub.OrganizationType)
	organization = addIf(organization, "Role", sub.Role)
	organization = addIf(organization, "Primary Role", sub.PrimaryRole)

	var interest []ExportField
	interest = addIf(interest, "Area of Interest", sub.AreaOfInterest)
	interest = addIf(interest, "Focus Area", sub.FocusArea)
	interest = addIf(interest, "Intended Use", sub.IntendedUse)

	var additional []ExportField
	additional = addIf(additional, "Message", sub.Message)

	var consent []ExportField
	if sub.AgreeToTerms != nil {
		consent = append(consent, ExportField{Label: "Agreed to Terms", Value: yesNo(*sub.AgreeToTerms)})
	}
	if sub.SubscribeNewsletter != nil {
		consent = append(consent, ExportField{Label: "Newsletter Subscription", Value: yesNo(*sub.SubscribeNewsletter)})
	}
	if sub.IsDownloaded != nil {
		consent = append(consent, ExportField{Label: "Downloaded", Value: yesNo(*sub.IsDownloaded)})
	}

	metadata := []ExportField{
		{Label: "Submission ID", Value: sub.SubmissionID},
		{Label: "Submission Date", Value: FormatSubmissionDate(sub.SubmittedAt)},
	}
	if loc := locationString(sub); loc != "" {
		metadata = append(metadata, ExportField{Label: "Location", Value: loc})
	}

	all := []ExportSection{
		{Title: "Contact Information", Fields: contact},
		{Title: "Organization Details", Fields: organization},
		{Title: "Interest & Focus", Fields: interest},
		{Title: "Additional Information", Fields: additional},
		{Title: "Consent & Preferences", Fields: consent},
		{Title: "Metadata", Fields: metadata},
	}

	sections := make([]ExportSection, 0, len(all))
	for _, s := range all {
		if len(s.Fields) > 0 {
			sections = append(sections, s)
		}
	}
	return sections
}

// locationString joins county, state and country with ", ", omitting empty
// parts.
func locationString(sub *models.Submission) string {
	parts := make([]string, 0, 3)
	for _, v := range []*string{sub.County, sub.State, sub.Country} {
		if v != nil && *v != "" {
			parts = append(parts, *v)
		}
	}
	return strings.Join(parts, ", ")
}
