// services/columns.go - Export column table and value resolution
package services

import (
	"foundation-site-api/models"
)

// ExportColumn is one selectable export column: a stable key the resolver
// understands, the header label, and whether the column starts enabled.
type ExportColumn struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// Column keys understood by Resolve.
const (
	ColName             = "name"
	ColEmail            = "email"
	ColPhone            = "phone"
	ColSubmittedAt      = "submittedAt"
	ColOrganization     = "organization"
	ColInstitution      = "institution"
	ColOrganizationType = "organizationType"
	ColRole             = "role"
	ColPrimaryRole      = "primaryRole"
	ColAreaOfInterest   = "areaOfInterest"
	ColIntendedUse      = "intendedUse"
	ColFocusArea        = "focusArea"
	ColMessage          = "message"
	ColCountry          = "country"
	ColState            = "state"
	ColCounty           = "county"
)

func baseColumns() []ExportColumn {
	return []ExportColumn{
		{Key: ColName, Label: "Name", Enabled: true},
		{Key: ColEmail, Label: "Email", Enabled: true},
		{Key: ColPhone, Label: "Phone", Enabled: true},
		{Key: ColSubmittedAt, Label: "Submission Date", Enabled: true},
	}
}

func locationColumns() []ExportColumn {
	return []ExportColumn{
		{Key: ColCountry, Label: "Country", Enabled: false},
		{Key: ColState, Label: "State", Enabled: false},
		{Key: ColCounty, Label: "County", Enabled: false},
	}
}

// DefaultColumns returns the ordered default column set for a submission
// kind. Every kind starts with the base set; kind-specific columns follow,
// enabled when they are core to that kind's review workflow.
func DefaultColumns(kind models.SubmissionKind) []ExportColumn {
	cols := baseColumns()

	switch kind {
	case models.KindAccessDay, models.KindLibrary:
		cols = append(cols,
			ExportColumn{Key: ColOrganization, Label: "Organization", Enabled: true},
			ExportColumn{Key: ColRole, Label: "Role", Enabled: true},
			ExportColumn{Key: ColAreaOfInterest, Label: "Area of Interest", Enabled: false},
		)
		cols = append(cols, locationColumns()...)
	case models.KindNursing:
		cols = append(cols,
			ExportColumn{Key: ColInstitution, Label: "Institution", Enabled: true},
			ExportColumn{Key: ColRole, Label: "Role", Enabled: true},
		)
		cols = append(cols, locationColumns()...)
	case models.KindREBS, models.KindRRG:
		cols = append(cols,
			ExportColumn{Key: ColOrganizationType, Label: "Organization Type", Enabled: true},
			ExportColumn{Key: ColPrimaryRole, Label: "Primary Role", Enabled: true},
			ExportColumn{Key: ColIntendedUse, Label: "Intended Use", Enabled: true},
		)
		cols = append(cols, locationColumns()...)
	case models.KindContact:
		cols = append(cols,
			ExportColumn{Key: ColMessage, Label: "Message", Enabled: true},
		)
	case models.KindPartner:
		cols = append(cols,
			ExportColumn{Key: ColOrganization, Label: "Organization", Enabled: true},
			ExportColumn{Key: ColRole, Label: "Role", Enabled: true},
			ExportColumn{Key: ColFocusArea, Label: "Focus Area", Enabled: false},
			ExportColumn{Key: ColMessage, Label: "Message", Enabled: false},
		)
		cols = append(cols, locationColumns()...)
	}

	return cols
}

// EnabledColumns filters a column set down to the enabled entries,
// preserving order.
func EnabledColumns(cols []ExportColumn) []ExportColumn {
	enabled := make([]ExportColumn, 0, len(cols))
	for _, col := range cols {
		if col.Enabled {
			enabled = append(enabled, col)
		}
	}
	return enabled
}

// Resolve maps a column key to a display string for the given submission.
// Total: unknown keys and absent fields yield empty string, never an error.
func Resolve(key string, sub *models.Submission) string {
	switch key {
	case ColName:
		return DisplayName(sub)
	case ColEmail:
		return sub.Email
	case ColPhone:
		return deref(sub.PhoneNumber)
	case ColSubmittedAt:
		return FormatSubmissionDate(sub.SubmittedAt)
	case ColOrganization:
		return OrganizationName(sub)
	case ColInstitution:
		return deref(sub.Institution)
	case ColOrganizationType:
		return deref(sub.OrganizationType)
	case ColRole:
		if r := deref(sub.Role); r != "" {
			return r
		}
		return deref(sub.PrimaryRole)
	case ColPrimaryRole:
		return deref(sub.PrimaryRole)
	case ColAreaOfInterest:
		return deref(sub.AreaOfInterest)
	case ColIntendedUse:
		return IntendedUseValue(sub)
	case ColFocusArea:
		return deref(sub.FocusArea)
	case ColMessage:
		return deref(sub.Message)
	case ColCountry:
		return deref(sub.Country)
	case ColState:
		return deref(sub.State)
	case ColCounty:
		return deref(sub.County)
	}
	return ""
}

// FormatSubmissionDate renders a submittedAt timestamp as a short locale
// date ("Jan 5, 2025"). Empty input renders as "-"; an unparseable value is
// passed through raw rather than dropped.
func FormatSubmissionDate(submittedAt string) string {
	if submittedAt == "" {
		return "-"
	}
	t, err := ParseSubmittedAt(submittedAt)
	if err != nil {
		return submittedAt
	}
	return t.Format("Jan 2, 2006")
}
