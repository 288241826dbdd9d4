package models

import "time"

// SubmissionKind tags a submission with the form it came from.
type SubmissionKind string

const (
	KindAccessDay SubmissionKind = "accessday"
	KindLibrary   SubmissionKind = "library"
	KindNursing   SubmissionKind = "nursing"
	KindREBS      SubmissionKind = "rebs"
	KindRRG       SubmissionKind = "rrg"
	KindContact   SubmissionKind = "contact"
	KindPartner   SubmissionKind = "partner"
)

// AllKinds lists every submission kind in bundle order.
var AllKinds = []SubmissionKind{
	KindAccessDay,
	KindLibrary,
	KindNursing,
	KindREBS,
	KindRRG,
	KindContact,
	KindPartner,
}

// ParseKind validates a kind string from a URL segment.
func ParseKind(s string) (SubmissionKind, bool) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Submission represents one form entry. All seven kinds share the
// submissions table; fields a kind does not carry stay NULL.
type Submission struct {
	SubmissionID string         `gorm:"primaryKey;column:submission_id" json:"submissionId"`
	Kind         SubmissionKind `gorm:"column:kind;index" json:"kind"`
	SubmittedAt  string         `gorm:"column:submitted_at" json:"submittedAt"`
	Email        string         `gorm:"column:email" json:"email"`

	FirstName        *string `gorm:"column:first_name" json:"firstName,omitempty"`
	LastName         *string `gorm:"column:last_name" json:"lastName,omitempty"`
	FullName         *string `gorm:"column:full_name" json:"fullName,omitempty"`
	PhoneNumber      *string `gorm:"column:phone_number" json:"phoneNumber,omitempty"`
	Organization     *string `gorm:"column:organization" json:"organization,omitempty"`
	Institution      *string `gorm:"column:institution" json:"institution,omitempty"`
	OrganizationType *string `gorm:"column:organization_type" json:"organizationType,omitempty"`
	Role             *string `gorm:"column:role" json:"role,omitempty"`
	PrimaryRole      *string `gorm:"column:primary_role" json:"primaryRole,omitempty"`
	AreaOfInterest   *string `gorm:"column:area_of_interest" json:"areaOfInterest,omitempty"`
	FocusArea        *string `gorm:"column:focus_area" json:"focusArea,omitempty"`
	IntendedUse      *string `gorm:"column:intended_use" json:"intendedUse,omitempty"`
	Message          *string `gorm:"column:message" json:"message,omitempty"`
	Country          *string `gorm:"column:country" json:"country,omitempty"`
	State            *string `gorm:"column:state" json:"state,omitempty"`
	County           *string `gorm:"column:county" json:"county,omitempty"`

	AgreeToTerms        *bool `gorm:"column:agree_to_terms" json:"agreeToTerms,omitempty"`
	SubscribeNewsletter *bool `gorm:"column:subscribe_newsletter" json:"subscribeNewsletter,omitempty"`
	IsDownloaded        *bool `gorm:"column:is_downloaded" json:"isDownloaded,omitempty"`

	CreateAt *time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at,omitempty"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (Submission) TableName() string {
	return "submissions"
}

// SubmissionField names an optional field a kind may or may not carry.
type SubmissionField string

const (
	FieldCountry     SubmissionField = "country"
	FieldState       SubmissionField = "state"
	FieldCounty      SubmissionField = "county"
	FieldMessage     SubmissionField = "message"
	FieldDownloaded  SubmissionField = "isDownloaded"
	FieldIntendedUse SubmissionField = "intendedUse"
)

// kindFields records which optional location/flag fields each kind carries.
// This replaces per-record field probing: a kind without a country concept
// never participates in country/state filtering or indexing, no matter what
// a stray record holds.
var kindFields = map[SubmissionKind]map[SubmissionField]bool{
	KindAccessDay: {FieldCountry: true, FieldState: true, FieldCounty: true},
	KindLibrary:   {FieldCountry: true, FieldState: true, FieldCounty: true},
	KindNursing:   {FieldCountry: true, FieldState: true, FieldCounty: true},
	KindREBS:      {FieldCountry: true, FieldState: true, FieldCounty: true, FieldIntendedUse: true, FieldDownloaded: true},
	KindRRG:       {FieldCountry: true, FieldState: true, FieldCounty: true, FieldIntendedUse: true, FieldDownloaded: true},
	KindContact:   {FieldMessage: true},
	KindPartner:   {FieldCountry: true, FieldState: true, FieldCounty: true, FieldMessage: true},
}

// KindHasField reports whether the given kind carries the field at all.
func KindHasField(kind SubmissionKind, field SubmissionField) bool {
	return kindFields[kind][field]
}
