package services

import (
	"testing"
	"time"

	"foundation-site-api/models"
)

func TestCollectionFilename(t *testing.T) {
	at := time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)

	got := CollectionFilename(models.KindREBS, "csv", at)
	if got != "rebs-submissions-2025-06-15.csv" {
		t.Fatalf("unexpected filename: %q", got)
	}

	got = CollectionFilename(models.KindAccessDay, "pdf", at)
	if got != "accessday-submissions-2025-06-15.pdf" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestSingleFilename(t *testing.T) {
	at := time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)

	sub := &models.Submission{Kind: models.KindContact, FullName: strp("Jane Q. Doe")}
	if got := SingleFilename(sub, "pdf", at); got != "contact-jane-q-doe-2025-06-15.pdf" {
		t.Fatalf("unexpected filename: %q", got)
	}

	// A record with no name still produces a usable filename.
	anon := &models.Submission{Kind: models.KindContact}
	if got := SingleFilename(anon, "csv", at); got != "contact-unknown-2025-06-15.csv" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestKindTitle(t *testing.T) {
	cases := map[models.SubmissionKind]string{
		models.KindAccessDay: "Access Day",
		models.KindREBS:      "REBS",
		models.KindPartner:   "Partner",
	}
	for kind, want := range cases {
		if got := KindTitle(kind); got != want {
			t.Fatalf("%s: expected %q, got %q", kind, want, got)
		}
	}
}

func TestSubmissionSectionsLocation(t *testing.T) {
	sub := &models.Submission{
		SubmissionID: "id-1",
		Kind:         models.KindNursing,
		Email:        "n@x.org",
		State:        strp("NY"),
		Country:      strp("US"),
	}

	sections := SubmissionSections(sub)
	meta := sections[len(sections)-1]
	if meta.Title != "Metadata" {
		t.Fatalf("expected Metadata last, got %q", meta.Title)
	}

	var location string
	for _, f := range meta.Fields {
		if f.Label == "Location" {
			location = f.Value
		}
	}
	// County is absent and must be omitted from the join.
	if location != "NY, US" {
		t.Fatalf("expected location %q, got %q", "NY, US", location)
	}
}
