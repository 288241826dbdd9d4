package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"foundation-site-api/models"
)

func TestExportCSVEscaping(t *testing.T) {
	subs := []models.Submission{
		{Kind: models.KindContact, Email: "x@y.org", Message: strp(`a,b"c`)},
	}
	cols := []ExportColumn{
		{Key: ColMessage, Label: "Message", Enabled: true},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, subs, cols); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[1] != `"a,b""c"` {
		t.Fatalf("expected RFC-4180 quoting, got %q", lines[1])
	}
}

func TestExportCSVHeaderAndValues(t *testing.T) {
	subs := []models.Submission{
		{
			Kind:        models.KindContact,
			Email:       "jane@x.org",
			FullName:    strp("Jane Doe"),
			SubmittedAt: "2025-01-05T08:30:00Z",
		},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, subs, DefaultColumns(models.KindContact)); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Name,Email,Phone,Submission Date,Message" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	// Phone and message are absent and render as "-".
	if lines[1] != `Jane Doe,jane@x.org,-,"Jan 5, 2025",-` {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestExportCSVGuards(t *testing.T) {
	subs := []models.Submission{{Kind: models.KindContact, Email: "x@y.org"}}

	disabled := DefaultColumns(models.KindContact)
	for i := range disabled {
		disabled[i].Enabled = false
	}

	var buf bytes.Buffer
	err := ExportCSV(&buf, subs, disabled)
	if !errors.Is(err, ErrNoColumnsSelected) {
		t.Fatalf("expected ErrNoColumnsSelected, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("no bytes should be written when the guard fires")
	}

	err = ExportCSV(&buf, nil, DefaultColumns(models.KindContact))
	if !errors.Is(err, ErrNoSubmissions) {
		t.Fatalf("expected ErrNoSubmissions, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("no bytes should be written for an empty collection")
	}
}

func TestExportSubmissionCSVSections(t *testing.T) {
	agreed := true
	sub := models.Submission{
		SubmissionID: "sub-1",
		Kind:         models.KindREBS,
		Email:        "ada@x.org",
		FirstName:    strp("Ada"),
		LastName:     strp("Lovelace"),
		IntendedUse:  strp("Research"),
		County:       strp("Kings"),
		State:        strp("NY"),
		Country:      strp("US"),
		AgreeToTerms: &agreed,
		SubmittedAt:  "2025-06-15T10:00:00Z",
	}

	var buf bytes.Buffer
	if err := ExportSubmissionCSV(&buf, &sub); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Contact Information,",
		"Name,Ada Lovelace",
		"Interest & Focus,",
		"Intended Use,Research",
		"Consent & Preferences,",
		"Agreed to Terms,Yes",
		"Metadata,",
		"Submission ID,sub-1",
		`Location,"Kings, NY, US"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}

	// No organization fields present, so the section is dropped.
	if strings.Contains(out, "Organization Details") {
		t.Fatalf("empty section should be skipped:\n%s", out)
	}
	if strings.Contains(out, "Additional Information") {
		t.Fatalf("absent message should drop its section:\n%s", out)
	}
}
