package services

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"foundation-site-api/models"
)

func TestExportPDFGuards(t *testing.T) {
	subs := []models.Submission{{Kind: models.KindContact, Email: "x@y.org"}}
	now := time.Now()

	disabled := DefaultColumns(models.KindContact)
	for i := range disabled {
		disabled[i].Enabled = false
	}

	var buf bytes.Buffer
	err := ExportPDF(&buf, subs, disabled, models.KindContact, now)
	if !errors.Is(err, ErrNoColumnsSelected) {
		t.Fatalf("expected ErrNoColumnsSelected, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("no bytes should be written when the guard fires")
	}

	err = ExportPDF(&buf, nil, DefaultColumns(models.KindContact), models.KindContact, now)
	if !errors.Is(err, ErrNoSubmissions) {
		t.Fatalf("expected ErrNoSubmissions, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("no bytes should be written for an empty collection")
	}
}

func TestExportPDFProducesDocument(t *testing.T) {
	subs := []models.Submission{
		{
			Kind:        models.KindContact,
			Email:       "jane@x.org",
			FullName:    strp("Jane Doe"),
			Message:     strp("A fairly long message that will need to wrap across several lines inside its table cell."),
			SubmittedAt: "2025-01-05T08:30:00Z",
		},
	}

	var buf bytes.Buffer
	err := ExportPDF(&buf, subs, DefaultColumns(models.KindContact), models.KindContact, time.Now())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not look like a PDF document")
	}
}

func TestExportSubmissionPDFProducesDocument(t *testing.T) {
	sub := models.Submission{
		SubmissionID: "sub-1",
		Kind:         models.KindRRG,
		Email:        "ada@x.org",
		FirstName:    strp("Ada"),
		LastName:     strp("Lovelace"),
		IntendedUse:  strp("Research"),
		SubmittedAt:  "2025-06-15T10:00:00Z",
	}

	var buf bytes.Buffer
	if err := ExportSubmissionPDF(&buf, &sub); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not look like a PDF document")
	}
}
