package services

import (
	"testing"

	"foundation-site-api/models"
)

func TestDefaultColumnsREBS(t *testing.T) {
	cols := DefaultColumns(models.KindREBS)

	wantLabels := []string{
		"Name", "Email", "Phone", "Submission Date",
		"Organization Type", "Primary Role", "Intended Use",
		"Country", "State", "County",
	}
	wantEnabled := []bool{true, true, true, true, true, true, true, false, false, false}

	if len(cols) != len(wantLabels) {
		t.Fatalf("expected %d columns, got %d", len(wantLabels), len(cols))
	}
	for i, col := range cols {
		if col.Label != wantLabels[i] {
			t.Fatalf("column %d: expected label %q, got %q", i, wantLabels[i], col.Label)
		}
		if col.Enabled != wantEnabled[i] {
			t.Fatalf("column %q: expected enabled=%v, got %v", col.Label, wantEnabled[i], col.Enabled)
		}
	}
}

func TestDefaultColumnsContact(t *testing.T) {
	cols := DefaultColumns(models.KindContact)

	wantLabels := []string{"Name", "Email", "Phone", "Submission Date", "Message"}
	if len(cols) != len(wantLabels) {
		t.Fatalf("expected %d columns, got %d", len(wantLabels), len(cols))
	}
	for i, col := range cols {
		if col.Label != wantLabels[i] || !col.Enabled {
			t.Fatalf("column %d: got %+v, want label %q enabled", i, col, wantLabels[i])
		}
	}
}

func TestDefaultColumnsPartner(t *testing.T) {
	cols := DefaultColumns(models.KindPartner)

	type want struct {
		label   string
		enabled bool
	}
	wants := []want{
		{"Name", true}, {"Email", true}, {"Phone", true}, {"Submission Date", true},
		{"Organization", true}, {"Role", true},
		{"Focus Area", false}, {"Message", false},
		{"Country", false}, {"State", false}, {"County", false},
	}

	if len(cols) != len(wants) {
		t.Fatalf("expected %d columns, got %d", len(wants), len(cols))
	}
	for i, w := range wants {
		if cols[i].Label != w.label || cols[i].Enabled != w.enabled {
			t.Fatalf("column %d: got %+v, want %+v", i, cols[i], w)
		}
	}
}

// Every default column of every kind must resolve to a string on a record
// missing the field, without panicking.
func TestResolveIsTotal(t *testing.T) {
	empty := models.Submission{Kind: models.KindContact, Email: "x@y.org"}

	for _, kind := range models.AllKinds {
		for _, col := range DefaultColumns(kind) {
			_ = Resolve(col.Key, &empty)
		}
	}

	if got := Resolve("no-such-key", &empty); got != "" {
		t.Fatalf("unknown key should resolve to empty string, got %q", got)
	}
}

func TestResolveRoleFallsBackToPrimaryRole(t *testing.T) {
	sub := models.Submission{PrimaryRole: strp("Researcher")}
	if got := Resolve(ColRole, &sub); got != "Researcher" {
		t.Fatalf("expected primaryRole fallback, got %q", got)
	}

	sub.Role = strp("Librarian")
	if got := Resolve(ColRole, &sub); got != "Librarian" {
		t.Fatalf("expected role to win, got %q", got)
	}
}

func TestFormatSubmissionDate(t *testing.T) {
	if got := FormatSubmissionDate("2025-01-05T08:30:00Z"); got != "Jan 5, 2025" {
		t.Fatalf("expected locale date, got %q", got)
	}
	if got := FormatSubmissionDate(""); got != "-" {
		t.Fatalf("expected dash for empty timestamp, got %q", got)
	}
	if got := FormatSubmissionDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("expected raw passthrough for junk, got %q", got)
	}
}

func TestEnabledColumnsPreservesOrder(t *testing.T) {
	cols := []ExportColumn{
		{Key: "a", Label: "A", Enabled: true},
		{Key: "b", Label: "B", Enabled: false},
		{Key: "c", Label: "C", Enabled: true},
	}
	enabled := EnabledColumns(cols)
	if len(enabled) != 2 || enabled[0].Key != "a" || enabled[1].Key != "c" {
		t.Fatalf("unexpected enabled set: %+v", enabled)
	}
}
