// services/export_csv.go - CSV exporters (collection and single record)
package services

import (
	"encoding/csv"
	"io"

	"foundation-site-api/models"
)

// ExportCSV writes the filtered collection as UTF-8 CSV: one header row of
// column labels, then one row per submission of resolved values. Quoting
// follows RFC 4180 (encoding/csv doubles embedded quotes and wraps fields
// containing commas, quotes or newlines).
//
// Returns ErrNoColumnsSelected or ErrNoSubmissions before writing anything,
// so callers can refuse the download instead of producing a partial file.
func ExportCSV(w io.Writer, subs []models.Submission, cols []ExportColumn) error {
	enabled := EnabledColumns(cols)
	if len(enabled) == 0 {
		return ErrNoColumnsSelected
	}
	if len(subs) == 0 {
		return ErrNoSubmissions
	}

	cw := csv.NewWriter(w)

	header := make([]string, len(enabled))
	for i, col := range enabled {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(enabled))
	for i := range subs {
		for j, col := range enabled {
			value := Resolve(col.Key, &subs[i])
			if value == "" {
				value = "-"
			}
			row[j] = value
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportSubmissionCSV writes a single submission as sectioned label/value
// CSV rows: a "Field,Value" header, then each section title followed by its
// present fields.
func ExportSubmissionCSV(w io.Writer, sub *models.Submission) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Field", "Value"}); err != nil {
		return err
	}

	for _, section := range SubmissionSections(sub) {
		if err := cw.Write([]string{section.Title, ""}); err != nil {
			return err
		}
		for _, field := range section.Fields {
			if err := cw.Write([]string{field.Label, field.Value}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
