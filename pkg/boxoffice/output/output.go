// Package output serialises report views as JSON, YAML or CSV.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/format"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/views"
)

// Document is the serialised form of a whole report.
type Document struct {
	Heading  string         `json:"heading" yaml:"heading"`
	Totals   Totals         `json:"totals" yaml:"totals"`
	Comments []string       `json:"comments" yaml:"comments"`
	Notes    []models.Note  `json:"notes" yaml:"notes"`
	Views    []ViewDocument `json:"views" yaml:"views"`
}

// Totals carries the summary totals both raw and as displayed.
type Totals struct {
	WeekendGross        float64 `json:"weekend_gross" yaml:"weekend_gross"`
	WeekendGrossDisplay string  `json:"weekend_gross_display" yaml:"weekend_gross_display"`
	GrossToDate         float64 `json:"gross_to_date" yaml:"gross_to_date"`
	GrossToDateDisplay  string  `json:"gross_to_date_display" yaml:"gross_to_date_display"`
}

// ViewDocument is one view as a sequence of records.
type ViewDocument struct {
	Name    string          `json:"name" yaml:"name"`
	Title   string          `json:"title" yaml:"title"`
	Columns []string        `json:"columns" yaml:"columns"`
	Records []models.Record `json:"records" yaml:"-"`
}

// NewDocument assembles the document of report with the given views.
func NewDocument(report *models.Report, vs []views.View) Document {
	doc := Document{
		Heading: report.Heading,
		Totals: Totals{
			WeekendGross:        report.Totals.WeekendGross,
			WeekendGrossDisplay: format.RestoreCurrency(report.Totals.WeekendGross),
			GrossToDate:         report.Totals.GrossToDate,
			GrossToDateDisplay:  format.RestoreCurrency(report.Totals.GrossToDate),
		},
		Comments: append([]string{}, report.Comments...),
		Notes:    append([]models.Note{}, report.Notes.Entries()...),
	}
	for _, v := range vs {
		doc.Views = append(doc.Views, NewViewDocument(v))
	}
	return doc
}

// NewViewDocument converts a view.
func NewViewDocument(v views.View) ViewDocument {
	return ViewDocument{
		Name:    string(v.Name),
		Title:   v.Title,
		Columns: append([]string{}, v.Table.Columns...),
		Records: v.Table.Records(),
	}
}

// ToJSON serialises v, which is usually a Document or a ViewDocument.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
