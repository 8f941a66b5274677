package boxoffice

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/boxoffice-go/internal/fixture"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/parser"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/views"
)

func TestParseRejectsXLSXByDefault(t *testing.T) {
	path := fixture.WriteXLSX(t, fixture.Rows())

	report, err := Parse(path, DefaultOptions())
	if report != nil {
		t.Errorf("expected no report")
	}
	if !errors.Is(err, ErrDocumentFormatUnsupported) {
		t.Fatalf("expected ErrDocumentFormatUnsupported, got %v", err)
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) || ee.Stage != StageOpen || ee.Path != path {
		t.Errorf("unexpected extraction error: %v", err)
	}
}

func TestParseConvertedXLSX(t *testing.T) {
	path := fixture.WriteXLSX(t, fixture.Rows())

	var logs bytes.Buffer
	opts := Options{
		ConvertXLSX: true,
		Logger:      slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	report, err := Parse(path, opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if report.Heading != fixture.Heading {
		t.Errorf("Heading = %q", report.Heading)
	}
	if report.Ranked.Len() != parser.RankedRows {
		t.Errorf("Ranked has %d rows", report.Ranked.Len())
	}
	if report.OtherUKFilms.Len() != len(fixture.OtherUKFilms) {
		t.Errorf("OtherUKFilms has %d rows", report.OtherUKFilms.Len())
	}
	if report.OtherNewReleases.Len() != len(fixture.OtherNewReleases) {
		t.Errorf("OtherNewReleases has %d rows", report.OtherNewReleases.Len())
	}
	if report.Openers.Len() != len(fixture.Openers) {
		t.Errorf("Openers has %d rows", report.Openers.Len())
	}
	if got, _ := report.Ranked.Value(1, models.ColumnFilm); got != "Deadpool & Wolverine" {
		t.Errorf("second film = %v", got)
	}
	if report.Totals.WeekendGross != fixture.WeekendGrossTotal {
		t.Errorf("WeekendGross = %v", report.Totals.WeekendGross)
	}

	if !strings.Contains(logs.String(), "Converting xlsx workbook") {
		t.Errorf("expected a conversion warning in the log, got:\n%s", logs.String())
	}
	if !strings.Contains(logs.String(), "section=other_uk_films") {
		t.Errorf("expected section debug output, got:\n%s", logs.String())
	}

	set, err := Views(report)
	if err != nil {
		t.Fatalf("Views failed: %v", err)
	}
	top, _ := set.Get(views.Top15)
	if got := top.Table.Records()[1].Get(models.ColumnWeekendGross); got != "£3,219,186" {
		t.Errorf("restored weekend gross = %v", got)
	}
}

func TestParseReportsFailingStage(t *testing.T) {
	rows := fixture.Rows()
	rows[fixture.RowIndex(rows, "Other UK films")] = []any{nil, "UK films"}
	path := fixture.WriteXLSX(t, rows)

	report, err := Parse(path, Options{ConvertXLSX: true})
	if report != nil {
		t.Errorf("expected no report")
	}
	if !errors.Is(err, ErrLayoutAssumptionViolated) {
		t.Fatalf("expected ErrLayoutAssumptionViolated, got %v", err)
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) || ee.Stage != parser.StageOtherUKFilms {
		t.Errorf("expected stage %s, got %v", parser.StageOtherUKFilms, err)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.xls"), DefaultOptions())
	var ee *ExtractionError
	if !errors.As(err, &ee) || ee.Stage != StageOpen {
		t.Errorf("expected open failure, got %v", err)
	}
}

func TestParseGrid(t *testing.T) {
	report, err := ParseGrid(grid.FromRows(fixture.Rows()), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if report.Notes.Len() != 2 {
		t.Errorf("Notes has %d films", report.Notes.Len())
	}
}

func TestParseGridReportsFailingStage(t *testing.T) {
	rows := fixture.Rows()
	rows[fixture.RowIndex(rows, "Other UK films")] = []any{nil, "UK films"}

	report, err := ParseGrid(grid.FromRows(rows), DefaultOptions())
	if report != nil {
		t.Errorf("expected no report")
	}
	if !errors.Is(err, ErrLayoutAssumptionViolated) {
		t.Fatalf("expected ErrLayoutAssumptionViolated, got %v", err)
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %T", err)
	}
	if ee.Stage != parser.StageOtherUKFilms || ee.Path != "" {
		t.Errorf("unexpected extraction error: %+v", ee)
	}
	var se *parser.StageError
	if errors.As(err, &se) {
		t.Errorf("stage error should be unwrapped, got %v", se)
	}
}

func TestParseXLS(t *testing.T) {
	report, err := Parse(fixture.XLSPath(), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if report.Heading != fixture.Heading {
		t.Errorf("Heading = %q", report.Heading)
	}
	if report.Ranked.Len() != parser.RankedRows {
		t.Errorf("Ranked has %d rows", report.Ranked.Len())
	}
	if report.Totals.WeekendGross != fixture.WeekendGrossTotal {
		t.Errorf("WeekendGross = %v", report.Totals.WeekendGross)
	}
	if report.Totals.GrossToDate != fixture.GrossToDateTotal {
		t.Errorf("GrossToDate = %v", report.Totals.GrossToDate)
	}
	if got, _ := report.Ranked.Value(1, models.ColumnChange); got != -0.38 {
		t.Errorf("second film change = %v, want -0.38", got)
	}
	if report.Notes.Len() != 2 {
		t.Errorf("Notes has %d films", report.Notes.Len())
	}
	if report.Openers.Len() != len(fixture.Openers) {
		t.Errorf("Openers has %d rows", report.Openers.Len())
	}

	set, err := Views(report)
	if err != nil {
		t.Fatalf("Views failed: %v", err)
	}
	top, _ := set.Get(views.Top15)
	rec := top.Table.Records()[1]
	if got := rec.Get(models.ColumnWeekendGross); got != "£3,219,186" {
		t.Errorf("restored weekend gross = %v", got)
	}
	if got := rec.Get(models.ColumnChange); got != "-38%" {
		t.Errorf("restored change = %v", got)
	}
}
