package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/boxoffice-go/internal/fixture"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

func TestParse(t *testing.T) {
	report, err := Parse(fixture.Grid(), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if report.Heading != fixture.Heading {
		t.Errorf("Heading = %q", report.Heading)
	}
	if len(report.Schema) != SchemaWidth {
		t.Fatalf("Schema has %d columns, expected %d", len(report.Schema), SchemaWidth)
	}
	for i, name := range fixture.Header {
		if report.Schema[i] != name {
			t.Errorf("Schema[%d] = %q, expected %q", i, report.Schema[i], name)
		}
	}

	if report.Ranked.Len() != RankedRows {
		t.Errorf("Ranked has %d rows, expected %d", report.Ranked.Len(), RankedRows)
	}
	if report.OtherUKFilms.Len() != len(fixture.OtherUKFilms) {
		t.Errorf("OtherUKFilms has %d rows, expected %d", report.OtherUKFilms.Len(), len(fixture.OtherUKFilms))
	}
	if report.OtherNewReleases.Len() != len(fixture.OtherNewReleases) {
		t.Errorf("OtherNewReleases has %d rows, expected %d", report.OtherNewReleases.Len(), len(fixture.OtherNewReleases))
	}
	for _, tbl := range []models.Table{report.Ranked, report.OtherUKFilms, report.OtherNewReleases} {
		if len(tbl.Columns) != SchemaWidth {
			t.Errorf("table has %d columns, expected %d", len(tbl.Columns), SchemaWidth)
		}
	}

	if report.Totals.WeekendGross != fixture.WeekendGrossTotal {
		t.Errorf("WeekendGross = %v", report.Totals.WeekendGross)
	}
	if report.Totals.GrossToDate != fixture.GrossToDateTotal {
		t.Errorf("GrossToDate = %v", report.Totals.GrossToDate)
	}

	if got, _ := report.Ranked.Value(0, models.ColumnFilm); got != "Alien: Romulus" {
		t.Errorf("first ranked film = %v", got)
	}
	if got, _ := report.Ranked.Value(0, models.ColumnChange); got != nil {
		t.Errorf("change for a new film should be nil, got %v", got)
	}
	if got, _ := report.OtherUKFilms.Value(1, models.ColumnFilm); got != "Back to Black" {
		t.Errorf("second other UK film = %v", got)
	}

	if len(report.Comments) != len(fixture.Comments) {
		t.Fatalf("Comments = %q", report.Comments)
	}
	for i, c := range fixture.Comments {
		if report.Comments[i] != c {
			t.Errorf("Comments[%d] = %q", i, report.Comments[i])
		}
	}

	if report.Notes.Len() != 2 {
		t.Errorf("Notes has %d films, expected 2", report.Notes.Len())
	}
	if got, _ := report.Notes.Get("Alien: Romulus"); got != "Includes previews of £500,310\nIncludes IMAX sites" {
		t.Errorf("Alien: Romulus note = %q", got)
	}

	if report.Openers.Len() != len(fixture.Openers) {
		t.Fatalf("Openers has %d rows, expected %d", report.Openers.Len(), len(fixture.Openers))
	}
	for i, o := range fixture.Openers {
		rec := report.Openers.Records()[i]
		if rec.Get(models.ColumnFilm) != o[0] || rec.Get(models.ColumnCountry) != o[1] || rec.Get(models.ColumnDistributor) != o[2] {
			t.Errorf("opener %d = %+v", i, rec.Values)
		}
	}

	want := models.Boundaries{
		OtherUKFilmsStart:     21,
		OtherUKFilmsEnd:       23,
		OtherNewReleasesStart: 25,
		OtherNewReleasesEnd:   28,
		CommentsStart:         30,
		NotesStart:            34,
		OpenersStart:          39,
	}
	if report.Boundaries != want {
		t.Errorf("Boundaries = %+v, expected %+v", report.Boundaries, want)
	}
}

func TestParseSatelliteLengthFollowsBoundaries(t *testing.T) {
	rows := fixture.Rows()
	extra := []any{33, "Bank of Dave 2", "UK", 900, "Netflix", nil, 5, 4, 225, 84000}
	at := fixture.RowIndex(rows, "Other UK films") + 1
	rows = append(rows[:at], append([][]any{extra}, rows[at:]...)...)

	report, err := Parse(grid.FromRows(rows), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if report.OtherUKFilms.Len() != len(fixture.OtherUKFilms)+1 {
		t.Errorf("OtherUKFilms has %d rows", report.OtherUKFilms.Len())
	}
	if report.OtherNewReleases.Len() != len(fixture.OtherNewReleases) {
		t.Errorf("OtherNewReleases has %d rows", report.OtherNewReleases.Len())
	}
	if report.Boundaries.OtherNewReleasesStart != 26 {
		t.Errorf("OtherNewReleasesStart = %d", report.Boundaries.OtherNewReleasesStart)
	}
}

func TestParseMissingOtherUKFilmsSentinel(t *testing.T) {
	rows := fixture.Rows()
	rows[fixture.RowIndex(rows, "Other UK films")] = []any{nil, "Other British films"}

	report, err := Parse(grid.FromRows(rows), nil)
	if report != nil {
		t.Errorf("expected no report on failure")
	}
	if !errors.Is(err, ErrLayoutAssumptionViolated) {
		t.Fatalf("expected ErrLayoutAssumptionViolated, got %v", err)
	}
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageOtherUKFilms {
		t.Errorf("expected failure in stage %s, got %v", StageOtherUKFilms, err)
	}
	var le *LayoutError
	if !errors.As(err, &le) || le.Expected != `sentinel "Other UK films"` || le.FromRow != 20 {
		t.Errorf("unexpected layout error: %+v", le)
	}
}

func TestParseLayoutViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(rows [][]any) [][]any
		stage  string
	}{
		{
			name: "header column renamed",
			mutate: func(rows [][]any) [][]any {
				rows[1][2] = "Country"
				return rows
			},
			stage: StageHeader,
		},
		{
			name: "footnote changed",
			mutate: func(rows [][]any) [][]any {
				rows[18] = []any{nil, "Note: figures are provisional."}
				return rows
			},
			stage: StageRanked,
		},
		{
			name: "extra footnote",
			mutate: func(rows [][]any) [][]any {
				rows[19] = []any{nil, "Note: another footnote."}
				return rows
			},
			stage: StageRanked,
		},
		{
			name: "new releases label moved",
			mutate: func(rows [][]any) [][]any {
				i := fixture.RowIndex(rows, "Other new releases")
				return append(rows[:i], append([][]any{{}}, rows[i:]...)...)
			},
			stage: StageOtherNewReleases,
		},
		{
			name: "comments label missing",
			mutate: func(rows [][]any) [][]any {
				rows[fixture.RowIndex(rows, "Comments on this week's top 15 results")] = []any{nil, "Comments"}
				return rows
			},
			stage: StageComments,
		},
		{
			name: "notes before comments",
			mutate: func(rows [][]any) [][]any {
				c := fixture.RowIndex(rows, "Comments on this week's top 15 results")
				n := fixture.RowIndex(rows, "Notes for Top 15 table:")
				rows[c], rows[n] = rows[n], rows[c]
				return rows
			},
			stage: StageComments,
		},
		{
			name: "openers label missing",
			mutate: func(rows [][]any) [][]any {
				rows[fixture.RowIndex(rows, "Openers next week:")] = []any{nil, "Coming soon"}
				return rows
			},
			stage: StageNotes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Parse(grid.FromRows(tt.mutate(fixture.Rows())), nil)
			if report != nil {
				t.Errorf("expected no report on failure")
			}
			if !errors.Is(err, ErrLayoutAssumptionViolated) {
				t.Fatalf("expected ErrLayoutAssumptionViolated, got %v", err)
			}
			var se *StageError
			if !errors.As(err, &se) || se.Stage != tt.stage {
				t.Errorf("expected stage %s, got %v", tt.stage, err)
			}
		})
	}
}

func TestParseMissingTotal(t *testing.T) {
	rows := fixture.Rows()
	rows[17][3] = nil

	_, err := Parse(grid.FromRows(rows), nil)
	if !errors.Is(err, ErrMissingRequiredValue) {
		t.Fatalf("expected ErrMissingRequiredValue, got %v", err)
	}
	var mve *MissingValueError
	if !errors.As(err, &mve) || mve.Cell != "D18" {
		t.Errorf("expected missing D18, got %v", err)
	}

	rows = fixture.Rows()
	rows[17][9] = ""
	_, err = Parse(grid.FromRows(rows), nil)
	if !errors.As(err, &mve) || mve.Cell != "J18" {
		t.Errorf("expected missing J18, got %v", err)
	}
}

func TestParseMalformedNote(t *testing.T) {
	rows := fixture.Rows()
	i := fixture.RowIndex(rows, fixture.NoteLines[1])
	rows[i] = []any{nil, "It Ends with Us - Second weekend"}

	report, err := Parse(grid.FromRows(rows), nil)
	if report != nil {
		t.Errorf("expected no report on failure")
	}
	var nfe *NoteFormatError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *NoteFormatError, got %v", err)
	}
	if nfe.Row != i {
		t.Errorf("Row = %d, expected %d", nfe.Row, i)
	}
}

func TestReadOpenersSkipsBlankRows(t *testing.T) {
	g := grid.FromRows([][]any{
		{nil, "Openers next week:"},
		{nil, "The Crow", "USA", nil, "Lionsgate"},
		{},
		{"ignored", nil, nil, "ignored"},
		{nil, "Speak No Evil", "USA", nil, "Universal"},
	})

	table, err := ReadOpeners(g, NotesSection{End: 0})
	if err != nil {
		t.Fatalf("ReadOpeners failed: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 openers, got %d", table.Len())
	}
	if got, _ := table.Value(1, models.ColumnFilm); got != "Speak No Evil" {
		t.Errorf("second opener = %v", got)
	}
}
