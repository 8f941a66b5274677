package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

// Stage names used in StageError.
const (
	StageHeader           = "header"
	StageRanked           = "ranked_table"
	StageOtherUKFilms     = "other_uk_films"
	StageOtherNewReleases = "other_new_releases"
	StageComments         = "comments"
	StageNotes            = "notes"
	StageOpeners          = "openers_next_week"
)

// Header is the report heading and the column schema of the ranked table.
type Header struct {
	Heading string
	Schema  []string
}

// RankedSection is the ranked table with its totals. Next is the row where
// the following section is expected.
type RankedSection struct {
	Table  models.Table
	Totals models.Totals
	Next   int
}

// Section is a headerless satellite table spanning [Start, End). End is the
// blank row that closes it.
type Section struct {
	Start int
	End   int
	Table models.Table
}

// CommentsSection spans [Start, End), where End is the notes sentinel row.
type CommentsSection struct {
	Start    int
	End      int
	Comments []string
}

// NotesSection spans (Start, End), where Start is the notes sentinel row
// and End is the openers sentinel row.
type NotesSection struct {
	Start int
	End   int
	Notes models.Notes
}

// ReadHeader reads the heading and the column schema.
func ReadHeader(g grid.Grid) (Header, error) {
	schema := grid.ReadHeader(g, headerRow, grid.Columns(SchemaWidth))
	for _, name := range models.RequiredColumns {
		if !contains(schema, name) {
			return Header{}, &LayoutError{
				Expected: fmt.Sprintf("column %q in the header row", name),
				FromRow:  headerRow,
				ToRow:    headerRow,
				Detail:   fmt.Sprintf("header row is %q", schema),
			}
		}
	}
	return Header{
		Heading: g.Cell(headingRow, headingCol).String(),
		Schema:  schema,
	}, nil
}

// ReadRanked reads the ranked table and its totals, then checks that the
// footnote under it is the expected one and is followed by a blank row.
func ReadRanked(g grid.Grid, h Header) (RankedSection, error) {
	table, err := ExtractTable(g, rankedStartRow, RankedRows, h.Schema, nil)
	if err != nil {
		return RankedSection{}, err
	}

	weekend, err := requiredNumber(g, totalsRow, weekendGrossCol, "weekend gross total")
	if err != nil {
		return RankedSection{}, err
	}
	toDate, err := requiredNumber(g, totalsRow, grossToDateCol, "total gross to date")
	if err != nil {
		return RankedSection{}, err
	}

	footnote := g.Cell(footnoteRow, footnoteCol).String()
	if !footnotePattern.MatchString(footnote) {
		return RankedSection{}, &LayoutError{
			Expected: "the weekend gross previews footnote in column B",
			FromRow:  footnoteRow,
			ToRow:    footnoteRow,
			Detail:   fmt.Sprintf("found %q", footnote),
		}
	}
	if !IsBlankRow(g, footnoteGapRow) {
		return RankedSection{}, &LayoutError{
			Expected: "a blank row after the footnote",
			FromRow:  footnoteGapRow,
			ToRow:    footnoteGapRow,
			Detail:   "more notes than expected are under the ranked table",
		}
	}

	return RankedSection{
		Table:  table,
		Totals: models.Totals{WeekendGross: weekend, GrossToDate: toDate},
		Next:   otherUKFilmsSentinelRow,
	}, nil
}

// ReadOtherUKFilms reads the table that follows the "Other UK films" label.
func ReadOtherUKFilms(g grid.Grid, h Header, ranked RankedSection) (Section, error) {
	return readSatellite(g, h, ranked.Next, SentinelOtherUKFilms)
}

// ReadOtherNewReleases reads the table whose label sits in the row after
// the blank row closing the other UK films table.
func ReadOtherNewReleases(g grid.Grid, h Header, uk Section) (Section, error) {
	return readSatellite(g, h, uk.End+1, SentinelOtherNewReleases)
}

func readSatellite(g grid.Grid, h Header, labelRow int, sentinel string) (Section, error) {
	if err := ExpectSentinelAt(g, labelRow, sentinel); err != nil {
		return Section{}, err
	}
	start := labelRow + 1
	end, err := FindNextBlankRow(g, start)
	if err != nil {
		return Section{}, err
	}
	table, err := ExtractTable(g, start, end-start, h.Schema, nil)
	if err != nil {
		return Section{}, err
	}
	return Section{Start: start, End: end, Table: table}, nil
}

// ReadComments reads the comments that follow the new releases table, up
// to the notes label.
func ReadComments(g grid.Grid, releases Section) (CommentsSection, error) {
	label, err := FindSentinelRow(g, releases.End, SentinelComments)
	if err != nil {
		return CommentsSection{}, err
	}
	start := label + 1
	end, err := FindSentinelRow(g, start, SentinelNotes)
	if err != nil {
		return CommentsSection{}, err
	}
	return CommentsSection{Start: start, End: end, Comments: textLines(g, start, end)}, nil
}

// ReadNotes reads and aggregates the note lines between the notes label and
// the openers label.
func ReadNotes(g grid.Grid, comments CommentsSection) (NotesSection, error) {
	start := comments.End
	end, err := FindSentinelRow(g, start, SentinelOpeners)
	if err != nil {
		return NotesSection{}, err
	}

	var notes models.Notes
	for row := start + 1; row < end; row++ {
		if IsBlankRow(g, row) {
			continue
		}
		film, body, err := ParseNote(g.Cell(row, textCol).String())
		if err != nil {
			var nfe *NoteFormatError
			if errors.As(err, &nfe) {
				nfe.Row = row
			}
			return NotesSection{}, err
		}
		notes.Add(film, body)
	}
	return NotesSection{Start: start, End: end, Notes: notes}, nil
}

// ReadOpeners reads the openers next week rows from after the openers label
// to the end of the sheet, skipping blank rows.
func ReadOpeners(g grid.Grid, notes NotesSection) (models.Table, error) {
	start := notes.End + 1
	table, err := ExtractTable(g, start, g.NumRows()-start, models.OpenersColumns, openersSourceColumns)
	if err != nil {
		return models.Table{}, err
	}
	rows := table.Rows[:0]
	for _, row := range table.Rows {
		if !allNil(row) {
			rows = append(rows, row)
		}
	}
	table.Rows = rows
	return table, nil
}

// Parse runs every stage in document order. It returns no report at all if
// any stage fails.
func Parse(g grid.Grid, logger *slog.Logger) (*models.Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	header, err := ReadHeader(g)
	if err != nil {
		return nil, &StageError{Stage: StageHeader, Err: err}
	}
	logger.Debug("Read header", slog.String("heading", header.Heading), slog.Any("schema", header.Schema))

	ranked, err := ReadRanked(g, header)
	if err != nil {
		return nil, &StageError{Stage: StageRanked, Err: err}
	}
	logger.Debug("Read ranked table",
		slog.Int("rows", ranked.Table.Len()),
		slog.Float64("weekend_gross", ranked.Totals.WeekendGross),
		slog.Float64("gross_to_date", ranked.Totals.GrossToDate))

	uk, err := ReadOtherUKFilms(g, header, ranked)
	if err != nil {
		return nil, &StageError{Stage: StageOtherUKFilms, Err: err}
	}
	logSection(logger, StageOtherUKFilms, uk.Start, uk.End)

	releases, err := ReadOtherNewReleases(g, header, uk)
	if err != nil {
		return nil, &StageError{Stage: StageOtherNewReleases, Err: err}
	}
	logSection(logger, StageOtherNewReleases, releases.Start, releases.End)

	comments, err := ReadComments(g, releases)
	if err != nil {
		return nil, &StageError{Stage: StageComments, Err: err}
	}
	logSection(logger, StageComments, comments.Start, comments.End)

	notes, err := ReadNotes(g, comments)
	if err != nil {
		return nil, &StageError{Stage: StageNotes, Err: err}
	}
	logSection(logger, StageNotes, notes.Start, notes.End)

	openers, err := ReadOpeners(g, notes)
	if err != nil {
		return nil, &StageError{Stage: StageOpeners, Err: err}
	}
	logger.Debug("Read openers next week", slog.Int("rows", openers.Len()))

	return &models.Report{
		Heading:          header.Heading,
		Schema:           append([]string(nil), header.Schema...),
		Totals:           ranked.Totals,
		Ranked:           ranked.Table,
		OtherUKFilms:     uk.Table,
		OtherNewReleases: releases.Table,
		Comments:         comments.Comments,
		Notes:            notes.Notes,
		Openers:          openers,
		Boundaries: models.Boundaries{
			OtherUKFilmsStart:     uk.Start,
			OtherUKFilmsEnd:       uk.End,
			OtherNewReleasesStart: releases.Start,
			OtherNewReleasesEnd:   releases.End,
			CommentsStart:         comments.Start,
			NotesStart:            notes.Start,
			OpenersStart:          notes.End,
		},
	}, nil
}

func logSection(logger *slog.Logger, stage string, start, end int) {
	logger.Debug("Section located",
		slog.String("section", stage),
		slog.Int("start_row", start),
		slog.Int("end_row", end))
}

// requiredNumber reads a fixed cell that must hold a number.
func requiredNumber(g grid.Grid, row, col int, description string) (float64, error) {
	v := g.Cell(row, col)
	if f, ok := v.Float(); ok {
		return f, nil
	}
	cell, _ := excelize.CoordinatesToCellName(col+1, row+1)
	if v.IsEmpty() {
		return 0, &MissingValueError{Cell: cell, Description: description}
	}
	return 0, &MissingValueError{Cell: cell, Description: fmt.Sprintf("%s as a number (found %q)", description, v.String())}
}

// textLines returns column B of every non-blank row in [start, end).
func textLines(g grid.Grid, start, end int) []string {
	var lines []string
	for row := start; row < end; row++ {
		if !IsBlankRow(g, row) {
			lines = append(lines, g.Cell(row, textCol).String())
		}
	}
	return lines
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func allNil(row []any) bool {
	for _, v := range row {
		if v != nil {
			return false
		}
	}
	return true
}
