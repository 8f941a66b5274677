// Package fixture builds well-formed weekly report sheets for tests.
package fixture

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
)

// Heading is the title in cell A1.
const Heading = "Weekend box office report: 16 - 18 August 2024"

// Header is the ranked table header row.
var Header = []any{
	"Rank", "Film", "Country of Origin", "Weekend Gross", "Distributor",
	"% change on last week", "Weeks on release", "Number of cinemas", "Site average", "Total Gross to date",
}

// Ranked holds the 15 ranked rows.
var Ranked = [][]any{
	{1, "Alien: Romulus", "USA/UK", 4032455.6, "Disney", "-", 1, 694, 5810, 5126315},
	{2, "Deadpool & Wolverine", "USA", 3219186, "Disney", -0.38, 4, 661, 4870, 46223192},
	{3, "It Ends with Us", "USA", 1802331, "Sony Pictures", -0.42, 2, 604, 2984, 7069223},
	{4, "Twisters", "USA", 880219, "Warner Bros", -0.3, 5, 542, 1624, 12407576},
	{5, "Inside Out 2", "USA", 650513, "Disney", -0.25, 9, 570, 1141, 56911896},
	{6, "Despicable Me 4", "USA", 604915, "Universal", -0.2, 7, 597, 1013, 27713074},
	{7, "Borderlands", "USA", 433705, "Lionsgate", -0.6, 2, 486, 892, 1773936},
	{8, "Trap", "USA", 240232, "Warner Bros", -0.5, 3, 431, 557, 2489572},
	{9, "Kneecap", "UK/Ireland", 192417, "Curzon", 0.05, 2, 179, 1075, 776958},
	{10, "Blink Twice", "USA", 188124, "Warner Bros", "-", 1, 384, 490, 188124},
	{11, "Stree 2", "India", 151233, "Yash Raj", "-", 1, 86, 1759, 151233},
	{12, "The Bikeriders", "USA", 92178, "Universal", -0.47, 8, 183, 504, 2297445},
	{13, "Cuckoo", "Germany/USA", 77864, "Vertigo", -0.55, 2, 184, 423, 394740},
	{14, "Kalki 2898 AD", "India", 51122, "Yash Raj", -0.11, 7, 39, 1311, 1364022},
	{15, "Harold and the Purple Crayon", "UKRAINE/USA", 40101, "Sony Pictures", 0.1, 3, 160, 251, 824219},
}

// WeekendGrossTotal and GrossToDateTotal are the totals under the ranked table.
const (
	WeekendGrossTotal = 12656596.6
	GrossToDateTotal  = 171711525
)

// Footnote is the expected text under the ranked table.
const Footnote = "Note: 'Weekend gross' figures will include Previews where applicable. See Comments for detail."

// OtherUKFilms holds the rows of the other UK films table.
var OtherUKFilms = [][]any{
	{21, "The Critic", "UK", 31522, "Greenwich", -0.4, 3, 220, 143, 540107},
	{27, "Back to Black", "UK/USA/France", 9101, "StudioCanal", "n/a", 16, 41, 222, 9630110},
}

// OtherNewReleases holds the rows of the other new releases table.
var OtherNewReleases = [][]any{
	{19, "Good One", "USA", 12052, "Picturehouse", nil, 1, 38, 317, 14051},
	{31, "Touch", "Iceland/UK", 5120, "Focus", nil, 1, 29, 177, 5120},
	{40, "The Union", "USA", 1105, "Netflix", nil, 1, 6, 184, 1105},
}

// Comments are the comment lines under the comments label.
var Comments = []string{
	"Alien: Romulus opens at the top with the highest debut of the month.",
	"Kneecap climbs against the trend in its second weekend.",
}

// NoteLines are the raw note lines.
var NoteLines = []string{
	"Alien: Romulus (Disney) - Includes previews of £500,310",
	"It Ends with Us (Sony Pictures) - Second weekend",
	"Alien: Romulus (Disney) - Includes IMAX sites",
}

// Openers are the film, country and distributor of next week's openers.
var Openers = [][3]string{
	{"The Crow", "USA", "Lionsgate"},
	{"Speak No Evil", "USA", "Universal"},
	{"Strange Darling", "USA", "Vertigo"},
}

// Rows returns the full sheet as loosely typed cells. Each call returns a
// fresh copy that tests may modify.
func Rows() [][]any {
	var rows [][]any
	add := func(cells ...any) { rows = append(rows, cells) }
	blank := func() { rows = append(rows, []any{}) }
	label := func(text string) { add(nil, text) }

	add(Heading)
	add(Header...)
	for _, r := range Ranked {
		add(r...)
	}
	add("Total", nil, nil, WeekendGrossTotal, nil, nil, nil, nil, nil, GrossToDateTotal)
	label(Footnote)
	blank()
	label("Other UK films")
	for _, r := range OtherUKFilms {
		add(r...)
	}
	blank()
	label("Other new releases")
	for _, r := range OtherNewReleases {
		add(r...)
	}
	blank()
	label("Comments on this week's top 15 results")
	label(Comments[0])
	blank()
	label(Comments[1])
	blank()
	label("Notes for Top 15 table:")
	for _, line := range NoteLines {
		label(line)
	}
	blank()
	label("Openers next week:")
	for _, o := range Openers {
		add(nil, o[0], o[1], nil, o[2])
	}
	blank()

	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = append([]any(nil), r...)
	}
	return out
}

// Grid returns Rows as an in-memory grid.
func Grid() *grid.Memory {
	return grid.FromRows(Rows())
}

// RowIndex returns the index of the first row whose column B is text, or -1.
func RowIndex(rows [][]any, text string) int {
	for i, r := range rows {
		if len(r) > 1 && r[1] == text {
			return i
		}
	}
	return -1
}

// WriteXLSX saves rows as the first sheet of an xlsx workbook in a temp
// directory and returns its path.
func WriteXLSX(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				t.Fatalf("set %s: %v", cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test workbook: %v", err)
	}
	return path
}

// XLSPath returns the path of testdata/report.xls, a BIFF8 workbook holding
// the same cells as Rows. The two totals are SUM formulas with cached
// results and the heading is a string formula. It is regenerated with
// testdata/generate_report_xls.py.
func XLSPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", "report.xls")
}
