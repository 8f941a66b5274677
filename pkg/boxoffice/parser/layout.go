// Package parser reconstructs the tables and text sections of a weekly box
// office report from its fixed sheet layout.
//
// The layout is not discovered. Every section is located relative to the
// one before it, and any deviation from the expected shape is an error.
package parser

import "regexp"

// SchemaWidth is the number of columns of the ranked and satellite tables.
const SchemaWidth = 10

// RankedRows is the fixed length of the ranked table.
const RankedRows = 15

// Fixed coordinates, 0-based.
const (
	headingRow = 0
	headingCol = 0

	headerRow      = 1
	rankedStartRow = 2

	totalsRow       = 17
	weekendGrossCol = 3
	grossToDateCol  = 9

	footnoteRow    = 18
	footnoteCol    = 1
	footnoteGapRow = 19

	otherUKFilmsSentinelRow = 20

	// Comments and note lines are read from column B.
	textCol = 1
)

// Sentinel labels separating the sections, in document order.
const (
	SentinelOtherUKFilms     = "Other UK films"
	SentinelOtherNewReleases = "Other new releases"
	SentinelComments         = "Comments on this week's top 15 results"
	SentinelNotes            = "Notes for Top 15 table:"
	SentinelOpeners          = "Openers next week:"
)

var footnotePattern = regexp.MustCompile(`^Note: 'Weekend gross' figures will include Previews.+`)

// openersSourceColumns are the film, country and distributor columns of
// the openers next week rows.
var openersSourceColumns = []int{1, 2, 4}
