// Package models defines the data structures of a parsed box office report.
package models

// Column names of the report tables.
const (
	ColumnRank         = "Rank"
	ColumnFilm         = "Film"
	ColumnCountry      = "Country of Origin"
	ColumnWeekendGross = "Weekend Gross"
	ColumnDistributor  = "Distributor"
	ColumnChange       = "% change on last week"
	ColumnWeeks        = "Weeks on release"
	ColumnCinemas      = "Number of cinemas"
	ColumnSiteAverage  = "Site average"
	ColumnGrossToDate  = "Total Gross to date"
	ColumnNotes        = "Notes"
)

// RequiredColumns must be present in the schema read from the header row.
var RequiredColumns = []string{
	ColumnFilm,
	ColumnCountry,
	ColumnWeekendGross,
	ColumnChange,
	ColumnWeeks,
	ColumnSiteAverage,
	ColumnGrossToDate,
}

// OpenersColumns is the fixed schema of the openers next week table.
var OpenersColumns = []string{ColumnFilm, ColumnCountry, ColumnDistributor}
