package models

// Totals are the summary figures printed under the ranked table.
type Totals struct {
	WeekendGross float64 `json:"weekend_gross" yaml:"weekend_gross"`
	GrossToDate  float64 `json:"gross_to_date" yaml:"gross_to_date"`
}

// Boundaries are the 0-based row indices located while scanning. End
// indices are exclusive.
type Boundaries struct {
	OtherUKFilmsStart     int `json:"other_uk_films_start" yaml:"other_uk_films_start"`
	OtherUKFilmsEnd       int `json:"other_uk_films_end" yaml:"other_uk_films_end"`
	OtherNewReleasesStart int `json:"other_new_releases_start" yaml:"other_new_releases_start"`
	OtherNewReleasesEnd   int `json:"other_new_releases_end" yaml:"other_new_releases_end"`
	CommentsStart         int `json:"comments_start" yaml:"comments_start"`
	NotesStart            int `json:"notes_start" yaml:"notes_start"`
	OpenersStart          int `json:"openers_start" yaml:"openers_start"`
}

// Report is everything read from one weekly report document. Tables hold
// raw values; display formatting is applied by the views package.
type Report struct {
	// Heading is the title in the top-left cell.
	Heading string
	// Schema is the header row of the ranked table, reused for both
	// satellite tables.
	Schema []string
	// Totals are the weekend gross and gross to date totals.
	Totals Totals
	// Ranked is the top 15 table.
	Ranked Table
	// OtherUKFilms is the satellite table of UK films outside the top 15.
	OtherUKFilms Table
	// OtherNewReleases is the satellite table of new releases outside the top 15.
	OtherNewReleases Table
	// Comments are the free-text comments on the ranked table.
	Comments []string
	// Notes are the per-film notes on the ranked table.
	Notes Notes
	// Openers is the openers next week table.
	Openers Table
	// Boundaries are the section rows located while parsing.
	Boundaries Boundaries
}
