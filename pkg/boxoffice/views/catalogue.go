package views

import (
	"fmt"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/format"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

// Name identifies a derived view.
type Name string

// View names, in display order.
const (
	Top15              Name = "top-15"
	UKInTop15          Name = "uk-in-top-15"
	NewReleasesInTop15 Name = "new-releases-in-top-15"
	OtherUKFilms       Name = "other-uk-films"
	OtherNewReleases   Name = "other-new-releases"
	UKFilms            Name = "uk-films"
	NewReleases        Name = "new-releases"
	OpenersNextWeek    Name = "openers-next-week"
)

// UKToken is the country of origin used for the UK views.
const UKToken = "UK"

// All lists every view name in display order.
var All = []Name{
	Top15,
	UKInTop15,
	NewReleasesInTop15,
	OtherUKFilms,
	OtherNewReleases,
	UKFilms,
	NewReleases,
	OpenersNextWeek,
}

var titles = map[Name]string{
	Top15:              "Top 15 Highest Grossing Films",
	UKInTop15:          "UK Films in the Top 15",
	NewReleasesInTop15: "New Releases in the Top 15",
	OtherUKFilms:       "Other UK Films",
	OtherNewReleases:   "Other New Releases",
	UKFilms:            "All UK Films",
	NewReleases:        "All New Releases",
	OpenersNextWeek:    "Openers Next Week",
}

// Title returns the display title of a view.
func (n Name) Title() string {
	return titles[n]
}

// ParseName validates a view name.
func ParseName(s string) (Name, error) {
	for _, n := range All {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// View is a display-ready table.
type View struct {
	Name  Name
	Title string
	Table models.Table
}

// Set holds every view of a report, keyed by name.
type Set struct {
	views map[Name]View
}

// Get returns the view called name.
func (s Set) Get(name Name) (View, bool) {
	v, ok := s.views[name]
	return v, ok
}

// Ordered returns the views in display order.
func (s Set) Ordered() []View {
	out := make([]View, 0, len(All))
	for _, n := range All {
		if v, ok := s.views[n]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Build derives every view from a report. Only the top-15 view carries the
// notes column. Filters run on restored tables.
func Build(report *models.Report) (Set, error) {
	ranked := format.RestoreOriginalFormatting(report.Ranked)
	otherUK := format.RestoreOriginalFormatting(report.OtherUKFilms)
	otherNew := format.RestoreOriginalFormatting(report.OtherNewReleases)

	ukInTop := FilterByCountry(ranked, UKToken)
	newInTop := FilterByWeeksOnRelease(ranked, 1)

	ukAll, err := MergeTables(ukInTop, otherUK)
	if err != nil {
		return Set{}, fmt.Errorf("merge %s: %w", UKFilms, err)
	}
	newAll, err := MergeTables(newInTop, otherNew)
	if err != nil {
		return Set{}, fmt.Errorf("merge %s: %w", NewReleases, err)
	}

	tables := map[Name]models.Table{
		Top15:              format.RestoreOriginalFormatting(JoinNotes(report.Ranked, report.Notes)),
		UKInTop15:          ukInTop,
		NewReleasesInTop15: newInTop,
		OtherUKFilms:       otherUK,
		OtherNewReleases:   otherNew,
		UKFilms:            ukAll,
		NewReleases:        newAll,
		OpenersNextWeek:    report.Openers.Clone(),
	}

	set := Set{views: make(map[Name]View, len(tables))}
	for name, table := range tables {
		set.views[name] = View{Name: name, Title: name.Title(), Table: table}
	}
	return set, nil
}
