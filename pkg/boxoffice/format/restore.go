// Package format restores the display strings of numeric report columns.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

// Placeholder replaces every missing cell after restoration.
const Placeholder = "-"

// CurrencySymbol prefixes restored currency values.
const CurrencySymbol = "£"

// Restorer holds the column configuration used by RestoreOriginalFormatting.
type Restorer struct {
	CurrencyColumns   []string
	PercentageColumns []string
	Placeholder       string
}

// DefaultRestorer returns the configuration of the weekly report tables.
func DefaultRestorer() Restorer {
	return Restorer{
		CurrencyColumns:   []string{models.ColumnWeekendGross, models.ColumnSiteAverage, models.ColumnGrossToDate},
		PercentageColumns: []string{models.ColumnChange},
		Placeholder:       Placeholder,
	}
}

// RestoreOriginalFormatting applies DefaultRestorer to t.
func RestoreOriginalFormatting(t models.Table) models.Table {
	return DefaultRestorer().Restore(t)
}

// Restore returns a copy of t with currency and percentage columns
// rendered as strings and every missing cell replaced by the placeholder.
// Columns absent from t are skipped. Values that are already strings are
// left alone, so restoring a restored table changes nothing.
func (r Restorer) Restore(t models.Table) models.Table {
	out := t.Clone()

	for _, name := range r.CurrencyColumns {
		col := out.ColumnIndex(name)
		if col < 0 {
			continue
		}
		for _, row := range out.Rows {
			if f, ok := row[col].(float64); ok && !math.IsNaN(f) {
				row[col] = RestoreCurrency(f)
			}
		}
	}

	for _, name := range r.PercentageColumns {
		col := out.ColumnIndex(name)
		if col < 0 {
			continue
		}
		for _, row := range out.Rows {
			row[col] = RestorePercentage(row[col])
		}
	}

	for _, row := range out.Rows {
		for i, v := range row {
			if isMissing(v) {
				row[i] = r.Placeholder
			}
		}
	}
	return out
}

// RestoreCurrency rounds value to a whole unit and renders it with comma
// separated thousands, e.g. 1234567 becomes "£1,234,567". Halves round to
// even.
func RestoreCurrency(value float64) string {
	rounded := math.RoundToEven(value)
	if rounded == 0 {
		rounded = 0 // drop the sign of negative zero
	}
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	digits := strconv.FormatFloat(rounded, 'f', 0, 64)
	return sign + CurrencySymbol + groupThousands(digits)
}

// groupThousands peels three digits at a time off the right of digits and
// joins the groups with commas, most significant first.
func groupThousands(digits string) string {
	var groups []string
	for len(digits) > 3 {
		groups = append(groups, digits[len(digits)-3:])
		digits = digits[:len(digits)-3]
	}
	groups = append(groups, digits)

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, ",")
}

// RestorePercentage renders a fraction as a whole percentage, e.g. 0.05
// becomes "5%". Anything that is not a number, including nil and NaN, is
// returned unchanged.
func RestorePercentage(value any) any {
	f, ok := value.(float64)
	if !ok || math.IsNaN(f) {
		return value
	}
	pct := math.RoundToEven(f * 100)
	if pct == 0 {
		pct = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(pct, 'f', 0, 64) + "%"
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}
