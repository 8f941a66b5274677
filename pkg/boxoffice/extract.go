package boxoffice

import (
	"errors"
	"log/slog"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/parser"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/views"
)

// StageOpen is the ExtractionError stage for failures opening the file.
const StageOpen = "open"

// Parse reads the weekly report at path.
func Parse(path string, opts Options) (*models.Report, error) {
	logger := opts.logger()

	g, format, err := grid.Open(path, opts.ConvertXLSX)
	if err != nil {
		return nil, NewExtractionError(path, StageOpen, err)
	}
	if format == grid.FormatXLSX {
		logger.Warn("Converting xlsx workbook; the report layout is only validated against xls reports",
			slog.String("path", path))
	}
	logger.Debug("Opened workbook",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("rows", g.NumRows()))

	return parseGrid(path, g, logger)
}

// ParseGrid reads a report from an already opened grid. Failures are
// returned as an *ExtractionError with an empty Path.
func ParseGrid(g grid.Grid, opts Options) (*models.Report, error) {
	return parseGrid("", g, opts.logger())
}

func parseGrid(path string, g grid.Grid, logger *slog.Logger) (*models.Report, error) {
	report, err := parser.Parse(g, logger)
	if err != nil {
		stage := "parse"
		var se *parser.StageError
		if errors.As(err, &se) {
			stage, err = se.Stage, se.Err
		}
		return nil, NewExtractionError(path, stage, err)
	}
	return report, nil
}

// Views builds every display view of report.
func Views(report *models.Report) (views.Set, error) {
	return views.Build(report)
}
