// Package boxoffice reads weekly box office workbooks into structured tables.
package boxoffice

import "log/slog"

// Options configures parsing.
type Options struct {
	// ConvertXLSX allows an xlsx workbook to be read by converting its
	// first sheet in memory. When false an xlsx file is rejected with
	// ErrDocumentFormatUnsupported.
	ConvertXLSX bool
	// Logger receives debug output about located sections.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
