// Package main provides the CLI entry point for boxoffice-go.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/boxoffice-go/internal/config"
	"github.com/ukaji3/boxoffice-go/internal/logging"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/output"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/views"
)

const allViews = "all"

type cliOptions struct {
	outputPath  string
	pretty      bool
	view        string
	format      string
	viewsDir    string
	convertXLSX bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	rootCmd := &cobra.Command{
		Use:   "boxoffice [report.xls]",
		Short: "Extract tables from weekly box office reports",
		Long: `boxoffice-go reads a weekly UK box office report workbook and outputs
the ranked table, the other UK films and new releases, next week's openers
and the derived views with their original currency formatting.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&opts.view, "view", allViews, "View to output, or all")
	rootCmd.Flags().StringVar(&opts.format, "format", "json", "Output format: json, yaml, csv")
	rootCmd.Flags().StringVar(&opts.viewsDir, "views-dir", "", "Directory for per-view output files")
	rootCmd.Flags().BoolVar(&opts.convertXLSX, "convert-xlsx", false, "Accept xlsx input by converting its first sheet")

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, opts cliOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	report, err := boxoffice.Parse(inputPath, boxoffice.Options{
		ConvertXLSX: opts.convertXLSX,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	set, err := boxoffice.Views(report)
	if err != nil {
		return fmt.Errorf("building views failed: %w", err)
	}

	selected, err := selectViews(set, opts.view)
	if err != nil {
		return err
	}

	// csv has no whole-report form; validate guarantees --views-dir then.
	var data []byte
	switch {
	case opts.view == allViews && opts.format == "csv":
	case opts.view == allViews:
		data, err = encode(output.NewDocument(report, selected), opts)
	default:
		data, err = encodeView(selected[0], opts)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if opts.outputPath != "" {
		if err := os.WriteFile(opts.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if opts.viewsDir == "" {
		if err := writeLine(cmd.OutOrStdout(), data); err != nil {
			return err
		}
	}

	// Write per-view files
	if opts.viewsDir != "" {
		if err := writeViewFiles(selected, opts); err != nil {
			return fmt.Errorf("failed to write view files: %w", err)
		}
	}

	logger.Info("Extracted report",
		"path", inputPath,
		"ranked", report.Ranked.Len(),
		"other_uk_films", report.OtherUKFilms.Len(),
		"other_new_releases", report.OtherNewReleases.Len(),
		"openers", report.Openers.Len())
	return nil
}

func (o cliOptions) validate() error {
	switch o.format {
	case "json", "yaml", "csv":
	default:
		return fmt.Errorf("invalid format: %s (must be json, yaml, or csv)", o.format)
	}
	if o.view != allViews {
		if _, err := views.ParseName(o.view); err != nil {
			return err
		}
	}
	if o.format == "csv" && o.view == allViews && o.outputPath != "" {
		return fmt.Errorf("csv output to a single file needs --view")
	}
	if o.format == "csv" && o.view == allViews && o.viewsDir == "" {
		return fmt.Errorf("csv output needs --view or --views-dir")
	}
	return nil
}

func selectViews(set views.Set, name string) ([]views.View, error) {
	if name == allViews {
		return set.Ordered(), nil
	}
	n, err := views.ParseName(name)
	if err != nil {
		return nil, err
	}
	v, ok := set.Get(n)
	if !ok {
		return nil, fmt.Errorf("view %s was not built", n)
	}
	return []views.View{v}, nil
}

func encode(doc output.Document, opts cliOptions) ([]byte, error) {
	if opts.format == "yaml" {
		return output.ToYAML(doc)
	}
	return output.ToJSON(doc, opts.pretty)
}

func encodeView(v views.View, opts cliOptions) ([]byte, error) {
	switch opts.format {
	case "yaml":
		return output.ToYAML(output.NewViewDocument(v))
	case "csv":
		var buf bytes.Buffer
		if err := output.WriteCSV(&buf, v.Table); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return output.ToJSON(output.NewViewDocument(v), opts.pretty)
	}
}

func writeViewFiles(vs []views.View, opts cliOptions) error {
	if err := os.MkdirAll(opts.viewsDir, 0755); err != nil {
		return err
	}

	for _, v := range vs {
		data, err := encodeView(v, opts)
		if err != nil {
			return err
		}

		filename := filepath.Join(opts.viewsDir, string(v.Name)+"."+opts.format)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
