// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/schedule-engine/internal/schedule"
	"github.com/pdiddy/schedule-engine/internal/sink"
	"github.com/pdiddy/schedule-engine/internal/source"
	"github.com/pdiddy/schedule-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [documents...]",
	Short: "Extract schedule events from program documents to CSV",
	Long: `Extract pulls text from one or more program documents (PDF text layer,
with optional OCR for scanned pages, or plain .txt dumps), parses the
schedule structure, and writes one CSV row per event. Multiple documents
are concatenated into a single output table in argument order.

The date-label table mapping header tokens to display labels comes from the
config file; see the schedule.date_labels key.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	saveText, _ := cmd.Flags().GetBool("save-text")
	icsPath, _ := cmd.Flags().GetString("ics")

	srcCfg := sourceConfigFromFlags(cmd)
	schedCfg := scheduleConfigFromFlags(cmd)

	var all []types.Event
	var buffers []string

	for _, path := range args {
		text, err := source.Load(path, srcCfg, os.Stderr)
		if err != nil {
			return err
		}
		buffers = append(buffers, text)

		events, err := schedule.Parse(text, schedCfg)
		if errors.Is(err, schedule.ErrNoEvents) {
			fmt.Fprintf(os.Stderr, "no events extracted from %s\n", filepath.Base(path))
			continue
		}
		if err != nil {
			return err
		}

		sum := schedule.Summarize(events)
		fmt.Fprintf(os.Stdout, "parsed %s (%d events, %d days)\n", filepath.Base(path), sum.Events, sum.Days)
		all = append(all, events...)
	}

	if err := sink.WriteCSVFile(output, all); err != nil {
		return err
	}

	if saveText {
		textPath := artifactPath(output, "_text.txt")
		lines := schedule.NormalizeLines(strings.Join(buffers, "\n"))
		if err := sink.WriteNormalizedText(textPath, lines); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "normalized text saved to %s\n", textPath)
	}

	if len(all) == 0 {
		// The zero-row table is already on disk; the caller still gets an
		// explicit failure signal.
		fmt.Fprintf(os.Stdout, "no events extracted; empty table written to %s\n", output)
		return schedule.ErrNoEvents
	}

	if icsPath != "" {
		if err := writeICSFile(icsPath, all); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "%d events written to %s\n", len(all), output)
	return nil
}

func writeICSFile(path string, events []types.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	written, skipped, err := sink.WriteICS(f, events)
	if err != nil {
		return err
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d event(s) without resolvable timestamps skipped in %s\n", skipped, path)
	}
	fmt.Fprintf(os.Stdout, "%d calendar entries written to %s\n", written, path)
	return f.Close()
}

// artifactPath derives a sibling artifact path from the main output path.
func artifactPath(output, suffix string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + suffix
}

// sourceConfigFromFlags merges source settings: an explicitly set flag wins
// over the config file, which wins over the flag default.
func sourceConfigFromFlags(cmd *cobra.Command) types.SourceConfig {
	var cfg types.SourceConfig
	cfg.UseOCR, _ = cmd.Flags().GetBool("ocr")
	cfg.OCRFallback, _ = cmd.Flags().GetBool("ocr-fallback")
	cfg.DPI, _ = cmd.Flags().GetInt("dpi")
	cfg.PageSegMode = viper.GetString("source.page_seg_mode")
	cfg.PageMarkers = viper.GetBool("source.page_markers")

	if !cmd.Flags().Changed("ocr") && viper.IsSet("source.use_ocr") {
		cfg.UseOCR = viper.GetBool("source.use_ocr")
	}
	if !cmd.Flags().Changed("ocr-fallback") && viper.IsSet("source.ocr_fallback") {
		cfg.OCRFallback = viper.GetBool("source.ocr_fallback")
	}
	if !cmd.Flags().Changed("dpi") && viper.IsSet("source.dpi") {
		cfg.DPI = viper.GetInt("source.dpi")
	}
	return cfg.WithDefaults()
}

// scheduleConfigFromFlags builds the parser configuration. The date-label
// table is config-file only; the fallback date can be overridden per run.
func scheduleConfigFromFlags(cmd *cobra.Command) types.ScheduleConfig {
	cfg := types.ScheduleConfig{
		DateLabels:   viper.GetStringMapString("schedule.date_labels"),
		FallbackDate: viper.GetString("schedule.fallback_date"),
	}

	if cmd.Flags().Changed("fallback-date") {
		cfg.FallbackDate, _ = cmd.Flags().GetString("fallback-date")
	}
	return cfg.WithDefaults()
}

func init() {
	extractCmd.Flags().StringP("output", "o", "schedule.csv", "output CSV file")
	extractCmd.Flags().Bool("ocr", false, "force OCR instead of the PDF text layer")
	extractCmd.Flags().Bool("ocr-fallback", true, "fall back to OCR when the text layer is empty")
	extractCmd.Flags().Int("dpi", 300, "rasterization resolution for OCR")
	extractCmd.Flags().Bool("save-text", false, "persist the normalized text for diagnosing misses")
	extractCmd.Flags().String("ics", "", "also write an iCalendar file to this path")
	extractCmd.Flags().String("fallback-date", "", "date label for documents without date headers")

	rootCmd.AddCommand(extractCmd)
}
