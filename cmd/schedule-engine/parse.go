package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/schedule-engine/internal/schedule"
	"github.com/pdiddy/schedule-engine/internal/sink"
)

var parseCmd = &cobra.Command{
	Use:   "parse <textfile>",
	Short: "Parse pre-extracted schedule text to CSV",
	Long: `Parse runs the segmentation and field-extraction engine over an already
extracted text dump, skipping the document stage. Useful when the text came
from an external OCR run or when iterating on parser configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	saveText, _ := cmd.Flags().GetBool("save-text")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading schedule text %s: %w", args[0], err)
	}

	schedCfg := scheduleConfigFromFlags(cmd)
	events, err := schedule.Parse(string(data), schedCfg)
	if err != nil && !errors.Is(err, schedule.ErrNoEvents) {
		return err
	}

	if werr := sink.WriteCSVFile(output, events); werr != nil {
		return werr
	}

	if saveText {
		textPath := artifactPath(output, "_text.txt")
		if terr := sink.WriteNormalizedText(textPath, schedule.NormalizeLines(string(data))); terr != nil {
			return terr
		}
		fmt.Fprintf(os.Stdout, "normalized text saved to %s\n", textPath)
	}

	if errors.Is(err, schedule.ErrNoEvents) {
		fmt.Fprintf(os.Stdout, "no events extracted from %s; empty table written to %s\n",
			filepath.Base(args[0]), output)
		return err
	}

	sum := schedule.Summarize(events)
	fmt.Fprintf(os.Stdout, "%d events (%d days) written to %s\n", sum.Events, sum.Days, output)
	return nil
}

func init() {
	parseCmd.Flags().StringP("output", "o", "schedule.csv", "output CSV file")
	parseCmd.Flags().Bool("save-text", false, "persist the normalized text for diagnosing misses")
	parseCmd.Flags().String("fallback-date", "", "date label for documents without date headers")

	rootCmd.AddCommand(parseCmd)
}
