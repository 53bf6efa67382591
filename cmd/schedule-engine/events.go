// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/schedule-engine/internal/sink"
	"github.com/pdiddy/schedule-engine/internal/store"
	"github.com/pdiddy/schedule-engine/pkg/types"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage the event store (index, query, export)",
	Long: `Events manages a local SQLite store built from extraction results.
Use subcommands to index CSV tables, query them, or export.`,
}

// --- index subcommand ---

var eventsIndexCmd = &cobra.Command{
	Use:   "index [csvfiles...]",
	Short: "Ingest extraction CSV tables into the event store",
	Long: `Index reads one or more extraction CSV files and ingests their rows
into a SQLite database with FTS5 indexing. The document ID is the CSV
filename without extension; re-indexing a file replaces its rows.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEventsIndex,
}

func runEventsIndex(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	for _, path := range args {
		events, err := sink.ReadCSVFile(path)
		if err != nil {
			return err
		}

		docID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := s.Index(ctx, docID, path, events); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "indexed %s (%d events) as %s\n", filepath.Base(path), len(events), docID)
	}
	return nil
}

// --- query subcommand ---

var eventsQueryCmd = &cobra.Command{
	Use:   "query [query]",
	Short: "Query the event store with full-text search and filters",
	Long: `Query searches the event store using FTS5 full-text search over
session names, speakers, locations, and raw text, structured filters
(date, speaker, location, document), or a combination of both.`,
	RunE: runEventsQuery,
}

func runEventsQuery(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --date, --speaker, --location, or --doc")
	}

	results, err := s.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []store.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-22s  %-20s  %-40s  %-20s  %s\n",
		"Rank", "Date", "Time", "Session", "Speaker", "Location")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 124))

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-22s  %-20s  %-40s  %-20s  %s\n",
			i+1, clip(r.Date, 22), clip(r.Time, 20), clip(r.SessionName, 40), clip(r.Speaker, 20), r.Location)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// --- export subcommand ---

var eventsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the event store to YAML or JSON",
	Long: `Export writes the full event store (or a filtered subset) to
export.yaml or export.json inside the store directory. Supports the same
filter flags as query for partial exports.`,
	RunE: runEventsExport,
}

func runEventsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := storeConfig(cmd)
	s, err := store.NewStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := s.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.StoreDir, "export.yaml"))
	case "json":
		if err := s.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(cfg.StoreDir, "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	storeDir, _ := cmd.Flags().GetString("store-dir")
	if storeDir == "" {
		storeDir = "store"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.StoreConfig{
		StoreDir:   storeDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	date, _ := cmd.Flags().GetString("date")
	speaker, _ := cmd.Flags().GetString("speaker")
	location, _ := cmd.Flags().GetString("location")
	docID, _ := cmd.Flags().GetString("doc")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Query:      queryText,
		Date:       date,
		Speaker:    speaker,
		Location:   location,
		DocID:      docID,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	eventsCmd.PersistentFlags().String("store-dir", "store", "base directory for the event store")
	eventsCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Query flags.
	eventsQueryCmd.Flags().String("query", "", "full-text search query")
	eventsQueryCmd.Flags().String("date", "", "filter by date label substring")
	eventsQueryCmd.Flags().String("speaker", "", "filter by speaker substring")
	eventsQueryCmd.Flags().String("location", "", "filter by location substring")
	eventsQueryCmd.Flags().String("doc", "", "filter by document ID")
	eventsQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	eventsQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	eventsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	eventsExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	eventsExportCmd.Flags().String("date", "", "filter by date label for partial export")
	eventsExportCmd.Flags().String("speaker", "", "filter by speaker for partial export")
	eventsExportCmd.Flags().String("location", "", "filter by location for partial export")
	eventsExportCmd.Flags().String("doc", "", "filter by document ID for partial export")
	eventsExportCmd.Flags().Int("limit", 0, "maximum events to export (0 = all)")

	// Wire subcommands.
	eventsCmd.AddCommand(eventsIndexCmd)
	eventsCmd.AddCommand(eventsQueryCmd)
	eventsCmd.AddCommand(eventsExportCmd)

	rootCmd.AddCommand(eventsCmd)
}
