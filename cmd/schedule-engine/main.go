// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the schedule-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the schedule-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "schedule-engine",
	Short: "Extract structured schedules from conference-program documents",
	Long: `schedule-engine converts conference-program PDFs and text dumps into
structured schedule events: date, time range, session title, speaker, and
location. Extraction is heuristic and best-effort; unmatched fields resolve
to "N/A" rather than failing the run.

Each pipeline stage is a subcommand: extract pulls text from a document and
parses it to CSV, parse works on pre-extracted text, and events manages a
queryable SQLite store built from extraction results.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./schedule-engine.yaml or ~/.config/schedule-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("schedule-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "schedule-engine"))
		}
	}

	viper.SetEnvPrefix("SCHEDULE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
