// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command featstats prints per-feature summary statistics of a CSV
// dataset: one row per column with its kind, distribution, center,
// dispersion, min, max and missing-value count.
package main

import (
	"fmt"
	"os"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/markotoplak/orange3-prototypes/data"
	"github.com/markotoplak/orange3-prototypes/featstats"
)

// config holds the optional TOML defaults (~/.featstats.toml or --config).
type config struct {
	Locale     string `toml:"locale"`
	Sort       string `toml:"sort"`
	Descending bool   `toml:"descending"`
	ShowHidden bool   `toml:"show-hidden"`
}

// columnNames maps --sort argument values to model columns.
var columnNames = map[string]featstats.Column{
	"kind":       featstats.ColumnKind,
	"name":       featstats.ColumnName,
	"center":     featstats.ColumnCenter,
	"dispersion": featstats.ColumnDispersion,
	"min":        featstats.ColumnMin,
	"max":        featstats.ColumnMax,
	"missing":    featstats.ColumnMissing,
}

func main() {
	var (
		cfgFile    string
		localeName string
		sortName   string
		descending bool
		showHidden bool
		selectRows []int
		reducedOut string
		statsOut   string
	)

	root := &cobra.Command{
		Use:   "featstats dataset.csv",
		Short: "Show basic statistics for data features",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("locale") && cfg.Locale != "" {
				localeName = cfg.Locale
			}
			if !cmd.Flags().Changed("sort") && cfg.Sort != "" {
				sortName = cfg.Sort
			}
			if !cmd.Flags().Changed("descending") {
				descending = cfg.Descending
			}
			if !cmd.Flags().Changed("show-hidden") {
				showHidden = cfg.ShowHidden
			}

			tag, err := resolveLocale(localeName)
			if err != nil {
				return err
			}

			dt, err := data.OpenCSV(args[0], data.Detect)
			if err != nil {
				return err
			}

			wd := featstats.NewWidget()
			md := wd.Model()
			md.SetFormatter(featstats.NewFormatter(tag))
			if showHidden {
				md.SetHiddenKinds()
			}
			if err := wd.SetData(dt); err != nil {
				return err
			}
			if sortName != "" {
				cn, ok := columnNames[strings.ToLower(sortName)]
				if !ok {
					return errors.Errorf("unknown sort column %q", sortName)
				}
				if err := wd.Sort(cn, !descending); err != nil {
					return err
				}
			}

			showTable(cmd.OutOrStdout(), wd)
			fmt.Fprintln(cmd.OutOrStdout(), wd.InfoSummary())

			if len(selectRows) == 0 {
				return nil
			}
			return writeOutputs(wd, selectRows, reducedOut, statsOut)
		},
	}

	root.Flags().StringVar(&cfgFile, "config", "", "TOML config file (default ~/.featstats.toml)")
	root.Flags().StringVar(&localeName, "locale", "", "locale for number formatting (default: system locale)")
	root.Flags().StringVar(&sortName, "sort", "", "sort column: kind, name, center, dispersion, min, max, missing")
	root.Flags().BoolVar(&descending, "descending", false, "sort in descending order")
	root.Flags().BoolVar(&showHidden, "show-hidden", false, "also show time and text variables")
	root.Flags().IntSliceVar(&selectRows, "select", nil, "source rows to select for the output tables")
	root.Flags().StringVar(&reducedOut, "reduced", "reduced.csv", "output file for the selected columns")
	root.Flags().StringVar(&statsOut, "statistics", "statistics.csv", "output file for the selected statistics")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the TOML config file; a missing default file is not
// an error.
func loadConfig(path string) (*config, error) {
	cfg := &config{}
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = home + "/.featstats.toml"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return nil, errors.Wrap(err, "reading config")
		}
		return cfg, nil
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

// resolveLocale parses the given locale name, falling back to the
// system locale and then to English.
func resolveLocale(name string) (language.Tag, error) {
	if name == "" {
		sys, err := golocale.GetLocale()
		if err != nil {
			return language.English, nil
		}
		name = sys
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, errors.Wrapf(err, "invalid locale %q", name)
	}
	return tag, nil
}

// writeOutputs selects the given source rows and writes the two
// output tables as CSV files.
func writeOutputs(wd *featstats.Widget, rows []int, reducedOut, statsOut string) error {
	wd.AutoCommit = false
	if err := wd.Select(rows); err != nil {
		return err
	}
	reduced, summary, err := wd.Model().Project(wd.Selected())
	if err != nil {
		return err
	}
	if reduced == nil {
		return errors.New("empty selection: no outputs")
	}
	if err := reduced.SaveCSV(reducedOut, data.Comma); err != nil {
		return err
	}
	return summary.SaveCSV(statsOut, data.Comma)
}
