// Package main implements panelctl, the operator CLI for the panel
// allocation and mark-status engine. It loads a session snapshot (roster,
// teams, schemas, optionally saved panels), runs one allocation or status
// operation, and prints the result as JSON on stdout. Diagnostics go to
// stderr via the structured logger.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acadops/panelboard/internal/config"
	"github.com/acadops/panelboard/internal/pkg/logger"
	"github.com/acadops/panelboard/internal/seed"
	"github.com/acadops/panelboard/internal/store"
)

var (
	cfg *config.Config

	flagConfig  string
	flagDemo    bool
	flagRoster  string
	flagTeams   string
	flagSchemas string
	flagPanels  string
)

var rootCmd = &cobra.Command{
	Use:   "panelctl",
	Short: "Allocate evaluation panels and track mark completion",
	Long: `panelctl builds evaluation panels from a faculty roster, assigns
project teams to them under the guide-conflict rule, and reports how
completely each team and panel has been evaluated.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		logger.Configure(logger.Config{
			Level:  logger.LogLevel(cfg.Logging.Level),
			Pretty: cfg.Logging.Format == "console",
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "use the built-in demo roster, teams, and schemas")
	rootCmd.PersistentFlags().StringVar(&flagRoster, "roster", "", "faculty roster YAML file")
	rootCmd.PersistentFlags().StringVar(&flagTeams, "teams", "", "project teams YAML file")
	rootCmd.PersistentFlags().StringVar(&flagSchemas, "schemas", "", "marking schemas YAML file")
	rootCmd.PersistentFlags().StringVar(&flagPanels, "panels", "", "previously saved panels YAML file")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statusCmd)
}

// loadSession assembles the in-memory store for one run from the demo seed
// or the configured input files.
func loadSession() (*store.Store, error) {
	st := store.New()

	if flagDemo {
		if err := seed.Populate(st); err != nil {
			return nil, fmt.Errorf("seeding demo data: %w", err)
		}
	} else {
		rosterPath := firstNonEmpty(flagRoster, cfg.Inputs.Roster)
		if rosterPath == "" {
			return nil, fmt.Errorf("a roster file is required (--roster or inputs.roster), or use --demo")
		}
		roster, err := store.LoadRoster(rosterPath)
		if err != nil {
			return nil, err
		}
		for _, f := range roster {
			if err := st.AddFaculty(f); err != nil {
				return nil, err
			}
		}

		if teamsPath := firstNonEmpty(flagTeams, cfg.Inputs.Teams); teamsPath != "" {
			teams, err := store.LoadTeams(teamsPath)
			if err != nil {
				return nil, err
			}
			for _, t := range teams {
				if err := st.AddTeam(t); err != nil {
					return nil, err
				}
			}
		}

		if schemasPath := firstNonEmpty(flagSchemas, cfg.Inputs.Schemas); schemasPath != "" {
			schemas, err := store.LoadSchemas(schemasPath)
			if err != nil {
				return nil, err
			}
			for _, schema := range schemas {
				st.AddSchema(schema)
			}
		}
	}

	if flagPanels != "" {
		panels, err := store.LoadPanels(flagPanels)
		if err != nil {
			return nil, err
		}
		if err := st.RestorePanels(panels); err != nil {
			return nil, fmt.Errorf("restoring panels: %w", err)
		}
	}

	return st, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
