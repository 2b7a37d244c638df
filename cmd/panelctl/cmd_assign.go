package main

import (
	"github.com/spf13/cobra"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/app/services"
	"github.com/acadops/panelboard/internal/store"
)

var (
	assignBuffer   int
	assignDept     string
	assignMaxTeams int
	assignOut      string
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Distribute unassigned teams across existing panels",
	RunE:  runAssign,
}

func init() {
	assignCmd.Flags().IntVar(&assignBuffer, "buffer", -1, "panels at the end of the listing left without new assignments (defaults to allocation.buffer)")
	assignCmd.Flags().StringVar(&assignDept, "department", "", "limit the run to one department")
	assignCmd.Flags().IntVar(&assignMaxTeams, "max-teams", -1, "team capacity per panel, 0 disables (defaults to allocation.max_teams_per_panel)")
	assignCmd.Flags().StringVar(&assignOut, "out", "", "write the updated panels to this YAML file")
}

func runAssign(cmd *cobra.Command, args []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	buffer := assignBuffer
	if buffer < 0 {
		buffer = cfg.Allocation.Buffer
	}
	maxTeams := assignMaxTeams
	if maxTeams < 0 {
		maxTeams = cfg.Allocation.MaxTeamsPerPanel
	}
	scope := models.ScopeContext{Department: assignDept, AllDepartments: assignDept == ""}

	assigner := services.NewAssigner(services.NewConflictResolver())
	var result services.AssignResult
	err = st.WithScope(scope, func() error {
		var assignErr error
		result, assignErr = assigner.AssignTeams(cmd.Context(), st.Panels(), st.Teams(), st.GuideIndex(), services.AssignOptions{
			Buffer:           buffer,
			Department:       assignDept,
			MaxTeamsPerPanel: maxTeams,
		})
		return assignErr
	})
	if err != nil {
		return err
	}

	if assignOut != "" {
		if err := store.SavePanels(assignOut, st.Panels()); err != nil {
			return err
		}
	}

	return printJSON(result)
}
