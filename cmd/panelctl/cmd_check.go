package main

import (
	"github.com/spf13/cobra"

	"github.com/acadops/panelboard/internal/app/services"
)

var checkCmd = &cobra.Command{
	Use:   "check <team-id> <panel-id>",
	Short: "Check whether a team may be assigned to a panel",
	Long: `Runs the guide-conflict gate for a single manual assignment: the
team's guide must not be a member of the target panel.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	team, err := st.Team(args[0])
	if err != nil {
		return err
	}
	panel, err := st.Panel(args[1])
	if err != nil {
		return err
	}

	resolver := services.NewConflictResolver()
	decision := resolver.CanAssign(team, panel.FacultyIDs(), st.GuideIndex())
	return printJSON(decision)
}
