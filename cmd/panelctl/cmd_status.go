package main

import (
	"github.com/spf13/cobra"

	"github.com/acadops/panelboard/internal/app/services"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report mark-completion status per team, panel, and overall",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	service := services.NewMarkStatusService()
	dashboard := service.ComputeMarkStatus(st.Panels(), st.Teams(), st.Schemas())
	return printJSON(dashboard)
}
