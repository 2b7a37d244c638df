package main

import (
	"github.com/spf13/cobra"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/app/services"
	"github.com/acadops/panelboard/internal/store"
)

var (
	buildSize    int
	buildSchool  string
	buildDept    string
	buildAllDept bool
	buildCount   int
	buildOut     string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Partition the eligible faculty pool into new panels",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().IntVar(&buildSize, "size", 0, "members per panel (defaults to allocation.panel_size)")
	buildCmd.Flags().StringVar(&buildSchool, "school", "", "school scope")
	buildCmd.Flags().StringVar(&buildDept, "department", "", "department scope")
	buildCmd.Flags().BoolVar(&buildAllDept, "all-departments", false, "build panels for every department in the pool")
	buildCmd.Flags().IntVar(&buildCount, "count", 0, "desired panel count in single-department mode (0 = as many as possible)")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "write the committed panels to this YAML file")
}

func runBuild(cmd *cobra.Command, args []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	size := buildSize
	if size == 0 {
		size = cfg.Allocation.PanelSize
	}
	scope := models.ScopeContext{
		School:         buildSchool,
		Department:     buildDept,
		AllDepartments: buildAllDept,
	}

	builder := services.NewPanelBuilder()
	var drafts []*models.Panel
	var report services.BuildReport
	err = st.WithScope(scope, func() error {
		var buildErr error
		drafts, report, buildErr = builder.BuildPanels(cmd.Context(), st.EligibleFaculty(), services.BuildOptions{
			PanelSize:  size,
			Scope:      scope,
			PanelCount: buildCount,
		})
		if buildErr != nil {
			return buildErr
		}
		return st.CommitPanels(drafts)
	})
	if err != nil {
		return err
	}

	if buildOut != "" {
		if err := store.SavePanels(buildOut, st.Panels()); err != nil {
			return err
		}
	}

	return printJSON(struct {
		Panels []*models.Panel      `json:"panels"`
		Report services.BuildReport `json:"report"`
	}{drafts, report})
}
