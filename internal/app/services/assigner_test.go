package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/pkg/apperrors"
)

func testPanels(dept string, memberSets ...[]string) []*models.Panel {
	panels := make([]*models.Panel, 0, len(memberSets))
	for i, ids := range memberSets {
		members := make([]models.Faculty, 0, len(ids))
		for _, id := range ids {
			members = append(members, models.Faculty{EmployeeID: id, Department: models.FlexStrings{dept}})
		}
		panels = append(panels, &models.Panel{
			PanelID:    string(rune('A' + i)),
			Members:    members,
			School:     "SCOPE",
			Department: dept,
		})
	}
	return panels
}

func testTeams(dept string, guideByTeam map[string]string, ids ...string) []*models.Team {
	teams := make([]*models.Team, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, &models.Team{
			ID:             id,
			School:         models.FlexStrings{"SCOPE"},
			Department:     models.FlexStrings{dept},
			GuideFacultyID: guideByTeam[id],
		})
	}
	return teams
}

func TestAssigner_AssignTeams(t *testing.T) {
	assigner := NewAssigner(NewConflictResolver())
	ctx := context.Background()

	t.Run("buffer panels receive no new teams and runs are idempotent", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"}, []string{"E103", "E104"}, []string{"E105", "E106"})
		teams := testTeams("CSE", nil, "T01", "T02", "T03", "T04")

		first, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{Buffer: 1})
		require.NoError(t, err)

		assert.Empty(t, first.Assignments["C"], "last panel in listing order is buffered")
		assert.Empty(t, first.Unassigned)
		assert.Len(t, first.Assignments["A"], 2)
		assert.Len(t, first.Assignments["B"], 2)
		for _, team := range teams {
			assert.True(t, team.Assigned())
			assert.NotEqual(t, "C", team.PanelID)
		}

		second, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{Buffer: 1})
		require.NoError(t, err)
		if diff := cmp.Diff(first.Assignments, second.Assignments); diff != "" {
			t.Errorf("second run changed the mapping (-first +second):\n%s", diff)
		}
	})

	t.Run("load balances by ascending team count", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"}, []string{"E103", "E104"})
		panels[0].TeamIDs = []string{"existing"}
		teams := testTeams("CSE", nil, "T01")

		result, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"T01"}, result.Assignments["B"], "emptier panel wins")
	})

	t.Run("guide conflicts fall through to the next panel", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"}, []string{"E103", "E104"})
		teams := testTeams("CSE", map[string]string{"T01": "E101"}, "T01")

		result, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"T01"}, result.Assignments["B"])
		assert.Empty(t, result.Unassigned)
	})

	t.Run("team admitted nowhere is reported, not fatal", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"})
		teams := testTeams("CSE", map[string]string{"T01": "E101", "T02": ""}, "T01", "T02")

		result, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"T01"}, result.Unassigned)
		require.Len(t, result.Skips, 1)
		assert.Equal(t, "T01", result.Skips[0].TeamID)
		assert.Contains(t, result.Skips[0].Reason, "guide")
		assert.Equal(t, []string{"T02"}, result.Assignments["A"])
	})

	t.Run("capacity cap skips full panels", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"})
		teams := testTeams("CSE", nil, "T01", "T02")

		result, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{MaxTeamsPerPanel: 1})
		require.NoError(t, err)
		assert.Len(t, result.Assignments["A"], 1)
		require.Len(t, result.Unassigned, 1)
		assert.Contains(t, result.Skips[0].Reason, "capacity")
	})

	t.Run("department filter scopes both panels and teams", func(t *testing.T) {
		panels := append(testPanels("CSE", []string{"E101", "E102"}), &models.Panel{
			PanelID:    "X",
			Members:    []models.Faculty{{EmployeeID: "E201"}},
			Department: "ECE",
		})
		teams := append(testTeams("CSE", nil, "T01"), testTeams("ECE", nil, "T02")...)

		result, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{Department: "CSE"})
		require.NoError(t, err)
		assert.Equal(t, []string{"T01"}, result.Assignments["A"])
		_, hasECE := result.Assignments["X"]
		assert.False(t, hasECE, "out-of-scope panels stay untouched")
		assert.False(t, teams[1].Assigned(), "out-of-scope teams stay unassigned")
	})

	t.Run("assignment is transactional per team", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"})
		teams := testTeams("CSE", map[string]string{"T01": "E101"}, "T01")

		_, err := assigner.AssignTeams(ctx, panels, teams, nil, AssignOptions{})
		require.NoError(t, err)
		assert.False(t, teams[0].Assigned(), "failed placement must leave no partial state")
		assert.Empty(t, panels[0].TeamIDs)
	})
}

func TestAssigner_AssignTeams_Validation(t *testing.T) {
	assigner := NewAssigner(NewConflictResolver())
	ctx := context.Background()

	t.Run("buffer at or above panel count fails the whole run", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"}, []string{"E103", "E104"})
		_, err := assigner.AssignTeams(ctx, panels, nil, nil, AssignOptions{Buffer: 2})
		assert.ErrorIs(t, err, apperrors.ErrNoCandidatePanels)
	})

	t.Run("no panels in scope fails the whole run", func(t *testing.T) {
		_, err := assigner.AssignTeams(ctx, nil, nil, nil, AssignOptions{})
		assert.ErrorIs(t, err, apperrors.ErrNoCandidatePanels)
	})

	t.Run("negative buffer is a validation error", func(t *testing.T) {
		panels := testPanels("CSE", []string{"E101", "E102"})
		_, err := assigner.AssignTeams(ctx, panels, nil, nil, AssignOptions{Buffer: -1})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
