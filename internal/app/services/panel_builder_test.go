package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/pkg/apperrors"
)

func testBuilder() *PanelBuilder {
	b := NewPanelBuilder()
	seq := 0
	b.newID = func() string {
		seq++
		return fmt.Sprintf("P%02d", seq)
	}
	return b
}

func facultyPool(dept string, ids ...string) []models.Faculty {
	out := make([]models.Faculty, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Faculty{
			EmployeeID: id,
			Name:       "Faculty " + id,
			School:     models.FlexStrings{"SCOPE"},
			Department: models.FlexStrings{dept},
		})
	}
	return out
}

func TestPanelBuilder_SingleDepartment(t *testing.T) {
	scope := models.ScopeContext{School: "SCOPE", Department: "CSE"}

	t.Run("seven faculty at size three yield two panels", func(t *testing.T) {
		// Deliberately shuffled input order; slicing must follow employee ID.
		pool := facultyPool("CSE", "E105", "E101", "E107", "E103", "E106", "E102", "E104")

		panels, report, err := testBuilder().BuildPanels(context.Background(), pool, BuildOptions{
			PanelSize: 3,
			Scope:     scope,
		})
		require.NoError(t, err)
		require.Len(t, panels, 2)

		assert.Equal(t, []string{"E101", "E102", "E103"}, panels[0].FacultyIDs())
		assert.Equal(t, []string{"E104", "E105", "E106"}, panels[1].FacultyIDs())
		assert.Equal(t, []string{"E107"}, report.LeftoverFaculty)

		for _, p := range panels {
			assert.NotEmpty(t, p.PanelID)
			assert.Equal(t, "SCOPE", p.School)
			assert.Equal(t, "CSE", p.Department)
			assert.Empty(t, p.TeamIDs)
		}
	})

	t.Run("requested count within bounds is honored", func(t *testing.T) {
		pool := facultyPool("CSE", "E101", "E102", "E103", "E104", "E105", "E106")
		panels, _, err := testBuilder().BuildPanels(context.Background(), pool, BuildOptions{
			PanelSize:  3,
			Scope:      scope,
			PanelCount: 1,
		})
		require.NoError(t, err)
		assert.Len(t, panels, 1)
		assert.Equal(t, []string{"E101", "E102", "E103"}, panels[0].FacultyIDs())
	})

	t.Run("requested count beyond maximum is rejected", func(t *testing.T) {
		pool := facultyPool("CSE", "E101", "E102", "E103", "E104", "E105", "E106", "E107")
		_, _, err := testBuilder().BuildPanels(context.Background(), pool, BuildOptions{
			PanelSize:  3,
			Scope:      scope,
			PanelCount: 3,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("panel size below two is rejected", func(t *testing.T) {
		_, _, err := testBuilder().BuildPanels(context.Background(), facultyPool("CSE", "E101"), BuildOptions{
			PanelSize: 1,
			Scope:     scope,
		})
		assert.ErrorIs(t, err, apperrors.ErrPanelSizeTooSmall)
	})

	t.Run("missing department without all-departments mode is rejected", func(t *testing.T) {
		_, _, err := testBuilder().BuildPanels(context.Background(), facultyPool("CSE", "E101", "E102"), BuildOptions{
			PanelSize: 2,
			Scope:     models.ScopeContext{School: "SCOPE"},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestPanelBuilder_AllDepartments(t *testing.T) {
	scope := models.ScopeContext{School: "SCOPE", AllDepartments: true}

	t.Run("maximizes panels per department and reports small groups", func(t *testing.T) {
		pool := append(facultyPool("CSE", "E101", "E102", "E103", "E104", "E105", "E106", "E107"),
			facultyPool("ECE", "E201", "E202")...)

		panels, report, err := testBuilder().BuildPanels(context.Background(), pool, BuildOptions{
			PanelSize: 3,
			Scope:     scope,
		})
		require.NoError(t, err)
		require.Len(t, panels, 2)
		for _, p := range panels {
			assert.Equal(t, "CSE", p.Department)
		}

		require.Len(t, report.SkippedDepartments, 1)
		assert.Equal(t, "ECE", report.SkippedDepartments[0].Department)
		assert.Equal(t, 2, report.SkippedDepartments[0].FacultySize)
		// ECE members plus the CSE remainder are left for a future panel.
		assert.ElementsMatch(t, []string{"E107", "E201", "E202"}, report.LeftoverFaculty)
	})

	t.Run("multi-department faculty counts only toward its first-listed department", func(t *testing.T) {
		pool := facultyPool("CSE", "E101", "E102", "E103")
		crossListed := models.Faculty{
			EmployeeID: "E104",
			School:     models.FlexStrings{"SCOPE"},
			Department: models.FlexStrings{"ECE", "CSE"},
		}
		pool = append(pool, crossListed)
		pool = append(pool, facultyPool("ECE", "E201")...)

		panels, report, err := testBuilder().BuildPanels(context.Background(), pool, BuildOptions{
			PanelSize: 2,
			Scope:     scope,
		})
		require.NoError(t, err)

		memberCount := make(map[string]int)
		for _, p := range panels {
			for _, id := range p.FacultyIDs() {
				memberCount[id]++
			}
		}
		assert.LessOrEqual(t, memberCount["E104"], 1, "cross-listed faculty must not join two panels")

		// E104 buckets under ECE, pairing with E201; CSE keeps one panel of
		// its own plus a leftover.
		assert.Len(t, panels, 2)
		assert.Len(t, report.LeftoverFaculty, 1)
	})

	t.Run("empty pool fails before building", func(t *testing.T) {
		_, _, err := testBuilder().BuildPanels(context.Background(), nil, BuildOptions{
			PanelSize: 3,
			Scope:     scope,
		})
		assert.ErrorIs(t, err, apperrors.ErrEmptyFacultyPool)
	})

	t.Run("every department too small is one aggregate failure", func(t *testing.T) {
		pool := append(facultyPool("CSE", "E101", "E102"), facultyPool("ECE", "E201")...)
		_, report, err := testBuilder().BuildPanels(context.Background(), pool, BuildOptions{
			PanelSize: 3,
			Scope:     scope,
		})
		require.ErrorIs(t, err, apperrors.ErrInsufficientFaculty)
		assert.Len(t, report.SkippedDepartments, 2)
	})
}

// Faculty membership must stay pairwise disjoint across every panel a single
// run produces, whatever the pool looks like.
func TestPanelBuilder_MembershipDisjoint(t *testing.T) {
	pool := append(facultyPool("CSE", "E101", "E102", "E103", "E104", "E105", "E106"),
		facultyPool("ECE", "E201", "E202", "E203", "E204")...)
	pool = append(pool, models.Faculty{
		EmployeeID: "E301",
		School:     models.FlexStrings{"SCOPE"},
		Department: models.FlexStrings{"CSE", "ECE"},
	})

	panels, _, err := testBuilder().BuildPanels(context.Background(), pool, BuildOptions{
		PanelSize: 2,
		Scope:     models.ScopeContext{School: "SCOPE", AllDepartments: true},
	})
	require.NoError(t, err)

	seen := make(map[string]string)
	for _, p := range panels {
		for _, id := range p.FacultyIDs() {
			prev, dup := seen[id]
			require.False(t, dup, "faculty %s appears in panels %s and %s", id, prev, p.PanelID)
			seen[id] = p.PanelID
		}
	}
}
