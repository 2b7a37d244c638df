package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/pkg/apperrors"
	"github.com/acadops/panelboard/internal/pkg/logger"
)

// AssignOptions parameterizes one auto-assignment run.
type AssignOptions struct {
	// Buffer is the number of panels, taken from the end of the listing
	// order, that receive no new assignments this run. Must be strictly less
	// than the number of panels in scope.
	Buffer int
	// Department limits the run to panels and teams of one department when
	// non-empty.
	Department string
	// MaxTeamsPerPanel caps a panel's team count when positive. Zero
	// disables the capacity check.
	MaxTeamsPerPanel int
}

// SkipReason records why one team could not be placed during a run.
type SkipReason struct {
	TeamID string `json:"teamId"`
	Reason string `json:"reason"`
}

// AssignResult is the outcome of an auto-assignment run. Assignments holds
// the full panel-to-team mapping over the panels in scope after the run,
// buffer panels included with whatever they already held.
type AssignResult struct {
	Assignments map[string][]string `json:"assignments"`
	Unassigned  []string            `json:"unassigned,omitempty"`
	Skips       []SkipReason        `json:"skips,omitempty"`
}

// Assigner distributes unassigned teams across existing panels.
type Assigner struct {
	resolver *ConflictResolver
}

// NewAssigner creates a new assigner instance
func NewAssigner(resolver *ConflictResolver) *Assigner {
	return &Assigner{resolver: resolver}
}

// AssignTeams places every unassigned team in scope onto the first candidate
// panel that admits it, trying panels in ascending current-load order.
// Placement is transactional per team: the team pointer and the panel team
// set change together or not at all. Teams that no panel admits are reported
// in the result, not escalated. The run fails as a whole only when zero
// candidate panels exist.
func (a *Assigner) AssignTeams(ctx context.Context, panels []*models.Panel, teams []*models.Team, guides GuideIndex, opts AssignOptions) (AssignResult, error) {
	result := AssignResult{Assignments: make(map[string][]string)}

	if opts.Buffer < 0 {
		return result, apperrors.NewValidationError(fmt.Sprintf("buffer cannot be negative, got %d", opts.Buffer))
	}

	scoped := a.scopedPanels(panels, opts.Department)
	if len(scoped) == 0 || opts.Buffer >= len(scoped) {
		return result, fmt.Errorf("%w: %d panels in scope, buffer %d", apperrors.ErrNoCandidatePanels, len(scoped), opts.Buffer)
	}

	// Buffer panels are excluded from candidacy for the whole run; teams
	// they already hold are preserved.
	candidates := scoped[:len(scoped)-opts.Buffer]

	for _, team := range teams {
		if team.Assigned() {
			continue
		}
		if opts.Department != "" && !NormalizeFields(*team).HasDepartment(opts.Department) {
			continue
		}

		panel, reason := a.place(team, candidates, guides, opts.MaxTeamsPerPanel)
		if panel == nil {
			result.Unassigned = append(result.Unassigned, team.ID)
			result.Skips = append(result.Skips, SkipReason{TeamID: team.ID, Reason: reason})
			logger.Debug().Str("team", team.ID).Str("reason", reason).Msg("Team left unassigned")
			continue
		}

		team.PanelID = panel.PanelID
		panel.TeamIDs = append(panel.TeamIDs, team.ID)
	}

	for _, p := range scoped {
		result.Assignments[p.PanelID] = append([]string(nil), p.TeamIDs...)
	}

	logger.Info().
		Int("panels", len(candidates)).
		Int("buffer", opts.Buffer).
		Int("unassigned", len(result.Unassigned)).
		Msg("Auto-assignment run complete")
	return result, nil
}

// place tries candidate panels in ascending current team count, original
// listing order breaking ties, and returns the first that admits the team.
// The conflict check runs fresh for every attempt.
func (a *Assigner) place(team *models.Team, candidates []*models.Panel, guides GuideIndex, maxTeams int) (*models.Panel, string) {
	ordered := make([]*models.Panel, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].TeamIDs) < len(ordered[j].TeamIDs)
	})

	var reasons []string
	for _, panel := range ordered {
		if maxTeams > 0 && len(panel.TeamIDs) >= maxTeams {
			reasons = append(reasons, fmt.Sprintf("panel %s: %s", panel.PanelID, apperrors.ErrPanelFull))
			continue
		}
		decision := a.resolver.CanAssign(team, panel.FacultyIDs(), guides)
		if !decision.Allowed {
			reasons = append(reasons, fmt.Sprintf("panel %s: %s", panel.PanelID, decision.Reason))
			continue
		}
		return panel, ""
	}
	return nil, strings.Join(reasons, "; ")
}

func (a *Assigner) scopedPanels(panels []*models.Panel, department string) []*models.Panel {
	if department == "" {
		return panels
	}
	scoped := make([]*models.Panel, 0, len(panels))
	for _, p := range panels {
		if p.Department == department {
			scoped = append(scoped, p)
		}
	}
	return scoped
}
