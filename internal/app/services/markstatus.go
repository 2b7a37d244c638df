package services

import (
	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/pkg/logger"
)

// TeamStatus is a team's mark-completion state.
type TeamStatus string

const (
	TeamStatusFull     TeamStatus = "full"
	TeamStatusPartial  TeamStatus = "partial"
	TeamStatusNone     TeamStatus = "none"
	TeamStatusNoSchema TeamStatus = "no-schema"
)

// PanelStatus is a panel's mark-completion state across its teams.
type PanelStatus string

const (
	PanelStatusNoProjects PanelStatus = "no-projects"
	PanelStatusAll        PanelStatus = "all"
	PanelStatusPartial    PanelStatus = "partial"
	PanelStatusNone       PanelStatus = "none"
)

// TeamMarkStatus is the completion record for one team.
type TeamMarkStatus struct {
	TeamID               string     `json:"teamId"`
	TeamName             string     `json:"teamName,omitempty"`
	Status               TeamStatus `json:"status"`
	StudentsFullyMarked  int        `json:"studentsFullyMarked"`
	StudentsWithAnyMarks int        `json:"studentsWithAnyMarks"`
	TotalStudents        int        `json:"totalStudents"`
}

// PanelMarkStatus is the completion record for one panel.
type PanelMarkStatus struct {
	PanelID             string           `json:"panelId"`
	Status              PanelStatus      `json:"status"`
	FullyMarkedProjects int              `json:"fullyMarkedProjects"`
	PartialProjects     int              `json:"partialProjects"`
	UnmarkedProjects    int              `json:"unmarkedProjects"`
	TotalTeams          int              `json:"totalTeams"`
	Teams               []TeamMarkStatus `json:"teams"`
}

// DashboardStatus aggregates completion over all panels and teams.
type DashboardStatus struct {
	Panels              []PanelMarkStatus         `json:"panels"`
	Teams               map[string]TeamMarkStatus `json:"teams"`
	FullyMarkedProjects int                       `json:"fullyMarkedProjects"`
	PartialProjects     int                       `json:"partialProjects"`
	UnmarkedProjects    int                       `json:"unmarkedProjects"`
	TotalTeams          int                       `json:"totalTeams"`
}

// MarkStatusService derives completion status from review data. It is a pure
// read path: nothing here mutates reviews, teams, or panels, and results are
// recomputed from the snapshot on every call rather than cached.
type MarkStatusService struct{}

// NewMarkStatusService creates a new mark status service instance
func NewMarkStatusService() *MarkStatusService {
	return &MarkStatusService{}
}

// ComputeMarkStatus computes per-team, per-panel, and aggregate completion
// records over the given snapshot. Missing schemas downgrade the affected
// teams to no-schema instead of failing the aggregation.
func (s *MarkStatusService) ComputeMarkStatus(panels []*models.Panel, teams []*models.Team, schemas models.SchemaIndex) DashboardStatus {
	dashboard := DashboardStatus{
		Teams: make(map[string]TeamMarkStatus, len(teams)),
	}

	for _, t := range teams {
		dashboard.Teams[t.ID] = s.teamStatus(t, schemas)
	}

	for _, panel := range panels {
		ps := PanelMarkStatus{
			PanelID:    panel.PanelID,
			TotalTeams: len(panel.TeamIDs),
		}

		teamsWithAnyMarks := 0
		for _, teamID := range panel.TeamIDs {
			ts, ok := dashboard.Teams[teamID]
			if !ok {
				// Stale team reference on the panel; count it as unmarked.
				ts = TeamMarkStatus{TeamID: teamID, Status: TeamStatusNone}
				logger.Warn().Str("panel", panel.PanelID).Str("team", teamID).Msg("Panel references unknown team")
			}
			ps.Teams = append(ps.Teams, ts)
			switch ts.Status {
			case TeamStatusFull:
				ps.FullyMarkedProjects++
				teamsWithAnyMarks++
			case TeamStatusPartial:
				teamsWithAnyMarks++
			}
		}

		ps.PartialProjects = floorAtZero(teamsWithAnyMarks - ps.FullyMarkedProjects)
		ps.UnmarkedProjects = floorAtZero(ps.TotalTeams - teamsWithAnyMarks)

		switch {
		case ps.TotalTeams == 0:
			ps.Status = PanelStatusNoProjects
		case ps.FullyMarkedProjects == ps.TotalTeams:
			ps.Status = PanelStatusAll
		case teamsWithAnyMarks == 0:
			ps.Status = PanelStatusNone
		default:
			ps.Status = PanelStatusPartial
		}

		dashboard.Panels = append(dashboard.Panels, ps)
		dashboard.FullyMarkedProjects += ps.FullyMarkedProjects
		dashboard.PartialProjects += ps.PartialProjects
		dashboard.UnmarkedProjects += ps.UnmarkedProjects
		dashboard.TotalTeams += ps.TotalTeams
	}

	return dashboard
}

// teamStatus computes one team's completion against the panel-tagged reviews
// of its scope schema.
func (s *MarkStatusService) teamStatus(team *models.Team, schemas models.SchemaIndex) TeamMarkStatus {
	status := TeamMarkStatus{
		TeamID:        team.ID,
		TeamName:      team.Name,
		TotalStudents: len(team.Students),
	}

	schema, ok := s.lookupSchema(team, schemas)
	if !ok {
		status.Status = TeamStatusNoSchema
		return status
	}
	panelReviews := schema.PanelReviews()
	if len(panelReviews) == 0 {
		status.Status = TeamStatusNoSchema
		return status
	}

	for _, student := range team.Students {
		marked := 0
		for _, spec := range panelReviews {
			if review, ok := student.Reviews[spec.Name]; ok && review.HasMeaningfulData() {
				marked++
			}
		}
		if marked == len(panelReviews) {
			status.StudentsFullyMarked++
		}
		if marked > 0 {
			status.StudentsWithAnyMarks++
		}
	}

	switch {
	case status.TotalStudents > 0 && status.StudentsFullyMarked == status.TotalStudents:
		status.Status = TeamStatusFull
	case status.StudentsWithAnyMarks > 0:
		status.Status = TeamStatusPartial
	default:
		status.Status = TeamStatusNone
	}
	return status
}

// lookupSchema resolves a team's marking schema by trying its normalized
// (school, department) pairs in listed order; the first hit wins.
func (s *MarkStatusService) lookupSchema(team *models.Team, schemas models.SchemaIndex) (models.MarkingSchema, bool) {
	schools := team.School.Normalized()
	departments := team.Department.Normalized()
	for _, school := range schools {
		for _, dept := range departments {
			if schema, ok := schemas.Lookup(school, dept); ok {
				return schema, true
			}
		}
	}
	return models.MarkingSchema{}, false
}

func floorAtZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
