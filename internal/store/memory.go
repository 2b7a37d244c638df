// Package store holds the session's allocation state in memory: the faculty
// roster, project teams, and panels, in the shape the services consume.
// It enforces the structural invariants on commit (faculty exclusivity, one
// panel per team, no guide on the evaluating panel) and provides the
// per-scope locking discipline the allocation pipeline requires.
package store

import (
	"fmt"
	"sync"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/app/services"
	"github.com/acadops/panelboard/internal/pkg/apperrors"
	"github.com/acadops/panelboard/internal/pkg/logger"
)

// Store is the in-memory allocation state for one session.
type Store struct {
	mu sync.RWMutex

	faculty    map[string]*models.Faculty
	facultyIDs []string

	teams   map[string]*models.Team
	teamIDs []string

	panels     map[string]*models.Panel
	panelOrder []string

	schemas models.SchemaIndex

	scopeMu   sync.Mutex
	scopeLock map[string]*sync.Mutex

	resolver *services.ConflictResolver
}

// New creates an empty store.
func New() *Store {
	return &Store{
		faculty:   make(map[string]*models.Faculty),
		teams:     make(map[string]*models.Team),
		panels:    make(map[string]*models.Panel),
		schemas:   make(models.SchemaIndex),
		scopeLock: make(map[string]*sync.Mutex),
		resolver:  services.NewConflictResolver(),
	}
}

// WithScope runs fn while holding the mutex for the given allocation scope.
// Structural mutation sequences (fetch state, run builder/assigner, commit)
// must go through this so that a mark-status read never observes a partially
// applied mutation within a scope.
func (s *Store) WithScope(scope models.ScopeContext, fn func() error) error {
	s.scopeMu.Lock()
	lock, ok := s.scopeLock[scope.Key()]
	if !ok {
		lock = &sync.Mutex{}
		s.scopeLock[scope.Key()] = lock
	}
	s.scopeMu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// AddFaculty loads a roster record. Employee IDs must be unique.
func (s *Store) AddFaculty(f models.Faculty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.EmployeeID == "" {
		return apperrors.NewValidationError("faculty employee ID is required")
	}
	if _, exists := s.faculty[f.EmployeeID]; exists {
		return fmt.Errorf("%w: faculty %s", apperrors.ErrDuplicateID, f.EmployeeID)
	}
	cp := f
	s.faculty[f.EmployeeID] = &cp
	s.facultyIDs = append(s.facultyIDs, f.EmployeeID)
	return nil
}

// AddTeam loads a team record. Team IDs must be unique.
func (s *Store) AddTeam(t models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		return apperrors.NewValidationError("team ID is required")
	}
	if _, exists := s.teams[t.ID]; exists {
		return fmt.Errorf("%w: team %s", apperrors.ErrDuplicateID, t.ID)
	}
	cp := t
	s.teams[t.ID] = &cp
	s.teamIDs = append(s.teamIDs, t.ID)
	return nil
}

// AddSchema indexes a marking schema under its scope.
func (s *Store) AddSchema(schema models.MarkingSchema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas.Add(schema)
}

// CommitPanels installs panel drafts produced by the builder. Every member
// must be free of existing panel membership; on any violation nothing is
// committed.
func (s *Store) CommitPanels(drafts []*models.Panel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inPanel := s.facultyInPanelsLocked()
	seen := make(map[string]struct{})
	for _, draft := range drafts {
		if _, exists := s.panels[draft.PanelID]; exists {
			return fmt.Errorf("%w: panel %s", apperrors.ErrDuplicateID, draft.PanelID)
		}
		for _, id := range draft.FacultyIDs() {
			if _, taken := inPanel[id]; taken {
				return fmt.Errorf("%w: %s", apperrors.ErrFacultyAlreadyInPanel, id)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %s appears in two drafts", apperrors.ErrFacultyAlreadyInPanel, id)
			}
			seen[id] = struct{}{}
		}
	}

	for _, draft := range drafts {
		s.panels[draft.PanelID] = draft
		s.panelOrder = append(s.panelOrder, draft.PanelID)
	}
	logger.Info().Int("panels", len(drafts)).Msg("Committed panel drafts")
	return nil
}

// RestorePanels installs panels loaded from a saved allocation and re-links
// the assignment pointers of the teams they list. Validation matches
// CommitPanels; unknown team references are dropped with a warning.
func (s *Store) RestorePanels(panels []models.Panel) error {
	drafts := make([]*models.Panel, 0, len(panels))
	for _, p := range panels {
		cp := p
		drafts = append(drafts, &cp)
	}
	if err := s.CommitPanels(drafts); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, panel := range drafts {
		kept := panel.TeamIDs[:0]
		for _, teamID := range panel.TeamIDs {
			team, ok := s.teams[teamID]
			if !ok {
				logger.Warn().Str("panel", panel.PanelID).Str("team", teamID).Msg("Dropping unknown team reference from restored panel")
				continue
			}
			team.PanelID = panel.PanelID
			kept = append(kept, teamID)
		}
		panel.TeamIDs = kept
	}
	return nil
}

// AssignTeam binds one team to one panel after a fresh conflict check.
func (s *Store) AssignTeam(teamID, panelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[teamID]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrTeamNotFound, teamID)
	}
	panel, ok := s.panels[panelID]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrPanelNotFound, panelID)
	}
	if team.Assigned() {
		return fmt.Errorf("%w: team %s is on panel %s", apperrors.ErrTeamAlreadyAssigned, teamID, team.PanelID)
	}

	decision := s.resolver.CanAssign(team, panel.FacultyIDs(), s.guideIndexLocked())
	if !decision.Allowed {
		return apperrors.NewConflictError(decision.Reason)
	}

	team.PanelID = panel.PanelID
	panel.TeamIDs = append(panel.TeamIDs, team.ID)
	return nil
}

// UnassignTeam releases a team back to the unassigned pool.
func (s *Store) UnassignTeam(teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[teamID]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrTeamNotFound, teamID)
	}
	if !team.Assigned() {
		return nil
	}
	if panel, ok := s.panels[team.PanelID]; ok {
		panel.TeamIDs = removeString(panel.TeamIDs, teamID)
	}
	team.PanelID = ""
	return nil
}

// RemovePanel destroys a panel, releasing its members back to the eligible
// pool and returning its teams to the unassigned state. Teams are never
// deleted by panel destruction.
func (s *Store) RemovePanel(panelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	panel, ok := s.panels[panelID]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrPanelNotFound, panelID)
	}

	for _, teamID := range panel.TeamIDs {
		if team, ok := s.teams[teamID]; ok {
			team.PanelID = ""
		}
	}
	delete(s.panels, panelID)
	s.panelOrder = removeString(s.panelOrder, panelID)
	logger.Info().Str("panel", panelID).Int("releasedTeams", len(panel.TeamIDs)).Msg("Removed panel")
	return nil
}

// EligibleFaculty returns roster members not currently on any panel, in
// load order.
func (s *Store) EligibleFaculty() []models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inPanel := s.facultyInPanelsLocked()
	out := make([]models.Faculty, 0, len(s.facultyIDs))
	for _, id := range s.facultyIDs {
		if _, taken := inPanel[id]; taken {
			continue
		}
		out = append(out, *s.faculty[id])
	}
	return out
}

// Panels returns the live panels in listing order. Callers mutating the
// result must hold the scope lock via WithScope.
func (s *Store) Panels() []*models.Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Panel, 0, len(s.panelOrder))
	for _, id := range s.panelOrder {
		out = append(out, s.panels[id])
	}
	return out
}

// Teams returns the live teams in load order. Callers mutating the result
// must hold the scope lock via WithScope.
func (s *Store) Teams() []*models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Team, 0, len(s.teamIDs))
	for _, id := range s.teamIDs {
		out = append(out, s.teams[id])
	}
	return out
}

// Team looks up a team by ID.
func (s *Store) Team(teamID string) (*models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrTeamNotFound, teamID)
	}
	return team, nil
}

// Panel looks up a panel by ID.
func (s *Store) Panel(panelID string) (*models.Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	panel, ok := s.panels[panelID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPanelNotFound, panelID)
	}
	return panel, nil
}

// Schemas returns the schema index.
func (s *Store) Schemas() models.SchemaIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schemas
}

// GuideIndex builds the team-to-guide relationship index from the loaded
// team records.
func (s *Store) GuideIndex() services.GuideIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guideIndexLocked()
}

func (s *Store) guideIndexLocked() services.GuideIndex {
	idx := make(services.GuideIndex, len(s.teams))
	for id, team := range s.teams {
		if team.GuideFacultyID != "" {
			idx[id] = team.GuideFacultyID
		}
	}
	return idx
}

func (s *Store) facultyInPanelsLocked() map[string]string {
	inPanel := make(map[string]string)
	for _, id := range s.panelOrder {
		for _, fid := range s.panels[id].FacultyIDs() {
			inPanel[fid] = id
		}
	}
	return inPanel
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, cur := range list {
		if cur != v {
			out = append(out, cur)
		}
	}
	return out
}
