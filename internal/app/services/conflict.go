package services

import (
	"fmt"

	"github.com/acadops/panelboard/internal/app/models"
)

// GuideIndex maps a team ID to the employee ID of its supervising guide.
// It is maintained by the project-intake collaborator; the resolver only
// reads it.
type GuideIndex map[string]string

// Decision is the outcome of a single assignability check.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ConflictResolver decides whether a team may be assigned to a panel. The
// single rule: a team's own guide may never sit on the panel evaluating it.
type ConflictResolver struct{}

// NewConflictResolver creates a new conflict resolver instance
func NewConflictResolver() *ConflictResolver {
	return &ConflictResolver{}
}

// CanAssign checks whether the team may be placed before a panel with the
// given member set. The guide is looked up in the index first, falling back
// to the team record. Callers must evaluate this fresh at assignment time;
// panel membership can change between evaluations, so the result is never
// cached.
func (r *ConflictResolver) CanAssign(team *models.Team, panelFacultyIDs []string, guides GuideIndex) Decision {
	if team == nil {
		return Decision{Allowed: false, Reason: "team is nil"}
	}

	guideID := guides[team.ID]
	if guideID == "" {
		guideID = team.GuideFacultyID
	}
	if guideID == "" {
		// No guide on record: nothing to conflict with.
		return Decision{Allowed: true}
	}

	for _, id := range panelFacultyIDs {
		if id == guideID {
			return Decision{
				Allowed: false,
				Reason:  fmt.Sprintf("guide %s of team %s is a member of this panel", guideID, team.ID),
			}
		}
	}
	return Decision{Allowed: true}
}
