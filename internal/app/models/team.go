package models

// Team is a student project group supervised by a guide faculty member.
// PanelID is empty while the team is unassigned; assignment binds it to
// exactly one panel at a time.
type Team struct {
	ID             string      `json:"id" yaml:"id" validate:"required"`
	Name           string      `json:"name" yaml:"name"`
	School         FlexStrings `json:"school" yaml:"school"`
	Department     FlexStrings `json:"department" yaml:"department"`
	Specialization string      `json:"specialization" yaml:"specialization"`
	Type           string      `json:"type" yaml:"type"`
	GuideFacultyID string      `json:"guideFacultyId" yaml:"guideFacultyId"`
	Students       []Student   `json:"students" yaml:"students" validate:"dive"`
	PanelID        string      `json:"panelId,omitempty" yaml:"panelId,omitempty"`
}

// SchoolValues returns the raw school values in listed order.
func (t Team) SchoolValues() []string { return t.School }

// DepartmentValues returns the raw department values in listed order.
func (t Team) DepartmentValues() []string { return t.Department }

// Assigned reports whether the team is currently bound to a panel.
func (t Team) Assigned() bool { return t.PanelID != "" }
