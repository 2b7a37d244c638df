package models

// Panel is an evaluation committee of faculty members assessing project
// teams. Membership is fixed at creation; teams come and go via assignment.
// A faculty member belongs to at most one panel at a time.
type Panel struct {
	PanelID    string    `json:"panelId" yaml:"panelId"`
	Members    []Faculty `json:"members" yaml:"members"`
	School     string    `json:"school" yaml:"school"`
	Department string    `json:"department" yaml:"department"`
	Venue      string    `json:"venue,omitempty" yaml:"venue,omitempty"`
	TeamIDs    []string  `json:"teamIds" yaml:"teamIds"`
}

// FacultyIDs returns the employee IDs of the panel members in seating order.
func (p Panel) FacultyIDs() []string {
	ids := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		ids = append(ids, m.EmployeeID)
	}
	return ids
}

// HasFaculty reports whether the given employee ID sits on this panel.
func (p Panel) HasFaculty(employeeID string) bool {
	for _, m := range p.Members {
		if m.EmployeeID == employeeID {
			return true
		}
	}
	return false
}
