package models

// Faculty represents a faculty member on the evaluation roster.
// Records are immutable once loaded for a session; the roster collector
// owns their lifecycle.
type Faculty struct {
	EmployeeID string      `json:"employeeId" yaml:"employeeId" validate:"required,empid"`
	Name       string      `json:"name" yaml:"name" validate:"required"`
	School     FlexStrings `json:"school" yaml:"school"`
	Department FlexStrings `json:"department" yaml:"department"`
}

// SchoolValues returns the raw school values in listed order.
func (f Faculty) SchoolValues() []string { return f.School }

// DepartmentValues returns the raw department values in listed order.
func (f Faculty) DepartmentValues() []string { return f.Department }

// HomeDepartment returns the first listed department, the bucket a
// multi-department faculty member is counted under during panel building.
// Returns an empty string when no department is listed.
func (f Faculty) HomeDepartment() string {
	for _, d := range f.Department.Normalized() {
		return d
	}
	return ""
}
