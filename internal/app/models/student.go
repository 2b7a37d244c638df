package models

// Student is a member of a project team. RegNo is unique within the team.
type Student struct {
	Name    string            `json:"name" yaml:"name" validate:"required"`
	RegNo   string            `json:"regNo" yaml:"regNo" validate:"required,regno"`
	EmailID string            `json:"emailId" yaml:"emailId"`
	Reviews map[string]Review `json:"reviews" yaml:"reviews"`
}

// Attendance records whether the student was present for a review.
type Attendance struct {
	Value bool `json:"value" yaml:"value"`
}

// Review holds one evaluation round for a student. Once Locked is set the
// review is immutable.
type Review struct {
	Locked     bool            `json:"locked" yaml:"locked"`
	Attendance Attendance      `json:"attendance" yaml:"attendance"`
	Comments   string          `json:"comments" yaml:"comments"`
	Marks      map[string]Mark `json:"marks" yaml:"marks"`
}

// HasMeaningfulData reports whether the review carries any evaluation data:
// it is locked, attendance was explicitly taken, a comment was written, or
// any mark is a non-zero score or the PAT sentinel.
func (r Review) HasMeaningfulData() bool {
	if r.Locked || r.Attendance.Value || r.Comments != "" {
		return true
	}
	for _, m := range r.Marks {
		if m.IsMeaningful() {
			return true
		}
	}
	return false
}
