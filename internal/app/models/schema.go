package models

// FacultyType tags who administers a review round.
type FacultyType string

const (
	FacultyTypeGuide FacultyType = "guide"
	FacultyTypePanel FacultyType = "panel"
)

// ReviewSpec is one required review round in a marking schema.
type ReviewSpec struct {
	Name        string      `json:"name" yaml:"name" validate:"required"`
	FacultyType FacultyType `json:"facultyType" yaml:"facultyType" validate:"required,oneof=guide panel"`
}

// MarkingSchema is the ordered rubric of required reviews for one
// school/department scope. Only panel-tagged reviews participate in panel
// mark-completion.
type MarkingSchema struct {
	School     string       `json:"school" yaml:"school" validate:"required"`
	Department string       `json:"department" yaml:"department" validate:"required"`
	Reviews    []ReviewSpec `json:"reviews" yaml:"reviews" validate:"dive"`
}

// PanelReviews returns the panel-administered reviews in rubric order.
func (s MarkingSchema) PanelReviews() []ReviewSpec {
	out := make([]ReviewSpec, 0, len(s.Reviews))
	for _, r := range s.Reviews {
		if r.FacultyType == FacultyTypePanel {
			out = append(out, r)
		}
	}
	return out
}

// SchemaIndex maps a (school, department) scope key to its marking schema.
type SchemaIndex map[string]MarkingSchema

// Add indexes a schema under its scope key.
func (idx SchemaIndex) Add(schema MarkingSchema) {
	idx[ScopeKey(schema.School, schema.Department)] = schema
}

// Lookup finds the schema for a (school, department) pair.
func (idx SchemaIndex) Lookup(school, department string) (MarkingSchema, bool) {
	s, ok := idx[ScopeKey(school, department)]
	return s, ok
}
