package services

import (
	"sort"
	"strings"
)

// ScopedRecord is any record carrying school/department fields that may be
// scalar or array valued upstream. Faculty and Team both satisfy it.
type ScopedRecord interface {
	SchoolValues() []string
	DepartmentValues() []string
}

// NormalizedFields is the canonical set form of a record's school and
// department fields. Values are trimmed, deduplicated, and sorted so that
// two records with the same membership compare equal regardless of how the
// upstream represented them.
type NormalizedFields struct {
	Schools     []string
	Departments []string
}

// NormalizeFields canonicalizes a record's school/department fields into
// deterministic sets. Pure function, no side effects; every filter by school
// or department in the allocation path goes through this.
func NormalizeFields(rec ScopedRecord) NormalizedFields {
	return NormalizedFields{
		Schools:     normalizeValues(rec.SchoolValues()),
		Departments: normalizeValues(rec.DepartmentValues()),
	}
}

// HasSchool reports set membership for a school value.
func (f NormalizedFields) HasSchool(school string) bool {
	return contains(f.Schools, school)
}

// HasDepartment reports set membership for a department value.
func (f NormalizedFields) HasDepartment(department string) bool {
	return contains(f.Departments, department)
}

// InScope reports whether the record matches a school/department filter.
// Empty filter values match everything.
func (f NormalizedFields) InScope(school, department string) bool {
	if school != "" && !f.HasSchool(school) {
		return false
	}
	if department != "" && !f.HasDepartment(department) {
		return false
	}
	return true
}

func normalizeValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func contains(values []string, v string) bool {
	for _, cur := range values {
		if cur == v {
			return true
		}
	}
	return false
}
