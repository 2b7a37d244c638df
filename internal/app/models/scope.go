package models

import "strings"

// ScopeContext carries the school/department scope an allocation call
// operates under. It replaces ambient session state: callers construct it
// explicitly and thread it through builder and assigner calls.
type ScopeContext struct {
	School         string `json:"school" yaml:"school"`
	Department     string `json:"department" yaml:"department"`
	AllDepartments bool   `json:"allDepartments" yaml:"allDepartments"`
}

// Key returns the scope's lock/index key. An all-departments scope keys on
// the school alone.
func (s ScopeContext) Key() string {
	if s.AllDepartments {
		return ScopeKey(s.School, "*")
	}
	return ScopeKey(s.School, s.Department)
}

// ScopeKey builds the canonical index key for a (school, department) pair.
func ScopeKey(school, department string) string {
	return strings.TrimSpace(school) + "::" + strings.TrimSpace(department)
}
