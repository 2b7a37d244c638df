package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/pkg/apperrors"
	"github.com/acadops/panelboard/internal/pkg/logger"
)

// BuildOptions parameterizes one panel-building run.
type BuildOptions struct {
	// PanelSize is the fixed member count per panel, at least 2.
	PanelSize int
	// Scope selects one (school, department) pair, or all departments
	// present in the eligible pool when Scope.AllDepartments is set.
	Scope models.ScopeContext
	// PanelCount is the desired panel count in single-department mode.
	// Zero means "as many as possible". Ignored in all-departments mode.
	PanelCount int
}

// SkippedDepartment records a department left out of a run because its
// eligible group was smaller than the panel size.
type SkippedDepartment struct {
	Department  string `json:"department"`
	FacultySize int    `json:"facultySize"`
}

// BuildReport carries the non-fatal outcomes of a building run.
type BuildReport struct {
	SkippedDepartments []SkippedDepartment `json:"skippedDepartments,omitempty"`
	// LeftoverFaculty are employee IDs that were eligible but not consumed,
	// available for a future panel.
	LeftoverFaculty []string `json:"leftoverFaculty,omitempty"`
}

// PanelBuilder partitions an eligible faculty pool into panel drafts.
type PanelBuilder struct {
	newID func() string
}

// NewPanelBuilder creates a new panel builder instance
func NewPanelBuilder() *PanelBuilder {
	return &PanelBuilder{newID: uuid.NewString}
}

// BuildPanels partitions the eligible pool into panels of opts.PanelSize.
// Faculty are bucketed by their first-listed department, ordered by ascending
// employee ID, and sliced into consecutive groups. Departments below panel
// size are skipped and reported. Returns a validation error before producing
// anything when the inputs cannot yield a single panel.
func (b *PanelBuilder) BuildPanels(ctx context.Context, eligible []models.Faculty, opts BuildOptions) ([]*models.Panel, BuildReport, error) {
	report := BuildReport{}

	if opts.PanelSize < 2 {
		return nil, report, fmt.Errorf("%w: got %d", apperrors.ErrPanelSizeTooSmall, opts.PanelSize)
	}
	if opts.PanelCount < 0 {
		return nil, report, apperrors.NewValidationError(fmt.Sprintf("panel count cannot be negative, got %d", opts.PanelCount))
	}
	if !opts.Scope.AllDepartments && opts.Scope.Department == "" {
		return nil, report, apperrors.NewValidationError("a department is required unless all-departments mode is selected")
	}

	buckets, order := b.bucketByDepartment(eligible, opts.Scope)
	if len(buckets) == 0 {
		return nil, report, apperrors.ErrEmptyFacultyPool
	}

	var panels []*models.Panel
	for _, dept := range order {
		group := buckets[dept]
		maxPanels := len(group) / opts.PanelSize

		if !opts.Scope.AllDepartments && opts.PanelCount > maxPanels {
			return nil, BuildReport{}, fmt.Errorf("%w: requested %d panels for department %s but only %d possible with %d eligible faculty",
				apperrors.ErrValidation, opts.PanelCount, dept, maxPanels, len(group))
		}

		if maxPanels == 0 {
			report.SkippedDepartments = append(report.SkippedDepartments, SkippedDepartment{
				Department:  dept,
				FacultySize: len(group),
			})
			report.LeftoverFaculty = append(report.LeftoverFaculty, employeeIDs(group)...)
			logger.Debug().
				Str("department", dept).
				Int("facultySize", len(group)).
				Int("panelSize", opts.PanelSize).
				Msg("Skipping department with too few eligible faculty")
			continue
		}

		panelsNeeded := maxPanels
		if !opts.Scope.AllDepartments && opts.PanelCount > 0 {
			panelsNeeded = opts.PanelCount
		}

		// Ascending employee ID stands in for seniority and keeps slicing
		// deterministic across runs.
		sort.Slice(group, func(i, j int) bool {
			return group[i].EmployeeID < group[j].EmployeeID
		})

		consumed := panelsNeeded * opts.PanelSize
		for i := 0; i < consumed; i += opts.PanelSize {
			members := make([]models.Faculty, opts.PanelSize)
			copy(members, group[i:i+opts.PanelSize])
			panels = append(panels, &models.Panel{
				PanelID:    b.newID(),
				Members:    members,
				School:     b.panelSchool(opts.Scope, members),
				Department: dept,
			})
		}
		report.LeftoverFaculty = append(report.LeftoverFaculty, employeeIDs(group[consumed:])...)
	}

	if len(panels) == 0 {
		// Reported as one aggregate failure, not per department.
		return nil, report, apperrors.ErrInsufficientFaculty
	}

	logger.Info().
		Int("panels", len(panels)).
		Int("panelSize", opts.PanelSize).
		Int("skippedDepartments", len(report.SkippedDepartments)).
		Msg("Built panel drafts")
	return panels, report, nil
}

// bucketByDepartment groups eligible faculty by their first-listed
// department, filtered to the scope. Each faculty member lands in exactly one
// bucket, so a multi-department member is never counted toward two quotas.
// Bucket iteration order is the sorted department list for determinism.
func (b *PanelBuilder) bucketByDepartment(eligible []models.Faculty, scope models.ScopeContext) (map[string][]models.Faculty, []string) {
	buckets := make(map[string][]models.Faculty)
	for _, f := range eligible {
		fields := NormalizeFields(f)
		if scope.School != "" && !fields.HasSchool(scope.School) {
			continue
		}

		dept := f.HomeDepartment()
		if !scope.AllDepartments {
			// In single-department mode membership in the scope department is
			// enough; the bucket is the scope department itself.
			if !fields.HasDepartment(scope.Department) {
				continue
			}
			dept = scope.Department
		}
		if dept == "" {
			continue
		}
		buckets[dept] = append(buckets[dept], f)
	}

	order := make([]string, 0, len(buckets))
	for dept := range buckets {
		order = append(order, dept)
	}
	sort.Strings(order)
	return buckets, order
}

func (b *PanelBuilder) panelSchool(scope models.ScopeContext, members []models.Faculty) string {
	if scope.School != "" {
		return scope.School
	}
	for _, m := range members {
		for _, s := range m.School.Normalized() {
			return s
		}
	}
	return ""
}

func employeeIDs(faculty []models.Faculty) []string {
	ids := make([]string, 0, len(faculty))
	for _, f := range faculty {
		ids = append(ids, f.EmployeeID)
	}
	return ids
}
