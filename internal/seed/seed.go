package seed

import (
	"errors"
	"fmt"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/pkg/apperrors"
	"github.com/acadops/panelboard/internal/pkg/logger"
	"github.com/acadops/panelboard/internal/store"
)

// Populate loads a deterministic demo roster, team set, and marking schemas
// into the store so the CLI can run without input files. Duplicate entries
// are skipped so repeated calls are safe.
func Populate(st *store.Store) error {
	logger.Info().Msg("Seeding demo roster, teams, and schemas")
	var finalErr error

	roster := []models.Faculty{
		{EmployeeID: "E1001", Name: "A. Raman", School: models.FlexStrings{"SCOPE"}, Department: models.FlexStrings{"CSE"}},
		{EmployeeID: "E1002", Name: "B. Iyer", School: models.FlexStrings{"SCOPE"}, Department: models.FlexStrings{"CSE"}},
		{EmployeeID: "E1003", Name: "C. Das", School: models.FlexStrings{"SCOPE"}, Department: models.FlexStrings{"CSE"}},
		{EmployeeID: "E1004", Name: "D. Mehta", School: models.FlexStrings{"SCOPE"}, Department: models.FlexStrings{"CSE"}},
		{EmployeeID: "E1005", Name: "E. Nair", School: models.FlexStrings{"SCOPE"}, Department: models.FlexStrings{"CSE"}},
		{EmployeeID: "E1006", Name: "F. Khan", School: models.FlexStrings{"SCOPE"}, Department: models.FlexStrings{"CSE"}},
		{EmployeeID: "E1007", Name: "G. Rao", School: models.FlexStrings{"SCOPE"}, Department: models.FlexStrings{"CSE", "ECE"}},
		{EmployeeID: "E2001", Name: "H. Pillai", School: models.FlexStrings{"SENSE"}, Department: models.FlexStrings{"ECE"}},
		{EmployeeID: "E2002", Name: "I. Gupta", School: models.FlexStrings{"SENSE"}, Department: models.FlexStrings{"ECE"}},
		{EmployeeID: "E2003", Name: "J. Bose", School: models.FlexStrings{"SENSE"}, Department: models.FlexStrings{"ECE"}},
	}
	for _, f := range roster {
		if err := st.AddFaculty(f); err != nil && !errors.Is(err, apperrors.ErrDuplicateID) {
			finalErr = errors.Join(finalErr, fmt.Errorf("seeding faculty %s: %w", f.EmployeeID, err))
		}
	}

	teams := []models.Team{
		{
			ID: "T01", Name: "Warehouse Vision", School: models.FlexStrings{"SCOPE"},
			Department: models.FlexStrings{"CSE"}, Specialization: "AI", Type: "capstone",
			GuideFacultyID: "E1001",
			Students: []models.Student{
				{Name: "Asha V", RegNo: "21BCE1001", EmailID: "asha.v@campus.test", Reviews: map[string]models.Review{
					"Review 1": {Locked: true, Marks: map[string]models.Mark{"Design": {Score: 8}}},
					"Review 2": {Attendance: models.Attendance{Value: true}},
				}},
				{Name: "Rohit S", RegNo: "21BCE1002", EmailID: "rohit.s@campus.test", Reviews: map[string]models.Review{
					"Review 1": {Comments: "needs a stronger baseline"},
				}},
			},
		},
		{
			ID: "T02", Name: "Campus Transit", School: models.FlexStrings{"SCOPE"},
			Department: models.FlexStrings{"CSE"}, Specialization: "Systems", Type: "capstone",
			GuideFacultyID: "E1004",
			Students: []models.Student{
				{Name: "Meera K", RegNo: "21BCE2001", EmailID: "meera.k@campus.test"},
				{Name: "Vikram T", RegNo: "21BCE2002", EmailID: "vikram.t@campus.test"},
			},
		},
		{
			ID: "T03", Name: "Spectrum Sense", School: models.FlexStrings{"SENSE"},
			Department: models.FlexStrings{"ECE"}, Specialization: "Embedded", Type: "capstone",
			GuideFacultyID: "E2001",
			Students: []models.Student{
				{Name: "Farah N", RegNo: "21BEC1001", EmailID: "farah.n@campus.test", Reviews: map[string]models.Review{
					"Review 1": {Marks: map[string]models.Mark{"Prototype": {PAT: true}}},
				}},
			},
		},
	}
	for _, t := range teams {
		if err := st.AddTeam(t); err != nil && !errors.Is(err, apperrors.ErrDuplicateID) {
			finalErr = errors.Join(finalErr, fmt.Errorf("seeding team %s: %w", t.ID, err))
		}
	}

	schemas := []models.MarkingSchema{
		{
			School: "SCOPE", Department: "CSE",
			Reviews: []models.ReviewSpec{
				{Name: "Review 0", FacultyType: models.FacultyTypeGuide},
				{Name: "Review 1", FacultyType: models.FacultyTypePanel},
				{Name: "Review 2", FacultyType: models.FacultyTypePanel},
			},
		},
		{
			School: "SENSE", Department: "ECE",
			Reviews: []models.ReviewSpec{
				{Name: "Review 1", FacultyType: models.FacultyTypePanel},
				{Name: "Final Viva", FacultyType: models.FacultyTypePanel},
			},
		},
	}
	for _, schema := range schemas {
		st.AddSchema(schema)
	}

	return finalErr
}
