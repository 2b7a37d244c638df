package store

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/acadops/panelboard/internal/app/models"
	"github.com/acadops/panelboard/internal/pkg/validation"
)

var validate = validator.New()

func init() {
	// Format rules for imported identifiers; structural tags cover presence.
	_ = validate.RegisterValidation("empid", func(fl validator.FieldLevel) bool {
		return validation.ValidEmployeeID(fl.Field().String())
	})
	_ = validate.RegisterValidation("regno", func(fl validator.FieldLevel) bool {
		return validation.ValidRegNo(fl.Field().String())
	})
}

// LoadRoster reads a faculty roster from a YAML file. School and department
// fields may be scalars or arrays; both decode to the same set shape.
func LoadRoster(path string) ([]models.Faculty, error) {
	var roster []models.Faculty
	if err := loadYAML(path, &roster); err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	for i, f := range roster {
		if err := validate.Struct(f); err != nil {
			return nil, fmt.Errorf("roster entry %d invalid: %w", i, err)
		}
	}
	return roster, nil
}

// LoadTeams reads project teams from a YAML file.
func LoadTeams(path string) ([]models.Team, error) {
	var teams []models.Team
	if err := loadYAML(path, &teams); err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	for i, t := range teams {
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("team entry %d invalid: %w", i, err)
		}
	}
	return teams, nil
}

// LoadSchemas reads marking schemas from a YAML file and indexes them by
// scope.
func LoadSchemas(path string) (models.SchemaIndex, error) {
	var schemas []models.MarkingSchema
	if err := loadYAML(path, &schemas); err != nil {
		return nil, fmt.Errorf("loading schemas: %w", err)
	}
	idx := make(models.SchemaIndex, len(schemas))
	for i, schema := range schemas {
		if err := validate.Struct(schema); err != nil {
			return nil, fmt.Errorf("schema entry %d invalid: %w", i, err)
		}
		idx.Add(schema)
	}
	return idx, nil
}

// LoadPanels reads previously saved panels from a YAML file, preserving
// listing order.
func LoadPanels(path string) ([]models.Panel, error) {
	var panels []models.Panel
	if err := loadYAML(path, &panels); err != nil {
		return nil, fmt.Errorf("loading panels: %w", err)
	}
	return panels, nil
}

// SavePanels writes panels to a YAML file in listing order so a later run
// can pick up the same allocation state.
func SavePanels(path string, panels []*models.Panel) error {
	out := make([]models.Panel, 0, len(panels))
	for _, p := range panels {
		out = append(out, *p)
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding panels: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
