package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PATSentinel is the mark value meaning pending/absent/transferred. It counts
// as meaningful data for completion purposes even though it carries no score.
const PATSentinel = "PAT"

// Mark is a single criterion score for a review. The wire shape is either a
// number or the string sentinel "PAT".
type Mark struct {
	Score float64
	PAT   bool
}

// IsMeaningful reports whether the mark counts toward completion: any
// non-zero score, or the PAT sentinel.
func (m Mark) IsMeaningful() bool {
	return m.PAT || m.Score != 0
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mark) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar mark, got yaml kind %d", value.Kind)
	}
	var s string
	if err := value.Decode(&s); err == nil && s == PATSentinel {
		*m = Mark{PAT: true}
		return nil
	}
	var score float64
	if err := value.Decode(&score); err != nil {
		return fmt.Errorf("mark must be a number or %q: %w", PATSentinel, err)
	}
	*m = Mark{Score: score}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Mark) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != PATSentinel {
			return fmt.Errorf("string mark must be %q, got %q", PATSentinel, s)
		}
		*m = Mark{PAT: true}
		return nil
	}
	var score float64
	if err := json.Unmarshal(data, &score); err != nil {
		return fmt.Errorf("mark must be a number or %q: %w", PATSentinel, err)
	}
	*m = Mark{Score: score}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Mark) MarshalYAML() (interface{}, error) {
	if m.PAT {
		return PATSentinel, nil
	}
	return m.Score, nil
}

// MarshalJSON implements json.Marshaler.
func (m Mark) MarshalJSON() ([]byte, error) {
	if m.PAT {
		return json.Marshal(PATSentinel)
	}
	return json.Marshal(m.Score)
}
