package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FlexStrings absorbs fields that upstream records represent either as a
// single scalar or as an array. It always decodes to a slice in listed
// order; an absent field decodes to nil.
type FlexStrings []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *FlexStrings) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		if single == "" {
			*s = nil
			return nil
		}
		*s = FlexStrings{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = FlexStrings(many)
		return nil
	default:
		return fmt.Errorf("expected scalar or sequence, got yaml kind %d", value.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexStrings) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = nil
			return nil
		}
		*s = FlexStrings{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*s = FlexStrings(many)
	return nil
}

// Normalized returns a trimmed, deduplicated copy preserving listed order.
// Empty values are dropped.
func (s FlexStrings) Normalized() []string {
	out := make([]string, 0, len(s))
	seen := make(map[string]struct{}, len(s))
	for _, v := range s {
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
	return out
}

// Contains reports whether the normalized values include v.
func (s FlexStrings) Contains(v string) bool {
	v = strings.TrimSpace(v)
	for _, cur := range s.Normalized() {
		if cur == v {
			return true
		}
	}
	return false
}
