package priority

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/polish-calc/internal/token"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a priority table:
//
//	name: right-heavy
//	priorities:
//	  pow: 3
//	  ~: 4
//
// Keys are read from the raw scalar text, so an unquoted ~ names the unary
// minus instead of decoding as a YAML null.
type File struct {
	Name       string    `yaml:"name"`
	Priorities yaml.Node `yaml:"priorities"`
}

func LoadFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read priority file: %w", err)
	}
	return Parse(data)
}

// Parse reads a YAML table. Signs left out keep their default rank.
func Parse(data []byte) (*Table, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse priority YAML: %w", err)
	}

	ranks, err := f.ranks()
	if err != nil {
		return nil, err
	}

	t, err := New(ranks)
	if err != nil {
		return nil, fmt.Errorf("invalid priority table %q: %w", f.Name, err)
	}
	return t, nil
}

func (f *File) ranks() (map[token.Sign]uint8, error) {
	node := &f.Priorities
	if node.Kind == 0 || (node.Kind == yaml.MappingNode && len(node.Content) == 0) {
		return nil, fmt.Errorf("priority file has no priorities")
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("priorities must be a mapping of sign to rank (line %d)", node.Line)
	}

	ranks := Default().Ranks()
	seen := make(map[token.Sign]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		sign, err := token.Parse(key.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
		if _, dup := seen[sign]; dup {
			return nil, fmt.Errorf("line %d: sign %s is ranked more than once", key.Line, sign)
		}
		seen[sign] = struct{}{}

		var rank uint8
		if err := val.Decode(&rank); err != nil {
			return nil, fmt.Errorf("line %d: invalid rank for %s: %w", val.Line, sign, err)
		}
		ranks[sign] = rank
	}
	return ranks, nil
}
