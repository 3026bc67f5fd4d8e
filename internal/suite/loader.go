package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite *Suite
	Dir   string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.ExpectsError() && c.Expected != "" {
			return nil, fmt.Errorf("case %q sets both expected and error", c.ID)
		}
		if c.ExpectsError() && c.ErrorKind() == apperr.Unknown {
			return nil, fmt.Errorf("case %q references unknown error kind %q", c.ID, c.Error)
		}
	}

	return &LoadedSuite{Suite: &s}, nil
}

// PrioritiesPath resolves the suite's priority file relative to the suite file.
func (l *LoadedSuite) PrioritiesPath() string {
	p := l.Suite.Priorities
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.Dir, p)
}
