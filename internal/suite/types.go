package suite

import "github.com/DjordjeVuckovic/polish-calc/internal/apperr"

// Suite is a YAML file of conversion scenarios. Strict left unset falls back
// to the converter's own setting; a case may override either.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Strict      *bool  `yaml:"strict"`
	Priorities  string `yaml:"priorities"`
	Cases       []Case `yaml:"cases"`
}

// Case expects either a postfix rendering or an error kind, never both.
type Case struct {
	ID       string `yaml:"id"`
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
	Error    string `yaml:"error"`
	Strict   *bool  `yaml:"strict"`
}

func (c Case) ExpectsError() bool {
	return c.Error != ""
}

func (c Case) ErrorKind() apperr.Kind {
	return apperr.ParseKind(c.Error)
}
