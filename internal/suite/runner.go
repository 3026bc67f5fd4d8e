package suite

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/DjordjeVuckovic/polish-calc/internal/calc"
	"github.com/DjordjeVuckovic/polish-calc/internal/input"
)

type CaseResult struct {
	ID       string        `json:"id"`
	Input    string        `json:"input"`
	Expected string        `json:"expected"`
	Got      string        `json:"got"`
	Passed   bool          `json:"passed"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

type Report struct {
	Name    string       `json:"name"`
	Results []CaseResult `json:"results"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Timing  Timing       `json:"timing"`
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run converts every case. A case passes when it produces exactly the
// expected postfix rendering, or fails with exactly the expected error kind.
func Run(s *Suite, converter *calc.Converter) *Report {
	report := &Report{Name: s.Name, Results: make([]CaseResult, 0, len(s.Cases))}

	for _, c := range s.Cases {
		strict := converter.Strict()
		if s.Strict != nil {
			strict = *s.Strict
		}
		if c.Strict != nil {
			strict = *c.Strict
		}

		start := time.Now()
		res, err := converter.ConvertStrict(input.StripWhitespace(c.Input), strict)
		cr := CaseResult{ID: c.ID, Input: c.Input, Duration: time.Since(start)}

		if c.ExpectsError() {
			cr.Expected = c.Error
		} else {
			cr.Expected = c.Expected
		}

		switch {
		case err != nil:
			cr.Got = apperr.KindOf(err).String()
			cr.Passed = c.ExpectsError() && apperr.KindOf(err) == c.ErrorKind()
			if !cr.Passed {
				cr.Message = err.Error()
			}
		case c.ExpectsError():
			cr.Got = res.Postfix.String()
			cr.Message = fmt.Sprintf("expected %s error", c.Error)
		default:
			cr.Got = res.Postfix.String()
			cr.Passed = cr.Got == c.Expected
		}

		if cr.Passed {
			report.Passed++
		} else {
			report.Failed++
			slog.Debug("suite case failed", "suite", s.Name, "case", c.ID, "expected", cr.Expected, "got", cr.Got)
		}
		report.Results = append(report.Results, cr)
	}

	report.Timing = summarize(report.Results)
	return report
}
