package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Name)

	header := []string{"Case", "Input", "Expected", "Got", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, cr := range r.Results {
		status := "PASS"
		if !cr.Passed {
			status = "FAIL"
		}
		row := []string{cr.ID, cr.Input, cr.Expected, cr.Got, status}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.Passed, r.Failed)
	if r.Timing.Cases > 0 {
		fmt.Fprintf(tw, "timing: total=%s mean=%s p50=%s p95=%s max=%s\n",
			r.Timing.Total, r.Timing.Mean, r.Timing.P50, r.Timing.P95, r.Timing.Max)
	}
	tw.Flush()
}

func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
