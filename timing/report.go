package timing

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// NamedResult is one row of a Report.
type NamedResult struct {
	Name   string
	Result Result
}

// Report collects named results for side-by-side comparison. The first
// result added is the baseline that speedups are computed against.
type Report struct {
	Title   string
	results []NamedResult
}

// NewReport creates an empty report.
func NewReport(title string) *Report {
	return &Report{Title: title}
}

// Add appends a named result.
func (r *Report) Add(name string, res Result) {
	r.results = append(r.results, NamedResult{Name: name, Result: res})
}

// Results returns the collected rows in insertion order.
func (r *Report) Results() []NamedResult {
	return append([]NamedResult(nil), r.results...)
}

// Baseline returns the first added result, if any.
func (r *Report) Baseline() (NamedResult, bool) {
	if len(r.results) == 0 {
		return NamedResult{}, false
	}

	return r.results[0], true
}

// WriteTable renders the report as an aligned text table. Speedup is the
// baseline mean divided by the row mean, so the baseline row reads 1.00x.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if r.Title != "" {
		fmt.Fprintf(tw, "%s\n", r.Title)
	}

	fmt.Fprintln(tw, "NAME\tRUNS\tMIN\tMEDIAN\tMEAN\tSTDDEV\tSPEEDUP")

	var baseMean float64
	if base, ok := r.Baseline(); ok {
		baseMean = float64(base.Result.Mean)
	}

	for _, row := range r.results {
		speedup := "-"
		if baseMean > 0 && row.Result.Mean > 0 {
			speedup = fmt.Sprintf("%.2fx", baseMean/float64(row.Result.Mean))
		}

		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\t%v\t%s\n",
			row.Name,
			row.Result.Runs,
			row.Result.Min,
			row.Result.Median,
			row.Result.Mean,
			row.Result.StdDev,
			speedup,
		)
	}

	return tw.Flush()
}
