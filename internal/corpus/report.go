package corpus

import (
	"errors"
	"slices"

	"github.com/samber/lo"

	amr "github.com/jamesainslie/go-amr"
)

// FileReport is the outcome of converting one input with one filter.
type FileReport struct {
	Input     Input
	Filter    string
	GraphPath string
	SentPath  string
	Stats     amr.Stats
	Err       error
}

// Report aggregates conversion results.
type Report struct {
	Files []FileReport
}

// Add appends the files of o to r.
func (r *Report) Add(o *Report) {
	if o != nil {
		r.Files = append(r.Files, o.Files...)
	}
}

// Total returns the statistics summed over all successful files.
func (r *Report) Total() amr.Stats {
	var total amr.Stats
	for _, f := range r.Files {
		if f.Err == nil {
			total.Add(f.Stats)
		}
	}
	return total
}

// BySplit returns the statistics of successful files grouped by split.
func (r *Report) BySplit() map[string]amr.Stats {
	out := make(map[string]amr.Stats)
	for _, f := range r.Files {
		if f.Err != nil {
			continue
		}
		s := out[f.Input.Split]
		s.Add(f.Stats)
		out[f.Input.Split] = s
	}
	return out
}

// SplitNames returns the splits present in the report in release order.
// Inputs outside a split layout are reported under "".
func (r *Report) SplitNames() []string {
	names := lo.Keys(r.BySplit())
	slices.SortFunc(names, func(a, b string) int {
		return splitRank(a) - splitRank(b)
	})
	return names
}

func splitRank(name string) int {
	if i := slices.Index(Splits, name); i >= 0 {
		return i + 1
	}
	return 0
}

// Failed returns the files whose conversion failed.
func (r *Report) Failed() []FileReport {
	return lo.Filter(r.Files, func(f FileReport, _ int) bool { return f.Err != nil })
}

// Err joins the errors of every failed file.
func (r *Report) Err() error {
	return errors.Join(lo.Map(r.Failed(), func(f FileReport, _ int) error { return f.Err })...)
}

// ResolutionRate returns the share of reference lines that were resolved to
// a bound variable. Reference-shaped lines holding constants (numbers,
// polarity) count as unresolved, so the rate is a lower bound.
func ResolutionRate(s amr.Stats) float64 {
	total := s.Resolved + s.Unresolved
	if total == 0 {
		return 0
	}
	return float64(s.Resolved) / float64(total)
}
