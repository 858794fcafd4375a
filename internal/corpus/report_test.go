package corpus

import (
	"errors"
	"math"
	"testing"

	amr "github.com/jamesainslie/go-amr"
)

func TestReport(t *testing.T) {
	bad := errors.New("boom")
	r := &Report{Files: []FileReport{
		{Input: Input{Path: "a", Split: "test"}, Stats: amr.Stats{Graphs: 2, Resolved: 3, Unresolved: 1}},
		{Input: Input{Path: "b", Split: "training"}, Stats: amr.Stats{Graphs: 5, Resolved: 1}},
		{Input: Input{Path: "c", Split: "training"}, Stats: amr.Stats{Graphs: 7}, Err: bad},
	}}

	total := r.Total()
	if total.Graphs != 7 || total.Resolved != 4 || total.Unresolved != 1 {
		t.Errorf("Total() = %+v", total)
	}

	names := r.SplitNames()
	if len(names) != 2 || names[0] != "training" || names[1] != "test" {
		t.Errorf("SplitNames() = %v, want [training test]", names)
	}
	if got := r.BySplit()["training"].Graphs; got != 5 {
		t.Errorf("training graphs = %d, want 5", got)
	}

	if len(r.Failed()) != 1 {
		t.Errorf("expected 1 failed file, got %d", len(r.Failed()))
	}
	if !errors.Is(r.Err(), bad) {
		t.Errorf("Err() = %v, want wrapped %v", r.Err(), bad)
	}
}

func TestResolutionRate(t *testing.T) {
	tests := []struct {
		name  string
		stats amr.Stats
		want  float64
	}{
		{"all resolved", amr.Stats{Resolved: 4}, 1.0},
		{"mixed", amr.Stats{Resolved: 3, Unresolved: 1}, 0.75},
		{"none", amr.Stats{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolutionRate(tt.stats)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("ResolutionRate() = %.3f, want %.3f", got, tt.want)
			}
		})
	}
}
