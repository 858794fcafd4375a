package corpus

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	amr "github.com/jamesainslie/go-amr"
)

// GraphPair holds the two renderings of one graph.
type GraphPair struct {
	Index  int
	Block  string
	Legacy string
}

// ScopeDiff reports how per-block and file-wide binding scopes disagree on
// one input.
type ScopeDiff struct {
	Input    Input
	Graphs   int
	Differ   int
	Examples []GraphPair
}

// maxExamples bounds the graph pairs kept per input.
const maxExamples = 3

// CompareScopes converts each input twice, once with bindings cleared at
// every graph boundary and once with a single file-wide table, and counts the
// graphs whose output differs. A difference means a reference was resolved
// from an earlier graph. Results are sorted by number of differing graphs,
// most first.
func CompareScopes(ctx context.Context, inputs []Input, jobs int, opts ...amr.Option) ([]ScopeDiff, error) {
	block := amr.New(opts...)
	legacy := amr.New(append(slices.Clone(opts), amr.WithLegacyScope())...)

	results := make([]ScopeDiff, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := block.ConvertFile(in.Path)
			if err != nil {
				return err
			}
			b, err := legacy.ConvertFile(in.Path)
			if err != nil {
				return err
			}
			if len(a.Graphs) != len(b.Graphs) {
				return fmt.Errorf("%s: graph counts differ between scopes", in.Path)
			}

			d := ScopeDiff{Input: in, Graphs: len(a.Graphs)}
			for j := range a.Graphs {
				if a.Graphs[j] == b.Graphs[j] {
					continue
				}
				d.Differ++
				if len(d.Examples) < maxExamples {
					d.Examples = append(d.Examples, GraphPair{Index: j, Block: a.Graphs[j], Legacy: b.Graphs[j]})
				}
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b ScopeDiff) int {
		return b.Differ - a.Differ
	})
	return results, nil
}
