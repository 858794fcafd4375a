package corpus

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	amr "github.com/jamesainslie/go-amr"
)

// Options controls a corpus run.
type Options struct {
	Output Output
	// Jobs bounds the number of files converted at once
	// (default: runtime.NumCPU()).
	Jobs   int
	Logger *slog.Logger
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.NumCPU()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Convert runs conv over every input and writes the output pairs.
//
// Files are converted in parallel, each with its own pipeline state. A file
// whose sentence and graph counts differ is recorded as failed and nothing is
// written for it; the other files are still converted. I/O errors and
// context cancellation stop the run. Report.Files follows input order.
func Convert(ctx context.Context, conv *amr.Converter, inputs []Input, opts Options) (*Report, error) {
	out := opts.Output.Normalized()
	log := opts.logger()
	files := make([]FileReport, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs())

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			graphPath, sentPath := out.Paths(in, conv.Filter())
			fr := FileReport{
				Input:     in,
				Filter:    conv.Filter(),
				GraphPath: graphPath,
				SentPath:  sentPath,
			}

			res, err := conv.ConvertFile(in.Path)
			if err != nil {
				fr.Err = err
				files[i] = fr
				if errors.Is(err, amr.ErrCountMismatch) {
					log.Error("skipping malformed file", "file", in.Path, "error", err)
					return nil
				}
				return err
			}
			fr.Stats = res.Stats

			if err := WriteLines(graphPath, res.Graphs); err != nil {
				fr.Err = err
				files[i] = fr
				return err
			}
			if err := WriteLines(sentPath, res.Sentences); err != nil {
				fr.Err = err
				files[i] = fr
				return err
			}
			files[i] = fr
			log.Debug("wrote output", "graphs", graphPath, "sentences", sentPath)
			return nil
		})
	}

	err := g.Wait()
	return &Report{Files: compact(files)}, err
}

// compact drops the slots of files that never started.
func compact(files []FileReport) []FileReport {
	out := files[:0]
	for _, f := range files {
		if f.Input.Path != "" {
			out = append(out, f)
		}
	}
	return out
}
