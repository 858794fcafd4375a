package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	amr "github.com/jamesainslie/go-amr"
	"github.com/jamesainslie/go-amr/docsplit"
)

// Proxy report block tags.
const (
	TagSummary = "summary"
	TagBody    = "body"
)

// ConverterFunc builds a Converter for a filter tag.
type ConverterFunc func(filter string) *amr.Converter

// Proxy lays out a proxy report release for summarization experiments:
//
//	<out>/proxy/no_side/summary_<file>.{tf,sent}   every summary block
//	<out>/proxy/side/amr_<doc>.txt                 one file per document
//	<out>/proxy/side/{body,summary}_amr_<doc>.txt.{tf,sent}
//
// The side directory pairs each document's summary with its body so the body
// can be fed as side information.
func Proxy(ctx context.Context, path string, newConverter ConverterFunc, opts Options) (*Report, error) {
	log := opts.logger()
	root := filepath.Join(opts.Output.Dir, "proxy")
	noSide := opts
	noSide.Output.Dir = filepath.Join(root, "no_side")
	side := opts
	side.Output.Dir = filepath.Join(root, "side")

	report := &Report{}

	r, err := Convert(ctx, newConverter(TagSummary), []Input{{Path: path}}, noSide)
	report.Add(r)
	if err != nil {
		return report, err
	}

	inputs, err := Split(path, side.Output.Dir)
	if err != nil {
		return report, err
	}
	log.Info("split documents", "file", path, "documents", len(inputs))
	log.Debug("wrote documents", "files", lo.Map(inputs, func(in Input, _ int) string { return in.Name() }))

	for _, tag := range []string{TagBody, TagSummary} {
		r, err := Convert(ctx, newConverter(tag), inputs, side)
		report.Add(r)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// Split writes one amr_<doc>.txt file per document of path into dir and
// returns the written inputs.
func Split(path, dir string) ([]Input, error) {
	docs, err := splitFile(path)
	if err != nil {
		return nil, err
	}
	inputs := make([]Input, 0, len(docs))
	for _, d := range docs {
		docPath := filepath.Join(dir, "amr_"+d.ID+".txt")
		if err := WriteText(docPath, d.Text); err != nil {
			return nil, err
		}
		inputs = append(inputs, Input{Path: docPath})
	}
	return inputs, nil
}

func splitFile(path string) ([]docsplit.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = f.Close() }() // read-only

	docs, err := docsplit.Split(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}
