// Command amr-flatten converts AMR corpus files into variable-free,
// one-graph-per-line training data with aligned sentence files.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	amr "github.com/jamesainslie/go-amr"
	"github.com/jamesainslie/go-amr/internal/corpus"
	"github.com/jamesainslie/go-amr/tokenizer"
)

// Set through -ldflags by the stave build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// flagSet holds the raw flag values of one command tree.
type flagSet struct {
	configPath string
	verbose    bool
	parens     string
	cfg        Config
}

// settings resolves the effective configuration of cmd.
func (f *flagSet) settings(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}
	if err := f.overlay(cmd, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (f *flagSet) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// converterOptions builds library options from cfg. The filter is left to
// the caller so proxy runs can vary it.
func converterOptions(cfg Config, logger *slog.Logger) ([]amr.Option, error) {
	tok, err := tokenizer.ByName(cfg.Tokenizer, cfg.SPMModel)
	if err != nil {
		return nil, err
	}
	opts := []amr.Option{
		amr.WithVariables(cfg.KeepVariables),
		amr.WithFormat(cfg.Format),
		amr.WithTokenizer(tok),
		amr.WithNFC(cfg.NFC),
		amr.WithLogger(logger),
	}
	if cfg.LegacyScope {
		opts = append(opts, amr.WithLegacyScope())
	}
	return opts, nil
}

func runOptions(cfg Config, logger *slog.Logger) corpus.Options {
	return corpus.Options{
		Output: corpus.Output{Dir: cfg.Output, GraphExt: cfg.GraphExt, SentExt: cfg.SentExt},
		Jobs:   cfg.Jobs,
		Logger: logger,
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flagSet{}

	root := &cobra.Command{
		Use:   "amr-flatten",
		Short: "Linearize AMR corpora into variable-free training data",
		Long: `amr-flatten removes variables from AMR graphs by copying the bound concept
to every reference, strips wiki links and writes one graph per line next to a
line-aligned sentence file.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Debug logging")
	pf.IntVarP(&f.cfg.Jobs, "jobs", "j", 0, "Files converted in parallel (default: number of CPUs)")

	root.AddCommand(
		newConvertCmd(f, stdout, stderr),
		newProxyCmd(f, stdout, stderr),
		newSplitCmd(f, stdout, stderr),
		newScopesCmd(f, stdout, stderr),
	)
	return root
}

// addConversionFlags registers the flags shared by commands that run the
// converter.
func addConversionFlags(cmd *cobra.Command, f *flagSet) {
	fl := cmd.Flags()
	fl.BoolVar(&f.cfg.KeepVariables, "keep-variables", false, "Only linearize; keep variables in place")
	fl.BoolVar(&f.cfg.LegacyScope, "legacy-scope", false, "Keep bindings for the whole file instead of per graph")
	fl.StringVar(&f.parens, "parens", "keep", "Parenthesis handling: keep, strip or normalize")
	fl.BoolVar(&f.cfg.Format.StripSenseTags, "strip-senses", false, "Remove -0N sense suffixes")
	fl.StringVar(&f.cfg.Tokenizer, "tokenizer", "", "Sentence tokenizer: none, whitespace, word or sentencepiece")
	fl.StringVar(&f.cfg.SPMModel, "spm-model", "", "SentencePiece .model file for --tokenizer sentencepiece")
	fl.BoolVar(&f.cfg.NFC, "nfc", false, "Normalize sentences to Unicode NFC")
}

func addOutputFlags(cmd *cobra.Command, f *flagSet) {
	fl := cmd.Flags()
	fl.StringVarP(&f.cfg.Output, "output", "o", "", "Output directory")
	fl.StringVar(&f.cfg.GraphExt, "graph-ext", ".tf", "Extension of linearized graph files")
	fl.StringVar(&f.cfg.SentExt, "sent-ext", ".sent", "Extension of sentence files")
}

func requireOutput(cfg Config) error {
	if cfg.Output == "" {
		return fmt.Errorf("an output directory is required (--output or config)")
	}
	return nil
}

func printSummary(w io.Writer, report *corpus.Report) {
	for _, split := range report.SplitNames() {
		s := report.BySplit()[split]
		name := split
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%-10s graphs %-8d resolved %-8d unresolved %-8d rate %.2f\n",
			name, s.Graphs, s.Resolved, s.Unresolved, corpus.ResolutionRate(s))
	}
	if failed := report.Failed(); len(failed) > 0 {
		fmt.Fprintf(w, "%d file(s) failed\n", len(failed))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
