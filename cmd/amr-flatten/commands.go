package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	amr "github.com/jamesainslie/go-amr"
	"github.com/jamesainslie/go-amr/internal/corpus"
)

func newConvertCmd(f *flagSet, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert PATH",
		Short: "Convert an AMR file, a directory of files or a split release",
		Long: `Convert writes <name><graph-ext> and <name><sent-ext> for every input. PATH
may be a single file, a directory of .txt files, or a release directory with
training, dev and test subdirectories whose layout is mirrored in the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			if err := requireOutput(cfg); err != nil {
				return err
			}
			logger := f.logger(stderr)

			inputs, err := corpus.Load(args[0])
			if err != nil {
				return err
			}
			opts, err := converterOptions(cfg, logger)
			if err != nil {
				return err
			}
			conv := amr.New(append(opts, amr.WithFilter(cfg.Filter))...)

			report, err := corpus.Convert(cmd.Context(), conv, inputs, runOptions(cfg, logger))
			if err != nil {
				return err
			}
			printSummary(stdout, report)
			return report.Err()
		},
	}
	addOutputFlags(cmd, f)
	addConversionFlags(cmd, f)
	cmd.Flags().StringVar(&f.cfg.Filter, "filter", "", "Keep only blocks declared with this ::snt-type tag")
	return cmd
}

func newProxyCmd(f *flagSet, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy FILE",
		Short: "Build the summary/body layout for a proxy report file",
		Long: `Proxy writes <output>/proxy/no_side with the summary blocks of FILE, and
<output>/proxy/side with one amr_<doc>.txt per document plus its body and
summary conversions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			if err := requireOutput(cfg); err != nil {
				return err
			}
			logger := f.logger(stderr)

			opts, err := converterOptions(cfg, logger)
			if err != nil {
				return err
			}
			newConverter := func(filter string) *amr.Converter {
				return amr.New(append(slices.Clip(opts), amr.WithFilter(filter))...)
			}

			report, err := corpus.Proxy(cmd.Context(), args[0], newConverter, runOptions(cfg, logger))
			if err != nil {
				return err
			}
			printSummary(stdout, report)
			return report.Err()
		},
	}
	addOutputFlags(cmd, f)
	addConversionFlags(cmd, f)
	return cmd
}

func newSplitCmd(f *flagSet, stdout, _ io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Write one amr_<doc>.txt file per document id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			if err := requireOutput(cfg); err != nil {
				return err
			}

			inputs, err := corpus.Split(args[0], cfg.Output)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				fmt.Fprintln(stdout, in.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.cfg.Output, "output", "o", "", "Output directory")
	return cmd
}

func newScopesCmd(f *flagSet, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scopes PATH",
		Short: "Report graphs whose output depends on bindings from earlier graphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			cfg.LegacyScope = false
			logger := f.logger(stderr)

			inputs, err := corpus.Load(args[0])
			if err != nil {
				return err
			}
			opts, err := converterOptions(cfg, logger)
			if err != nil {
				return err
			}
			opts = append(opts, amr.WithFilter(cfg.Filter))

			diffs, err := corpus.CompareScopes(cmd.Context(), inputs, cfg.Jobs, opts...)
			if err != nil {
				return err
			}
			for _, d := range diffs {
				fmt.Fprintf(stdout, "%s\t%d/%d graphs differ\n", d.Input.Path, d.Differ, d.Graphs)
				for _, ex := range d.Examples {
					fmt.Fprintf(stdout, "  #%d block:  %s\n  #%d legacy: %s\n", ex.Index, ex.Block, ex.Index, ex.Legacy)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.cfg.Filter, "filter", "", "Keep only blocks declared with this ::snt-type tag")
	return cmd
}
