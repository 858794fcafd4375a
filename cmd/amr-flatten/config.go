package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jamesainslie/go-amr/format"
)

// Config holds every setting that can come from the config file. Command
// line flags override file values.
type Config struct {
	Output        string         `yaml:"output"`
	GraphExt      string         `yaml:"graph_ext"`
	SentExt       string         `yaml:"sent_ext"`
	Filter        string         `yaml:"filter"`
	KeepVariables bool           `yaml:"keep_variables"`
	LegacyScope   bool           `yaml:"legacy_scope"`
	Format        format.Options `yaml:"format"`
	Tokenizer     string         `yaml:"tokenizer"`
	SPMModel      string         `yaml:"spm_model"`
	NFC           bool           `yaml:"nfc"`
	Jobs          int            `yaml:"jobs"`
}

func defaultConfig() Config {
	return Config{
		GraphExt: ".tf",
		SentExt:  ".sent",
	}
}

// loadConfig reads a YAML config file over the defaults. Unknown keys are an
// error so typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// parensMode maps the --parens flag onto format options.
func parensMode(mode string, o *format.Options) error {
	switch mode {
	case "keep":
		o.StripParens, o.NormalizeSpacing = false, false
	case "strip":
		o.StripParens, o.NormalizeSpacing = true, false
	case "normalize":
		o.StripParens, o.NormalizeSpacing = false, true
	default:
		return fmt.Errorf("unknown parens mode %q (want keep, strip or normalize)", mode)
	}
	return nil
}

// overlay copies the flags set on the command line into cfg.
func (f *flagSet) overlay(cmd *cobra.Command, cfg *Config) error {
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = f.cfg.Output
	}
	if changed("graph-ext") {
		cfg.GraphExt = f.cfg.GraphExt
	}
	if changed("sent-ext") {
		cfg.SentExt = f.cfg.SentExt
	}
	if changed("filter") {
		cfg.Filter = f.cfg.Filter
	}
	if changed("keep-variables") {
		cfg.KeepVariables = f.cfg.KeepVariables
	}
	if changed("legacy-scope") {
		cfg.LegacyScope = f.cfg.LegacyScope
	}
	if changed("strip-senses") {
		cfg.Format.StripSenseTags = f.cfg.Format.StripSenseTags
	}
	if changed("tokenizer") {
		cfg.Tokenizer = f.cfg.Tokenizer
	}
	if changed("spm-model") {
		cfg.SPMModel = f.cfg.SPMModel
	}
	if changed("nfc") {
		cfg.NFC = f.cfg.NFC
	}
	if changed("jobs") {
		cfg.Jobs = f.cfg.Jobs
	}
	if changed("parens") {
		if err := parensMode(f.parens, &cfg.Format); err != nil {
			return err
		}
	}
	return nil
}
