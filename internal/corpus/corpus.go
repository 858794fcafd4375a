// Package corpus runs the converter over whole AMR releases: it discovers
// input files, routes them by dataset split, writes the aligned output pairs
// and aggregates statistics.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNoInputs is returned when a directory holds no AMR files.
var ErrNoInputs = errors.New("no .txt inputs found")

// Splits lists the dataset split directories of an LDC AMR release
// (data/amrs/split/{training,dev,test}).
var Splits = []string{"training", "dev", "test"}

// Input is one AMR file and the split it belongs to. Split is empty for
// inputs that are not part of a split layout.
type Input struct {
	Path  string
	Split string
}

// Name returns the file name of the input.
func (in Input) Name() string { return filepath.Base(in.Path) }

// Load returns the inputs under path. A regular file yields itself. A
// directory containing any of the split directories yields the .txt files of
// each split; any other directory yields its own .txt files. Inputs are
// sorted by split order, then by name.
func Load(path string) ([]Input, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return []Input{{Path: path}}, nil
	}

	var inputs []Input
	found := false
	for _, split := range Splits {
		dir := filepath.Join(path, split)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		found = true
		files, err := listTxt(dir)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			inputs = append(inputs, Input{Path: f, Split: split})
		}
	}
	if !found {
		files, err := listTxt(path)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			inputs = append(inputs, Input{Path: f})
		}
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputs, path)
	}
	return inputs, nil
}

// listTxt returns the .txt files directly inside dir, sorted by name.
func listTxt(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// Output names the files written for each input.
type Output struct {
	Dir      string
	GraphExt string
	SentExt  string
}

// DefaultOutput returns the conventional extensions rooted at dir.
func DefaultOutput(dir string) Output {
	return Output{Dir: dir, GraphExt: ".tf", SentExt: ".sent"}
}

// Paths returns the graph and sentence paths for input. A non-empty filter
// tag prefixes the file names with "<filter>_".
func (o Output) Paths(in Input, filter string) (graphs, sentences string) {
	dir := o.Dir
	if in.Split != "" {
		dir = filepath.Join(dir, in.Split)
	}
	name := in.Name()
	if filter != "" {
		name = filter + "_" + name
	}
	return filepath.Join(dir, name+o.GraphExt), filepath.Join(dir, name+o.SentExt)
}

// normalizeExt makes sure ext starts with a dot.
func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// Normalized returns o with dotted extensions and defaults filled in.
func (o Output) Normalized() Output {
	if o.GraphExt == "" {
		o.GraphExt = ".tf"
	}
	if o.SentExt == "" {
		o.SentExt = ".sent"
	}
	o.GraphExt = normalizeExt(o.GraphExt)
	o.SentExt = normalizeExt(o.SentExt)
	return o
}
