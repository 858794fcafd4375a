package amr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jamesainslie/go-amr/format"
	"github.com/jamesainslie/go-amr/tokenizer"
)

const likesHimself = `# AMR release (generated on Tue Mar 6, 2018 at 13:37:04)

# ::id bolt12_07_4800.1 ::date 2012-12-19T12:53:14
# ::snt Bob likes himself.
(l / like
      :ARG0 (p / person :name "Bob")
      :ARG1 p)
`

const proxyPair = `# ::id PROXY_AFP_ENG_0001.1 ::date 2017 ::snt-type summary ::annotator x
# ::snt Bob sings.
(s / sing-01
      :ARG0 (p / person :wiki "Bob_Dylan"
            :name (n / name :op1 "Bob")))

# ::id PROXY_AFP_ENG_0001.2 ::date 2017 ::snt-type body ::annotator x
# ::snt He was there.
(b / be-located-at-91
      :ARG1 (h / he)
      :ARG2 (t / there))
`

func lines(s string) []string {
	return strings.Split(s, "\n")
}

func TestConvert_DuplicatesReference(t *testing.T) {
	res, err := New().Convert(lines(likesHimself))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	wantGraphs := []string{`(like :ARG0 (person :name "Bob") :ARG1 (person :name "Bob"))`}
	if diff := cmp.Diff(wantGraphs, res.Graphs); diff != "" {
		t.Errorf("graphs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bob likes himself."}, res.Sentences); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
	if res.Stats.Headers != 1 {
		t.Errorf("expected 1 header, got %d", res.Stats.Headers)
	}
	if res.Stats.Resolved != 1 || res.Stats.Unresolved != 0 {
		t.Errorf("expected 1 resolved and 0 unresolved, got %+v", res.Stats)
	}
}

func TestConvert_NestedNameBinding(t *testing.T) {
	input := `# ::snt Bob likes himself.
(l / like-01
      :ARG0 (p / person :name (n / name :op1 "Bob"))
      :ARG1 p)`

	res, err := New().Convert(lines(input))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := `(like-01 :ARG0 (person :name (name :op1 "Bob")) :ARG1 (person))`
	if res.Graphs[0] != want {
		t.Errorf("graph = %q, want %q", res.Graphs[0], want)
	}
}

func TestConvert_KeepVariables(t *testing.T) {
	res, err := New(WithVariables(true)).Convert(lines(likesHimself))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := `(l / like :ARG0 (p / person :name "Bob") :ARG1 p)`
	if res.Graphs[0] != want {
		t.Errorf("graph = %q, want %q", res.Graphs[0], want)
	}
	if res.Stats.Resolved != 0 {
		t.Errorf("expected no resolution, got %d", res.Stats.Resolved)
	}
}

func TestConvert_Filter(t *testing.T) {
	tests := []struct {
		name      string
		filter    string
		wantGraph []string
		wantSent  []string
	}{
		{
			name:   "no filter",
			filter: "",
			wantGraph: []string{
				`(sing-01 :ARG0 (person :name (name :op1 "Bob")))`,
				`(be-located-at-91 :ARG1 (he) :ARG2 (there))`,
			},
			wantSent: []string{"Bob sings.", "He was there."},
		},
		{
			name:      "summary",
			filter:    "summary",
			wantGraph: []string{`(sing-01 :ARG0 (person :name (name :op1 "Bob")))`},
			wantSent:  []string{"Bob sings."},
		},
		{
			name:      "body",
			filter:    "body",
			wantGraph: []string{`(be-located-at-91 :ARG1 (he) :ARG2 (there))`},
			wantSent:  []string{"He was there."},
		},
		{
			name:   "absent tag",
			filter: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(WithFilter(tt.filter)).Convert(lines(proxyPair))
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if diff := cmp.Diff(tt.wantGraph, res.Graphs); diff != "" {
				t.Errorf("graphs mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantSent, res.Sentences); diff != "" {
				t.Errorf("sentences mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_CountMismatch(t *testing.T) {
	input := `# ::snt First.
# ::snt Second.
(a / alone)`

	res, err := New().Convert(lines(input))
	if err == nil {
		t.Fatal("expected error for mismatched counts")
	}
	if !errors.Is(err, ErrCountMismatch) {
		t.Errorf("expected ErrCountMismatch, got: %v", err)
	}
	if res != nil {
		t.Error("expected nil result on mismatch")
	}
}

func TestConvert_Deterministic(t *testing.T) {
	conv := New(WithFilter("summary"), WithFormat(format.Options{NormalizeSpacing: true}))
	first, err := conv.Convert(lines(proxyPair))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	second, err := conv.Convert(lines(proxyPair))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

func TestConvert_Scope(t *testing.T) {
	input := `# ::snt Bob sings.
(s / sing-01
      :ARG0 (p / person))

# ::snt He sings too.
(s / sing-01
      :ARG0 p)
`

	block, err := New().Convert(lines(input))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got, want := block.Graphs[1], "(sing-01 :ARG0 p)"; got != want {
		t.Errorf("block scope graph = %q, want %q", got, want)
	}
	if block.Stats.Unresolved != 1 {
		t.Errorf("expected 1 unresolved reference, got %d", block.Stats.Unresolved)
	}

	legacy, err := New(WithLegacyScope()).Convert(lines(input))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got, want := legacy.Graphs[1], "(sing-01 :ARG0 (person))"; got != want {
		t.Errorf("file scope graph = %q, want %q", got, want)
	}
}

func TestConvert_FormatAndTokenize(t *testing.T) {
	conv := New(
		WithFormat(format.Options{StripParens: true, StripSenseTags: true}),
		WithTokenizer(tokenizer.Word{}),
	)
	res, err := conv.Convert(lines(proxyPair))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	wantGraphs := []string{
		`sing :ARG0 person :name name :op1 "Bob"`,
		`be-located-at-91 :ARG1 he :ARG2 there`,
	}
	if diff := cmp.Diff(wantGraphs, res.Graphs); diff != "" {
		t.Errorf("graphs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bob sings .", "He was there ."}, res.Sentences); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_NFC(t *testing.T) {
	input := "# ::snt Cafe\u0301 opened.\n(o / open-01)"

	res, err := New(WithNFC(true)).Convert(lines(input))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got, want := res.Sentences[0], "Caf\u00e9 opened."; got != want {
		t.Errorf("sentence = %q, want %q", got, want)
	}
}

func TestConvertFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amr.txt")
	crlf := strings.ReplaceAll(likesHimself, "\n", "\r\n")
	if err := os.WriteFile(path, []byte(crlf), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := New().ConvertFile(path)
	if err != nil {
		t.Fatalf("ConvertFile failed: %v", err)
	}
	if len(res.Graphs) != 1 || len(res.Sentences) != 1 {
		t.Errorf("expected 1 graph and 1 sentence, got %d and %d", len(res.Graphs), len(res.Sentences))
	}
}

func TestConvertFile_NotFound(t *testing.T) {
	_, err := New().ConvertFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got: %v", err)
	}
}

func TestStats_Add(t *testing.T) {
	s := Stats{Graphs: 1, Unresolved: 2}
	s.Add(Stats{Graphs: 3, Resolved: 4, Unresolved: 1})
	want := Stats{Graphs: 4, Resolved: 4, Unresolved: 3}
	if s != want {
		t.Errorf("Add = %+v, want %+v", s, want)
	}
}
