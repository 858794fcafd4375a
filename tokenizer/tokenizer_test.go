package tokenizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testModel() *Model {
	return &Model{Pieces: []Piece{
		{Piece: "<unk>", Score: 0, Type: PieceUnknown},
		{Piece: "<s>", Score: 0, Type: PieceControl},
		{Piece: "▁Bob", Score: -1, Type: PieceNormal},
		{Piece: "▁like", Score: -2, Type: PieceNormal},
		{Piece: "▁likes", Score: -5, Type: PieceNormal},
		{Piece: "s", Score: -1, Type: PieceNormal},
		{Piece: "▁", Score: -3, Type: PieceNormal},
	}}
}

func TestWord_Tokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "Bob likes himself", []string{"Bob", "likes", "himself"}},
		{"final period", "Bob likes himself.", []string{"Bob", "likes", "himself", "."}},
		{"abbreviation", "Mr. Smith left.", []string{"Mr.", "Smith", "left", "."}},
		{"clitic", "Bob didn't sing", []string{"Bob", "did", "n't", "sing"}},
		{"possessive", "Bob's dog", []string{"Bob", "'s", "dog"}},
		{"brackets", "(home).", []string{"(", "home", ")", "."}},
		{"quotes", `"Yes," he said`, []string{`"`, "Yes", ",", `"`, "he", "said"}},
		{"number", "It cost 3.50 dollars", []string{"It", "cost", "3.50", "dollars"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Word{}.Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil, "  keep  as is "); got != "  keep  as is " {
		t.Errorf("Join(nil) = %q", got)
	}
	if got := Join(Whitespace, "  a  b "); got != "a b" {
		t.Errorf("Join(Whitespace) = %q, want %q", got, "a b")
	}
	if got := Join(Word{}, "Bob likes himself."); got != "Bob likes himself ." {
		t.Errorf("Join(Word) = %q", got)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "none"} {
		tok, err := ByName(name, "")
		if err != nil || tok != nil {
			t.Errorf("ByName(%q) = %v, %v; want nil, nil", name, tok, err)
		}
	}
	if _, err := ByName("word", ""); err != nil {
		t.Errorf("ByName(word) error = %v", err)
	}
	if _, err := ByName("sentencepiece", ""); err == nil {
		t.Error("expected error for sentencepiece without model")
	}
	if _, err := ByName("bogus", ""); err == nil {
		t.Error("expected error for unknown tokenizer")
	}
}

func TestParseModel(t *testing.T) {
	want := testModel()
	got, err := ParseModel(AppendModel(nil, want))
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestParseModel_Invalid(t *testing.T) {
	if _, err := ParseModel([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Error("expected error for truncated data")
	}
	if _, err := ParseModel(nil); err == nil {
		t.Error("expected error for model without pieces")
	}
}

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.model")
	if err := os.WriteFile(path, AppendModel(nil, testModel()), 0o644); err != nil {
		t.Fatal(err)
	}

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if len(model.Pieces) != 7 {
		t.Errorf("expected 7 pieces, got %d", len(model.Pieces))
	}
	if model.Pieces[0].Type != PieceUnknown {
		t.Errorf("expected piece[0] to be unknown, got %v", model.Pieces[0].Type)
	}
}

func TestLoadModel_FileNotFound(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "nonexistent.model"))
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestSentencePiece_Tokenize(t *testing.T) {
	sp := NewSentencePieceFromModel(testModel())

	tests := []struct {
		input string
		want  []string
	}{
		{"Bob likes", []string{"▁Bob", "▁like", "s"}},
		{"Bob!", []string{"▁Bob", "!"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := sp.Tokenize(tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}

	if got := Detokenize(sp.Tokenize("Bob likes")); got != "Bob likes" {
		t.Errorf("Detokenize = %q, want %q", got, "Bob likes")
	}
}
