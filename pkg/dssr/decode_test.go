package dssr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tderrors "github.com/matzehuels/tetrado/pkg/errors"
)

const sampleDoc = `{
  "nts": [
    {"nt_id": "A.DG1", "chain_name": "A", "index": 1},
    {"nt_id": "A.DG2", "chain_name": "A", "index": 2},
    {"nt_id": "1:B.DG3", "chain_name": "B", "index": 3}
  ],
  "pairs": [
    {"nt1": "A.DG1", "nt2": "A.DG2", "LW": "cWH"},
    {"nt1": "A.DG2", "nt2": "1:B.DG3", "LW": "cHW"}
  ],
  "stacks": [
    {"nts_long": "A.DG1,A.DG2"},
    {"nts_long": "1:B.DG3"}
  ]
}`

func TestParse(t *testing.T) {
	s, err := Parse("sample.json", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if !s.HasPairs {
		t.Error("HasPairs = false, want true")
	}
	if len(s.Nucleotides) != 3 {
		t.Fatalf("len(Nucleotides) = %d, want 3", len(s.Nucleotides))
	}
	if got := s.Nucleotides[0].ID; got != "A.DG1" {
		t.Errorf("first nucleotide = %q, want A.DG1 (document order)", got)
	}
	if len(s.Pairs) != 2 || s.Pairs[1].LW != LWcHW {
		t.Errorf("Pairs = %+v", s.Pairs)
	}
	if len(s.Stacks) != 2 {
		t.Fatalf("len(Stacks) = %d, want 2", len(s.Stacks))
	}
	if got := strings.Join(s.Stacks[0].Members, "|"); got != "A.DG1|A.DG2" {
		t.Errorf("Stacks[0] = %q", got)
	}
}

func TestParseSymmetryChain(t *testing.T) {
	s, err := Parse("sample.json", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		id    string
		chain string
		index int
	}{
		{"A.DG1", "A", 1},
		{"A.DG2", "A", 2},
		{"1:B.DG3", "1:B", 3},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := s.Chain(tt.id); got != tt.chain {
				t.Errorf("Chain(%q) = %q, want %q", tt.id, got, tt.chain)
			}
			if got := s.Index(tt.id); got != tt.index {
				t.Errorf("Index(%q) = %d, want %d", tt.id, got, tt.index)
			}
		})
	}

	if got := s.Index("missing"); got != -1 {
		t.Errorf("Index(missing) = %d, want -1", got)
	}
}

func TestParseWithoutPairs(t *testing.T) {
	s, err := Parse("empty.json", []byte(`{"nts": [{"nt_id": "A.G1", "chain_name": "A", "index": 1}]}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.HasPairs {
		t.Error("HasPairs = true, want false")
	}
	if len(s.Stacks) != 0 {
		t.Errorf("len(Stacks) = %d, want 0", len(s.Stacks))
	}
}

func TestParseEmptyPairs(t *testing.T) {
	s, err := Parse("empty.json", []byte(`{"nts": [], "pairs": []}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !s.HasPairs {
		t.Error("HasPairs = false for an empty pairs array")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code tderrors.Code
	}{
		{"empty document", "", tderrors.ErrCodeInvalidJSON},
		{"truncated", `{"nts": [`, tderrors.ErrCodeInvalidJSON},
		{"trailing garbage", `{} {}`, tderrors.ErrCodeInvalidJSON},
		{"unknown nucleotide", `{"nts": [], "pairs": [{"nt1": "A.G1", "nt2": "A.G2", "LW": "cWH"}]}`, tderrors.ErrCodeInvalidInput},
		{"duplicate nucleotide", `{"nts": [{"nt_id": "A.G1"}, {"nt_id": "A.G1"}], "pairs": []}`, tderrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.json", []byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !tderrors.Is(err, tt.code) {
				t.Errorf("Parse() code = %v, want %v", tderrors.GetCode(err), tt.code)
			}
			if !strings.Contains(err.Error(), "bad.json") {
				t.Errorf("error %q does not name the input", err)
			}
		})
	}
}

func TestParseUnknownNucleotideSentinel(t *testing.T) {
	_, err := Parse("bad.json", []byte(`{"pairs": [{"nt1": "X", "nt2": "Y", "LW": "cWH"}]}`))
	if !errors.Is(err, ErrUnknownNucleotide) {
		t.Errorf("errors.Is(err, ErrUnknownNucleotide) = false: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(s.Pairs) != 2 {
		t.Errorf("len(Pairs) = %d, want 2", len(s.Pairs))
	}

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	if !tderrors.Is(err, tderrors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) code = %v, want FILE_NOT_FOUND", tderrors.GetCode(err))
	}
}

func TestRunnerMissingBinary(t *testing.T) {
	r := NewRunner(filepath.Join(t.TempDir(), "no-such-dssr"))
	_, err := r.Run(t.Context(), "1abc.pdb")
	if !tderrors.Is(err, tderrors.ErrCodeAnnotatorFailed) {
		t.Errorf("Run() code = %v, want ANNOTATOR_FAILED", tderrors.GetCode(err))
	}
}

func TestNewRunnerDefault(t *testing.T) {
	if got := NewRunner("").Binary; got != DefaultBinary {
		t.Errorf("Binary = %q, want %q", got, DefaultBinary)
	}
}
