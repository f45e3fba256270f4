package dssr

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/tetrado/pkg/errors"
)

// document mirrors the subset of the DSSR JSON output that is consumed.
type document struct {
	Nts    []ntRecord    `json:"nts"`
	Pairs  *[]pairRecord `json:"pairs"`
	Stacks []stackRecord `json:"stacks"`
}

type ntRecord struct {
	ID    string `json:"nt_id"`
	Chain string `json:"chain_name"`
	Index int    `json:"index"`
}

type pairRecord struct {
	NT1 string `json:"nt1"`
	NT2 string `json:"nt2"`
	LW  string `json:"LW"`
}

type stackRecord struct {
	NtsLong string `json:"nts_long"`
}

// Parse decodes a DSSR JSON document. The name identifies the input in
// error messages.
//
// Unparsable documents yield an error with code INVALID_JSON; a pair that
// references an unlisted nucleotide yields INVALID_INPUT. A document
// without a pairs field is valid and produces a Structure with HasPairs
// set to false.
func Parse(name string, data []byte) (*Structure, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "invalid JSON in %s", name)
	}

	nts := make([]Nucleotide, len(doc.Nts))
	for i, nt := range doc.Nts {
		nts[i] = Nucleotide{ID: nt.ID, Chain: nt.Chain, Index: nt.Index}
	}

	var pairs []Pair
	if doc.Pairs != nil {
		pairs = make([]Pair, 0, len(*doc.Pairs))
		for _, p := range *doc.Pairs {
			pairs = append(pairs, Pair{NT1: p.NT1, NT2: p.NT2, LW: p.LW})
		}
	}

	stacks := make([]Stack, 0, len(doc.Stacks))
	for _, st := range doc.Stacks {
		stacks = append(stacks, Stack{Members: splitMembers(st.NtsLong)})
	}

	s, err := NewStructure(nts, pairs, stacks)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed annotation in %s", name)
	}
	return s, nil
}

// Read decodes a DSSR JSON document from r. Read does not close r.
func Read(name string, r io.Reader) (*Structure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return Parse(name, data)
}

// ReadFile reads and decodes the DSSR JSON document at path.
func ReadFile(path string) (*Structure, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

func splitMembers(ntsLong string) []string {
	if ntsLong == "" {
		return nil
	}
	return strings.Split(ntsLong, ",")
}
