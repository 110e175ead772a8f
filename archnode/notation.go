// SPDX-License-Identifier: MIT

package archnode

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// configuration is the grammar of vertex configuration notation:
// dot separated polygon sizes, each with an optional ^exponent, either bare
// or wrapped in one pair of parentheses.
type configuration struct {
	Wrapped []*term `parser:"  \"(\" @@ ( \".\" @@ )* \")\""`
	Bare    []*term `parser:"| @@ ( \".\" @@ )*"`
}

type term struct {
	Sides int  `parser:"@Int"`
	Power *int `parser:"( \"^\" @Int )?"`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[().^]`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var parseConfiguration = participle.MustBuild[configuration](
	participle.Lexer(notationLexer),
)

// ParseNotation parses vertex configuration notation such as "3.4.6.4",
// "3^2.4.3.4" or "(3.12^2)" into the sequence of polygon sizes. Sequences
// longer than MaxNodeLength are rejected before they are expanded.
func ParseNotation(s string) ([]int, error) {
	cfg, err := parseConfiguration.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(ErrBadNotation, err.Error())
	}
	terms := append(cfg.Wrapped, cfg.Bare...)
	if len(terms) == 0 {
		return nil, errors.Wrapf(ErrBadNotation, "%q: no polygons", s)
	}
	var seq []int
	for _, t := range terms {
		if t.Sides < 3 {
			return nil, errors.Wrapf(ErrBadNotation, "%q: a polygon needs at least 3 sides, got %d", s, t.Sides)
		}
		n := 1
		if t.Power != nil {
			n = *t.Power
		}
		if n < 1 {
			return nil, errors.Wrapf(ErrBadNotation, "%q: exponent must be positive, got %d", s, n)
		}
		if n > MaxNodeLength-len(seq) {
			return nil, errors.Wrapf(ErrBadNotation, "%q: more than %d polygons around a vertex", s, MaxNodeLength)
		}
		for range n {
			seq = append(seq, t.Sides)
		}
	}
	return seq, nil
}

// Format writes seq in vertex configuration notation, collapsing runs of
// equal sizes into exponents: [3,3,4,3,4] becomes "3^2.4.3.4".
func Format(seq []int) string {
	var b strings.Builder
	for i := 0; i < len(seq); {
		j := i
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(seq[i]))
		if j-i > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(j - i))
		}
		i = j
	}
	return b.String()
}

// Lookup returns the catalog indices whose sequence equals seq up to rotation.
func Lookup(seq []int) []int {
	var out []int
	for i, a := range Catalog {
		if len(a) == len(seq) && SubCirculation(a, seq) >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// LookupNotation parses s and returns the matching catalog indices.
// ErrUnknownNode is returned when the configuration is not a uniform node.
func LookupNotation(s string) ([]int, error) {
	seq, err := ParseNotation(s)
	if err != nil {
		return nil, err
	}
	idx := Lookup(seq)
	if len(idx) == 0 {
		return nil, errors.Wrapf(ErrUnknownNode, "%q", s)
	}
	return idx, nil
}
