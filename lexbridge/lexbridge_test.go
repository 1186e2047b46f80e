package lexbridge

import (
	"testing"

	"github.com/nihei9/indentlr/parse"
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

type label string

func TestParserL_MatchWidth(t *testing.T) {
	p := parse.Rep1P[struct{}, label](parse.CharP[struct{}, label](func(r rune) bool { return r == 'a' }))
	lx := ParserL(p)

	n := lx([]rune("aaab"), 0)
	if n != 3 {
		t.Fatalf("expected width 3, got %d", n)
	}
}

func TestParserL_NoMatchIsNegativeOne(t *testing.T) {
	p := parse.CharP[struct{}, label](func(r rune) bool { return r == 'x' })
	lx := ParserL(p)

	n := lx([]rune("abc"), 0)
	if n != -1 {
		t.Fatalf("expected -1 on no match, got %d", n)
	}
}

func TestParserL_RespectsStartColumn(t *testing.T) {
	p := parse.Rep1P[struct{}, label](parse.CharP[struct{}, label](func(r rune) bool { return r == 'b' }))
	lx := ParserL(p)

	n := lx([]rune("abbb"), 1)
	if n != 3 {
		t.Fatalf("expected width 3 starting at col 1, got %d", n)
	}
}

func TestNullP_ThreadsInitialState(t *testing.T) {
	type counter int
	inner := parse.CharP[counter, label](func(r rune) bool { return r == 'a' })
	var seen counter
	probe := func(state counter, model text.TextModel, line, col int) (counter, tree.ResultTree[label], bool) {
		seen = state
		return inner(state, model, line, col)
	}
	erased := NullP[counter, label](probe, 5)
	lx := ParserL(erased)

	n := lx([]rune("a"), 0)
	if n != 1 {
		t.Fatalf("expected width 1, got %d", n)
	}
	if seen != 5 {
		t.Fatalf("expected the wrapped parser to receive initial state 5, got %d", seen)
	}
}
