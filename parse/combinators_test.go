package parse

import (
	"testing"

	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

type label string

func mustSpan(t *testing.T, sl, sc, el, ec int) text.Span {
	t.Helper()
	return text.NewSpan(text.Position{Line: sl, Col: sc}, text.Position{Line: el, Col: ec})
}

func isChar(c rune) func(rune) bool {
	return func(r rune) bool { return r == c }
}

func TestSeqP_EmptyIsEmptyP(t *testing.T) {
	model := text.New("")
	_, res, ok := SeqP[struct{}, label]()(struct{}{}, model, 0, 0)
	if !ok || res.Kind != tree.Structural || !res.Span.Empty() {
		t.Fatalf("SeqP() should behave like emptyP, got %+v ok=%v", res, ok)
	}
}

func TestSeqP_SingleIsIdentity(t *testing.T) {
	model := text.New("a")
	p := CharP[struct{}, label](isChar('a'))
	seq := SeqP(p)
	_, resP, okP := p(struct{}{}, model, 0, 0)
	_, resSeq, okSeq := seq(struct{}{}, model, 0, 0)
	if okP != okSeq || resP.Kind != resSeq.Kind || resP.Span != resSeq.Span || len(resSeq.Children) != len(resP.Children) {
		t.Fatalf("SeqP(p) should equal p: %+v vs %+v", resP, resSeq)
	}
}

func TestSeqP_MatchesInOrder(t *testing.T) {
	model := text.New("ab")
	p := SeqP[struct{}, label](
		CharP[struct{}, label](isChar('a')),
		CharP[struct{}, label](isChar('b')),
	)
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok {
		t.Fatal("expected match")
	}
	if res.Span != mustSpan(t, 0, 0, 0, 2) {
		t.Fatalf("unexpected span %v", res.Span)
	}
	if len(res.Children) != 0 {
		t.Fatalf("expected both chars discarded, got %d children", len(res.Children))
	}
}

func TestSeqP_FailsOnMismatch(t *testing.T) {
	model := text.New("ac")
	p := SeqP[struct{}, label](
		CharP[struct{}, label](isChar('a')),
		CharP[struct{}, label](isChar('b')),
	)
	_, _, ok := p(struct{}{}, model, 0, 0)
	if ok {
		t.Fatal("expected failure")
	}
}

func TestOrP_TriesInOrderNoBacktracking(t *testing.T) {
	model := text.New("a")
	p := OrP(
		CharP[struct{}, label](isChar('x')),
		CharP[struct{}, label](isChar('a')),
	)
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok || res.Span != mustSpan(t, 0, 0, 0, 1) {
		t.Fatalf("expected second branch to match, got %+v ok=%v", res, ok)
	}
}

func TestOptP_SucceedsEvenWithoutMatch(t *testing.T) {
	model := text.New("b")
	p := OptP(CharP[struct{}, label](isChar('a')))
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok || !res.Span.Empty() {
		t.Fatalf("expected empty success, got %+v ok=%v", res, ok)
	}
}

func TestRepP_GreedyAndNeverFails(t *testing.T) {
	model := text.New("aaab")
	p := RepP(CharP[struct{}, label](isChar('a')))
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok || res.Span != mustSpan(t, 0, 0, 0, 3) {
		t.Fatalf("expected to consume 3 a's, got %+v ok=%v", res, ok)
	}
}

func TestRepP_StopsOnZeroLengthMatch(t *testing.T) {
	model := text.New("aaa")
	p := RepP(EmptyP[struct{}, label]())
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok || !res.Span.Empty() {
		t.Fatalf("expected RepP over emptyP to stop immediately, got %+v ok=%v", res, ok)
	}
}

func TestRep1P_RequiresOneMatch(t *testing.T) {
	model := text.New("b")
	p := Rep1P(CharP[struct{}, label](isChar('a')))
	_, _, ok := p(struct{}{}, model, 0, 0)
	if ok {
		t.Fatal("expected failure with zero matches")
	}
}

func TestJoinP_ElementsAndSeparators(t *testing.T) {
	model := text.New("a,a,a")
	p := JoinP(
		CharP[struct{}, label](isChar('a')),
		CharP[struct{}, label](isChar(',')),
	)
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok || res.Span != mustSpan(t, 0, 0, 0, 5) {
		t.Fatalf("expected full consumption, got %+v ok=%v", res, ok)
	}
}

func TestLazyP_SupportsRecursion(t *testing.T) {
	// balanced parens: S -> '(' S ')' | emptyP
	var s Parser[struct{}, label]
	s = OrP(
		SeqP(
			CharP[struct{}, label](isChar('(')),
			LazyP(func() Parser[struct{}, label] { return s }),
			CharP[struct{}, label](isChar(')')),
		),
		EmptyP[struct{}, label](),
	)

	model := text.New("(())")
	_, res, ok := s(struct{}{}, model, 0, 0)
	if !ok || res.Span != mustSpan(t, 0, 0, 0, 4) {
		t.Fatalf("expected to consume balanced parens, got %+v ok=%v", res, ok)
	}
}

func TestLiteralP_Labels(t *testing.T) {
	model := text.New("let")
	p := LiteralP[struct{}, label]("let", tree.WithLabel[label]("kw-let"))
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok {
		t.Fatal("expected match")
	}
	if res.Kind != tree.Labeled || res.Label != "kw-let" {
		t.Fatalf("expected labeled kw-let, got %+v", res)
	}
}

func TestLiteralsP_TriesEachLiteral(t *testing.T) {
	model := text.New("else")
	p := LiteralsP[struct{}, label]("if", "else")
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok || res.Span != mustSpan(t, 0, 0, 0, 4) {
		t.Fatalf("expected \"else\" to match, got %+v ok=%v", res, ok)
	}
}

func TestSetTypeP_OverridesKind(t *testing.T) {
	model := text.New("a")
	p := SetTypeP[struct{}, label](CharP[struct{}, label](isChar('a')), "a-tok")
	_, res, ok := p(struct{}{}, model, 0, 0)
	if !ok || res.Kind != tree.Labeled || res.Label != "a-tok" {
		t.Fatalf("expected labeled a-tok, got %+v", res)
	}
}

func TestModifyTypeP_OnlyAffectsLabeled(t *testing.T) {
	model := text.New("a")
	discarded := ModifyTypeP(CharP[struct{}, label](isChar('a')), func(l label) label { return l + "!" })
	_, res, ok := discarded(struct{}{}, model, 0, 0)
	if !ok || res.Kind != tree.Discarded {
		t.Fatalf("expected discarded kind preserved, got %+v", res)
	}
}
