package parse

import (
	"sync"

	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// SeqP threads state and cursor through ps in order, failing as soon as one
// of them fails. The assembled node is Structural, with Discarded children
// dropped by the underlying tree.Join call. SeqP() is EmptyP; SeqP(p) is p
// itself.
func SeqP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	switch len(ps) {
	case 0:
		return EmptyP[S, T]()
	case 1:
		return ps[0]
	}
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		entryState := state
		start := text.Position{Line: line, Col: col}
		curLine, curCol := line, col
		children := make([]tree.ResultTree[T], 0, len(ps))
		for _, p := range ps {
			ns, res, ok := p(state, model, curLine, curCol)
			if !ok {
				return fail[S, T](entryState)
			}
			state = ns
			children = append(children, res)
			curLine, curCol = res.Span.End.Line, res.Span.End.Col
		}
		end := text.Position{Line: curLine, Col: curCol}
		node := tree.Join(children, tree.NoLabel[T](), tree.Override(start), tree.Override(end))
		return succeed(state, node)
	}
}

// OrP tries ps in order and returns the first success. There is no
// backtracking inside whichever branch is chosen.
func OrP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		for _, p := range ps {
			ns, res, ok := p(state, model, line, col)
			if ok {
				return succeed(ns, res)
			}
		}
		return fail[S, T](state)
	}
}

// OptP is OrP(SeqP(ps...), EmptyP()).
func OptP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	return OrP(SeqP(ps...), EmptyP[S, T]())
}

// RepP is greedy repetition of SeqP(ps...); it always succeeds, stopping as
// soon as the inner sequence fails to match. A zero-length match also stops
// the loop, since repeating it forever would never advance the cursor.
func RepP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	inner := SeqP(ps...)
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		start := text.Position{Line: line, Col: col}
		curLine, curCol := line, col
		var children []tree.ResultTree[T]
		for {
			ns, res, ok := inner(state, model, curLine, curCol)
			if !ok {
				break
			}
			state = ns
			children = append(children, res)
			curLine, curCol = res.Span.End.Line, res.Span.End.Col
			if res.Span.Empty() {
				break
			}
		}
		end := text.Position{Line: curLine, Col: curCol}
		node := tree.Join(children, tree.NoLabel[T](), tree.Override(start), tree.Override(end))
		return succeed(state, node)
	}
}

// Rep1P requires at least one occurrence: SeqP(p, RepP(p)).
func Rep1P[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	inner := SeqP(ps...)
	return SeqP(inner, RepP(inner))
}

// JoinP is SeqP(elem, RepP(sep, elem)).
func JoinP[S, T any](elem, sep Parser[S, T]) Parser[S, T] {
	return SeqP(elem, RepP(sep, elem))
}

// LazyP memoizes the Parser thunk() builds on first use, behind a
// sync.Once. This is what makes recursive grammars possible: a production
// can refer to itself by wrapping the self-reference in LazyP and resolving
// it lazily instead of at declaration time, when the recursive value
// wouldn't exist yet.
func LazyP[S, T any](thunk func() Parser[S, T]) Parser[S, T] {
	var once sync.Once
	var p Parser[S, T]
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		once.Do(func() { p = thunk() })
		return p(state, model, line, col)
	}
}

// LiteralP matches lit character by character and wraps the match per
// label: Labeled if label is WithLabel, Structural if NoLabel, Discarded if
// DiscardLabel.
func LiteralP[S, T any](lit string, label tree.LabelOverride[T]) Parser[S, T] {
	runes := []rune(lit)
	ps := make([]Parser[S, T], len(runes))
	for i, r := range runes {
		r := r
		ps[i] = CharP[S, T](func(c rune) bool { return c == r })
	}
	inner := SeqP(ps...)
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		ns, res, ok := inner(state, model, line, col)
		if !ok {
			return fail[S, T](state)
		}
		node := tree.Join[T](nil, label, tree.Override(res.Span.Start), tree.Override(res.Span.End))
		return succeed(ns, node)
	}
}

// LiteralsP is OrP of LiteralP(lit, NoLabel()) over lits, tried in order.
func LiteralsP[S, T any](lits ...string) Parser[S, T] {
	ps := make([]Parser[S, T], len(lits))
	for i, l := range lits {
		ps[i] = LiteralP[S, T](l, tree.NoLabel[T]())
	}
	return OrP(ps...)
}

// ModifyResultP post-processes p's successful result with f. Returning
// false from f rewrites the success into a failure.
func ModifyResultP[S, T any](p Parser[S, T], f func(tree.ResultTree[T]) (tree.ResultTree[T], bool)) Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		ns, res, ok := p(state, model, line, col)
		if !ok {
			return fail[S, T](state)
		}
		newRes, keep := f(res)
		if !keep {
			return fail[S, T](state)
		}
		return succeed(ns, newRes)
	}
}

// ModifyTypeP rewrites a Labeled result's label via f, leaving Structural
// and Discarded results untouched.
func ModifyTypeP[S, T any](p Parser[S, T], f func(T) T) Parser[S, T] {
	return ModifyResultP(p, func(n tree.ResultTree[T]) (tree.ResultTree[T], bool) {
		if n.Kind == tree.Labeled {
			n.Label = f(n.Label)
		}
		return n, true
	})
}

// SetTypeP forces p's successful result to be Labeled(label), regardless of
// its previous kind.
func SetTypeP[S, T any](p Parser[S, T], label T) Parser[S, T] {
	return ModifyResultP(p, func(n tree.ResultTree[T]) (tree.ResultTree[T], bool) {
		n.Kind = tree.Labeled
		n.Label = label
		return n, true
	})
}
