package parse

import (
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// EmptyP always succeeds with a zero-length Structural node.
func EmptyP[S, T any]() Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		p := text.Position{Line: line, Col: col}
		return succeed[S, T](state, tree.Struct[T](text.NewSpan(p, p), nil))
	}
}

// FailP always fails.
func FailP[S, T any]() Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		return fail[S, T](state)
	}
}

// CharP succeeds, consuming one code point, when (line, col) is inside a
// line and pred matches the code point there. The resulting node is
// Discarded, and user state is unchanged.
func CharP[S, T any](pred func(rune) bool) Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		c, exists := model.CharAt(line, col)
		if !exists || !pred(c) {
			return fail[S, T](state)
		}
		start := text.Position{Line: line, Col: col}
		end := text.Position{Line: line, Col: col + 1}
		return succeed[S, T](state, tree.Discard[T](text.NewSpan(start, end)))
	}
}

// AnyCharP matches any single code point.
func AnyCharP[S, T any]() Parser[S, T] {
	return CharP[S, T](func(rune) bool { return true })
}

// NewlineP succeeds at the end of a non-last line, spanning the newline
// transition to (line+1, 0). It deliberately does not succeed at the end
// of the last line, unlike EolP, which treats end of input as an
// alternative. "There is a newline here" and "the input ends here" stay
// distinct conditions; grammars that need either use EolP.
func NewlineP[S, T any]() Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		if line >= model.LineCount()-1 {
			return fail[S, T](state)
		}
		if col != len(model.LineAt(line)) {
			return fail[S, T](state)
		}
		start := text.Position{Line: line, Col: col}
		end := text.Position{Line: line + 1, Col: 0}
		return succeed[S, T](state, tree.Discard[T](text.NewSpan(start, end)))
	}
}

// EofP succeeds at the model's exclusive end (LineCount() == line) or at
// the end of the last line; it never advances the cursor.
func EofP[S, T any]() Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		if !text.AtEOF(model, line, col) {
			return fail[S, T](state)
		}
		p := text.Position{Line: line, Col: col}
		return succeed[S, T](state, tree.Discard[T](text.NewSpan(p, p)))
	}
}

// BolP succeeds at the start of any existing line.
func BolP[S, T any]() Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		if col != 0 || line >= model.LineCount() {
			return fail[S, T](state)
		}
		p := text.Position{Line: line, Col: col}
		return succeed[S, T](state, tree.Discard[T](text.NewSpan(p, p)))
	}
}

// EolP is EofP | NewlineP.
func EolP[S, T any]() Parser[S, T] {
	return OrP(EofP[S, T](), NewlineP[S, T]())
}

// NotP succeeds, with a zero-length Discarded node and unchanged state,
// iff p fails. Whatever state p's probing run produced is discarded;
// only the caller's incoming state comes back, so a probe never leaks
// state mutations into the surrounding parse.
func NotP[S, T any](p Parser[S, T]) Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		_, _, matched := p(state, model, line, col)
		if matched {
			return fail[S, T](state)
		}
		pos := text.Position{Line: line, Col: col}
		return succeed[S, T](state, tree.Discard[T](text.NewSpan(pos, pos)))
	}
}

// LookaheadP succeeds, with a zero-length Discarded node and unchanged
// state, iff p succeeds.
func LookaheadP[S, T any](p Parser[S, T]) Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		_, _, matched := p(state, model, line, col)
		if !matched {
			return fail[S, T](state)
		}
		pos := text.Position{Line: line, Col: col}
		return succeed[S, T](state, tree.Discard[T](text.NewSpan(pos, pos)))
	}
}
