// Package parse implements a parser-combinator framework over
// text.TextModel: a Parser[S, T] reads at a (line, col) and either fails
// or returns an updated user state plus a ResultTree. Primitives recognize
// single characters and line boundaries; combinators compose parsers by
// sequencing, alternation, and repetition; SectionP parses indented blocks
// through a re-indented window.
package parse

import (
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// Parser is a pure function from (state, model, position) to either
// failure (ok == false) or an updated state plus a ResultTree whose span
// starts at (line, col). Failure is an ordinary return value, never an
// error; the caller's state is returned unchanged on failure.
type Parser[S, T any] func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool)

func fail[S, T any](state S) (S, tree.ResultTree[T], bool) {
	return state, tree.ResultTree[T]{}, false
}

func succeed[S, T any](state S, n tree.ResultTree[T]) (S, tree.ResultTree[T], bool) {
	return state, n, true
}
