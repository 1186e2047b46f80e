// Package lexbridge adapts a parse.Parser into the text.Lexer shape: a
// position-advance function SectionP's windowing (spacesL/indentationL)
// can call directly, so the same recognizer can serve as both a parser
// and an indentation lexer.
package lexbridge

import (
	"github.com/nihei9/indentlr/parse"
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// NullP erases a stateful Parser into a stateless one (state type
// struct{}) by threading initialState through every call and discarding
// the state the Parser returns. This is the usual way to turn a
// configuration-only Parser, such as the spacing recognizers sectionP
// wants, into something ParserL can lift into a Lexer.
func NullP[S, T any](p parse.Parser[S, T], initialState S) parse.Parser[struct{}, T] {
	return func(_ struct{}, model text.TextModel, line, col int) (struct{}, tree.ResultTree[T], bool) {
		_, res, ok := p(initialState, model, line, col)
		return struct{}{}, res, ok
	}
}

// ParserL wraps a stateless Parser into a text.Lexer by constructing a
// single-line TextModel out of line, running p at column col, and
// returning the number of columns consumed on success or -1 on failure.
// Combine with NullP to lift a stateful Parser: ParserL(NullP(p, init)).
func ParserL[T any](p parse.Parser[struct{}, T]) text.Lexer {
	return func(line []rune, col int) int {
		model := text.NewFromLines([]string{string(line)})
		_, res, ok := p(struct{}{}, model, 0, col)
		if !ok {
			return -1
		}
		return res.Span.End.Col - col
	}
}
