package parse

import (
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// BodyFactory builds the Parser that reads a section's body, given the
// source model the section started from, the state after the bullet
// matched, and the bullet's own result. It is called once the bullet has
// matched, so it can inspect the bullet result to decide how to parse the
// body (e.g. dispatching on the bullet's label).
type BodyFactory[S, T any] func(source text.TextModel, state S, bullet tree.ResultTree[T]) Parser[S, T]

// SectionP recognizes a bullet line followed by an indented body:
//
//	<bullet>
//	    <body lines, each starting with an indentation indentationL recognizes>
//	<after>
//
// Entry must be at column 0. bulletP runs over a CutOff view whose last
// line is the first non-indented line after the entry line, so it cannot
// read past that line; the indented lines before it stay visible to
// bulletP. The body runs over a CutOut view anchored right after the
// bullet, with column 0 meaning "the body's logical start" regardless of
// how deep the block is actually indented; spacesL trims the first
// continuation line and indentationL trims every line after that, stopping
// the window at the first line indentationL rejects. The body's result is
// shifted back into source coordinates before being assembled into the
// section's own node. afterP runs starting exactly where the shifted body
// left off, still on the last body line, so an afterP that needs to skip
// a newline before its own content is responsible for consuming that
// newline itself. afterP's failure is non-fatal: it simply omits the
// after branch.
func SectionP[S, T any](bulletP Parser[S, T], bodyOf BodyFactory[S, T], spacesL, indentationL text.Lexer, afterP Parser[S, T]) Parser[S, T] {
	return func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
		model.Assert(line, col)
		if col != 0 {
			return fail[S, T](state)
		}

		isIndented := func(l int) bool {
			return spacesL(model.LineAt(l), 0) > 0
		}
		cutoff := text.CutOff(model, line, isIndented)

		bstate, bulletRes, ok := bulletP(state, cutoff, line, 0)
		if !ok {
			return fail[S, T](state)
		}
		bLine, bCol := bulletRes.Span.End.Line, bulletRes.Span.End.Col

		skipFirst := func(l []rune, c int) int { return spacesL(l, c) }
		skipRest := func(l []rune, c int) int { return indentationL(l, c) }
		window := text.CutOut(model, bLine, bCol, skipFirst, skipRest)

		bodyP := bodyOf(model, bstate, bulletRes)
		dstate, bodyRes, ok := bodyP(bstate, window, 0, 0)
		if !ok {
			return fail[S, T](state)
		}

		shiftedBody := bodyRes
		if shifter, ok := window.(text.Shifter); ok {
			shiftedBody = shiftTree(bodyRes, shifter)
		}

		children := []tree.ResultTree[T]{bulletRes, shiftedBody}
		end := shiftedBody.Span.End

		if afterP != nil {
			postLine, postCol := end.Line, end.Col
			astate, afterRes, ok := afterP(dstate, model, postLine, postCol)
			if ok {
				dstate = astate
				children = append(children, afterRes)
				end = afterRes.Span.End
			}
		}

		start := text.Position{Line: line, Col: col}
		node := tree.Join(children, tree.NoLabel[T](), tree.Override(start), tree.Override(end))
		return succeed(dstate, node)
	}
}

// shiftTree recursively translates n's span, and every descendant's span,
// from a window's coordinate space back to the window's parent via
// shifter.Shift.
func shiftTree[T any](n tree.ResultTree[T], shifter text.Shifter) tree.ResultTree[T] {
	n.Span = text.NewSpan(
		shifter.Shift(n.Span.Start.Line, n.Span.Start.Col),
		shifter.Shift(n.Span.End.Line, n.Span.End.Col),
	)
	if len(n.Children) > 0 {
		shifted := make([]tree.ResultTree[T], len(n.Children))
		for i, c := range n.Children {
			shifted[i] = shiftTree(c, shifter)
		}
		n.Children = shifted
	}
	return n
}

// spacesLexer matches a run of U+0020 spaces, returning how many were
// consumed (zero if col isn't a space).
func spacesLexer(line []rune, col int) int {
	n := 0
	for col+n < len(line) && line[col+n] == ' ' {
		n++
	}
	return n
}

// fixedIndentLexer returns a text.Lexer requiring exactly width leading
// spaces at col, or -1 if the line doesn't have them.
func fixedIndentLexer(width int) text.Lexer {
	return func(line []rune, col int) int {
		if col+width > len(line) {
			return -1
		}
		for i := 0; i < width; i++ {
			if line[col+i] != ' ' {
				return -1
			}
		}
		return width
	}
}

// IndentedListP is the common "bullet line + N-space-indented body" shape
// built from SectionP: a convenience for the frequent case where the body's
// indentation is a fixed number of spaces rather than a custom lexer.
func IndentedListP[S, T any](bulletP Parser[S, T], indentWidth int, bodyOf BodyFactory[S, T], afterP Parser[S, T]) Parser[S, T] {
	return SectionP(bulletP, bodyOf, spacesLexer, fixedIndentLexer(indentWidth), afterP)
}
