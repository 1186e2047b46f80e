// Package text implements the immutable, line-addressable TextModel that
// every Parser reads from, plus the CutOff/CutOut/Until window views
// derived from one. Only the root model constructors normalize characters
// (delegating to golang.org/x/text/unicode/norm); everything downstream
// (windows, combinators, the LR driver) only ever slices an already-built
// TextModel.
package text

import "github.com/nihei9/indentlr/errs"

// Position is a (line, column) pair of naturals. line indexes a
// text-collection; col indexes within a line in code points.
type Position struct {
	Line int
	Col  int
}

func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}

func (p Position) LessEq(o Position) bool {
	return p == o || p.Less(o)
}

// Span is (startLine, startCol, endLine, endCol). Empty spans (Start ==
// End) are legal; Start must never be strictly after End.
type Span struct {
	Start Position
	End   Position
}

func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Point returns the empty span sitting at p.
func Point(p Position) Span {
	return Span{Start: p, End: p}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Contains reports whether o lies within s (inclusive of both ends).
func (s Span) Contains(o Span) bool {
	return s.Start.LessEq(o.Start) && o.End.LessEq(s.End)
}

// TextModel is the abstract, immutable, line-addressable source a Parser
// reads from. All implementations, the root model and every window view,
// are safe to share across goroutines since none of them mutate state
// after construction.
type TextModel interface {
	// LineCount returns the number of addressable lines.
	LineCount() int
	// LineAt returns the code points of line i.
	LineAt(i int) []rune
	// CharAt returns the code point at (line, col) and whether it exists.
	CharAt(line, col int) (rune, bool)
	// Slice returns the text covered by a span.
	Slice(span Span) string
	// Valid reports whether (line, col) addresses a line or sits at a
	// line's exclusive end.
	Valid(line, col int) bool
	// Assert panics with errs.InvalidPosition if !Valid(line, col).
	Assert(line, col int)
	// Absolute translates an internal coordinate to the outermost
	// source coordinate; it is the identity on a root model and chains
	// through any window views.
	Absolute(line, col int) Position
}

// Shifter is implemented by window views, such as CutOut, that can
// translate a coordinate inside themselves back to the coordinate space
// of their immediate parent. SectionP type-asserts for this interface to
// restore source coordinates after running a body parser over a window.
type Shifter interface {
	Shift(line, col int) Position
}

// AtEOF reports whether (line, col) sits at m's logical end: past the last
// line, or at the exclusive end of the last line. Shared by EofP and the
// LR driver's built-in handling of the EOF terminal, which, unlike every
// other terminal, is a condition of the cursor's position rather than
// something a terminal parser scans text for.
func AtEOF(m TextModel, line, col int) bool {
	lc := m.LineCount()
	return line == lc || (line == lc-1 && col == len(m.LineAt(line)))
}

func assertOn(m TextModel, line, col int) {
	if !m.Valid(line, col) {
		errs.New(errs.InvalidPosition, errs.Position{Line: line, Col: col}, nil)
	}
}
