package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// rootModel is the source-of-truth TextModel built directly from user
// input. Every window view ultimately chains back to one of these.
type rootModel struct {
	lines [][]rune
}

// New splits s into lines on any of "\n", "\r\n", "\r" and NFC-normalizes
// each line before storing it. Normalization happens once, here, so that
// every downstream combinator and window view can compare and index
// code points without re-normalizing.
func New(s string) TextModel {
	return NewFromLines(splitLines(s))
}

// NewFromLines builds a TextModel from already-split lines, still
// NFC-normalizing each one.
func NewFromLines(lines []string) TextModel {
	rm := &rootModel{lines: make([][]rune, len(lines))}
	for i, l := range lines {
		rm.lines[i] = []rune(norm.NFC.String(l))
	}
	return rm
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			i++
			start = i
		case '\r':
			lines = append(lines, s[start:i])
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func (m *rootModel) LineCount() int {
	return len(m.lines)
}

func (m *rootModel) LineAt(i int) []rune {
	return m.lines[i]
}

func (m *rootModel) CharAt(line, col int) (rune, bool) {
	if line < 0 || line >= len(m.lines) {
		return 0, false
	}
	l := m.lines[line]
	if col < 0 || col >= len(l) {
		return 0, false
	}
	return l[col], true
}

func (m *rootModel) Slice(span Span) string {
	if span.Start.Line == span.End.Line {
		l := m.lines[span.Start.Line]
		return string(l[span.Start.Col:span.End.Col])
	}
	var b strings.Builder
	b.WriteString(string(m.lines[span.Start.Line][span.Start.Col:]))
	for i := span.Start.Line + 1; i < span.End.Line; i++ {
		b.WriteByte('\n')
		b.WriteString(string(m.lines[i]))
	}
	b.WriteByte('\n')
	b.WriteString(string(m.lines[span.End.Line][:span.End.Col]))
	return b.String()
}

func (m *rootModel) Valid(line, col int) bool {
	if line < 0 || line > len(m.lines) {
		return false
	}
	if line == len(m.lines) {
		return col == 0
	}
	if col < 0 || col > len(m.lines[line]) {
		return false
	}
	return true
}

func (m *rootModel) Assert(line, col int) {
	assertOn(m, line, col)
}

func (m *rootModel) Absolute(line, col int) Position {
	return Position{Line: line, Col: col}
}
