package tree

import "github.com/nihei9/indentlr/text"

// TextOf slices model by n's span.
func TextOf[T any](model text.TextModel, n ResultTree[T]) string {
	return model.Slice(n.Span)
}

// TextLinesOf returns the source lines n's span touches, each sliced to
// the columns the span actually covers on that line.
func TextLinesOf[T any](model text.TextModel, n ResultTree[T]) []string {
	start, end := n.Span.Start, n.Span.End
	if start.Line == end.Line {
		return []string{model.Slice(n.Span)}
	}
	lines := make([]string, 0, end.Line-start.Line+1)
	first := model.LineAt(start.Line)
	lines = append(lines, string(first[start.Col:]))
	for i := start.Line + 1; i < end.Line; i++ {
		lines = append(lines, string(model.LineAt(i)))
	}
	last := model.LineAt(end.Line)
	lines = append(lines, string(last[:end.Col]))
	return lines
}
