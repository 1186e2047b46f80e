package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/indentlr/text"
)

// Print renders n in a stable machine-readable format. The tree is pruned
// first, so only Labeled nodes ever appear in the output.
//
//	[LL:CC to LL:CC[<indent>   <name>
//
// or, for an atomic (childless) same-line Labeled node that nameOf/isOpaque
// says isn't opaque:
//
//	[LL:CC to LL:CC[<indent>   <name> = "<text>"
//
// LL and CC are zero-padded to two digits; indent is four spaces per depth
// level.
func Print[T any](w io.Writer, model text.TextModel, n ResultTree[T], nameOf func(T) string, isOpaque func(T) bool) error {
	for _, root := range Prune(n) {
		if err := printNode(w, model, root, nameOf, isOpaque, 0); err != nil {
			return err
		}
	}
	return nil
}

func printNode[T any](w io.Writer, model text.TextModel, n ResultTree[T], nameOf func(T) string, isOpaque func(T) bool, depth int) error {
	line := fmt.Sprintf("[%s to %s[%s   %s",
		pad(n.Span.Start), pad(n.Span.End), strings.Repeat("    ", depth), nameOf(n.Label))

	if len(n.Children) == 0 && n.Span.Start.Line == n.Span.End.Line && !isOpaque(n.Label) {
		line += fmt.Sprintf(" = %q", model.Slice(n.Span))
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, c := range n.Children {
		if err := printNode(w, model, c, nameOf, isOpaque, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func pad(p text.Position) string {
	return fmt.Sprintf("%02d:%02d", p.Line, p.Col)
}

// debugString renders n in a box-drawing style, used only by this
// package's own tests as a quick human-readable dump, distinct from
// Print above, which is the stable format callers can rely on.
func debugString[T any](n ResultTree[T], nameOf func(T) string) string {
	var b strings.Builder
	writeDebugNode(&b, n, nameOf, "", "")
	return b.String()
}

func writeDebugNode[T any](b *strings.Builder, n ResultTree[T], nameOf func(T) string, ruledLine, childPrefix string) {
	name := "?"
	switch n.Kind {
	case Labeled:
		name = nameOf(n.Label)
	case Structural:
		name = "<structural>"
	case Discarded:
		name = "<discarded>"
	}
	fmt.Fprintf(b, "%v%v\n", ruledLine, name)

	num := len(n.Children)
	for i, child := range n.Children {
		line := "└─ "
		prefix := "   "
		if num > 1 && i < num-1 {
			line = "├─ "
			prefix = "│  "
		}
		writeDebugNode(b, child, nameOf, childPrefix+line, childPrefix+prefix)
	}
}
