// Package tree implements ResultTree, the parse-tree value every Parser
// produces, plus the Join/Prune/Select/Collect/Print helpers that
// construct and consume it.
package tree

import "github.com/nihei9/indentlr/text"

// Kind distinguishes the three node shapes: Labeled nodes carry a user
// label, Structural nodes group children without one, and Discarded nodes
// are transient markers dropped by Join before a tree reaches a caller.
type Kind int

const (
	Labeled Kind = iota
	Structural
	Discarded
)

// ResultTree[T] is the parse-tree value. Children are never Discarded;
// Join filters those out before a node is returned to a caller.
type ResultTree[T any] struct {
	Kind     Kind
	Label    T
	Span     text.Span
	Children []ResultTree[T]
}

// IsLabeled reports whether the node carries a user label.
func (n ResultTree[T]) IsLabeled() bool {
	return n.Kind == Labeled
}

// Discard builds a zero-child Discarded node spanning span. Every
// character-level primitive in the parse package (charP, newlineP, eofP,
// ...) returns one of these.
func Discard[T any](span text.Span) ResultTree[T] {
	return ResultTree[T]{Kind: Discarded, Span: span}
}

// Struct builds a Structural node over children, which must already be
// Discarded-filtered (join is the usual way to get that).
func Struct[T any](span text.Span, children []ResultTree[T]) ResultTree[T] {
	return ResultTree[T]{Kind: Structural, Span: span, Children: children}
}

// Label builds a Labeled node over children.
func Label[T any](label T, span text.Span, children []ResultTree[T]) ResultTree[T] {
	return ResultTree[T]{Kind: Labeled, Label: label, Span: span, Children: children}
}
