package tree

import "github.com/nihei9/indentlr/errs"

// Prune produces the list of Labeled nodes a tree collapses to: Labeled
// nodes are cloned with their children pruned; Structural nodes vanish,
// promoting their pruned children to the grandparent level; Discarded
// nodes vanish entirely.
func Prune[T any](n ResultTree[T]) []ResultTree[T] {
	switch n.Kind {
	case Labeled:
		clone := n
		clone.Children = pruneAll(n.Children)
		return []ResultTree[T]{clone}
	case Structural:
		return pruneAll(n.Children)
	default: // Discarded
		return nil
	}
}

func pruneAll[T any](nodes []ResultTree[T]) []ResultTree[T] {
	var out []ResultTree[T]
	for _, c := range nodes {
		out = append(out, Prune(c)...)
	}
	return out
}

// Select does a depth-first traversal of n, entering Structural nodes
// transparently, and returns every Labeled node matching pred that is
// reached without passing through another Labeled node. The children of a
// Labeled node are not searched.
func Select[T any](n ResultTree[T], pred func(T) bool) []ResultTree[T] {
	var out []ResultTree[T]
	selectInto(n, pred, &out)
	return out
}

func selectInto[T any](n ResultTree[T], pred func(T) bool, out *[]ResultTree[T]) {
	switch n.Kind {
	case Labeled:
		// Labeled nodes are the traversal's boundary: their own
		// children are reached by a further Select/Collect call on
		// the returned node, not by this one.
		if pred(n.Label) {
			*out = append(*out, n)
		}
	case Structural, Discarded:
		for _, c := range n.Children {
			selectInto(c, pred, out)
		}
	}
}

// SelectUnique calls Select and panics with errs.AmbiguousSelection
// unless exactly one node matches.
func SelectUnique[T any](n ResultTree[T], pred func(T) bool) ResultTree[T] {
	matches := Select(n, pred)
	if len(matches) != 1 {
		errs.New(errs.AmbiguousSelection, errs.Position{Line: n.Span.Start.Line, Col: n.Span.Start.Col}, nil)
	}
	return matches[0]
}

// Collect is Select without a predicate: every Labeled node reachable
// through Structural/Discarded wrappers.
func Collect[T any](n ResultTree[T]) []ResultTree[T] {
	return Select(n, func(T) bool { return true })
}

// CollectUnique calls Collect and panics with errs.AmbiguousSelection
// unless exactly one node is reachable.
func CollectUnique[T any](n ResultTree[T]) ResultTree[T] {
	matches := Collect(n)
	if len(matches) != 1 {
		errs.New(errs.AmbiguousSelection, errs.Position{Line: n.Span.Start.Line, Col: n.Span.Start.Col}, nil)
	}
	return matches[0]
}
