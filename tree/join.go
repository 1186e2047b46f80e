package tree

import (
	"github.com/nihei9/indentlr/errs"
	"github.com/nihei9/indentlr/text"
)

// LabelOverride distinguishes "no label given" (Structural) from
// "explicitly discarded" from "labeled T" for Join's label parameter,
// since T may itself be a type whose zero value is a meaningful label.
type LabelOverride[T any] struct {
	set       bool
	discarded bool
	label     T
}

// NoLabel produces a Structural node.
func NoLabel[T any]() LabelOverride[T] {
	return LabelOverride[T]{}
}

// WithLabel produces a Labeled(label) node.
func WithLabel[T any](label T) LabelOverride[T] {
	return LabelOverride[T]{set: true, label: label}
}

// DiscardLabel produces a Discarded node.
func DiscardLabel[T any]() LabelOverride[T] {
	return LabelOverride[T]{discarded: true}
}

// PosOverride optionally overrides Join's computed start or end position.
type PosOverride struct {
	set bool
	pos text.Position
}

func NoOverride() PosOverride {
	return PosOverride{}
}

func Override(pos text.Position) PosOverride {
	return PosOverride{set: true, pos: pos}
}

// Join builds a node from results:
//
//  1. If startOverride is unset, use the first child's start; panic with
//     errs.InvalidArguments if results is empty and no override is given.
//     Symmetric for end.
//  2. Walk children in order maintaining a cursor; each child's start
//     must be at or after the cursor, or this panics with
//     errs.InvalidLayout. The cursor advances to each child's end.
//  3. After the last child, the cursor must be at or before the computed
//     end, or this panics with errs.InvalidLayout.
//  4. Discarded children are dropped from the returned node's Children;
//     every other child is kept.
//  5. The returned Kind follows label: Labeled if WithLabel, Structural
//     if NoLabel, Discarded if DiscardLabel.
func Join[T any](results []ResultTree[T], label LabelOverride[T], startOverride, endOverride PosOverride) ResultTree[T] {
	var start, end text.Position

	if startOverride.set {
		start = startOverride.pos
	} else if len(results) > 0 {
		start = results[0].Span.Start
	} else {
		errs.New(errs.InvalidArguments, errs.Position{}, nil)
	}

	if endOverride.set {
		end = endOverride.pos
	} else if len(results) > 0 {
		end = results[len(results)-1].Span.End
	} else {
		errs.New(errs.InvalidArguments, errs.Position{}, nil)
	}

	cursor := start
	kept := make([]ResultTree[T], 0, len(results))
	for _, child := range results {
		if !cursor.LessEq(child.Span.Start) {
			errs.New(errs.InvalidLayout, errs.Position{Line: child.Span.Start.Line, Col: child.Span.Start.Col}, nil)
		}
		cursor = child.Span.End
		if child.Kind != Discarded {
			kept = append(kept, child)
		}
	}
	if !cursor.LessEq(end) {
		errs.New(errs.InvalidLayout, errs.Position{Line: end.Line, Col: end.Col}, nil)
	}

	span := text.NewSpan(start, end)
	switch {
	case label.discarded:
		return ResultTree[T]{Kind: Discarded, Span: span, Children: kept}
	case label.set:
		return Label(label.label, span, kept)
	default:
		return Struct(span, kept)
	}
}
