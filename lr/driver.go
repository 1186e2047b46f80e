package lr

import (
	"github.com/nihei9/indentlr/errs"
	"github.com/nihei9/indentlr/parse"
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// BuildResult is BuildParsers' return value: the two failure-policy
// parsers plus whatever conflicts the Grammar reported.
type BuildResult[S, T any] struct {
	MaximumValid   parse.Parser[S, T]
	MaximumInvalid parse.Parser[S, T]
	Conflicts      []Symbol
}

// BuildParsers derives, once, the per-state ActionPlan and final-state
// set, then returns two Parsers sharing that precomputed table: one that
// retries a truncated input on failure (maximum-valid), one that never
// does (maximum-invalid). invalid, if non-nil, labels the best-effort
// partial tree either parser emits instead of failing outright.
func BuildParsers[S, T any](g Grammar, nonterminalLabels map[Symbol]T, terminalParsers Registry[S, T], invalid *T) BuildResult[S, T] {
	n := g.NumStates()
	plans := make([]Plan, n)
	final := make([]bool, n)
	for s := 0; s < n; s++ {
		plans[s] = planFor(g, s)
		final[s] = finalState(g, s)
	}

	d := &driver[S, T]{
		g:                 g,
		nonterminalLabels: nonterminalLabels,
		terminalParsers:   terminalParsers,
		plans:             plans,
		final:             final,
		invalid:           invalid,
	}

	return BuildResult[S, T]{
		MaximumValid: func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
			return d.run(model, state, line, col, true)
		},
		MaximumInvalid: func(state S, model text.TextModel, line, col int) (S, tree.ResultTree[T], bool) {
			return d.run(model, state, line, col, false)
		},
		Conflicts: g.Conflicts(),
	}
}

// driver holds the read-only, precomputed-at-construction tables both
// failure-policy parsers share: the grammar, the nonterminal label map, the
// terminal-parser registry, and the per-state plan/final-state arrays.
type driver[S, T any] struct {
	g                 Grammar
	nonterminalLabels map[Symbol]T
	terminalParsers   Registry[S, T]
	plans             []Plan
	final             []bool
	invalid           *T
}

// pendingTok is a terminal Read has matched but that hasn't yet been
// committed onto the LR stack by a Shift.
type pendingTok[S, T any] struct {
	sym    Symbol
	state  S
	result tree.ResultTree[T]
}

// run is the runtime loop shared by both failure policies: a stack of LR
// states, a parallel buffer of committed child ResultTrees, and a small
// pending buffer of Read-but-not-yet-shifted tokens. allowRestart selects
// between the maximum-valid and maximum-invalid failure policies.
func (d *driver[S, T]) run(model text.TextModel, entryState S, entryLine, entryCol int, allowRestart bool) (S, tree.ResultTree[T], bool) {
	model.Assert(entryLine, entryCol)

	lrStack := []int{d.g.InitialState()}
	var nodeStack []tree.ResultTree[T]
	var pending []pendingTok[S, T]

	curState := entryState
	curLine, curCol := entryLine, entryCol

	lastValid := text.Position{Line: entryLine, Col: entryCol}
	haveLastValid := d.final[lrStack[0]]

	top := func() int { return lrStack[len(lrStack)-1] }

	plan := d.plans[top()]
	for {
		switch plan.Kind {
		case PlanRead:
			candidates := candidatesOf(plan.Options)
			parsers := make([]TerminalParser[S, T], 0, len(candidates))
			wantEOF := false
			for _, c := range candidates {
				if c == d.g.EOF() {
					wantEOF = true
					continue
				}
				if tp, ok := d.terminalParsers[c]; ok {
					parsers = append(parsers, tp)
				}
			}
			matches := OrTerminalParsers(parsers...)(curState, model, curLine, curCol)
			// EOF is a structural condition, not something a registered
			// terminal parser scans text for: the driver recognizes it
			// itself whenever the cursor has reached the model's end.
			if wantEOF && text.AtEOF(model, curLine, curCol) {
				pos := text.Position{Line: curLine, Col: curCol}
				matches = append(matches, Candidate[S, T]{
					Symbol: d.g.EOF(),
					State:  curState,
					Result: tree.Discard[T](text.NewSpan(pos, pos)),
				})
			}
			if len(matches) != 1 {
				return d.fail(model, entryState, curState, entryLine, entryCol, curLine, curCol, allowRestart, lastValid, haveLastValid)
			}
			m := matches[0]
			cont, found := continuationFor(plan.Options, m.Symbol)
			if !found {
				return d.fail(model, entryState, curState, entryLine, entryCol, curLine, curCol, allowRestart, lastValid, haveLastValid)
			}
			pending = append(pending, pendingTok[S, T]{sym: m.Symbol, state: m.State, result: m.Result})
			plan = cont

		case PlanAccept:
			if len(nodeStack) != 1 {
				errs.New(errs.InternalError, errs.Position{Line: curLine, Col: curCol}, nil)
			}
			return curState, nodeStack[0], true

		case PlanReduce:
			n := d.g.RHSLen(plan.Rule)
			if len(lrStack) <= n || len(nodeStack) < n {
				errs.New(errs.InternalError, errs.Position{Line: curLine, Col: curCol}, nil)
			}
			var children []tree.ResultTree[T]
			if n > 0 {
				children = append(children, nodeStack[len(nodeStack)-n:]...)
				nodeStack = nodeStack[:len(nodeStack)-n]
				lrStack = lrStack[:len(lrStack)-n]
			}
			lhs := d.g.LHS(plan.Rule)
			nextState, ok := d.g.GoTo(top(), lhs)
			if !ok {
				errs.New(errs.InternalError, errs.Position{Line: curLine, Col: curCol}, nil)
			}
			lrStack = append(lrStack, nextState)

			var lbl tree.LabelOverride[T]
			if label, hasLabel := d.nonterminalLabels[lhs]; hasLabel {
				lbl = tree.WithLabel(label)
			} else {
				lbl = tree.NoLabel[T]()
			}
			var node tree.ResultTree[T]
			if n == 0 {
				p := text.Position{Line: curLine, Col: curCol}
				node = tree.Join[T](nil, lbl, tree.Override(p), tree.Override(p))
			} else {
				node = tree.Join(children, lbl, tree.NoOverride(), tree.NoOverride())
			}
			nodeStack = append(nodeStack, node)
			if d.final[nextState] {
				lastValid = text.Position{Line: curLine, Col: curCol}
				haveLastValid = true
			}
			plan = d.plans[top()]

		case PlanShift:
			if len(pending) < plan.Munch {
				errs.New(errs.InternalError, errs.Position{Line: curLine, Col: curCol}, nil)
			}
			taken := pending[len(pending)-plan.Munch:]
			pending = pending[:len(pending)-plan.Munch]

			var node tree.ResultTree[T]
			if plan.Munch == 1 {
				node = taken[0].result
			} else {
				rs := make([]tree.ResultTree[T], len(taken))
				for i, t := range taken {
					rs[i] = t.result
				}
				node = tree.Join(rs, tree.NoLabel[T](), tree.NoOverride(), tree.NoOverride())
			}
			curState = taken[len(taken)-1].state
			curLine, curCol = node.Span.End.Line, node.Span.End.Col
			lrStack = append(lrStack, plan.Target)
			nodeStack = append(nodeStack, node)
			if d.final[plan.Target] {
				lastValid = text.Position{Line: curLine, Col: curCol}
				haveLastValid = true
			}
			plan = d.plans[top()]

		default: // PlanError
			return d.fail(model, entryState, curState, entryLine, entryCol, curLine, curCol, allowRestart, lastValid, haveLastValid)
		}
	}
}

// fail implements the maximum-valid / maximum-invalid failure policy:
// maximum-valid (allowRestart) retries, once, over the input truncated at
// lastValid; otherwise, or if no lastValid was ever recorded, it emits
// an invalid-labeled best-effort partial tree when invalid is set, or
// reports plain parse failure (ok == false).
func (d *driver[S, T]) fail(model text.TextModel, entryState, curState S, entryLine, entryCol, curLine, curCol int, allowRestart bool, lastValid text.Position, haveLastValid bool) (S, tree.ResultTree[T], bool) {
	if allowRestart && haveLastValid {
		truncated := text.Until(model, lastValid.Line, lastValid.Col)
		return d.run(truncated, entryState, entryLine, entryCol, false)
	}
	if d.invalid != nil {
		start := text.Position{Line: entryLine, Col: entryCol}
		end := text.Position{Line: curLine, Col: curCol}
		if end.Less(start) {
			end = start
		}
		node := tree.Join[T](nil, tree.WithLabel(*d.invalid), tree.Override(start), tree.Override(end))
		return curState, node, true
	}
	return entryState, tree.ResultTree[T]{}, false
}
