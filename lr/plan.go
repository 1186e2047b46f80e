package lr

import "sort"

// PlanKind is the tag of a precomputed per-state Plan: Error, Accept,
// Reduce, Shift, or Read.
type PlanKind int

const (
	PlanError PlanKind = iota
	PlanAccept
	PlanReduce
	PlanShift
	PlanRead
)

// Plan is the precomputed control program BuildParsers synthesizes for one
// LR state, consumed by the driver's runtime loop instead of re-deriving a
// decision from the raw action table on every step.
//
//   - PlanError / PlanAccept carry no further data.
//   - PlanReduce carries Rule.
//   - PlanShift carries Target (the state to push) and Munch (how many
//     already-buffered Read tokens this shift consumes into one grouped
//     node). BuildParsers only ever synthesizes Munch == 1: folding
//     several buffered Reads into a single multi-token Shift needs a
//     table constructor that can prove the fold safe, so the field exists
//     and the runtime loop honors any Munch a plan carries, but plan
//     synthesis here always takes the literal reading: read one
//     terminal, decide, shift it.
//   - PlanRead carries Options: the read terminal is matched against each
//     option's Candidates, and whichever one matches supplies the
//     Continuation plan to execute next.
type Plan struct {
	Kind    PlanKind
	Rule    int
	Target  int
	Munch   int
	Options []ReadOption
}

// ReadOption is one branch of a PlanRead: if the terminal just read is in
// Candidates, Continuation is the plan to run.
type ReadOption struct {
	Candidates   []Symbol
	Continuation Plan
}

// planFor synthesizes the ActionPlan for one state: group every terminal
// with a non-error action by that action, and either resolve directly (a
// single group whose action is a Reduce) or defer to a Read that matches
// the read terminal against the groups.
func planFor(g Grammar, state int) Plan {
	terms := append(append([]Symbol{}, g.Terminals()...), g.EOF())

	groups := map[Action][]Symbol{}
	for _, t := range terms {
		a := g.Action(state, t)
		if a.Kind == ActionError {
			continue
		}
		groups[a] = append(groups[a], t)
	}

	if len(groups) == 0 {
		return Plan{Kind: PlanError}
	}
	// A Reduce doesn't consume input and doesn't need to validate
	// anything about what comes next, so a state where every available
	// terminal reduces the same rule can skip reading a lookahead
	// entirely. Shift and Accept both depend on actually consuming (or,
	// for Accept, confirming the absence of) input, so they always go
	// through a Read, even with only one candidate terminal, to fetch
	// the matched text or to confirm the cursor is really at EOF.
	if len(groups) == 1 {
		for a, syms := range groups {
			if a.Kind == ActionReduce {
				return planForAction(a)
			}
			sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
			return Plan{Kind: PlanRead, Options: []ReadOption{{Candidates: syms, Continuation: planForAction(a)}}}
		}
	}

	options := make([]ReadOption, 0, len(groups))
	for a, syms := range groups {
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
		options = append(options, ReadOption{Candidates: syms, Continuation: planForAction(a)})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Candidates[0] < options[j].Candidates[0] })
	return Plan{Kind: PlanRead, Options: options}
}

func planForAction(a Action) Plan {
	switch a.Kind {
	case ActionAccept:
		return Plan{Kind: PlanAccept}
	case ActionReduce:
		return Plan{Kind: PlanReduce, Rule: a.Target}
	case ActionShift:
		return Plan{Kind: PlanShift, Target: a.Target, Munch: 1}
	default:
		return Plan{Kind: PlanError}
	}
}

// finalState reports whether state permits reading EOF, the position the
// maximum-valid failure policy records as lastValid.
func finalState(g Grammar, state int) bool {
	return g.Action(state, g.EOF()).Kind != ActionError
}

// candidatesOf returns the union, in option order, of every option's
// candidate terminals.
func candidatesOf(options []ReadOption) []Symbol {
	var out []Symbol
	for _, o := range options {
		out = append(out, o.Candidates...)
	}
	return out
}

// continuationFor returns the option whose Candidates contains sym.
func continuationFor(options []ReadOption, sym Symbol) (Plan, bool) {
	for _, o := range options {
		for _, c := range o.Candidates {
			if c == sym {
				return o.Continuation, true
			}
		}
	}
	return Plan{}, false
}
