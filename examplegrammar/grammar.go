// Package examplegrammar is a worked arithmetic-expression grammar
// (E → E + T | T; T → num), wired as one concrete lr.Grammar plus a
// terminal-parser backend. It exercises package lr end to end, including
// the maximum-valid restart over malformed input like "1+2+".
package examplegrammar

import "github.com/nihei9/indentlr/lr"

// Label is the ResultTree label type this grammar produces.
type Label string

const (
	LabelE       Label = "E"
	LabelNum     Label = "num"
	LabelPlus    Label = "+"
	LabelInvalid Label = "invalid"
)

const (
	symE lr.Symbol = iota + 100
	symT
)

const (
	symNum lr.Symbol = iota + 200
	symPlus
	symEOF
)

// Rule numbers, in the order RHSLen/LHS index them.
const (
	ruleEPlusT = iota // E -> E + T
	ruleEIsT          // E -> T
	ruleTIsNum        // T -> num
)

// LR states for:
//
//	0: S' -> .E, E -> .E+T, E -> .T, T -> .num
//	1: S' -> E., E -> E.+T             (goto E from 0)
//	2: E -> T.                         (goto T from 0)
//	3: T -> num.                       (goto/shift num from 0 or 4)
//	4: E -> E+.T, T -> .num            (shift + from 1)
//	5: E -> E+T.                       (goto T from 4)
const (
	state0 = iota
	state1
	state2
	state3
	state4
	state5
	numStates
)

// grammar implements lr.Grammar for the hand-built table above. Building
// such a table is normally the job of an LR(1) graph constructor; this
// one is small enough to write out directly.
type grammar struct{}

func (grammar) NumStates() int    { return numStates }
func (grammar) InitialState() int { return state0 }
func (grammar) EOF() lr.Symbol    { return symEOF }
func (grammar) Terminals() []lr.Symbol {
	return []lr.Symbol{symNum, symPlus}
}

func (grammar) Action(state int, term lr.Symbol) lr.Action {
	switch state {
	case state0:
		if term == symNum {
			return lr.Action{Kind: lr.ActionShift, Target: state3}
		}
	case state1:
		if term == symPlus {
			return lr.Action{Kind: lr.ActionShift, Target: state4}
		}
		if term == symEOF {
			return lr.Action{Kind: lr.ActionAccept}
		}
	case state2:
		if term == symPlus || term == symEOF {
			return lr.Action{Kind: lr.ActionReduce, Target: ruleEIsT}
		}
	case state3:
		if term == symPlus || term == symEOF {
			return lr.Action{Kind: lr.ActionReduce, Target: ruleTIsNum}
		}
	case state4:
		if term == symNum {
			return lr.Action{Kind: lr.ActionShift, Target: state3}
		}
	case state5:
		if term == symPlus || term == symEOF {
			return lr.Action{Kind: lr.ActionReduce, Target: ruleEPlusT}
		}
	}
	return lr.Action{Kind: lr.ActionError}
}

func (grammar) GoTo(state int, nonterm lr.Symbol) (int, bool) {
	switch state {
	case state0:
		if nonterm == symE {
			return state1, true
		}
		if nonterm == symT {
			return state2, true
		}
	case state4:
		if nonterm == symT {
			return state5, true
		}
	}
	return 0, false
}

func (grammar) RHSLen(rule int) int {
	switch rule {
	case ruleEPlusT:
		return 3
	case ruleEIsT, ruleTIsNum:
		return 1
	}
	return 0
}

func (grammar) LHS(rule int) lr.Symbol {
	switch rule {
	case ruleEPlusT, ruleEIsT:
		return symE
	case ruleTIsNum:
		return symT
	}
	return -1
}

func (grammar) Conflicts() []lr.Symbol { return nil }

// nonterminalLabels deliberately omits symT: T always reduces from exactly
// one child (num), so leaving it unlabeled collapses it to Structural and
// Prune promotes the num leaf straight up to E's child list.
var nonterminalLabels = map[lr.Symbol]Label{
	symE: LabelE,
}
