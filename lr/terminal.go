package lr

import (
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// Candidate is one terminal match a TerminalParser offers at a position:
// the terminal it recognized, the user state after recognizing it, and the
// ResultTree spanning the matched text.
type Candidate[S, T any] struct {
	Symbol Symbol
	State  S
	Result tree.ResultTree[T]
}

// TerminalParser is the combinator-shaped terminal recognizer the driver
// calls: given a position, it returns every candidate match it finds there
// (usually zero or one, but ambiguous lexical grammars can report more
// than one). The Read step of a Plan requires the combined result across
// every terminal it might see to contain exactly one candidate.
type TerminalParser[S, T any] func(state S, model text.TextModel, line, col int) []Candidate[S, T]

// Registry maps a terminal symbol to the TerminalParser that recognizes
// it. At each Read step the driver uses it to assemble the combined parser
// for that step's set of candidate terminals.
type Registry[S, T any] map[Symbol]TerminalParser[S, T]

// OrTerminalParsers concatenates the candidate lists of every ps, in
// order. Deterministic given ps's order.
func OrTerminalParsers[S, T any](ps ...TerminalParser[S, T]) TerminalParser[S, T] {
	return func(state S, model text.TextModel, line, col int) []Candidate[S, T] {
		var out []Candidate[S, T]
		for _, p := range ps {
			out = append(out, p(state, model, line, col)...)
		}
		return out
	}
}

// OrGreedyTerminalParsers returns the first ps member that produces any
// candidates, or nil if none do. Deterministic given ps's order.
func OrGreedyTerminalParsers[S, T any](ps ...TerminalParser[S, T]) TerminalParser[S, T] {
	return func(state S, model text.TextModel, line, col int) []Candidate[S, T] {
		for _, p := range ps {
			if res := p(state, model, line, col); len(res) > 0 {
				return res
			}
		}
		return nil
	}
}
