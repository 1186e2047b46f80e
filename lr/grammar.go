// Package lr implements a table-driven LR(1) driver: given a finished
// LR(1) state graph plus combinator-shaped terminal parsers, it assembles
// a tree.ResultTree the same way the combinators in package parse would.
// BuildParsers returns two parsers per grammar: one that retries a
// truncated input on failure (maximum-valid), one that never does
// (maximum-invalid).
package lr

// Symbol is an opaque grammar-symbol handle: a nonterminal or a terminal,
// interned by whatever built the Grammar. lr only ever compares and looks
// up symbols it's handed.
type Symbol int

// ActionKind distinguishes the four action shapes an LR(1) table cell can
// hold.
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionAccept
	ActionShift
	ActionReduce
)

// Action is one cell of the grammar's action table. Target is the shift
// destination state for ActionShift, or the rule number for ActionReduce;
// it is unused for ActionError and ActionAccept.
type Action struct {
	Kind   ActionKind
	Target int
}

// Grammar is the finished LR(1) table this package consumes: a set of
// states numbered 0..N-1, a shift/reduce/accept/error action per
// (state, terminal), a goto table per (state, nonterminal), and per-rule
// RHS length / LHS symbol. Building the table, the LR(1) graph
// construction itself, is the job of whichever layer implements this
// interface; lr only ever reads a Grammar that already exists.
type Grammar interface {
	// NumStates is the number of LR states, numbered 0..NumStates()-1.
	NumStates() int
	// InitialState is the LR state a fresh parse starts in.
	InitialState() int
	// EOF is the designated end-of-input terminal.
	EOF() Symbol
	// Terminals lists every terminal symbol other than EOF.
	Terminals() []Symbol
	// Action returns the action table cell for (state, terminal).
	Action(state int, terminal Symbol) Action
	// GoTo returns the target state for (state, nonterminal), or false if
	// the table has no entry there (an impossible state the driver
	// reports as errs.InternalError if ever reached, since a well-formed
	// table only omits gotos that a matching reduce can never request).
	GoTo(state int, nonterminal Symbol) (int, bool)
	// RHSLen is the number of symbols on rule's right-hand side.
	RHSLen(rule int) int
	// LHS is rule's left-hand-side nonterminal.
	LHS(rule int) Symbol
	// Conflicts lists the nonterminals the table-construction layer
	// could not resolve cleanly (shift/reduce or reduce/reduce). lr
	// doesn't construct the table and so can't detect these itself; it
	// forwards whatever the Grammar already recorded alongside the built
	// parsers.
	Conflicts() []Symbol
}
