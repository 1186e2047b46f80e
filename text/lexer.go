package text

// Lexer is the minimal scanning shape windowing is built around: given a
// line and a starting column, report how many additional columns match,
// or a negative number for "no match". It lives in this package (rather
// than in lexbridge, which adapts it to and from Parser) so that
// SectionP's spacesL/indentationL parameters don't need to import the
// combinator package that lexbridge itself depends on.
type Lexer func(line []rune, col int) int
