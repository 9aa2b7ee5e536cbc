// Package token defines lexical token kinds and trivia for the mica compiler.
// Invariants:
//   - Token.Text is copied from the original source and matches Span exactly.
//   - Whitespace and comments never appear in the main token stream; they are
//     attached to the following token as leading Trivia.
//   - Type names (int, float, bool, string, void) are keywords in mica, not
//     identifiers: declarations are disambiguated by their leading type token.
package token
