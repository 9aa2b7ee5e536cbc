package token

import "mica/internal/source"

// TriviaKind classifies non-token source text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	default:
		return "Trivia(?)"
	}
}

// Trivia is a span of skipped source text (whitespace or comment).
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
