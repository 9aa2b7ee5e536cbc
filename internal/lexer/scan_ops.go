package lexer

import (
	"fmt"
	"unicode/utf8"

	"mica/internal/diag"
	"mica/internal/token"
)

// scanOperatorOrPunct applies maximal munch: two-byte operators first,
// then single-byte ones.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	default:
		// consume continuation bytes so a multi-byte rune reports once
		if ch >= utf8RuneSelf {
			for !lx.cursor.EOF() && lx.cursor.Peek()&0xC0 == 0x80 {
				lx.cursor.Bump()
			}
		}
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		r, _ := utf8.DecodeRuneInString(text)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
}
