package parser

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/source"
	"mica/internal/token"
)

// parseExpr is the entry point for expressions.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr implements precedence climbing. minPrec is the lowest
// binding power accepted at this level.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()

		prec := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec || prec < 0 {
			break
		}

		opTok := p.advance()

		// all operators are left-associative
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			return ast.NoExprID, false
		}

		op := p.tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.arenas.Exprs.Get(left).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		finalSpan := leftSpan.Cover(rightSpan)

		left = p.arenas.Exprs.NewBinary(finalSpan, op, left, right)
	}

	return left, true
}

// parseUnaryExpr handles prefix operators.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}

	var prefixes []prefixOp
	for {
		op, ok := p.getUnaryOperator(p.lx.Peek().Kind)
		if !ok {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// apply prefixes right to left
	for i := len(prefixes) - 1; i >= 0; i-- {
		exprSpan := p.arenas.Exprs.Get(expr).Span
		finalSpan := prefixes[i].span.Cover(exprSpan)
		expr = p.arenas.Exprs.NewUnary(finalSpan, prefixes[i].op, expr)
	}

	return expr, true
}

// parsePrimaryExpr parses atomic expressions. On failure it returns false
// without reporting; the caller owns the context-specific message.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		return p.parseIdentOrCallExpr()

	case token.IntLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitInt, p.arenas.StringsInterner.Intern(tok.Text)), true

	case token.FloatLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitFloat, p.arenas.StringsInterner.Intern(tok.Text)), true

	case token.StringLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitString, p.arenas.StringsInterner.Intern(tok.Text)), true

	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitBool, p.arenas.StringsInterner.Intern(tok.Text)), true

	case token.LParen:
		return p.parseParenExpr()

	default:
		return ast.NoExprID, false
	}
}

// parseIdentOrCallExpr distinguishes a variable reference from a call by
// the token after the name.
func (p *Parser) parseIdentOrCallExpr() (ast.ExprID, bool) {
	nameTok := p.advance()
	nameID := p.arenas.StringsInterner.Intern(nameTok.Text)

	if !p.at(token.LParen) {
		return p.arenas.Exprs.NewIdent(nameTok.Span, nameID), true
	}

	p.advance() // '('
	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				p.err(diag.SynExpectExpression, "expected argument expression")
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		return ast.NoExprID, false
	}

	callSpan := nameTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewCall(callSpan, nameID, nameTok.Span, args), true
}

func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	openTok := p.advance() // '('

	inner, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectExpression, "expected expression after '('")
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close expression")
	if !ok {
		return ast.NoExprID, false
	}

	return p.arenas.Exprs.NewGroup(openTok.Span.Cover(closeTok.Span), inner), true
}
