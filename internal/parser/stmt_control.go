package parser

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/token"
)

// parseIfStmt parses "if (expr) stmt [else stmt]". A dangling else binds
// to the nearest if because the else branch is consumed recursively.
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'"); !ok {
		return ast.NoStmtID, false
	}

	cond, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectExpression, "expected condition expression")
		return ast.NoStmtID, false
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition"); !ok {
		return ast.NoStmtID, false
	}

	then, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}

	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		els, ok = p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
	}

	endSpan := p.arenas.Stmts.Get(then).Span
	if els.IsValid() {
		endSpan = p.arenas.Stmts.Get(els).Span
	}
	return p.arenas.Stmts.NewIf(ifTok.Span.Cover(endSpan), cond, then, els), true
}

// parseWhileStmt parses "while (expr) stmt".
func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return ast.NoStmtID, false
	}

	cond, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectExpression, "expected condition expression")
		return ast.NoStmtID, false
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition"); !ok {
		return ast.NoStmtID, false
	}

	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}

	bodySpan := p.arenas.Stmts.Get(body).Span
	return p.arenas.Stmts.NewWhile(whileTok.Span.Cover(bodySpan), cond, body), true
}
