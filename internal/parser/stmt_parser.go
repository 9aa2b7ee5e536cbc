package parser

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/token"
)

func (p *Parser) parseBlock() (ast.StmtID, bool) {
	if !p.at(token.LBrace) {
		return ast.NoStmtID, false
	}

	openTok := p.advance()
	var stmtIDs []ast.StmtID

	for !p.at(token.EOF) && !p.at(token.RBrace) {
		stmtID, ok := p.parseStmt()
		if ok {
			stmtIDs = append(stmtIDs, stmtID)
			continue
		}

		// statement failed; skip to the next statement boundary
		p.resyncStatement()
		if p.at(token.Semicolon) {
			p.advance()
		}
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
	}

	if !p.at(token.RBrace) {
		insertSpan := p.lastSpan.ZeroideToEnd()
		p.reportNotes(diag.SynUnclosedBrace, diag.SevError, p.getDiagnosticSpan(),
			"expected '}' to close block",
			[]diag.Note{{Span: insertSpan, Msg: "insert missing closing brace"}})
		return ast.NoStmtID, false
	}
	closeTok := p.advance()

	blockSpan := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Stmts.NewBlock(blockSpan, stmtIDs), true
}

// resyncStatement skips to a token that can start or follow a statement.
func (p *Parser) resyncStatement() {
	p.resyncUntil(
		token.Semicolon, token.RBrace, token.LBrace,
		token.KwInt, token.KwFloat, token.KwBool, token.KwString, token.KwVoid,
		token.KwIf, token.KwWhile, token.KwReturn,
	)
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	peek := p.lx.Peek()
	switch {
	case peek.IsType():
		return p.parseDeclStmt()
	case peek.Kind == token.KwIf:
		return p.parseIfStmt()
	case peek.Kind == token.KwWhile:
		return p.parseWhileStmt()
	case peek.Kind == token.KwReturn:
		return p.parseReturnStmt()
	case peek.Kind == token.LBrace:
		return p.parseBlock()
	default:
		return p.parseAssignOrExprStmt()
	}
}

// parseDeclStmt parses "<type> <name> [= expr] ;".
func (p *Parser) parseDeclStmt() (ast.StmtID, bool) {
	typeTok := p.advance()
	if typeTok.Kind == token.KwVoid {
		p.report(diag.SynExpectType, diag.SevError, typeTok.Span, "'void' is not a valid variable type")
		return ast.NoStmtID, false
	}
	spec := ast.TypeSpec{Kind: ast.TypeKindOf(typeTok.Kind), Span: typeTok.Span}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	init := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		init, ok = p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected initializer expression after '='")
			return ast.NoStmtID, false
		}
	}

	semiTok, ok := p.expectSemicolon("expected ';' after declaration")
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := typeTok.Span.Cover(semiTok.Span)
	return p.arenas.Stmts.NewDecl(stmtSpan, name, nameSpan, spec, init), true
}

// parseReturnStmt parses "return [expr] ;".
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	retTok := p.advance()

	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		var ok bool
		value, ok = p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after 'return'")
			return ast.NoStmtID, false
		}
	}

	semiTok, ok := p.expectSemicolon("expected ';' after return statement")
	if !ok {
		return ast.NoStmtID, false
	}

	return p.arenas.Stmts.NewReturn(retTok.Span.Cover(semiTok.Span), value), true
}

// parseAssignOrExprStmt parses an expression and, if '=' follows a bare
// identifier, reinterprets it as an assignment. Assignment is a statement,
// so '=' never nests inside expressions.
func (p *Parser) parseAssignOrExprStmt() (ast.StmtID, bool) {
	startSpan := p.lx.Peek().Span

	expr, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynUnexpectedToken, "expected statement, got \""+p.lx.Peek().Text+"\"")
		// consume the offending token so recovery makes progress
		if !p.at(token.EOF) && !p.at(token.RBrace) {
			p.advance()
		}
		return ast.NoStmtID, false
	}

	if p.at(token.Assign) {
		ident, isIdent := p.arenas.Exprs.Ident(expr)
		if !isIdent {
			p.err(diag.SynUnexpectedToken, "left side of assignment must be a variable name")
			return ast.NoStmtID, false
		}
		nameSpan := p.arenas.Exprs.Get(expr).Span
		p.advance() // '='

		value, ok := p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '='")
			return ast.NoStmtID, false
		}

		semiTok, ok := p.expectSemicolon("expected ';' after assignment")
		if !ok {
			return ast.NoStmtID, false
		}

		stmtSpan := startSpan.Cover(semiTok.Span)
		return p.arenas.Stmts.NewAssign(stmtSpan, ident.Name, nameSpan, value), true
	}

	semiTok, ok := p.expectSemicolon("expected ';' after expression")
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := startSpan.Cover(semiTok.Span)
	return p.arenas.Stmts.NewExpr(stmtSpan, expr), true
}
