package parser

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/source"
	"mica/internal/token"
)

// parseFnItem parses the rest of a function declaration after
// "<type> <name>", starting at '('.
func (p *Parser) parseFnItem(
	startSpan source.Span,
	result ast.TypeSpec,
	name source.StringID,
	nameSpan source.Span,
) (ast.ItemID, bool) {
	p.advance() // '('

	var params []ast.Param
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseParam()
			if !ok {
				return ast.NoItemID, false
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameter list"); !ok {
		return ast.NoItemID, false
	}

	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' to begin function body")
		return ast.NoItemID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoItemID, false
	}

	itemSpan := startSpan.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Items.NewFn(name, nameSpan, result, params, body, itemSpan), true
}

// parseParam parses "<type> <name>". void is rejected as a parameter type.
func (p *Parser) parseParam() (ast.Param, bool) {
	peek := p.lx.Peek()
	if !peek.IsType() {
		p.err(diag.SynExpectType, "expected parameter type, got \""+peek.Text+"\"")
		return ast.Param{}, false
	}
	if peek.Kind == token.KwVoid {
		p.err(diag.SynExpectType, "'void' is not a valid parameter type")
		return ast.Param{}, false
	}
	typeTok := p.advance()
	spec := ast.TypeSpec{Kind: ast.TypeKindOf(typeTok.Kind), Span: typeTok.Span}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.Param{}, false
	}

	return ast.Param{
		Name:     name,
		NameSpan: nameSpan,
		Type:     spec,
		Span:     typeTok.Span.Cover(nameSpan),
	}, true
}

// parseGlobalItem parses the rest of a file-level variable declaration
// after "<type> <name>": an optional initializer and the ';'.
func (p *Parser) parseGlobalItem(
	startSpan source.Span,
	spec ast.TypeSpec,
	name source.StringID,
	nameSpan source.Span,
) (ast.ItemID, bool) {
	if spec.Kind == ast.TypeVoid {
		p.report(diag.SynExpectType, diag.SevError, spec.Span, "'void' is not a valid variable type")
		return ast.NoItemID, false
	}

	init := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		var ok bool
		init, ok = p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected initializer expression after '='")
			return ast.NoItemID, false
		}
	}

	semiTok, ok := p.expectSemicolon("expected ';' after variable declaration")
	if !ok {
		return ast.NoItemID, false
	}

	itemSpan := startSpan.Cover(semiTok.Span)
	return p.arenas.Items.NewGlobal(name, nameSpan, spec, init, itemSpan), true
}

// expectSemicolon is expect(Semicolon) with an "insert here" note pointing
// just past the last consumed token.
func (p *Parser) expectSemicolon(msg string) (token.Token, bool) {
	if p.at(token.Semicolon) {
		return p.advance(), true
	}
	insertSpan := p.lastSpan.ZeroideToEnd()
	p.reportNotes(diag.SynExpectSemicolon, diag.SevError, p.getDiagnosticSpan(), msg,
		[]diag.Note{{Span: insertSpan, Msg: "insert missing semicolon"}})
	return token.Token{Kind: token.Invalid, Span: insertSpan}, false
}
