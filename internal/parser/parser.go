package parser

import (
	"slices"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/lexer"
	"mica/internal/source"
	"mica/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
	// Ok is true when the file parsed without syntax errors.
	Ok bool
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseFile is the entry point for parsing one file. It requires a lexer
// already constructed over the source.File.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag()
	}
	return Result{
		File: p.file,
		Bag:  bag,
		Ok:   p.opts.CurrentErrors == 0,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseItems is the top-level loop: parse items until EOF.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
		} else {
			p.arenas.PushItem(p.file, itemID)
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

// parseItem dispatches on the first token. Every top-level declaration
// begins with a type name; the token after the declarator name decides
// between a function and a global variable.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	peek := p.lx.Peek()
	if !peek.IsType() {
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, peek.Span,
			"expected a type name to begin a declaration, got \""+peek.Text+"\"")
		return ast.NoItemID, false
	}

	typeTok := p.advance()
	spec := ast.TypeSpec{Kind: ast.TypeKindOf(typeTok.Kind), Span: typeTok.Span}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	if p.at(token.LParen) {
		return p.parseFnItem(typeTok.Span, spec, name, nameSpan)
	}
	return p.parseGlobalItem(typeTok.Span, spec, name, nameSpan)
}

// resyncTop recovers after a top-level error: skip to ';' or the start of
// the next declaration, consuming the ';' if that is what stopped us.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.Semicolon, token.KwInt, token.KwFloat, token.KwBool, token.KwString, token.KwVoid)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// resyncUntil skips tokens until one of the given kinds or EOF.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

// parseIdent expects an Ident, interns it, and returns its StringID and span.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(tok.Text)
		return id, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
