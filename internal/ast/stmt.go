package ast

import (
	"mica/internal/source"
)

type StmtKind uint8

const (
	// StmtDecl is a local variable declaration.
	StmtDecl StmtKind = iota
	// StmtAssign is an assignment to an existing variable.
	StmtAssign
	// StmtExpr is an expression evaluated for effect.
	StmtExpr
	// StmtIf is a conditional with optional else branch.
	StmtIf
	// StmtWhile is a loop.
	StmtWhile
	// StmtReturn is a return with optional value.
	StmtReturn
	// StmtBlock is a braced statement list.
	StmtBlock
)

// Stmt is a statement node. Payload indexes the per-kind arena.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtDeclData is the payload for StmtDecl. Init is NoExprID when the
// declaration has no initializer.
type StmtDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeSpec
	Init     ExprID
}

// StmtAssignData is the payload for StmtAssign.
type StmtAssignData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

// StmtExprData is the payload for StmtExpr.
type StmtExprData struct {
	Expr ExprID
}

// StmtIfData is the payload for StmtIf. Else is NoStmtID when absent.
type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

// StmtWhileData is the payload for StmtWhile.
type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

// StmtReturnData is the payload for StmtReturn. Value is NoExprID for a
// bare return.
type StmtReturnData struct {
	Value ExprID
}

// StmtBlockData is the payload for StmtBlock.
type StmtBlockData struct {
	Stmts []StmtID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Decls   *Arena[StmtDeclData]
	Assigns *Arena[StmtAssignData]
	Express *Arena[StmtExprData]
	Ifs     *Arena[StmtIfData]
	Whiles  *Arena[StmtWhileData]
	Returns *Arena[StmtReturnData]
	Blocks  *Arena[StmtBlockData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Decls:   NewArena[StmtDeclData](capHint),
		Assigns: NewArena[StmtAssignData](capHint),
		Express: NewArena[StmtExprData](capHint),
		Ifs:     NewArena[StmtIfData](capHint),
		Whiles:  NewArena[StmtWhileData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewDecl(span source.Span, name source.StringID, nameSpan source.Span, typ TypeSpec, init ExprID) StmtID {
	payload := s.Decls.Allocate(StmtDeclData{Name: name, NameSpan: nameSpan, Type: typ, Init: init})
	return s.new(StmtDecl, span, PayloadID(payload))
}

func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDecl {
		return nil, false
	}
	return s.Decls.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewAssign(span source.Span, name source.StringID, nameSpan source.Span, value ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{Name: name, NameSpan: nameSpan, Value: value})
	return s.new(StmtAssign, span, PayloadID(payload))
}

func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Express.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Express.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: append([]StmtID(nil), stmts...)})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}
