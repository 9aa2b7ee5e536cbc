package symbols

import (
	"fmt"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/source"
)

func (r *resolution) walkFn(itemID ast.ItemID, fn *ast.FnItem) {
	scope := r.resolver.Enter(ScopeFunction, ScopeOwner{
		Kind:       ScopeOwnerItem,
		SourceFile: r.sourceFile,
		ASTFile:    r.astFile,
		Item:       itemID,
	}, fn.Span)
	defer r.resolver.Leave(scope)

	for _, param := range r.builder.Items.CollectParams(fn) {
		r.resolver.Declare(Symbol{
			Name: param.Name,
			Kind: SymbolParam,
			Span: param.NameSpan,
			Type: param.Type.Kind,
			Decl: SymbolDecl{SourceFile: r.sourceFile, ASTFile: r.astFile, Item: itemID},
		})
	}

	// The body block reuses the parameter scope: a local named like a
	// parameter at the top level of the body is a duplicate, not a shadow.
	if body, ok := r.builder.Stmts.Block(fn.Body); ok {
		for _, stmt := range body.Stmts {
			r.walkStmt(stmt)
		}
	}
}

func (r *resolution) walkStmt(stmtID ast.StmtID) {
	stmt := r.builder.Stmts.Get(stmtID)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtDecl:
		decl, ok := r.builder.Stmts.Decl(stmtID)
		if !ok {
			return
		}
		// Initializer is resolved before the name is bound, so
		// `int x = x;` refers to an outer x or is an error.
		if decl.Init.IsValid() {
			r.walkExpr(decl.Init)
		}
		r.resolver.Declare(Symbol{
			Name: decl.Name,
			Kind: SymbolLocal,
			Span: decl.NameSpan,
			Type: decl.Type.Kind,
			Decl: SymbolDecl{SourceFile: r.sourceFile, ASTFile: r.astFile, Stmt: stmtID},
		})
	case ast.StmtAssign:
		assign, ok := r.builder.Stmts.Assign(stmtID)
		if !ok {
			return
		}
		if _, found := r.resolver.Lookup(assign.Name); !found {
			r.reportUnresolved(assign.Name, assign.NameSpan)
		}
		r.walkExpr(assign.Value)
	case ast.StmtExpr:
		if data, ok := r.builder.Stmts.Expr(stmtID); ok {
			r.walkExpr(data.Expr)
		}
	case ast.StmtIf:
		data, ok := r.builder.Stmts.If(stmtID)
		if !ok {
			return
		}
		r.walkExpr(data.Cond)
		r.walkStmt(data.Then)
		if data.Else.IsValid() {
			r.walkStmt(data.Else)
		}
	case ast.StmtWhile:
		data, ok := r.builder.Stmts.While(stmtID)
		if !ok {
			return
		}
		r.walkExpr(data.Cond)
		r.walkStmt(data.Body)
	case ast.StmtReturn:
		data, ok := r.builder.Stmts.Return(stmtID)
		if !ok {
			return
		}
		if data.Value.IsValid() {
			r.walkExpr(data.Value)
		}
	case ast.StmtBlock:
		data, ok := r.builder.Stmts.Block(stmtID)
		if !ok {
			return
		}
		scope := r.resolver.Enter(ScopeBlock, ScopeOwner{
			Kind:       ScopeOwnerStmt,
			SourceFile: r.sourceFile,
			ASTFile:    r.astFile,
			Stmt:       stmtID,
		}, stmt.Span)
		for _, inner := range data.Stmts {
			r.walkStmt(inner)
		}
		r.resolver.Leave(scope)
	}
}

func (r *resolution) walkExpr(exprID ast.ExprID) {
	expr := r.builder.Exprs.Get(exprID)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		data, ok := r.builder.Exprs.Ident(exprID)
		if !ok {
			return
		}
		if _, found := r.resolver.Lookup(data.Name); !found {
			r.reportUnresolved(data.Name, expr.Span)
		}
	case ast.ExprLit:
		// Nothing to resolve.
	case ast.ExprUnary:
		if data, ok := r.builder.Exprs.Unary(exprID); ok {
			r.walkExpr(data.Operand)
		}
	case ast.ExprBinary:
		data, ok := r.builder.Exprs.Binary(exprID)
		if !ok {
			return
		}
		r.walkExpr(data.Left)
		r.walkExpr(data.Right)
	case ast.ExprCall:
		data, ok := r.builder.Exprs.Call(exprID)
		if !ok {
			return
		}
		r.checkCall(data, expr.Span)
		for _, arg := range data.Args {
			r.walkExpr(arg)
		}
	case ast.ExprGroup:
		if data, ok := r.builder.Exprs.Group(exprID); ok {
			r.walkExpr(data.Inner)
		}
	}
}

// checkCall resolves the callee and, when the signature is known,
// verifies argument count.
func (r *resolution) checkCall(call *ast.ExprCallData, callSpan source.Span) {
	id, found := r.resolver.Lookup(call.Callee)
	if !found {
		r.reportUnresolved(call.Callee, call.CalleeSpan)
		return
	}
	sym := r.table.Symbols.Get(id)
	if sym == nil {
		return
	}
	if sym.Kind != SymbolFunction {
		r.reportNotAFunction(call.Callee, call.CalleeSpan, sym)
		return
	}
	if sym.Signature == nil {
		return
	}
	want, got := len(sym.Signature.Params), len(call.Args)
	if want == got {
		return
	}
	if r.reporter == nil {
		return
	}
	name := r.table.Strings.MustLookup(call.Callee)
	msg := fmt.Sprintf("'%s' expects %d argument%s, found %d",
		name, want, plural(want), got)
	builder := diag.ReportError(r.reporter, diag.SemaArgCountMismatch, callSpan, msg)
	if sym.Span != (source.Span{}) {
		builder.WithNote(sym.Span, "declared as "+sym.Signature.Render(name, r.table.Strings))
	}
	builder.Emit()
}

func (r *resolution) reportUnresolved(name source.StringID, span source.Span) {
	if r.reporter == nil {
		return
	}
	msg := fmt.Sprintf("cannot find '%s' in this scope", r.table.Strings.MustLookup(name))
	diag.ReportError(r.reporter, diag.SemaUnresolvedSymbol, span, msg).Emit()
}

func (r *resolution) reportNotAFunction(name source.StringID, span source.Span, sym *Symbol) {
	if r.reporter == nil {
		return
	}
	msg := fmt.Sprintf("'%s' is not a function", r.table.Strings.MustLookup(name))
	builder := diag.ReportError(r.reporter, diag.SemaError, span, msg)
	if sym.Span != (source.Span{}) {
		builder.WithNote(sym.Span, fmt.Sprintf("declared here as a %s", sym.Kind))
	}
	builder.Emit()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
