package parser

import (
	"testing"

	"mica/internal/ast"
	"mica/internal/diag"
)

func TestParseFunctionAndGlobal(t *testing.T) {
	f := parseSource(t, `
int limit = 100;

int add(int a, int b) {
	return a + b;
}

void main() {
	int x = add(1, 2);
}
`)
	f.requireOk(t)

	items := f.items(t)
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}

	global, ok := f.arenas.Items.Global(items[0])
	if !ok {
		t.Fatalf("item 0 is not a global")
	}
	if f.name(global.Name) != "limit" || global.Type.Kind != ast.TypeInt {
		t.Errorf("global = %q %v", f.name(global.Name), global.Type.Kind)
	}
	if !global.Init.IsValid() {
		t.Errorf("global should have an initializer")
	}

	fn, ok := f.arenas.Items.Fn(items[1])
	if !ok {
		t.Fatalf("item 1 is not a function")
	}
	if f.name(fn.Name) != "add" || fn.Result.Kind != ast.TypeInt {
		t.Errorf("fn = %q %v", f.name(fn.Name), fn.Result.Kind)
	}
	params := f.arenas.Items.CollectParams(fn)
	if len(params) != 2 {
		t.Fatalf("params = %d, want 2", len(params))
	}
	if f.name(params[0].Name) != "a" || params[1].Type.Kind != ast.TypeInt {
		t.Errorf("params = %+v", params)
	}

	mainFn, ok := f.arenas.Items.Fn(items[2])
	if !ok {
		t.Fatalf("item 2 is not a function")
	}
	if mainFn.Result.Kind != ast.TypeVoid || mainFn.ParamsCount != 0 {
		t.Errorf("main = %v params=%d", mainFn.Result.Kind, mainFn.ParamsCount)
	}
}

func TestParseGlobalWithoutInitializer(t *testing.T) {
	f := parseSource(t, "float ratio;")
	f.requireOk(t)
	global, ok := f.arenas.Items.Global(f.items(t)[0])
	if !ok {
		t.Fatalf("expected a global")
	}
	if global.Init.IsValid() {
		t.Errorf("bare global should have no initializer")
	}
}

func TestParseStatements(t *testing.T) {
	f := parseSource(t, `
void main() {
	int n = 3;
	n = n - 1;
	print(n);
	if (n > 0) {
		n = 0;
	} else {
		n = 1;
	}
	while (n < 10) {
		n = n + 1;
	}
	return;
}
`)
	f.requireOk(t)

	fn, _ := f.arenas.Items.Fn(f.items(t)[0])
	block, ok := f.arenas.Stmts.Block(fn.Body)
	if !ok {
		t.Fatalf("fn body is not a block")
	}
	if len(block.Stmts) != 6 {
		t.Fatalf("stmts = %d, want 6", len(block.Stmts))
	}

	wantKinds := []ast.StmtKind{
		ast.StmtDecl, ast.StmtAssign, ast.StmtExpr,
		ast.StmtIf, ast.StmtWhile, ast.StmtReturn,
	}
	for i, want := range wantKinds {
		if got := f.arenas.Stmts.Get(block.Stmts[i]).Kind; got != want {
			t.Errorf("stmt %d kind = %v, want %v", i, got, want)
		}
	}

	ret, _ := f.arenas.Stmts.Return(block.Stmts[5])
	if ret.Value.IsValid() {
		t.Errorf("bare return should carry no value")
	}
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	f := parseSource(t, `
void main() {
	if (a) if (b) x = 1; else x = 2;
}
`)
	f.requireOk(t)

	fn, _ := f.arenas.Items.Fn(f.items(t)[0])
	block, _ := f.arenas.Stmts.Block(fn.Body)
	outer, _ := f.arenas.Stmts.If(block.Stmts[0])
	if outer.Else.IsValid() {
		t.Fatalf("outer if must have no else branch")
	}
	inner, ok := f.arenas.Stmts.If(outer.Then)
	if !ok {
		t.Fatalf("outer then is not an if")
	}
	if !inner.Else.IsValid() {
		t.Fatalf("inner if must own the else branch")
	}
}

func TestVoidVariableRejected(t *testing.T) {
	f := parseSource(t, "void x;")
	if f.result.Ok {
		t.Fatalf("void variable should not parse")
	}
	f.requireCodes(t, diag.SynExpectType)
}

func TestVoidParamRejected(t *testing.T) {
	f := parseSource(t, "int f(void x) { return 0; }")
	if f.result.Ok {
		t.Fatalf("void parameter should not parse")
	}
	f.requireCodes(t, diag.SynExpectType)
}

func TestAssignmentTargetMustBeIdent(t *testing.T) {
	f := parseSource(t, `
void main() {
	f(x) = 1;
}
`)
	if f.result.Ok {
		t.Fatalf("call on the left of '=' should not parse")
	}
	f.requireCodes(t, diag.SynUnexpectedToken)
}

func TestMissingBodyReported(t *testing.T) {
	f := parseSource(t, "int f();")
	if f.result.Ok {
		t.Fatalf("function without body should not parse")
	}
	f.requireCodes(t, diag.SynUnexpectedToken)
}
