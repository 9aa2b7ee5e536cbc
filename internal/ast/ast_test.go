package ast

import (
	"testing"

	"mica/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](4)
	if got := a.Get(0); got != nil {
		t.Fatalf("Get(0) = %v, want nil", got)
	}
	id := a.Allocate(42)
	if id != 1 {
		t.Fatalf("first Allocate = %d, want 1", id)
	}
	if *a.Get(id) != 42 {
		t.Fatalf("Get(%d) = %d, want 42", id, *a.Get(id))
	}
}

func TestBuilderFnRoundTrip(t *testing.T) {
	in := source.NewInterner()
	b := NewBuilder(Hints{})

	fileID := b.NewFile(sp(0, 100))
	params := []Param{
		{Name: in.Intern("a"), Type: TypeSpec{Kind: TypeInt, Span: sp(8, 11)}, Span: sp(8, 13)},
		{Name: in.Intern("b"), Type: TypeSpec{Kind: TypeFloat, Span: sp(15, 20)}, Span: sp(15, 22)},
	}
	body := b.Stmts.NewBlock(sp(24, 30), nil)
	itemID := b.Items.NewFn(in.Intern("add"), sp(4, 7), TypeSpec{Kind: TypeInt, Span: sp(0, 3)}, params, body, sp(0, 30))
	b.PushItem(fileID, itemID)

	fn, ok := b.Items.Fn(itemID)
	if !ok {
		t.Fatalf("Fn lookup failed")
	}
	if got := in.MustLookup(fn.Name); got != "add" {
		t.Errorf("name = %q, want add", got)
	}
	if fn.Result.Kind != TypeInt {
		t.Errorf("result = %v, want int", fn.Result.Kind)
	}
	got := b.Items.CollectParams(fn)
	if len(got) != 2 {
		t.Fatalf("params = %d, want 2", len(got))
	}
	if got[1].Type.Kind != TypeFloat {
		t.Errorf("param 1 type = %v, want float", got[1].Type.Kind)
	}
	if len(b.Files.Get(fileID).Items) != 1 {
		t.Errorf("file items = %d, want 1", len(b.Files.Get(fileID).Items))
	}
}

func TestExprPayloadAccessors(t *testing.T) {
	in := source.NewInterner()
	e := NewExprs(0)

	lhs := e.NewLiteral(sp(0, 1), LitInt, in.Intern("1"))
	rhs := e.NewIdent(sp(4, 5), in.Intern("x"))
	bin := e.NewBinary(sp(0, 5), ExprBinaryAdd, lhs, rhs)

	data, ok := e.Binary(bin)
	if !ok {
		t.Fatalf("Binary lookup failed")
	}
	if data.Op != ExprBinaryAdd || data.Left != lhs || data.Right != rhs {
		t.Fatalf("binary data = %+v", data)
	}
	// kind mismatch yields false
	if _, ok := e.Call(bin); ok {
		t.Fatalf("Call on a binary expression should fail")
	}
	lit, ok := e.Literal(lhs)
	if !ok || lit.Kind != LitInt {
		t.Fatalf("literal data = %+v ok=%v", lit, ok)
	}
}

func TestCallArgsAreCopied(t *testing.T) {
	in := source.NewInterner()
	e := NewExprs(0)
	args := []ExprID{e.NewIdent(sp(2, 3), in.Intern("x"))}
	call := e.NewCall(sp(0, 4), in.Intern("f"), sp(0, 1), args)
	args[0] = NoExprID
	data, _ := e.Call(call)
	if data.Args[0] == NoExprID {
		t.Fatalf("call args alias the caller's slice")
	}
}

func TestStmtRoundTrip(t *testing.T) {
	in := source.NewInterner()
	b := NewBuilder(Hints{})

	cond := b.Exprs.NewLiteral(sp(4, 8), LitBool, in.Intern("true"))
	then := b.Stmts.NewBlock(sp(10, 12), nil)
	els := b.Stmts.NewBlock(sp(18, 20), nil)
	ifID := b.Stmts.NewIf(sp(0, 20), cond, then, els)

	data, ok := b.Stmts.If(ifID)
	if !ok {
		t.Fatalf("If lookup failed")
	}
	if data.Cond != cond || data.Then != then || data.Else != els {
		t.Fatalf("if data = %+v", data)
	}

	ret := b.Stmts.NewReturn(sp(0, 7), NoExprID)
	r, ok := b.Stmts.Return(ret)
	if !ok || r.Value.IsValid() {
		t.Fatalf("bare return should have no value")
	}
}

func TestTypeKindStrings(t *testing.T) {
	cases := map[TypeKind]string{
		TypeInt:    "int",
		TypeFloat:  "float",
		TypeBool:   "bool",
		TypeString: "string",
		TypeVoid:   "void",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
}
