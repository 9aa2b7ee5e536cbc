package symbols

import (
	"strings"

	"mica/internal/ast"
	"mica/internal/source"
)

// FunctionSignature captures the callable shape of a function: parameter
// types and names plus the result type. A nil signature on a function
// symbol means "unknown arity", which disables argument count checking.
type FunctionSignature struct {
	Params     []ast.TypeKind
	ParamNames []source.StringID
	Result     ast.TypeKind
}

func buildFunctionSignature(builder *ast.Builder, fn *ast.FnItem) *FunctionSignature {
	if builder == nil || fn == nil {
		return nil
	}
	params := builder.Items.CollectParams(fn)
	sig := &FunctionSignature{
		Params:     make([]ast.TypeKind, 0, len(params)),
		ParamNames: make([]source.StringID, 0, len(params)),
		Result:     fn.Result.Kind,
	}
	for _, p := range params {
		sig.Params = append(sig.Params, p.Type.Kind)
		sig.ParamNames = append(sig.ParamNames, p.Name)
	}
	return sig
}

// Render formats the signature the way it is written in source, e.g.
// "int add(int a, int b)".
func (sig *FunctionSignature) Render(name string, strs *source.Interner) string {
	if sig == nil {
		return name + "(...)"
	}
	var sb strings.Builder
	sb.WriteString(sig.Result.String())
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, p := range sig.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
		if strs != nil && i < len(sig.ParamNames) && sig.ParamNames[i] != source.NoStringID {
			sb.WriteByte(' ')
			sb.WriteString(strs.MustLookup(sig.ParamNames[i]))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
