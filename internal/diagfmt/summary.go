package diagfmt

import (
	"fmt"
	"io"

	"mica/internal/ast"
	"mica/internal/symbols"
)

// FunctionInfo describes one function for the summary listing.
type FunctionInfo struct {
	Signature string `json:"signature"`
	BodyStmts int    `json:"body_stmts"`
}

// ProgramSummary aggregates the top-level shape of one checked file.
type ProgramSummary struct {
	Functions []FunctionInfo `json:"functions"`
	Globals   int            `json:"globals"`
}

// BuildProgramSummary counts top-level declarations and renders the
// signature and body size of every function, in declaration order.
func BuildProgramSummary(builder *ast.Builder, fileID ast.FileID, table *symbols.Table) ProgramSummary {
	var summary ProgramSummary
	file := builder.Files.Get(fileID)
	if file == nil {
		return summary
	}
	strs := builder.StringsInterner
	if table != nil && table.Strings != nil {
		strs = table.Strings
	}
	for _, itemID := range file.Items {
		item := builder.Items.Get(itemID)
		if item == nil {
			continue
		}
		switch item.Kind {
		case ast.ItemFn:
			fn, ok := builder.Items.Fn(itemID)
			if !ok {
				continue
			}
			sig := &symbols.FunctionSignature{Result: fn.Result.Kind}
			for _, p := range builder.Items.CollectParams(fn) {
				sig.Params = append(sig.Params, p.Type.Kind)
				sig.ParamNames = append(sig.ParamNames, p.Name)
			}
			bodyStmts := 0
			if body, ok := builder.Stmts.Block(fn.Body); ok {
				bodyStmts = len(body.Stmts)
			}
			summary.Functions = append(summary.Functions, FunctionInfo{
				Signature: sig.Render(strs.MustLookup(fn.Name), strs),
				BodyStmts: bodyStmts,
			})
		case ast.ItemGlobal:
			summary.Globals++
		}
	}
	return summary
}

// FormatSummaryPretty writes the counts and the function listing.
func FormatSummaryPretty(w io.Writer, summary ProgramSummary) {
	fmt.Fprintf(w, "Program summary: %d function%s, %d global%s\n",
		len(summary.Functions), pluralSuffix(len(summary.Functions)),
		summary.Globals, pluralSuffix(summary.Globals))
	for _, fn := range summary.Functions {
		fmt.Fprintf(w, "  %s  [%d statement%s]\n",
			fn.Signature, fn.BodyStmts, pluralSuffix(fn.BodyStmts))
	}
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
