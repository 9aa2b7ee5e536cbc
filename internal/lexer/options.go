package lexer

import (
	"mica/internal/diag"
	"mica/internal/source"
)

// Reporter is a thin sink so the scanner stays decoupled from diagnostic
// storage. The lexer only calls it; aggregation and formatting live outside.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // nil means errors are dropped but scanning continues
	Interner *source.Interner
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
