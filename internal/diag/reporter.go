package diag

import (
	"mica/internal/source"
)

// Reporter is the sink all pipeline phases report through.
// Implementations decide storage; phases never format or print.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter aggregates reports into a Bag.
type BagReporter struct {
	bag *Bag
}

func NewBagReporter(bag *Bag) *BagReporter {
	return &BagReporter{bag: bag}
}

// Bag returns the underlying bag.
func (r *BagReporter) Bag() *Bag {
	return r.bag
}

func (r *BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	d := New(sev, code, primary, msg)
	d.Notes = notes
	r.bag.Add(d)
}

// ReportBuilder accumulates one diagnostic before emitting it.
type ReportBuilder struct {
	reporter Reporter
	code     Code
	sev      Severity
	primary  source.Span
	msg      string
	notes    []Note
}

func NewReportBuilder(r Reporter, code Code, sev Severity, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		code:     code,
		sev:      sev,
		primary:  primary,
		msg:      msg,
	}
}

func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, code, SevError, primary, msg)
}

func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, code, SevWarning, primary, msg)
}

func ReportInfo(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, code, SevInfo, primary, msg)
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	b.notes = append(b.notes, Note{Span: sp, Msg: msg})
	return b
}

func (b *ReportBuilder) Emit() {
	b.reporter.Report(b.code, b.sev, b.primary, b.msg, b.notes)
}
