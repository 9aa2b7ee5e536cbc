package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mica/internal/diag"
	"mica/internal/source"
)

// Pretty writes diagnostics in a human-readable form. Iterates bag.Items()
// as stored (call bag.Sort() first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline for the span, then the
// notes in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Severity.String(), d.Code.ID(), d.Message, severityColor(d.Severity), opts)
		writeContext(w, fs, d.Primary)
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			writeHeading(w, fs, note.Span, "note", "", note.Msg, color.New(color.FgCyan), opts)
			writeContext(w, fs, note.Span)
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, span source.Span, sev, code, msg string, c *color.Color, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	label := sev
	if code != "" {
		label += " " + code
	}
	if opts.Color {
		label = c.Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		formatPath(f.Path, opts.PathMode), start.Line, start.Col, label, msg)
}

// writeContext prints the first line the span touches with a caret
// underline. Widths are measured with runewidth so tabs and wide runes
// keep the carets aligned.
func writeContext(w io.Writer, fs *source.FileSet, span source.Span) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" && span.Empty() && start.Col == 1 {
		return
	}

	fmt.Fprintf(w, "  %s\n", expandTabs(line))

	prefixEnd := int(start.Col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := runewidth.StringWidth(expandTabs(line[:prefixEnd]))

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		underEnd := int(end.Col) - 1
		if underEnd > len(line) {
			underEnd = len(line)
		}
		width = runewidth.StringWidth(expandTabs(line[prefixEnd:underEnd]))
		if width < 1 {
			width = 1
		}
	}

	fmt.Fprintf(w, "  %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
