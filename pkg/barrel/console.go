package barrel

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// reporter writes user-facing progress and diagnostics. Informational output
// goes to stderr so stdout stays clean for dry-run renders.
type reporter struct {
	out     io.Writer
	errw    io.Writer
	verbose bool
}

func newReporter(opts Options) *reporter {
	return &reporter{out: opts.Stdout, errw: opts.Stderr, verbose: opts.Verbose}
}

func (r *reporter) warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(r.errw, "warning: "+format+"\n", args...)
}

func (r *reporter) successf(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(r.errw, format+"\n", args...)
}

func (r *reporter) infof(format string, args ...any) {
	fmt.Fprintf(r.errw, format+"\n", args...)
}

func (r *reporter) verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}

	color.New(color.FgCyan).Fprintf(r.errw, format+"\n", args...)
}

// progressf prints a per-file progress line with a completion percentage.
func (r *reporter) progressf(index, total int, name string) {
	if !r.verbose || total == 0 {
		return
	}

	percent := (index + 1) * 100 / total
	color.New(color.FgCyan).Fprintf(r.errw, "[%3d%%] %s\n", percent, name)
}

// summary renders a per-component table of export counts.
func (r *reporter) summary(res *Result) {
	if !r.verbose || len(res.Components) == 0 {
		return
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Component", "Values", "Types"})

	for _, c := range res.Components {
		tbl.AppendRow(table.Row{c.Key, len(c.Values), len(c.Types)})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d components", len(res.Components)),
		"",
		fmt.Sprintf("%d reclassified", res.Reclassified),
	})

	fmt.Fprintln(r.errw, tbl.Render())
}

// diff prints a colored character diff between the existing barrel and the
// new render, for dry-run inspection.
func (r *reporter) diff(existing, generated string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(existing, generated, false)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			color.New(color.FgRed).Fprint(r.errw, d.Text)
		case diffmatchpatch.DiffInsert:
			color.New(color.FgGreen).Fprint(r.errw, d.Text)
		case diffmatchpatch.DiffEqual:
			fmt.Fprint(r.errw, d.Text)
		}
	}

	fmt.Fprintln(r.errw)
}
