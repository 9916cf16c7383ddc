// Package report renders search results as the human-readable text printed
// by the unisearch binary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/unisearch/search"
)

// Printer writes instance banners and per-strategy result blocks to w.
// Styling follows the terminal profile of w; plain writers get plain text.
type Printer struct {
	w    io.Writer
	bold lipgloss.Style
	err  error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{w: w, bold: r.NewStyle().Bold(true)}
}

// Err returns the first write error encountered, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Banner prints "================ name ================" preceded by a blank line.
func (p *Printer) Banner(name string) {
	p.printf("\n%s\n", p.bold.Render(fmt.Sprintf("================ %s ================", name)))
}

// Result prints one strategy's outcome. describe renders a state; actions are
// printed with their String form.
func Result[S comparable, A any](p *Printer, res *search.Result[S, A], describe func(S) string) {
	p.printf("\n%s cutoff = %t\n", p.bold.Render("["+res.Strategy+"]"), res.Cutoff)
	p.printf("First 5 expansion (state, g):\n")
	for _, e := range res.First5 {
		p.printf(" %s, g = %.2f\n", describe(e.State), e.Cost)
	}
	p.printf("Expanded: %s\n", humanize.Comma(int64(res.Expanded)))
	p.printf("Generated: %s\n", humanize.Comma(int64(res.Generated)))
	p.printf("Time: %.3f\n", res.Elapsed.Seconds())

	if !res.Found {
		p.printf("No solution found (or cutoff forced stop)\n")
		return
	}
	p.printf("Moves: %s\n", formatActions(res.Solution))
	p.printf("Total cost: %.2f\n", res.Cost)
}

func formatActions[A any](actions []A) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = fmt.Sprint(a)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
