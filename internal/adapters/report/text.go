package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/okian/ats/internal/domain/types"
)

// TextFormatter renders a human-readable report.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter { return &TextFormatter{} }

func (f *TextFormatter) Name() string          { return "text" }
func (f *TextFormatter) Description() string   { return "Human-readable text output with colors" }
func (f *TextFormatter) FileExtension() string { return ".txt" }

type palette struct {
	title *color.Color
	key   *color.Color
	warn  *color.Color
	ok    *color.Color
	dim   *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		title: color.New(color.FgWhite, color.Bold),
		key:   color.New(color.FgCyan),
		warn:  color.New(color.FgYellow),
		ok:    color.New(color.FgGreen),
		dim:   color.New(color.FgBlue),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.key, p.warn, p.ok, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

func (f *TextFormatter) Format(r types.Report, opts Options) (string, error) {
	p := newPalette(opts.NoColor)
	var b strings.Builder

	b.WriteString(p.title.Sprint("Duplicate candidate report"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Candidates:         %d\n", r.Candidates)
	fmt.Fprintf(&b, "  Jobs:               %d\n", r.Jobs)
	fmt.Fprintf(&b, "  Index keys:         %d\n", r.IndexKeys)
	clusters := p.ok.Sprint(r.DuplicateClusters)
	if r.DuplicateClusters > 0 {
		clusters = p.warn.Sprint(r.DuplicateClusters)
	}
	fmt.Fprintf(&b, "  Duplicate clusters: %s\n", clusters)

	b.WriteString("\n")
	b.WriteString(p.title.Sprint("Clusters"))
	b.WriteString("\n")
	if len(r.Clusters) == 0 {
		b.WriteString("  none\n")
	}
	for _, c := range r.Clusters {
		fmt.Fprintf(&b, "  %s (%d)\n", p.key.Sprint(c.Key), len(c.Members))
		for _, m := range c.Members {
			fmt.Fprintf(&b, "    - %s  %s  %s\n", m.Name, m.DateOfBirth, p.dim.Sprint(m.ID))
		}
	}

	b.WriteString("\n")
	b.WriteString(p.title.Sprint("Hottest candidate"))
	b.WriteString("\n")
	if r.Hottest == nil {
		b.WriteString("  none\n")
	} else {
		fmt.Fprintf(&b, "  %s with %d hot jobs\n", p.key.Sprint(r.Hottest.Candidate.Name), r.Hottest.HotJobs)
	}

	if opts.Verbose && len(r.Hotness) > 0 {
		b.WriteString("\n")
		b.WriteString(p.title.Sprint("Hotness"))
		b.WriteString("\n")
		for _, h := range r.Hotness {
			fmt.Fprintf(&b, "  %-24s %d\n", h.Candidate.Name, h.HotJobs)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Busiest months:     %s\n", orNone(r.BusiestMonths))
	fmt.Fprintf(&b, "Top skills:         %s\n", orNone(r.TopSkills))
	if r.GenderRatio == nil {
		b.WriteString("Gender ratio (F/M): n/a\n")
	} else {
		fmt.Fprintf(&b, "Gender ratio (F/M): %.2f\n", *r.GenderRatio)
	}

	return b.String(), nil
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
