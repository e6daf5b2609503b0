// Package report prints an analysis for people or scripts.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/cube-saver/internal/planner"
	"github.com/xtding233/cube-saver/internal/pricing"
)

const rule = "##################################################################################################"

type Options struct {
	NoColor bool
}

// Render writes the text report.
func Render(w io.Writer, r planner.Report, opts Options) error {
	head := color.New(color.FgCyan, color.Bold)
	good := color.New(color.FgGreen)
	if opts.NoColor {
		head.DisableColor()
		good.DisableColor()
	}

	p, s := r.Plan, r.Summary
	ew := &errWriter{w: w}

	ew.println(head.Sprint(rule))
	ew.line("Current cube balance:", humanize.Comma(int64(r.Input.Budget)))
	ew.line("Remaining cube balance:", humanize.Comma(int64(p.RemainingBudget)))
	ew.line("Modules financially covered by strategy:", fmt.Sprintf("%d/%d (%s%%)", s.PaidModules, s.NeededModules, s.Coverage.StringFixed(2)))
	ew.println("Optimal path through modules in tier-ranks:")
	ew.println(" => " + good.Sprint(p.PathString()))
	ew.line("Remaining modules by tier-ranks:", counts(p.Remaining))
	ew.line("Total cube costs:", humanize.Comma(int64(s.TotalCost)))
	ew.line("Covered cube costs:", humanize.Comma(int64(s.CoveredCost)))
	ew.line("Remaining cube costs:", humanize.Comma(int64(s.RemainingCost)))
	ew.println(head.Sprint(rule))
	ew.println("Buying the modules from the highest tier down to the lowest after the strategy above results in...")
	ew.line(" -> Modules to pay for by tier-ranks:", counts(p.Residual.ToBuy))
	ew.line(" -> Free modules through cashback by tier-ranks:", counts(p.Residual.Free))
	ew.line(" -> Anticipated remaining costs:", humanize.Comma(int64(s.AnticipatedCost)))
	ew.println(head.Sprint(rule))
	return ew.err
}

func counts(c pricing.Counts) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}

func (e *errWriter) line(label, value string) {
	e.println(fmt.Sprintf("%-57s%s", label, value))
}

// Document is the machine-readable form of a report.
type Document struct {
	Budget          int    `yaml:"budget"`
	Demand          []int  `yaml:"demand"`
	Funded          []int  `yaml:"funded"`
	Path            string `yaml:"path"`
	RemainingBudget int    `yaml:"remaining_budget"`
	ToBuy           []int  `yaml:"to_buy"`
	Free            []int  `yaml:"free"`
	TotalCost       int    `yaml:"total_cost"`
	CoveredCost     int    `yaml:"covered_cost"`
	RemainingCost   int    `yaml:"remaining_cost"`
	AnticipatedCost int    `yaml:"anticipated_cost"`
	CoveragePct     string `yaml:"coverage_pct"`
}

// NewDocument flattens r.
func NewDocument(r planner.Report) Document {
	p, s := r.Plan, r.Summary
	return Document{
		Budget:          r.Input.Budget,
		Demand:          append([]int(nil), r.Input.Demand[:]...),
		Funded:          append([]int(nil), p.Funded[:]...),
		Path:            p.PathString(),
		RemainingBudget: p.RemainingBudget,
		ToBuy:           append([]int(nil), p.Residual.ToBuy[:]...),
		Free:            append([]int(nil), p.Residual.Free[:]...),
		TotalCost:       s.TotalCost,
		CoveredCost:     s.CoveredCost,
		RemainingCost:   s.RemainingCost,
		AnticipatedCost: s.AnticipatedCost,
		CoveragePct:     s.Coverage.StringFixed(2),
	}
}

// RenderYAML writes the report as a YAML document.
func RenderYAML(w io.Writer, r planner.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(r)); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return errors.Wrap(enc.Close(), "encode report")
}
