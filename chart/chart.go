// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"

	"github.com/danielhkuo/quickly-elect/models"
	"github.com/danielhkuo/quickly-elect/results"
)

const (
	barFull  = "█"
	barEmpty = "░"

	// Headroom above the largest tally on the district chart
	districtMargin = 5
)

var palette = []color.Attribute{
	color.FgCyan,
	color.FgMagenta,
	color.FgYellow,
	color.FgGreen,
	color.FgBlue,
	color.FgRed,
}

// Renderer draws result snapshots as text bar charts
type Renderer struct {
	Out   io.Writer
	Width int
	Color bool
}

func NewRenderer(out io.Writer, width int, useColor bool) Renderer {
	return Renderer{Out: out, Width: width, Color: useColor}
}

// Render writes the proportion chart followed by the district chart
func (r Renderer) Render(snap models.ResultSnapshot) error {
	if err := r.Proportions(snap); err != nil {
		return err
	}
	if _, err := io.WriteString(r.Out, "\n"); err != nil {
		return err
	}
	return r.Districts(snap)
}

// Proportions writes each candidate's share of all votes
func (r Renderer) Proportions(snap models.ResultSnapshot) error {
	var b strings.Builder
	labelWidth := r.labelWidth(snap)

	b.WriteString(r.title("Election Results"))
	for i, res := range snap.Rankings {
		filled := scale(res.Votes, snap.TotalVotes, r.Width)
		fmt.Fprintf(&b, "  %-*s %s %6s%%  (%s)\n",
			labelWidth, res.Candidate,
			r.bar(i, filled),
			humanize.FormatFloat("#,###.#", res.Share),
			english.Plural(res.Votes, "vote", ""),
		)
	}

	_, err := io.WriteString(r.Out, b.String())
	return err
}

// Districts writes a group of bars per district, one per candidate.
// All groups share one scale so bars are comparable across districts.
func (r Renderer) Districts(snap models.ResultSnapshot) error {
	var b strings.Builder
	labelWidth := r.labelWidth(snap)
	axisMax := results.MaxVotes(snap) + districtMargin

	b.WriteString(r.title("Votes per District"))
	if len(snap.Districts) == 0 {
		b.WriteString("  (no districts)\n")
	}
	for _, d := range snap.Districts {
		fmt.Fprintf(&b, "%s (%s)\n", d.District, english.Plural(d.Total, "vote", ""))
		for i, count := range d.Counts {
			filled := scale(count.Votes, axisMax, r.Width)
			fmt.Fprintf(&b, "  %-*s %s %s\n",
				labelWidth, count.Candidate,
				r.bar(i, filled),
				humanize.Comma(int64(count.Votes)),
			)
		}
	}

	_, err := io.WriteString(r.Out, b.String())
	return err
}

func (r Renderer) title(text string) string {
	c := color.New(color.Bold)
	r.apply(c)
	return c.Sprint(text) + "\n"
}

func (r Renderer) bar(idx, filled int) string {
	c := color.New(palette[idx%len(palette)])
	r.apply(c)
	return c.Sprint(strings.Repeat(barFull, filled)) + strings.Repeat(barEmpty, max(r.Width-filled, 0))
}

func (r Renderer) apply(c *color.Color) {
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func (r Renderer) labelWidth(snap models.ResultSnapshot) int {
	width := 0
	for _, res := range snap.Rankings {
		if len(res.Candidate) > width {
			width = len(res.Candidate)
		}
	}
	return width
}

// scale maps value/max onto [0, width], rounding to the nearest cell.
// A negative width draws nothing.
func scale(value, max, width int) int {
	if max <= 0 || value <= 0 || width <= 0 {
		return 0
	}
	filled := (value*width*2 + max) / (max * 2)
	if filled > width {
		return width
	}
	return filled
}
