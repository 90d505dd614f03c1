// Package printers renders reports, journals and statistics for the terminal.
package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/irreligious86/Report-UAV/pkg/journal"
	"github.com/irreligious86/Report-UAV/pkg/lists"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1a2b3c4d  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints title followed by a faint "- n nouns".
func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " "+noun)
	default:
		_, _ = c.Fprintln(pp.out(), " "+noun+"s")
	}
}

// Status prints a one-line status, red when failed.
func (pp *PrettyPrint) Status(msg string, failed bool) {
	s := color.New(color.FgGreen)
	if failed {
		s = color.New(color.FgRed)
	}
	_, _ = s.Fprintln(pp.out(), msg)
}

// Report prints one report body, optionally under its id.
func (pp *PrettyPrint) Report(id, text string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	if pp.ShowID && id != "" {
		_, _ = y.Fprintln(pp.out(), id)
	}
	_, _ = fmt.Fprintln(pp.out(), text)
}

// Journal prints the kept reports as cards, newest first.
func (pp *PrettyPrint) Journal(entries ...journal.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(pp.out(), " %s\n\n", journal.EmptyMessage)
		return
	}

	h := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, e := range entries {
		if pp.ShowID {
			id := e.Report.ShortID()
			_, _ = y.Fprint(pp.out(), id)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(1, len(spacing)-len(id))))
		}
		_, _ = h.Fprintln(pp.out(), e.Header())
		for _, line := range strings.Split(e.Report.Text, "\n") {
			if pp.ShowID {
				_, _ = fmt.Fprint(pp.out(), spacing)
			}
			_, _ = fmt.Fprintln(pp.out(), line)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
}

// KPI prints the sortie total, hits, losses and hit rate.
func (pp *PrettyPrint) KPI(res journal.Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Вильотів"), bold.Sprint("Уражено"), bold.Sprint("Втрати"), bold.Sprint("Ефективність"))
	tbl.AddRow(strconv.Itoa(res.Total), green.Sprint(res.Hits), red.Sprint(res.Losses), fmt.Sprintf("%d%%", res.Rate()))
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Tallies prints every non-empty frequency table of res.
func (pp *PrettyPrint) Tallies(res journal.Result) {
	for _, b := range res.Blocks() {
		if len(b.Tally) == 0 {
			continue
		}
		pp.Tally(b.Label, b.Tally)
	}
}

// Tally prints one frequency table with counts right aligned.
func (pp *PrettyPrint) Tally(label string, t journal.Tally) {
	pp.Title(label)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range t {
		tbl.AddRow(strconv.Itoa(c.Count), c.Name)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Lists prints the effective option lists and defaults.
func (pp *PrettyPrint) Lists(cfg lists.Config) {
	faint := color.New(color.Faint, color.Italic)
	for _, c := range lists.Categories() {
		items := cfg.Lists.Get(c)
		pp.TitleWithCount(fmt.Sprintf("%s (%s)", c.Label(), c), len(items), "item")
		if len(items) == 0 {
			_, _ = faint.Fprint(pp.out(), " none\n\n")
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for i, v := range items {
			tbl.AddRow(strconv.Itoa(i+1), v)
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(pp.out(), tbl)
		_, _ = fmt.Fprintln(pp.out(), "")
	}

	d := cfg.Defaults
	if d.MgrsPrefix == "" && d.MissionType == "" && d.Result == "" {
		return
	}
	pp.Title("Defaults")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(lists.MgrsPrefixes.Label(), d.MgrsPrefix)
	tbl.AddRow(lists.MissionTypes.Label(), d.MissionType)
	tbl.AddRow(lists.Results.Label(), d.Result)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Items prints a numbered list, or "none".
func (pp *PrettyPrint) Items(items ...string) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, v := range items {
		tbl.AddRow(strconv.Itoa(i+1), v)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
