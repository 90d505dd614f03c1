// Package lists shows and edits the option lists offered by the form.
package lists

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/printers"
)

func writer(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return color.Output
}

// Show prints the effective lists: base config merged with local additions.
type Show struct {
	Service *app.Service
	Source  lists.Source
	JSON    bool
	Out     io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	cfg, loadErr := s.Service.EffectiveLists(ctx, s.Source)
	if s.JSON {
		return json.NewEncoder(writer(s.Out)).Encode(cfg)
	}
	pp := printers.PrettyPrint{Out: writer(s.Out)}
	if loadErr != nil {
		pp.Status(app.StatusConfigError, true)
	}
	pp.NewLine()
	pp.Lists(cfg)
	return nil
}

// Add appends one value to a category.
type Add struct {
	Service  *app.Service
	Source   lists.Source
	Category lists.Category
	Value    string
	Out      io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	v, err := a.Service.AddListItem(ctx, a.Source, a.Category, a.Value)
	switch {
	case errors.Is(err, lists.ErrDuplicate):
		_, _ = fmt.Fprintf(writer(a.Out), "%q is already in %s.\n", v, a.Category.Label())
		return nil
	case err != nil:
		return err
	}
	_, _ = fmt.Fprintf(writer(a.Out), "Added %q to %s.\n", v, a.Category.Label())
	return nil
}

// Set replaces the local values of a category.
type Set struct {
	Service  *app.Service
	Category lists.Category
	Values   []string
	Out      io.Writer
}

func (s *Set) Do(_ context.Context) error {
	if err := s.Service.SetList(s.Category, s.Values); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(writer(s.Out), "Saved %s.\n", s.Category.Label())
	return nil
}

// Defaults stores the default selections.
type Defaults struct {
	Service  *app.Service
	Defaults lists.Defaults
	Out      io.Writer
}

func (d *Defaults) Do(_ context.Context) error {
	if err := d.Service.SetDefaults(d.Defaults); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(writer(d.Out), "Saved defaults.")
	return nil
}

// Reset drops every local list change.
type Reset struct {
	Service *app.Service
	Out     io.Writer
}

func (r *Reset) Do(_ context.Context) error {
	if err := r.Service.ResetLists(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(writer(r.Out), "Local list changes removed.")
	return nil
}
