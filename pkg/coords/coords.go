// Package coords tracks the paired easting/northing inputs so a new easting
// entry can never silently keep a stale northing.
package coords

import (
	"strings"

	"github.com/irreligious86/Report-UAV/pkg/field"
)

// State is the editing state of the easting field.
type State int

const (
	// Idle means no easting edit has started since the last focus or clear.
	Idle State = iota
	// Editing means the user has typed into easting since the last focus or clear.
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "idle"
}

// Effect describes what the presentation layer should do after a change.
type Effect struct {
	// ClearedNorthing is set when northing was blanked by this change.
	ClearedNorthing bool
	// AdvanceToNorthing asks for focus to move to the northing field.
	AdvanceToNorthing bool
	// NorthingComplete asks for the northing field to give up focus.
	NorthingComplete bool
}

// Pair holds the two coordinate groups. The zero value is an empty Idle pair.
type Pair struct {
	Easting  string
	Northing string
	state    State
}

// State returns the current editing state.
func (p *Pair) State() State {
	return p.state
}

// FocusEasting resets the machine to Idle.
func (p *Pair) FocusEasting() {
	p.state = Idle
}

// SetEasting applies a raw easting change.
func (p *Pair) SetEasting(raw string) Effect {
	var eff Effect
	p.Easting = field.NormalizeFiveDigits(raw)

	if p.Easting == "" {
		eff.ClearedNorthing = p.Northing != ""
		p.Northing = ""
		p.state = Idle
		return eff
	}

	if p.state == Idle {
		p.state = Editing
		if strings.TrimSpace(p.Northing) != "" {
			p.Northing = ""
			eff.ClearedNorthing = true
		}
	}

	if len(p.Easting) == field.CoordinateDigits {
		eff.AdvanceToNorthing = true
	}
	return eff
}

// SetNorthing applies a raw northing change.
func (p *Pair) SetNorthing(raw string) Effect {
	p.Northing = field.NormalizeFiveDigits(raw)
	return Effect{NorthingComplete: len(p.Northing) == field.CoordinateDigits}
}

// Valid reports whether both groups are exactly five digits.
func (p *Pair) Valid() bool {
	return field.ValidCoordinate(strings.TrimSpace(p.Easting)) &&
		field.ValidCoordinate(strings.TrimSpace(p.Northing))
}
