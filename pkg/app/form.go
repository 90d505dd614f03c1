package app

import (
	"strings"
	"time"

	"github.com/irreligious86/Report-UAV/pkg/coords"
	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/report"
	"github.com/irreligious86/Report-UAV/pkg/timeutil"
)

// Form is the editable report form. It is owned by one front end at a time
// and handed to Service.Generate by pointer so the post-generate resets land
// in it.
type Form struct {
	Crew    string
	Counter string
	Date    time.Time
	Takeoff string
	Impact  string

	Drone       string
	MissionType string
	Coords      coords.Pair
	MgrsPrefix  string
	Ammo        string
	Stream      string
	Result      string

	Modes map[lists.Category]field.DisplayMode
}

// NewForm seeds a form from the effective lists and the stored counter.
func NewForm(cfg lists.Config, crew string, counter field.Counter, now time.Time) Form {
	f := Form{
		Crew:    crew,
		Counter: counter.String(),
		Date:    timeutil.Today(now),
		Modes:   make(map[lists.Category]field.DisplayMode, len(lists.Categories())),
	}
	f.Drone = first(cfg.Lists.Get(lists.Drones))
	f.Ammo = first(cfg.Lists.Get(lists.Ammo))
	f.MissionType = preferred(cfg.Defaults.MissionType, cfg.Lists.Get(lists.MissionTypes))
	f.Result = preferred(cfg.Defaults.Result, cfg.Lists.Get(lists.Results))
	f.MgrsPrefix = preferred(cfg.Defaults.MgrsPrefix, cfg.Lists.Get(lists.MgrsPrefixes))
	return f
}

func first(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

func preferred(def string, options []string) string {
	if def != "" {
		return def
	}
	return first(options)
}

// Mode returns the display mode of a list-backed field.
func (f *Form) Mode(c lists.Category) field.DisplayMode {
	return f.Modes[c]
}

// ToggleMode switches a list-backed field between its option list and free
// text.
func (f *Form) ToggleMode(c lists.Category) field.DisplayMode {
	if f.Modes == nil {
		f.Modes = make(map[lists.Category]field.DisplayMode)
	}
	f.Modes[c] = f.Modes[c].Toggle()
	return f.Modes[c]
}

// Snapshot validates the form and freezes it for composition. It reports the
// counter or coordinate problem without touching the form.
func (f *Form) Snapshot() (report.Snapshot, field.Counter, error) {
	counter := field.ParseCounter(f.Counter)
	if err := counter.Err(); err != nil {
		return report.Snapshot{}, counter, err
	}
	if !f.Coords.Valid() {
		return report.Snapshot{}, counter, field.ErrCoordinates
	}

	crew := strings.TrimSpace(f.Crew)
	if crew == "" {
		crew = report.DefaultCrew
	}
	return report.Snapshot{
		Crew:        crew,
		Counter:     counter.Value,
		Date:        f.Date,
		Takeoff:     strings.TrimSpace(f.Takeoff),
		Impact:      strings.TrimSpace(f.Impact),
		Drone:       field.Limit(strings.TrimSpace(f.Drone), field.MaxDroneLen),
		MissionType: field.Limit(strings.TrimSpace(f.MissionType), field.MaxMissionTypeLen),
		Easting:     f.Coords.Easting,
		Northing:    f.Coords.Northing,
		MgrsPrefix:  strings.TrimSpace(f.MgrsPrefix),
		Ammo:        field.Limit(strings.TrimSpace(f.Ammo), field.MaxAmmoLen),
		Stream:      strings.TrimSpace(f.Stream),
		Result:      field.Limit(strings.TrimSpace(f.Result), field.MaxResultLen),
	}, counter, nil
}
