package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/timeutil"
)

// ReportOptions are the form fields of a generated report. Only flags that
// were set replace the form defaults.
type ReportOptions struct {
	Crew        string
	Counter     string
	Date        string
	Takeoff     string
	Impact      string
	Drone       string
	MissionType string
	Coordinates string
	Easting     string
	Northing    string
	MgrsPrefix  string
	Ammo        string
	Stream      string
	Result      string

	cmd *cobra.Command
}

func AddReportArgs(cmd *cobra.Command, o *ReportOptions) {
	o.cmd = cmd
	f := cmd.Flags()
	f.StringVar(&o.Crew, "crew", "", "Crew name. Defaults to the configured crew.")
	f.StringVarP(&o.Counter, "counter", "n", "", "Crew counter 1-25. Defaults to the stored counter; empty omits it.")
	f.StringVar(&o.Date, "date", "", `Report date, example: --date="2024-01-05" or "05.01.2024". Defaults to today.`)
	f.StringVar(&o.Takeoff, "takeoff", "", `Takeoff time, example: --takeoff="10:00".`)
	f.StringVar(&o.Impact, "impact", "", `Impact or loss time, example: --impact="10:15".`)
	f.StringVarP(&o.Drone, "drone", "d", "", "Drone (Борт).")
	f.StringVarP(&o.MissionType, "mission", "m", "", "Mission type (Характер).")
	f.StringVarP(&o.Coordinates, "coords", "c", "", `Both coordinate groups, example: --coords="12345 67890".`)
	f.StringVar(&o.Easting, "easting", "", "Easting, five digits.")
	f.StringVar(&o.Northing, "northing", "", "Northing, five digits.")
	f.StringVar(&o.MgrsPrefix, "mgrs", "", "MGRS prefix, example: --mgrs=37U.")
	f.StringVarP(&o.Ammo, "ammo", "a", "", "Ammunition (Боєприпас).")
	f.StringVarP(&o.Stream, "stream", "s", "", "Stream name (Стрім). Empty renders as ---.")
	f.StringVarP(&o.Result, "result", "r", "", "Result (Результат).")
}

func (o *ReportOptions) changed(name string) bool {
	return o.cmd != nil && o.cmd.Flags().Changed(name)
}

// Apply copies the set flags onto f. Coordinate groups must be exactly five
// digits; a new easting drops a stale northing as typed input does.
func (o *ReportOptions) Apply(f *app.Form, loc *time.Location) error {
	set := func(name string, dst *string, v string) {
		if o.changed(name) {
			*dst = v
		}
	}
	set("crew", &f.Crew, o.Crew)
	set("counter", &f.Counter, o.Counter)
	set("takeoff", &f.Takeoff, o.Takeoff)
	set("impact", &f.Impact, o.Impact)
	set("drone", &f.Drone, o.Drone)
	set("mission", &f.MissionType, o.MissionType)
	set("mgrs", &f.MgrsPrefix, o.MgrsPrefix)
	set("ammo", &f.Ammo, o.Ammo)
	set("stream", &f.Stream, o.Stream)
	set("result", &f.Result, o.Result)

	if o.changed("date") {
		iso := timeutil.NormalizeReportDate(o.Date)
		if iso == "" {
			return fmt.Errorf("invalid date %q", o.Date)
		}
		d, err := timeutil.ParseDate(iso, loc)
		if err != nil {
			return err
		}
		f.Date = d
	}

	easting, northing := o.Easting, o.Northing
	if o.changed("coords") {
		parts := strings.Fields(o.Coordinates)
		if len(parts) != 2 {
			return fmt.Errorf("invalid coordinates %q, want two groups", o.Coordinates)
		}
		easting, northing = parts[0], parts[1]
	}
	setEasting := o.changed("coords") || o.changed("easting")
	setNorthing := o.changed("coords") || o.changed("northing")
	// Flags carry whole values, so a malformed group is an error rather than
	// something to trim into shape.
	if setEasting && !field.ValidCoordinate(strings.TrimSpace(easting)) {
		return field.ErrCoordinates
	}
	if setNorthing && !field.ValidCoordinate(strings.TrimSpace(northing)) {
		return field.ErrCoordinates
	}
	if setEasting {
		f.Coords.FocusEasting()
		f.Coords.SetEasting(strings.TrimSpace(easting))
	}
	if setNorthing {
		f.Coords.SetNorthing(strings.TrimSpace(northing))
	}
	return nil
}
