// Command demo fills the configured store with sample sorties from the last
// few days. Point UAVREPORT_PATH at a scratch directory before running it.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/config"
	"github.com/irreligious86/Report-UAV/pkg/deliver"
	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/logging"
	"github.com/irreligious86/Report-UAV/pkg/store"
)

type sortie struct {
	daysAgo int
	takeoff string
	impact  string
	drone   string
	mission string
	ammo    string
	stream  string
	result  string
}

var sorties = []sortie{
	{3, "05:40", "05:58", "Вампір", "Удар", "ОФ-25", "Альфа", "Уражено"},
	{3, "07:10", "07:31", "Вампір", "Удар", "ОФ-25", "Альфа", "Втрата борту"},
	{2, "11:05", "11:20", "Баба Яга", "Мінування", "ПТМ-3", "", "Виконано"},
	{1, "21:45", "22:02", "Вампір", "Удар", "ТМ-62", "Браво", "Уражено, втрата борту"},
	{0, "04:30", "04:47", "Баба Яга", "Удар", "ОФ-25", "Браво", "Уражено"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logging.New(cfg.LogLevel, os.Stderr)

	p, err := store.Load(cfg, log)
	if err != nil {
		panic(err)
	}

	now := time.Now()
	for i, s := range sorties {
		at := now.AddDate(0, 0, -s.daysAgo)
		svc := &app.Service{
			Persistence: p,
			Deliverer:   deliver.Discard,
			Logger:      log,
			Now:         func() time.Time { return at },
		}

		f := app.NewForm(lists.Config{}, cfg.Crew, field.Counter{Valid: true, Value: i + 1}, at)
		f.Takeoff, f.Impact = s.takeoff, s.impact
		f.Drone, f.MissionType, f.Ammo = s.drone, s.mission, s.ammo
		f.Stream, f.Result = s.stream, s.result
		f.MgrsPrefix = "37U DQ"
		f.Coords.SetEasting(fmt.Sprintf("%05d", 12000+i*111))
		f.Coords.SetNorthing(fmt.Sprintf("%05d", 67000+i*222))

		res, err := svc.Generate(context.Background(), &f)
		if err != nil {
			panic(err)
		}
		fmt.Println(res.Report.Text)
		fmt.Println()
	}
}
