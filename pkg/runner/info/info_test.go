package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/irreligious86/Report-UAV/pkg/app"
	"github.com/irreligious86/Report-UAV/pkg/config"
	"github.com/irreligious86/Report-UAV/pkg/store"
)

func TestInfoPrintsStoreState(t *testing.T) {
	cfg := &config.Config{Path: t.TempDir(), Lists: "./config.json", Crew: "Дакар"}
	p, err := store.Load(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if err := p.SaveCounter(5); err != nil {
		t.Fatalf("save counter: %v", err)
	}

	var buf bytes.Buffer
	i := &Info{Config: cfg, Service: &app.Service{Persistence: p}, Out: &buf}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Config.path:  " + cfg.Path, "Reports:      0 of 200", "Counter:      5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
