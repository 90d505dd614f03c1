package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/irreligious86/Report-UAV/pkg/report"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := t.TempDir()
	p, err := Load(testConfig{path: base}, zerolog.Nop())
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		cancel()
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.AppendReport(report.New("hello", time.Now())); err != nil {
		cancel()
		t.Fatalf("append report: %v", err)
	}

	deadline := time.After(2 * time.Second)
wait:
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				break wait
			}
			if evt.Key != KeyReports {
				t.Fatalf("expected key %q, got %q", KeyReports, evt.Key)
			}
			break wait
		case <-deadline:
			cancel()
			t.Fatal("timed out waiting for key change event")
		}
	}

	cancel()
	for range ch {
	}
}

func TestKeyForPathIgnoresTempFiles(t *testing.T) {
	p := &persistence{basePath: "/data"}
	if got := p.keyForPath("/data/" + KeyStreams); got != KeyStreams {
		t.Fatalf("expected %q, got %q", KeyStreams, got)
	}
	for _, path := range []string{"/data", "/data/.tmp/123", "/data/.tmp", "/data/other"} {
		if got := p.keyForPath(path); got != "" {
			t.Fatalf("expected no key for %q, got %q", path, got)
		}
	}
}

func TestEventThrottleStopWaitsForFlush(t *testing.T) {
	throttle := newEventThrottle(time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	var sent []Event
	send := func(ev Event) {
		close(started)
		<-release
		sent = append(sent, ev)
	}
	throttle.Enqueue(Event{Type: EventKeyChanged, Key: KeyReports}, send)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("flush never ran")
	}

	stopped := make(chan struct{})
	go func() {
		throttle.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a send was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the flush finished")
	}
	if len(sent) != 1 || sent[0].Key != KeyReports {
		t.Fatalf("unexpected events %+v", sent)
	}

	// Nothing is sent after Stop.
	throttle.Enqueue(Event{Type: EventKeyChanged, Key: KeyCounter}, send)
	time.Sleep(20 * time.Millisecond)
	if len(sent) != 1 {
		t.Fatalf("event sent after stop: %+v", sent)
	}
}
