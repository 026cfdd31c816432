package replication

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func TestBus_FanOut(t *testing.T) {
	t.Parallel()

	bus := NewBus(4, testLogger())

	a, cancelA := bus.Subscribe()
	defer cancelA()

	b, cancelB := bus.Subscribe()
	defer cancelB()

	e := Event{Kind: KindUploaded, FileVersionID: 7, Timestamp: time.Now()}
	bus.Publish(e)

	for name, ch := range map[string]<-chan Event{"a": a, "b": b} {
		select {
		case got := <-ch:
			if got.FileVersionID != 7 || got.Kind != KindUploaded {
				t.Errorf("%s received %+v", name, got)
			}
		default:
			t.Errorf("%s received nothing", name)
		}
	}
}

func TestBus_CancelIsIdempotent(t *testing.T) {
	t.Parallel()

	bus := NewBus(4, testLogger())

	ch, cancel := bus.Subscribe()

	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("cancelled channel delivered an event")
	}

	if n := bus.Subscribers(); n != 0 {
		t.Errorf("subscribers = %d, want 0", n)
	}

	// Publishing to an empty bus is a no-op.
	bus.Publish(Event{Kind: KindDeleted, FileVersionID: 1})
}

func TestBus_DropsSlowSubscriber(t *testing.T) {
	t.Parallel()

	bus := NewBus(2, testLogger())

	slow, cancelSlow := bus.Subscribe()
	defer cancelSlow()

	fast, cancelFast := bus.Subscribe()
	defer cancelFast()

	// Fill the slow subscriber's buffer, then overflow it. The fast
	// subscriber drains as events arrive and stays connected.
	for i := 0; i < 3; i++ {
		bus.Publish(Event{Kind: KindUploaded, FileVersionID: int64(i)})
		<-fast
	}

	// The slow channel holds its buffered events, then closes.
	var received int

	for range slow {
		received++
	}

	if received != 2 {
		t.Errorf("slow subscriber got %d buffered events, want 2", received)
	}

	if n := bus.Subscribers(); n != 1 {
		t.Errorf("subscribers after drop = %d, want 1", n)
	}
}

func TestEvent_ProtoRoundTrip(t *testing.T) {
	t.Parallel()

	ts := time.UnixMilli(1700000000000).UTC()

	cases := []struct {
		name  string
		event Event
	}{
		{"uploaded", Event{Kind: KindUploaded, Timestamp: ts, DirID: 1, FileID: 2, FileVersionID: 3}},
		{"tagged", Event{Kind: KindTagged, Timestamp: ts, FileVersionID: 3, Tag: "latest"}},
		{"deleted", Event{Kind: KindDeleted, Timestamp: ts, FileVersionID: 3}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			msg := tc.event.Proto()

			if msg.GetTimestamp() != ts.UnixMilli() {
				t.Errorf("timestamp = %d, want %d", msg.GetTimestamp(), ts.UnixMilli())
			}

			switch tc.event.Kind {
			case KindUploaded:
				u := msg.GetUploaded()
				if u == nil || u.GetDirId() != 1 || u.GetFileId() != 2 || u.GetFileVersionId() != 3 {
					t.Errorf("uploaded payload = %+v", u)
				}
			case KindTagged:
				tg := msg.GetTagged()
				if tg == nil || tg.GetFileVersionId() != 3 || tg.GetTag() != "latest" {
					t.Errorf("tagged payload = %+v", tg)
				}
			case KindDeleted:
				d := msg.GetDeleted()
				if d == nil || d.GetFileVersionId() != 3 {
					t.Errorf("deleted payload = %+v", d)
				}
			}
		})
	}
}
