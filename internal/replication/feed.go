package replication

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/tonimelisma/qcdn/internal/db"
)

// Feed serves a follower's event stream: history strictly after a starting
// timestamp, then live bus events until the follower disconnects.
type Feed struct {
	store  *db.Store
	bus    *Bus
	logger *slog.Logger
}

// NewFeed wires a feed over the metadata store and the live bus.
func NewFeed(store *db.Store, bus *Bus, logger *slog.Logger) *Feed {
	return &Feed{store: store, bus: bus, logger: logger}
}

// History returns every event with timestamp strictly after since, merged
// across the three sources and stable-sorted ascending.
func (f *Feed) History(ctx context.Context, since time.Time) ([]Event, error) {
	uploaded, err := f.store.UploadedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("replication: uploaded history: %w", err)
	}

	tagged, err := f.store.TaggedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("replication: tagged history: %w", err)
	}

	deleted, err := f.store.DeletedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("replication: deleted history: %w", err)
	}

	events := make([]Event, 0, len(uploaded)+len(tagged)+len(deleted))

	for _, u := range uploaded {
		events = append(events, Event{
			Kind:          KindUploaded,
			Timestamp:     u.Timestamp,
			DirID:         u.DirID,
			FileID:        u.FileID,
			FileVersionID: u.FileVersionID,
		})
	}

	for _, t := range tagged {
		events = append(events, Event{
			Kind:          KindTagged,
			Timestamp:     t.Timestamp,
			FileVersionID: t.FileVersionID,
			Tag:           t.Tag,
		})
	}

	for _, d := range deleted {
		events = append(events, Event{
			Kind:          KindDeleted,
			Timestamp:     d.Timestamp,
			FileVersionID: d.FileVersionID,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	return events, nil
}

// Serve emits history after since (when non-zero), then forwards live
// events until ctx is cancelled, send fails, or the subscriber is dropped
// for falling behind. The live subscription is opened before the history
// query so no event falls in the gap; the overlap is harmless because
// delivery is at-least-once.
func (f *Feed) Serve(ctx context.Context, since time.Time, send func(Event) error) error {
	live, cancel := f.bus.Subscribe()
	defer cancel()

	if !since.IsZero() {
		history, err := f.History(ctx, since)
		if err != nil {
			return err
		}

		for _, e := range history {
			if err := send(e); err != nil {
				return err
			}
		}

		f.logger.Debug("replication catch-up complete",
			slog.Int("events", len(history)),
			slog.Time("since", since))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-live:
			if !ok {
				return fmt.Errorf("replication: subscriber dropped, reconnect with last timestamp")
			}

			if err := send(e); err != nil {
				return err
			}
		}
	}
}
