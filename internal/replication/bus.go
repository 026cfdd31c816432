// Package replication feeds followers an ordered stream of state-change
// events: version uploads, tag moves and soft deletes. Delivery is
// at-least-once; followers dedupe by (kind, file_version_id).
package replication

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// Kind discriminates replication events.
type Kind int

// Event kinds.
const (
	KindUploaded Kind = iota
	KindTagged
	KindDeleted
)

func (k Kind) String() string {
	switch k {
	case KindUploaded:
		return "uploaded"
	case KindTagged:
		return "tagged"
	case KindDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event is one state change, as posted by a writer.
type Event struct {
	Kind          Kind
	Timestamp     time.Time
	DirID         int64
	FileID        int64
	FileVersionID int64
	Tag           string
}

// Proto converts the event to its wire form.
func (e Event) Proto() *qcdnpb.SyncMessage {
	msg := &qcdnpb.SyncMessage{Timestamp: e.Timestamp.UnixMilli()}

	switch e.Kind {
	case KindUploaded:
		msg.Message = &qcdnpb.SyncMessage_Uploaded{Uploaded: &qcdnpb.UploadedVersion{
			DirId:         e.DirID,
			FileId:        e.FileID,
			FileVersionId: e.FileVersionID,
		}}
	case KindTagged:
		msg.Message = &qcdnpb.SyncMessage_Tagged{Tagged: &qcdnpb.VersionTagged{
			FileVersionId: e.FileVersionID,
			Tag:           e.Tag,
		}}
	case KindDeleted:
		msg.Message = &qcdnpb.SyncMessage_Deleted{Deleted: &qcdnpb.DeletedVersion{
			FileVersionId: e.FileVersionID,
		}}
	}

	return msg
}

// DefaultBusBuffer is the per-subscriber channel capacity.
const DefaultBusBuffer = 128

// Bus is the process-wide broadcast channel. Every writer (upload finalize,
// tag move, soft delete) posts to it; every connected follower subscribes.
// Slow consumers are dropped, not backpressured: when a subscriber's buffer
// is full its channel is closed and the subscription removed, and the
// follower is expected to reconnect with its last-known timestamp.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	buffer int
	logger *slog.Logger
}

// NewBus returns a Bus with the given per-subscriber buffer size.
func NewBus(buffer int, logger *slog.Logger) *Bus {
	if buffer <= 0 {
		buffer = DefaultBusBuffer
	}

	return &Bus{
		subs:   make(map[int]chan Event),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a new consumer. The returned channel is closed when
// the consumer is dropped for falling behind or when cancel is called.
// cancel is idempotent.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Event, b.buffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if ch, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}

	return ch, cancel
}

// Publish delivers e to every subscriber without blocking. Subscribers
// whose buffer is full are dropped.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- e:
		default:
			delete(b.subs, id)
			close(ch)
			b.logger.Warn("dropping slow replication subscriber",
				slog.Int("subscriber", id))
		}
	}
}

// Subscribers reports the current subscriber count.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}
