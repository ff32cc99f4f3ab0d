package dedup

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

const markerTTL = 24 * time.Hour

// Guard remembers recently handled event ids so redelivered push events
// can be skipped. Cleanup is idempotent without it; the guard only saves
// redundant work, so every failure path answers "not seen".
type Guard struct {
	client *redis.Client
	log    *slog.Logger
}

// New returns a Guard backed by redis, or a disabled one when addr is
// empty.
func New(addr string, log *slog.Logger) *Guard {
	g := &Guard{log: log}
	if addr != "" {
		g.client = redis.NewClient(&redis.Options{Addr: addr})
	}
	return g
}

// Seen reports whether eventID was already marked as handled.
func (g *Guard) Seen(ctx context.Context, eventID string) bool {
	if g == nil || g.client == nil || eventID == "" {
		return false
	}
	n, err := g.client.Exists(ctx, key(eventID)).Result()
	if err != nil {
		g.log.Warn("dedup lookup failed", "event_id", eventID, "error", err)
		return false
	}
	return n > 0
}

// Mark records eventID as handled. Called after a run completes so a
// crash mid-run still gets the redelivery.
func (g *Guard) Mark(ctx context.Context, eventID string) {
	if g == nil || g.client == nil || eventID == "" {
		return
	}
	if err := g.client.Set(ctx, key(eventID), 1, markerTTL).Err(); err != nil {
		g.log.Warn("dedup marker failed", "event_id", eventID, "error", err)
	}
}

func key(eventID string) string {
	return "cleanup:event:" + eventID
}
