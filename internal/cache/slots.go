package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotsCache keeps generated availability slots per doctor in Redis for
// a short TTL. Purely advisory: creation still runs the authoritative
// conflict check, and every mutation of a doctor's schedule invalidates
// that doctor's entry. A nil *SlotsCache is a no-op, so callers never
// branch on whether Redis is configured.
type SlotsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotsCache(addr string, ttl time.Duration) *SlotsCache {
	if addr == "" {
		return nil
	}
	return &SlotsCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func slotsKey(doctorID uint) string {
	return fmt.Sprintf("slots:doctor:%d", doctorID)
}

func (c *SlotsCache) Get(ctx context.Context, doctorID uint) ([]time.Time, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotsKey(doctorID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("slot cache get:", err)
		}
		return nil, false
	}

	var slots []time.Time
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotsCache) Set(ctx context.Context, doctorID uint, slots []time.Time) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotsKey(doctorID), raw, c.ttl).Err(); err != nil {
		log.Println("slot cache set:", err)
	}
}

func (c *SlotsCache) Invalidate(ctx context.Context, doctorID uint) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, slotsKey(doctorID)).Err(); err != nil {
		log.Println("slot cache invalidate:", err)
	}
}
