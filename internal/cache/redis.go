package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/StayBooker/internal/domain"
)

const (
	keyPrefix = "staybooker:slots:"
	genPrefix = "staybooker:slots:gen:"
)

// SlotCache keeps booked-slot snapshots in Redis. Entries are advisory:
// confirmation never reads them. Every Invalidate bumps a per-listing generation,
// and Set only writes a snapshot read under the current generation.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{client: client, ttl: ttl}
}

func (c *SlotCache) Get(ctx context.Context, listingID string) ([]domain.DateRange, bool, error) {
	raw, err := c.client.Get(ctx, slotsKey(listingID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	slots, err := decodeSlots(raw)
	if err != nil {
		return nil, false, err
	}

	return slots, true, nil
}

func (c *SlotCache) Generation(ctx context.Context, listingID string) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(listingID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

// Set stores the snapshot unless the listing was invalidated after gen was read.
// A stale write is dropped silently.
func (c *SlotCache) Set(ctx context.Context, listingID string, gen int64, slots []domain.DateRange) error {
	raw, err := encodeSlots(slots)
	if err != nil {
		return err
	}

	key := genKey(listingID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, key).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, slotsKey(listingID), raw, c.ttl)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *SlotCache) Invalidate(ctx context.Context, listingID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(listingID))
		pipe.Del(ctx, slotsKey(listingID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

func slotsKey(listingID string) string {
	return keyPrefix + listingID
}

func genKey(listingID string) string {
	return genPrefix + listingID
}

type slotEntry struct {
	CheckIn  string `json:"in"`
	CheckOut string `json:"out"`
}

func encodeSlots(slots []domain.DateRange) ([]byte, error) {
	entries := make([]slotEntry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, slotEntry{
			CheckIn:  s.CheckIn.Format(domain.DateLayout),
			CheckOut: s.CheckOut.Format(domain.DateLayout),
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode slots: %w", err)
	}
	return raw, nil
}

func decodeSlots(raw []byte) ([]domain.DateRange, error) {
	var entries []slotEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode slots: %w", err)
	}

	slots := make([]domain.DateRange, 0, len(entries))
	for _, e := range entries {
		r, err := domain.ParseDateRange(e.CheckIn, e.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("decode slots: %w", err)
		}
		slots = append(slots, r)
	}
	return slots, nil
}

// Nop is used when no Redis address is configured. Every lookup misses.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]domain.DateRange, bool, error) { return nil, false, nil }
func (Nop) Generation(context.Context, string) (int64, error)             { return 0, nil }
func (Nop) Set(context.Context, string, int64, []domain.DateRange) error  { return nil }
func (Nop) Invalidate(context.Context, string) error                      { return nil }
