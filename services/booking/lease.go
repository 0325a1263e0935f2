package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotLocker serializes booking writes on a (mentor, date, time) slot so
// two concurrent bookings cannot both pass the availability check before
// either persists.
type SlotLocker interface {
	// Acquire takes the lease for a slot; false means another booking
	// currently holds it.
	Acquire(ctx context.Context, mentorID, date, timeOfDay string) (bool, error)
	Release(ctx context.Context, mentorID, date, timeOfDay string)
}

// RedisSlotLocker implements SlotLocker with a SetNX lease. The TTL only
// bounds leakage when a process dies mid-booking; the happy path always
// releases explicitly.
type RedisSlotLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSlotLocker builds a locker with a 10-second lease TTL.
func NewRedisSlotLocker(client *redis.Client) *RedisSlotLocker {
	return &RedisSlotLocker{Client: client, TTL: 10 * time.Second}
}

func leaseKey(mentorID, date, timeOfDay string) string {
	return fmt.Sprintf("slotlease:%s:%s:%s", mentorID, date, timeOfDay)
}

func (l *RedisSlotLocker) Acquire(ctx context.Context, mentorID, date, timeOfDay string) (bool, error) {
	ok, err := l.Client.SetNX(ctx, leaseKey(mentorID, date, timeOfDay), 1, l.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("slot lease acquire failed: %w", err)
	}
	return ok, nil
}

func (l *RedisSlotLocker) Release(ctx context.Context, mentorID, date, timeOfDay string) {
	l.Client.Del(ctx, leaseKey(mentorID, date, timeOfDay))
}
