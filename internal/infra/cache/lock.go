package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// lockOpTimeout bounds every lock command, the release included.
const lockOpTimeout = 2 * time.Second

// ErrLockHeld is returned when another editor action holds the property lock.
var ErrLockHeld = errors.New("property is being edited")

// compare-and-delete so a holder whose TTL expired cannot release a newer lock
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// PropertyLock is an advisory per-property mutex used to serialize
// overlapping graph edits (scene cascade vs hotspot creation).
type PropertyLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPropertyLock(rdb *redis.Client, ttl time.Duration) *PropertyLock {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PropertyLock{rdb: rdb, ttl: ttl}
}

func lockKey(propertyID uuid.UUID) string {
	return "tour:lock:property:" + propertyID.String()
}

// Acquire takes the lock or fails fast with ErrLockHeld. The returned func
// releases it; a failed release is left to the TTL.
func (l *PropertyLock) Acquire(ctx context.Context, propertyID uuid.UUID) (func(), error) {
	key := lockKey(propertyID)
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), lockOpTimeout)
		defer cancel()
		_ = releaseScript.Run(ctx, l.rdb, []string{key}, token).Err()
	}, nil
}
