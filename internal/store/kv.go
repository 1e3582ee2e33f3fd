package store

import (
	"bytes"
	"context"
	"time"

	"github.com/gofiber/storage/redis/v3"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"bizfinder/internal/models"
)

// DefaultKey is the key the known-ID CSV is stored under.
const DefaultKey = "bizfinder:known_osm_ids"

// KV is the subset of a Fiber storage driver used by KVStore.
// Get returns nil data without error when the key does not exist.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// KVStore keeps the known-ID set as one CSV value in a key/value storage.
type KVStore struct {
	kv  KV
	key string
}

// NewKVStore creates a store writing under key. An empty key uses DefaultKey.
func NewKVStore(kv KV, key string) *KVStore {
	if key == "" {
		key = DefaultKey
	}
	return &KVStore{kv: kv, key: key}
}

// NewRedisStore connects a KVStore to Redis at url. The storage driver panics
// on a bad URL or an unreachable server; that is returned as an error.
func NewRedisStore(url string) (s *KVStore, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = eris.Errorf("store: connect redis: %v", r)
		}
	}()

	return NewKVStore(redis.New(redis.Config{URL: url}), DefaultKey), nil
}

// Load reads the set; a missing key is an empty set.
func (s *KVStore) Load(_ context.Context) (models.IDSet, error) {
	data, err := s.kv.Get(s.key)
	if err != nil {
		return nil, eris.Wrapf(err, "store: get %s", s.key)
	}
	return decodeIDs(bytes.NewReader(data))
}

// Save replaces the stored value with ids. The value never expires.
func (s *KVStore) Save(_ context.Context, ids models.IDSet) error {
	var buf bytes.Buffer
	if err := encodeIDs(&buf, ids); err != nil {
		return eris.Wrap(err, "store: encode ids")
	}
	if err := s.kv.Set(s.key, buf.Bytes(), 0); err != nil {
		return eris.Wrapf(err, "store: set %s", s.key)
	}
	return nil
}

// Ping checks the backing storage when it exposes a Redis connection.
// Other storages are assumed reachable.
func (s *KVStore) Ping(ctx context.Context) error {
	c, ok := s.kv.(interface{ Conn() goredis.UniversalClient })
	if !ok {
		return nil
	}
	if err := c.Conn().Ping(ctx).Err(); err != nil {
		return eris.Wrap(err, "store: ping redis")
	}
	return nil
}
