package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"battlesim/internal/config"

	"github.com/rs/zerolog"
)

// CacheStore keeps raw provider payloads keyed by kind and name. Entries
// older than the TTL read as misses.
type CacheStore struct {
	db     *sql.DB
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewCacheStore(db *sql.DB, settings *config.Settings, logger zerolog.Logger) *CacheStore {
	return &CacheStore{db: db, ttl: settings.CacheTTL, logger: logger, now: time.Now}
}

func (s *CacheStore) Get(ctx context.Context, kind, key string) ([]byte, bool, error) {
	var payload []byte
	var fetchedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM api_cache WHERE kind = ? AND key = ?`, kind, key,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache %s/%s: %w", kind, key, err)
	}
	if s.ttl > 0 && s.now().Sub(time.Unix(fetchedAt, 0)) >= s.ttl {
		s.logger.Debug().Str("kind", kind).Str("key", key).Msg("cache entry expired")
		return nil, false, nil
	}
	return payload, true, nil
}

func (s *CacheStore) Put(ctx context.Context, kind, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO api_cache (kind, key, payload, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (kind, key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		kind, key, payload, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("write cache %s/%s: %w", kind, key, err)
	}
	return nil
}

// Purge drops expired entries and reports how many were removed.
func (s *CacheStore) Purge(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.ttl).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM api_cache WHERE fetched_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.logger.Info().Int64("removed", n).Msg("purged expired cache entries")
	}
	return n, nil
}
