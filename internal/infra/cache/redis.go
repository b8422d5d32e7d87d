package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/tours360/tourgraph/internal/config"
)

const dialTimeout = 5 * time.Second

// Open connects the client behind PropertyLock. The lock only issues SETNX
// and a release script, so reads and writes share its op timeout.
func Open(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		ClientName:   cfg.App.Name,
		DialTimeout:  dialTimeout,
		ReadTimeout:  lockOpTimeout,
		WriteTimeout: lockOpTimeout,
	}
	if cfg.Redis.EnableTLS {
		host, _, err := net.SplitHostPort(cfg.Redis.Addr)
		if err != nil {
			host = cfg.Redis.Addr
		}
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12, ServerName: host}
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}
	return rdb, nil
}

// Instrument adds tracing and pool metrics. Call after telemetry.Setup.
func Instrument(rdb *redis.Client) error {
	return errors.Join(
		redisotel.InstrumentTracing(rdb),
		redisotel.InstrumentMetrics(rdb),
	)
}
