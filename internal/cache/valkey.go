// Package cache provides Valkey (Redis-compatible) client initialization
// and the cached copy of the generation history listing.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// ValkeyConfig locates the Valkey server.
type ValkeyConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port.
func (c ValkeyConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Short timeouts keep a slow cache from delaying page loads; every cache
// miss falls through to the database anyway.
const (
	valkeyDialTimeout = 2 * time.Second
	valkeyIOTimeout   = 500 * time.Millisecond
	valkeyPingTimeout = 5 * time.Second
)

// ConnectValkey creates a client and pings the server. The client is closed
// again if the ping fails.
func ConnectValkey(ctx context.Context, cfg ValkeyConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  valkeyDialTimeout,
		ReadTimeout:  valkeyIOTimeout,
		WriteTimeout: valkeyIOTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, valkeyPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping %s: %w", cfg.Addr(), err)
	}

	slog.Info("valkey connected", "addr", cfg.Addr(), "db", cfg.DB)
	return client, nil
}
