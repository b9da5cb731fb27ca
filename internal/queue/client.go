package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mlevchenko/tenderbatch/internal/common"
)

// ClientConfig holds the transport settings for the queue's Redis backend.
type ClientConfig struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// Client owns the Redis connection used by the work queue. It is constructed
// by the composition root and carries an explicit connect/close lifecycle so
// no global connection state leaks across tests or processes.
type Client struct {
	cfg    ClientConfig
	logger *slog.Logger
	rdb    *redis.Client
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

// Connect dials Redis and verifies the connection with a ping.
func (c *Client) Connect(ctx context.Context) error {
	c.rdb = redis.NewClient(&redis.Options{
		Addr:        c.cfg.Addr,
		Password:    c.cfg.Password,
		DB:          c.cfg.DB,
		DialTimeout: c.cfg.DialTimeout,
	})
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		c.logger.Error("queue transport unavailable", "addr", c.cfg.Addr, "error", err)
		return common.NewAppError("QUEUE_UNAVAILABLE", "cannot reach queue at "+c.cfg.Addr,
			errors.Join(common.ErrUnavailable, err))
	}
	c.logger.Info("connected to queue", "addr", c.cfg.Addr, "db", c.cfg.DB)
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	err := c.rdb.Close()
	c.rdb = nil
	return err
}

func (c *Client) redis() (*redis.Client, error) {
	if c.rdb == nil {
		return nil, errors.New("queue client is not connected")
	}
	return c.rdb, nil
}
