package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"phishsim-server/internal/config"
	"phishsim-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session id is unknown or expired
var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

// Client wraps the Redis client with observability and stores login sessions
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client and verifies the connection
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return NewFromClient(client, logger), nil
}

// NewFromClient wraps an existing go-redis client
func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Ping reports whether Redis is reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// SaveSession maps a session id to a user for ttl
func (c *Client) SaveSession(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error {
	if err := c.client.Set(ctx, sessionKeyPrefix+sessionID, userID.String(), ttl).Err(); err != nil {
		c.logger.Error(ctx, "failed to save session", err)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession returns the user a session id belongs to
func (c *Client) GetSession(ctx context.Context, sessionID string) (uuid.UUID, error) {
	value, err := c.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrSessionNotFound
		}
		c.logger.Error(ctx, "failed to get session", err)
		return uuid.Nil, fmt.Errorf("failed to get session: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, nil
}

// DeleteSession removes a session; deleting an unknown session is not an error
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if err := c.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		c.logger.Error(ctx, "failed to delete session", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
