package display

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

// DefaultChannel is the Redis pub/sub channel used when none is configured.
const DefaultChannel = "tablepos:display"

// RedisPublisher posts messages to a Redis pub/sub channel so a customer
// screen on another device can follow the terminal. Redis pub/sub keeps no
// backlog: a screen that is offline misses the message.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

// ConnectRedis parses redisURL and checks the connection.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

// NewRedisPublisher publishes to channel, or DefaultChannel when empty.
func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal display message: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish display message: %w", err)
	}
	return nil
}

// Relay subscribes to a Redis display channel and republishes every
// message to a local publisher, typically the Hub of a customer screen.
type Relay struct {
	rdb     *redis.Client
	channel string
	target  Publisher
}

// NewRelay relays channel, or DefaultChannel when empty, into target.
func NewRelay(rdb *redis.Client, channel string, target Publisher) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Relay{rdb: rdb, channel: channel, target: target}
}

// Run blocks until ctx is done. Undecodable payloads are logged and skipped.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}
	slog.Info("Display relay subscribed", "channel", r.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg Message
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				slog.Warn("Dropping undecodable display message", "channel", r.channel, "error", err)
				continue
			}
			if err := r.target.Publish(ctx, msg); err != nil {
				slog.Warn("Display relay publish failed", "channel", r.channel, "error", err)
			}
		}
	}
}
