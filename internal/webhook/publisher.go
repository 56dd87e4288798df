package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/maritime_route_intel/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "hazard_events"
)

// EventType - тип события жизненного цикла сообщения об опасности
type EventType string

const (
	EventHazardReported EventType = "hazard.reported"
	EventHazardVerified EventType = "hazard.verified"
	EventHazardRemoved  EventType = "hazard.removed"
)

// HazardEvent - структура для данных вебхука
type HazardEvent struct {
	Type      EventType           `json:"type"`
	Hazard    models.HazardReport `json:"hazard"`
	Timestamp time.Time           `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event HazardEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая очередь Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event HazardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish hazard event to Redis: %w", err)
	}
	return nil
}

// NoopPublisher отбрасывает события, когда вебхуки не настроены
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, HazardEvent) error { return nil }
