package service

import (
	"context"
	"time"

	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

// HazardStorage определяет контракт хранилища коллекции сообщений об опасностях.
// Коллекция читается и записывается целиком.
type HazardStorage interface {
	Load(ctx context.Context) ([]models.HazardReport, error)
	Save(ctx context.Context, hazards []models.HazardReport) error
}

// TrafficStorage определяет контракт хранилища коллекции сообщений о трафике
type TrafficStorage interface {
	Load(ctx context.Context) ([]models.TrafficReport, error)
	Save(ctx context.Context, reports []models.TrafficReport) error
}

// Loader - любое хранилище, умеющее загрузить коллекцию
type Loader[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

// LoadOrDefault загружает коллекцию при старте хранилища.
// Если хранилище недоступно или данные повреждены, возвращается пустая коллекция,
// а ошибка пишется в лог. Других мест, где ошибка загрузки подавляется, нет.
func LoadOrDefault[T any](ctx context.Context, loader Loader[T], timeout time.Duration, log logrus.FieldLogger) []T {
	ctx, cancel := storageContext(ctx, timeout)
	defer cancel()

	items, err := loader.Load(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load stored collection, starting empty")
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// storageContext ограничивает обращение к хранилищу таймаутом, если он задан
func storageContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
