package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shenikar/maritime_route_intel/internal/config"
)

// memoryStorage - хранилище в памяти для тестов сервисов
type memoryStorage[T any] struct {
	mu    sync.Mutex
	items []T
	saves int
}

func (m *memoryStorage[T]) Load(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items), nil
}

func (m *memoryStorage[T]) Save(ctx context.Context, items []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = slices.Clone(items)
	m.saves++
	return nil
}

func (m *memoryStorage[T]) snapshot() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// testClock - управляемые часы
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() *config.Config {
	return &config.Config{
		StorageTimeout:    time.Second,
		HazardExpiryHours: 24,
		TrafficRetention:  1000,
	}
}

func ptr[T any](v T) *T {
	return &v
}
