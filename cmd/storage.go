package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/maritime_route_intel/internal/config"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/internal/repository"
	"github.com/shenikar/maritime_route_intel/internal/service"
	mongoclient "github.com/shenikar/maritime_route_intel/pkg/mongo"
	"github.com/shenikar/maritime_route_intel/pkg/postgres"
)

// storage - хранилища коллекций выбранного бэкенда
type storage struct {
	Hazards service.HazardStorage
	Traffic service.TrafficStorage
	closers []func()
}

func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStorage подключает бэкенд по STORAGE_BACKEND. Клиент Redis создается в main.
func openStorage(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (*storage, error) {
	s := &storage{}

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, dbpool.Close)
		s.Hazards = repository.NewHazardRepository(dbpool)
		s.Traffic = repository.NewTrafficRepository(dbpool)

	case config.StorageRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis client is not initialized")
		}
		s.Hazards = repository.NewRedisCollection[models.HazardReport](redisClient, repository.HazardsKey)
		s.Traffic = repository.NewRedisCollection[models.TrafficReport](redisClient, repository.TrafficKey)

	case config.StorageMongo:
		db, err := mongoclient.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.StorageTimeout)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() {
			_ = db.Client().Disconnect(context.Background())
		})
		s.Hazards = repository.NewMongoCollection[models.HazardReport](db, repository.HazardsCollection)
		s.Traffic = repository.NewMongoCollection[models.TrafficReport](db, repository.TrafficCollection)

	case config.StorageFile:
		s.Hazards = repository.NewFileCollection[models.HazardReport](cfg.DataDir, repository.HazardsFile)
		s.Traffic = repository.NewFileCollection[models.TrafficReport](cfg.DataDir, repository.TrafficFile)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return s, nil
}
