package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/maritime_route_intel/internal/config"
)

// NewPostgresDB создает пул соединений PostgreSQL и проверяет, что доступен PostGIS.
// Все проверки при старте ограничены STORAGE_TIMEOUT.
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	// коллекции перезаписываются целиком одной транзакцией, много соединений не нужно
	cfgPool.MaxConns = 4
	cfgPool.MaxConnIdleTime = 5 * time.Minute

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, appCfg.StorageTimeout)
	defer cancel()

	if err := dbpool.Ping(checkCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	var postgisVersion string
	if err := dbpool.QueryRow(checkCtx, `SELECT PostGIS_Version();`).Scan(&postgisVersion); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("расширение PostGIS недоступно: %w", err)
	}

	return dbpool, nil
}
