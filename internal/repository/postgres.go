package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/internal/service"
)

// HazardRepository хранит коллекцию опасностей в PostGIS.
// Коллекция перезаписывается целиком в одной транзакции, порядок держит колонка position.
type HazardRepository struct {
	db *pgxpool.Pool
}

func NewHazardRepository(db *pgxpool.Pool) service.HazardStorage {
	return &HazardRepository{db: db}
}

// Load читает все сообщения в порядке записи
func (r *HazardRepository) Load(ctx context.Context) ([]models.HazardReport, error) {
	query := `
		SELECT
			id,
			type,
			severity,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			description,
			reported_by,
			vessel_id,
			created_at,
			expires_at,
			verified,
			upvotes,
			downvotes
		FROM hazards
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load hazards: %w", err)
	}
	defer rows.Close()

	hazards := make([]models.HazardReport, 0)
	for rows.Next() {
		var (
			h                  models.HazardReport
			hazardType, sev    string
			upvotes, downvotes int64
		)
		err := rows.Scan(
			&h.ID,
			&hazardType,
			&sev,
			&h.Location.Lat,
			&h.Location.Lng,
			&h.Description,
			&h.ReportedBy,
			&h.VesselID,
			&h.CreatedAt,
			&h.ExpiresAt,
			&h.Verified,
			&upvotes,
			&downvotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard row: %w", err)
		}
		h.Type = models.HazardType(hazardType)
		h.Severity = models.Severity(sev)
		h.Upvotes = uint(upvotes)
		h.Downvotes = uint(downvotes)
		hazards = append(hazards, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error hazard iteration: %w", err)
	}
	return hazards, nil
}

// Save заменяет содержимое таблицы переданной коллекцией
func (r *HazardRepository) Save(ctx context.Context, hazards []models.HazardReport) error {
	query := `
		INSERT INTO hazards (
			id, position, type, severity, location, description, reported_by, vessel_id,
			created_at, expires_at, verified, upvotes, downvotes
		)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10, $11, $12, $13, $14);
	`
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM hazards;`)
	for i, h := range hazards {
		batch.Queue(query,
			h.ID,
			i,
			string(h.Type),
			string(h.Severity),
			h.Location.Lng,
			h.Location.Lat,
			h.Description,
			h.ReportedBy,
			h.VesselID,
			h.CreatedAt,
			h.ExpiresAt,
			h.Verified,
			int64(h.Upvotes),
			int64(h.Downvotes),
		)
	}

	if err := replaceAll(ctx, r.db, batch); err != nil {
		return fmt.Errorf("failed to save hazards: %w", err)
	}
	return nil
}

// TrafficRepository хранит сообщения о трафике в PostGIS
type TrafficRepository struct {
	db *pgxpool.Pool
}

func NewTrafficRepository(db *pgxpool.Pool) service.TrafficStorage {
	return &TrafficRepository{db: db}
}

// Load читает сообщения от старых к новым
func (r *TrafficRepository) Load(ctx context.Context) ([]models.TrafficReport, error) {
	query := `
		SELECT
			id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			density,
			vessel_count,
			port_code,
			created_at,
			reported_by
		FROM traffic_reports
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load traffic reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.TrafficReport, 0)
	for rows.Next() {
		var (
			t           models.TrafficReport
			density     string
			vesselCount int64
		)
		err := rows.Scan(
			&t.ID,
			&t.Location.Lat,
			&t.Location.Lng,
			&density,
			&vesselCount,
			&t.PortCode,
			&t.CreatedAt,
			&t.ReportedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan traffic row: %w", err)
		}
		t.Density = models.Density(density)
		t.VesselCount = uint(vesselCount)
		reports = append(reports, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error traffic iteration: %w", err)
	}
	return reports, nil
}

// Save заменяет содержимое таблицы переданной коллекцией
func (r *TrafficRepository) Save(ctx context.Context, reports []models.TrafficReport) error {
	query := `
		INSERT INTO traffic_reports (
			id, position, location, density, vessel_count, port_code, created_at, reported_by
		)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM traffic_reports;`)
	for i, t := range reports {
		batch.Queue(query,
			t.ID,
			i,
			t.Location.Lng,
			t.Location.Lat,
			string(t.Density),
			int64(t.VesselCount),
			t.PortCode,
			t.CreatedAt,
			t.ReportedBy,
		)
	}

	if err := replaceAll(ctx, r.db, batch); err != nil {
		return fmt.Errorf("failed to save traffic reports: %w", err)
	}
	return nil
}

// replaceAll выполняет пакет в транзакции: либо записана вся коллекция, либо ничего
func replaceAll(ctx context.Context, db *pgxpool.Pool, batch *pgx.Batch) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("batch statement %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
