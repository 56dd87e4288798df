package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_route_intel/internal/config"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=traffic.go -destination=mocks/mock_traffic.go -package=mocks

const (
	// HeatmapWindow - окно сообщений для тепловой карты
	HeatmapWindow = 24 * time.Hour
	// RouteTrafficWindow - окно сообщений для анализа маршрута
	RouteTrafficWindow = 6 * time.Hour

	defaultTrafficRetention = 1000
	anonymousReporter       = "anonymous"
)

// TrafficService определяет контракт работы с сообщениями о плотности судов
type TrafficService interface {
	ReportTraffic(ctx context.Context, input models.TrafficInput) (*models.TrafficReport, error)
	RecentTraffic(ctx context.Context, window time.Duration) ([]models.TrafficReport, error)
	Heatmap(ctx context.Context) ([]models.TrafficReport, error)
}

type trafficService struct {
	mu      sync.RWMutex
	reports []models.TrafficReport

	storage TrafficStorage
	logger  *logrus.Logger
	cfg     *config.Config

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// NewTrafficService загружает сохраненные сообщения и возвращает сервис
func NewTrafficService(ctx context.Context, storage TrafficStorage, logger *logrus.Logger, cfg *config.Config) TrafficService {
	log := logger.WithFields(logrus.Fields{"service": "traffic", "method": "NewTrafficService"})

	return &trafficService{
		reports: LoadOrDefault[models.TrafficReport](ctx, storage, cfg.StorageTimeout, log),
		storage: storage,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
		newID:   uuid.NewV7,
	}
}

// ReportTraffic добавляет сообщение и оставляет только последние TRAFFIC_RETENTION штук
func (s *trafficService) ReportTraffic(ctx context.Context, input models.TrafficInput) (*models.TrafficReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "traffic",
		"method":  "ReportTraffic",
		"density": input.Density,
	})
	log.Info("Attempting to report traffic")

	location, err := coordinateFromInput(input.Lat, input.Lng)
	if err != nil {
		log.WithError(err).Warn("Rejected traffic report")
		return nil, err
	}

	density := input.Density
	if density == "" {
		density = models.DensityMedium
	}
	reportedBy := input.ReportedBy
	if reportedBy == "" {
		reportedBy = input.VesselID
	}
	if reportedBy == "" {
		reportedBy = anonymousReporter
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("service: could not generate traffic report id: %w", err)
	}

	report := models.TrafficReport{
		ID:          id,
		Location:    location,
		Density:     density,
		VesselCount: input.VesselCount,
		PortCode:    input.PortCode,
		CreatedAt:   s.now(),
		ReportedBy:  reportedBy,
	}

	if err := s.commit(ctx, report); err != nil {
		log.WithError(err).Error("Failed to persist traffic report")
		return nil, fmt.Errorf("service: could not report traffic: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Traffic reported successfully")
	return &report, nil
}

// RecentTraffic возвращает сообщения, созданные в пределах window до текущего момента
func (s *trafficService) RecentTraffic(ctx context.Context, window time.Duration) ([]models.TrafficReport, error) {
	cutoff := s.now().Add(-window)

	s.mu.RLock()
	defer s.mu.RUnlock()

	recent := make([]models.TrafficReport, 0)
	for _, r := range s.reports {
		if r.CreatedAt.After(cutoff) {
			recent = append(recent, r)
		}
	}
	return recent, nil
}

// Heatmap - сообщения за последние 24 часа
func (s *trafficService) Heatmap(ctx context.Context) ([]models.TrafficReport, error) {
	reports, err := s.RecentTraffic(ctx, HeatmapWindow)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"service": "traffic",
		"method":  "Heatmap",
		"count":   len(reports),
	}).Info("Traffic heatmap built")
	return reports, nil
}

func (s *trafficService) commit(ctx context.Context, report models.TrafficReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.reports), report)
	if limit := s.retention(); len(next) > limit {
		// старые в начале, порядок хвоста сохраняется
		next = slices.Clone(next[len(next)-limit:])
	}

	sctx, cancel := storageContext(ctx, s.cfg.StorageTimeout)
	defer cancel()
	if err := s.storage.Save(sctx, next); err != nil {
		return fmt.Errorf("%w: could not save traffic reports: %w", ErrStorage, err)
	}

	s.reports = next
	return nil
}

func (s *trafficService) retention() int {
	if s.cfg.TrafficRetention > 0 {
		return s.cfg.TrafficRetention
	}
	return defaultTrafficRetention
}
