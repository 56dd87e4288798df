package service

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_route_intel/internal/config"
	"github.com/shenikar/maritime_route_intel/internal/geo"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=hazard.go -destination=mocks/mock_hazard.go -package=mocks

const defaultExpiryHours = 24.0

// HazardService определяет контракт жизненного цикла сообщений об опасностях
type HazardService interface {
	ReportHazard(ctx context.Context, input models.HazardInput) (*models.HazardReport, error)
	NearbyHazards(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.NearbyHazard, error)
	VoteHazard(ctx context.Context, id uuid.UUID, direction models.VoteDirection) (*models.VoteOutcome, error)
	GetHazard(ctx context.Context, id uuid.UUID) (*models.HazardReport, error)
	ActiveHazards(ctx context.Context) ([]models.HazardReport, error)
	SweepExpired(ctx context.Context) (int, error)
}

// hazardService владеет коллекцией сообщений. Все изменения идут под эксклюзивной
// блокировкой, чтение - под разделяемой.
type hazardService struct {
	mu      sync.RWMutex
	hazards []models.HazardReport

	storage   HazardStorage
	publisher webhook.EventPublisher
	logger    *logrus.Logger
	cfg       *config.Config

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// NewHazardService загружает сохраненные сообщения и возвращает сервис
func NewHazardService(ctx context.Context, storage HazardStorage, logger *logrus.Logger, cfg *config.Config, publisher webhook.EventPublisher) HazardService {
	if publisher == nil {
		publisher = webhook.NoopPublisher{}
	}
	log := logger.WithFields(logrus.Fields{"service": "hazard", "method": "NewHazardService"})

	return &hazardService{
		hazards:   LoadOrDefault[models.HazardReport](ctx, storage, cfg.StorageTimeout, log),
		storage:   storage,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
		newID:     uuid.NewV7,
	}
}

// ReportHazard создает сообщение об опасности и заодно вычищает истекшие
func (s *hazardService) ReportHazard(ctx context.Context, input models.HazardInput) (*models.HazardReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "ReportHazard",
		"type":    input.Type,
	})
	log.Info("Attempting to report a new hazard")

	location, err := coordinateFromInput(input.Lat, input.Lng)
	if err != nil {
		log.WithError(err).Warn("Rejected hazard report")
		return nil, err
	}

	expiryHours := s.cfg.HazardExpiryHours
	if expiryHours <= 0 {
		expiryHours = defaultExpiryHours
	}
	if input.ExpiryHours != nil {
		expiryHours = *input.ExpiryHours
		if expiryHours < 0 || math.IsNaN(expiryHours) || expiryHours > models.MaxExpiryHours {
			log.Warn("Rejected hazard report with invalid expiry")
			return nil, fmt.Errorf("%w: expiry hours must be between 0 and %g", ErrValidation, models.MaxExpiryHours)
		}
	}

	severity := input.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("service: could not generate hazard id: %w", err)
	}

	now := s.now()
	hazard := models.HazardReport{
		ID:          id,
		Type:        input.Type,
		Severity:    severity,
		Location:    location,
		Description: input.Description,
		ReportedBy:  input.ReportedBy,
		VesselID:    input.VesselID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(expiryHours * float64(time.Hour))),
	}

	err = s.commit(ctx, func(current []models.HazardReport) ([]models.HazardReport, error) {
		return sweepExpired(append(current, hazard), now), nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist hazard report")
		return nil, fmt.Errorf("service: could not report hazard: %w", err)
	}

	log.WithField("hazard_id", hazard.ID).Info("Hazard reported successfully")
	s.publish(ctx, webhook.EventHazardReported, hazard)
	return &hazard, nil
}

// NearbyHazards возвращает активные сообщения в радиусе radiusKm,
// отсортированные по важности, затем по расстоянию
func (s *hazardService) NearbyHazards(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.NearbyHazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "NearbyHazards",
		"radius_km": radiusKm,
	})
	log.Info("Searching nearby hazards")

	if err := validCoordinate("center", center); err != nil {
		return nil, err
	}
	if radiusKm < 0 || math.IsNaN(radiusKm) {
		return nil, fmt.Errorf("%w: radius must be a non-negative number", ErrValidation)
	}

	now := s.now()
	nearby := make([]models.NearbyHazard, 0)
	err := s.commit(ctx, func(current []models.HazardReport) ([]models.HazardReport, error) {
		active := sweepExpired(current, now)
		for _, h := range active {
			if d := geo.DistanceKm(center, h.Location); d <= radiusKm {
				nearby = append(nearby, models.NearbyHazard{Hazard: h, DistanceKm: d})
			}
		}
		return active, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist swept hazards")
		return nil, fmt.Errorf("service: could not query nearby hazards: %w", err)
	}

	slices.SortStableFunc(nearby, func(a, b models.NearbyHazard) int {
		if c := cmp.Compare(a.Hazard.Severity.Rank(), b.Hazard.Severity.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	log.WithField("count", len(nearby)).Info("Nearby hazards found")
	return nearby, nil
}

// VoteHazard учитывает голос. 3 голоса "за" подтверждают сообщение,
// 5 голосов "против" удаляют его независимо от подтверждения.
func (s *hazardService) VoteHazard(ctx context.Context, id uuid.UUID, direction models.VoteDirection) (*models.VoteOutcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "VoteHazard",
		"hazard_id": id,
		"vote":      direction,
	})
	log.Info("Attempting to vote on hazard")

	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, fmt.Errorf("%w: vote must be %q or %q", ErrValidation, models.VoteUp, models.VoteDown)
	}

	now := s.now()
	outcome := &models.VoteOutcome{}
	var (
		subject      models.HazardReport
		justVerified bool
	)

	err := s.commit(ctx, func(current []models.HazardReport) ([]models.HazardReport, error) {
		idx := slices.IndexFunc(current, func(h models.HazardReport) bool {
			return h.ID == id && h.ActiveAt(now)
		})
		if idx < 0 {
			return nil, fmt.Errorf("%w: hazard %s", ErrNotFound, id)
		}

		h := &current[idx]
		switch direction {
		case models.VoteUp:
			h.Upvotes++
		case models.VoteDown:
			h.Downvotes++
		}
		if h.Upvotes >= models.VerifyUpvotes && !h.Verified {
			h.Verified = true
			justVerified = true
		}

		subject = *h
		if h.Downvotes >= models.RemoveDownvotes {
			outcome.Removed = true
			return slices.Delete(current, idx, idx+1), nil
		}
		outcome.Hazard = &subject
		return current, nil
	})
	if err != nil {
		if isClientError(err) {
			log.WithError(err).Warn("Attempted to vote on a missing hazard")
			return nil, err
		}
		log.WithError(err).Error("Failed to persist vote")
		return nil, fmt.Errorf("service: could not vote on hazard: %w", err)
	}

	switch {
	case outcome.Removed:
		log.Info("Hazard removed by downvotes")
		s.publish(ctx, webhook.EventHazardRemoved, subject)
	case justVerified:
		log.Info("Hazard verified by upvotes")
		s.publish(ctx, webhook.EventHazardVerified, subject)
	default:
		log.Info("Vote recorded")
	}
	return outcome, nil
}

// GetHazard возвращает активное сообщение по id
func (s *hazardService) GetHazard(ctx context.Context, id uuid.UUID) (*models.HazardReport, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.hazards {
		if h.ID == id && h.ActiveAt(now) {
			found := h
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: hazard %s", ErrNotFound, id)
}

// ActiveHazards возвращает копию всех активных сообщений на текущий момент
func (s *hazardService) ActiveHazards(ctx context.Context) ([]models.HazardReport, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]models.HazardReport, 0, len(s.hazards))
	for _, h := range s.hazards {
		if h.ActiveAt(now) {
			active = append(active, h)
		}
	}
	return active, nil
}

// SweepExpired удаляет истекшие сообщения и возвращает их количество
func (s *hazardService) SweepExpired(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "SweepExpired",
	})

	now := s.now()
	removed := 0
	err := s.commit(ctx, func(current []models.HazardReport) ([]models.HazardReport, error) {
		active := sweepExpired(current, now)
		removed = len(current) - len(active)
		return active, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist swept hazards")
		return 0, fmt.Errorf("service: could not sweep hazards: %w", err)
	}

	log.WithField("removed", removed).Info("Expired hazards swept")
	return removed, nil
}

// commit применяет change к копии коллекции, сохраняет результат целиком
// и только после успешной записи делает его текущим состоянием
func (s *hazardService) commit(ctx context.Context, change func([]models.HazardReport) ([]models.HazardReport, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := change(slices.Clone(s.hazards))
	if err != nil {
		return err
	}

	sctx, cancel := storageContext(ctx, s.cfg.StorageTimeout)
	defer cancel()
	if err := s.storage.Save(sctx, next); err != nil {
		return fmt.Errorf("%w: could not save hazards: %w", ErrStorage, err)
	}

	s.hazards = next
	return nil
}

func (s *hazardService) publish(ctx context.Context, eventType webhook.EventType, hazard models.HazardReport) {
	event := webhook.HazardEvent{Type: eventType, Hazard: hazard, Timestamp: s.now()}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", eventType).Warn("Failed to publish hazard event")
	}
}

// sweepExpired оставляет только сообщения, активные на момент now
func sweepExpired(hazards []models.HazardReport, now time.Time) []models.HazardReport {
	return slices.DeleteFunc(hazards, func(h models.HazardReport) bool {
		return !h.ActiveAt(now)
	})
}
