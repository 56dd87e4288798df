package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/internal/routing"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=route.go -destination=mocks/mock_route.go -package=mocks

// PathSearch - внешний поиск кратчайшего пути по сети морских линий
type PathSearch interface {
	ShortestPath(ctx context.Context, origin, destination models.Coordinate) (*models.Path, error)
}

// RouteService определяет контракт расчета аннотированного маршрута
type RouteService interface {
	AnnotateRoute(ctx context.Context, req models.RouteRequest) (*models.AnnotatedRoute, error)
}

type routeService struct {
	paths   PathSearch
	hazards HazardService
	traffic TrafficService
	logger  *logrus.Logger
}

func NewRouteService(paths PathSearch, hazards HazardService, traffic TrafficService, logger *logrus.Logger) RouteService {
	return &routeService{
		paths:   paths,
		hazards: hazards,
		traffic: traffic,
		logger:  logger,
	}
}

// AnnotateRoute ищет путь, снимает срез опасностей и трафика один раз и аннотирует маршрут.
// Ошибки поиска пути, хранилища и аннотирования сводятся к ErrRouteComputation.
func (s *routeService) AnnotateRoute(ctx context.Context, req models.RouteRequest) (*models.AnnotatedRoute, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "route",
		"method":      "AnnotateRoute",
		"origin":      req.Origin,
		"destination": req.Destination,
	})
	log.Info("Calculating annotated route")

	if err := validCoordinate("origin", req.Origin); err != nil {
		return nil, err
	}
	if err := validCoordinate("destination", req.Destination); err != nil {
		return nil, err
	}

	path, err := s.paths.ShortestPath(ctx, req.Origin, req.Destination)
	if err == nil && path == nil {
		err = errors.New("path search returned no path")
	}
	if err != nil {
		log.WithError(err).Error("Path search failed")
		return nil, fmt.Errorf("%w: path search: %w", ErrRouteComputation, err)
	}

	hazards, err := s.hazards.ActiveHazards(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to take hazard snapshot")
		return nil, fmt.Errorf("%w: hazard snapshot: %w", ErrRouteComputation, err)
	}
	traffic, err := s.traffic.RecentTraffic(ctx, RouteTrafficWindow)
	if err != nil {
		log.WithError(err).Error("Failed to take traffic snapshot")
		return nil, fmt.Errorf("%w: traffic snapshot: %w", ErrRouteComputation, err)
	}

	route, err := routing.Annotate(*path, req.Origin, req.Destination, req.Preferences, routing.Snapshot{
		Hazards: hazards,
		Traffic: traffic,
	})
	if err != nil {
		log.WithError(err).Error("Failed to annotate route")
		return nil, fmt.Errorf("%w: %w", ErrRouteComputation, err)
	}

	log.WithFields(logrus.Fields{
		"safety_score":    route.SafetyScore,
		"traffic_density": route.TrafficDensity,
		"hazard_hits":     len(route.Hazards),
		"lanes":           path.Lanes,
	}).Info("Route annotated successfully")
	return route, nil
}
