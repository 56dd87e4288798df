package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/maritime_route_intel/internal/config"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/internal/service"
	"github.com/sirupsen/logrus"
)

const defaultNearbyRadiusKm = 50.0

type Handler struct {
	hazardService  service.HazardService
	trafficService service.TrafficService
	routeService   service.RouteService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(hazardService service.HazardService, trafficService service.TrafficService, routeService service.RouteService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		hazardService:  hazardService,
		trafficService: trafficService,
		routeService:   routeService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Report a hazard
// @Description Report a navigational hazard at a location. Expired hazards are swept on every report.
// @Tags Hazards
// @Accept json
// @Produce json
// @Param hazard body ReportHazardRequest true "Hazard report"
// @Success 201 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [post]
func (h *Handler) reportHazard(c *gin.Context) {
	var input ReportHazardRequest
	log := h.logger.WithField("method", "reportHazard")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToHazardInput(input)
	if !model.Type.Known() {
		log.WithField("type", model.Type).Debug("Accepting hazard with unknown type")
	}
	if model.Severity != "" && !model.Severity.Known() {
		log.WithField("severity", model.Severity).Debug("Accepting hazard with unknown severity")
	}

	hazard, err := h.hazardService.ReportHazard(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToHazardResponse(hazard))
}

// @Summary Find nearby hazards
// @Description Active hazards within radius (km) of a point, sorted by severity then distance.
// @Tags Hazards
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in kilometres" default(50)
// @Success 200 {array} NearbyHazardResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/nearby [get]
func (h *Handler) nearbyHazards(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyHazards")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required numbers"})
		return
	}

	radius := defaultNearbyRadiusKm
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
		radius = parsed
	}

	nearby, err := h.hazardService.NearbyHazards(c.Request.Context(), models.Coordinate{Lat: lat, Lng: lng}, radius)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyResponses(nearby))
}

// @Summary Get hazard by ID
// @Description Get a single active hazard by its ID.
// @Tags Hazards
// @Produce json
// @Param id path string true "Hazard ID"
// @Success 200 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Router /hazards/{id} [get]
func (h *Handler) getHazard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "getHazard").WithField("id", id)

	hazard, err := h.hazardService.GetHazard(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(hazard))
}

// @Summary Vote on a hazard
// @Description Three upvotes verify a hazard, five downvotes remove it.
// @Tags Hazards
// @Accept json
// @Produce json
// @Param id path string true "Hazard ID"
// @Param vote body VoteRequest true "Vote"
// @Success 200 {object} VoteResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID or vote"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id}/vote [post]
func (h *Handler) voteHazard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "voteHazard").WithField("id", id)

	var input VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.hazardService.VoteHazard(c.Request.Context(), id, models.VoteDirection(input.Vote))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVoteResponse(outcome))
}

// @Summary Report traffic density
// @Description Report vessel density at a location. Only the most recent reports are retained.
// @Tags Traffic
// @Accept json
// @Produce json
// @Param traffic body ReportTrafficRequest true "Traffic report"
// @Success 201 {object} TrafficResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /traffic [post]
func (h *Handler) reportTraffic(c *gin.Context) {
	var input ReportTrafficRequest
	log := h.logger.WithField("method", "reportTraffic")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToTrafficInput(input)
	if model.Density != "" && !model.Density.Known() {
		log.WithField("density", model.Density).Debug("Accepting traffic report with unknown density")
	}

	report, err := h.trafficService.ReportTraffic(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToTrafficResponse(report))
}

// @Summary Traffic heatmap
// @Description Traffic reports from the last 24 hours, as JSON or as a GeoJSON FeatureCollection.
// @Tags Traffic
// @Produce json
// @Param format query string false "Response format" Enums(json, geojson)
// @Success 200 {array} TrafficResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /traffic/heatmap [get]
func (h *Handler) trafficHeatmap(c *gin.Context) {
	log := h.logger.WithField("method", "trafficHeatmap")

	reports, err := h.trafficService.Heatmap(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	if c.Query("format") == "geojson" {
		c.JSON(http.StatusOK, ModelsToHeatmapFeatures(reports))
		return
	}
	c.JSON(http.StatusOK, ModelsToTrafficResponses(reports))
}

// @Summary Annotate a route
// @Description Find a sea-lane route and annotate it with hazards, traffic, directions and predictions.
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body AnnotateRouteRequest true "Route request"
// @Success 200 {object} AnnotatedRouteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Route computation failed"
// @Router /routes/annotate [post]
func (h *Handler) annotateRoute(c *gin.Context) {
	var input AnnotateRouteRequest
	log := h.logger.WithField("method", "annotateRoute")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.routeService.AnnotateRoute(c.Request.Context(), DTOToRouteRequest(input, h.cfg.DefaultSpeedKnots))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRouteResponse(route))
}

// @Summary Sweep expired hazards
// @Description Remove expired hazards from storage. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SweepResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/hazards/sweep [post]
func (h *Handler) sweepHazards(c *gin.Context) {
	log := h.logger.WithField("method", "sweepHazards")

	removed, err := h.hazardService.SweepExpired(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SweepResponse{Removed: removed})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError переводит ошибку сервиса в HTTP-ответ. Подробности сбоев пишутся только в лог.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Hazard not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "hazard not found"})
	case errors.Is(err, service.ErrRouteComputation):
		log.WithError(err).Error("Route computation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "route computation failed"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
