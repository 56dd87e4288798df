package v1

import (
	"math"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/maritime_route_intel/internal/models"
)

// DTOToHazardInput преобразует DTO в входные данные сервиса
func DTOToHazardInput(dto ReportHazardRequest) models.HazardInput {
	return models.HazardInput{
		Type:        models.HazardType(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Lat:         dto.Latitude,
		Lng:         dto.Longitude,
		Description: dto.Description,
		ReportedBy:  dto.ReportedBy,
		VesselID:    dto.VesselID,
		ExpiryHours: dto.ExpiryHours,
	}
}

func DTOToTrafficInput(dto ReportTrafficRequest) models.TrafficInput {
	return models.TrafficInput{
		Lat:         dto.Latitude,
		Lng:         dto.Longitude,
		Density:     models.Density(dto.Density),
		VesselCount: dto.VesselCount,
		PortCode:    dto.PortCode,
		ReportedBy:  dto.ReportedBy,
		VesselID:    dto.VesselID,
	}
}

// DTOToRouteRequest подставляет параметры по умолчанию для отсутствующих полей
func DTOToRouteRequest(dto AnnotateRouteRequest, defaultSpeed float64) models.RouteRequest {
	prefs := models.DefaultPreferences()
	if defaultSpeed > 0 {
		prefs.SpeedKnots = defaultSpeed
	}
	if dto.Preferences != nil {
		if dto.Preferences.Speed != nil {
			prefs.SpeedKnots = *dto.Preferences.Speed
		}
		if dto.Preferences.ShowAlternatives != nil {
			prefs.ShowAlternatives = *dto.Preferences.ShowAlternatives
		}
	}

	return models.RouteRequest{
		Origin:      models.Coordinate{Lat: *dto.Origin.Latitude, Lng: *dto.Origin.Longitude},
		Destination: models.Coordinate{Lat: *dto.Destination.Latitude, Lng: *dto.Destination.Longitude},
		Preferences: prefs,
	}
}

// ModelToHazardResponse преобразует доменную модель в DTO для ответа
func ModelToHazardResponse(model *models.HazardReport) *HazardResponse {
	return &HazardResponse{
		ID:          model.ID,
		Type:        string(model.Type),
		Severity:    string(model.Severity),
		Latitude:    model.Location.Lat,
		Longitude:   model.Location.Lng,
		Description: model.Description,
		ReportedBy:  model.ReportedBy,
		VesselID:    model.VesselID,
		CreatedAt:   model.CreatedAt,
		ExpiresAt:   model.ExpiresAt,
		Verified:    model.Verified,
		Upvotes:     model.Upvotes,
		Downvotes:   model.Downvotes,
	}
}

// ModelsToNearbyResponses сохраняет порядок сервиса, расстояние округляется до сотых
func ModelsToNearbyResponses(nearby []models.NearbyHazard) []*NearbyHazardResponse {
	responses := make([]*NearbyHazardResponse, len(nearby))
	for i := range nearby {
		responses[i] = &NearbyHazardResponse{
			HazardResponse: *ModelToHazardResponse(&nearby[i].Hazard),
			DistanceKm:     math.Round(nearby[i].DistanceKm*100) / 100,
		}
	}
	return responses
}

func ModelToVoteResponse(outcome *models.VoteOutcome) *VoteResponse {
	resp := &VoteResponse{Removed: outcome.Removed}
	if outcome.Hazard != nil {
		resp.Hazard = ModelToHazardResponse(outcome.Hazard)
	}
	return resp
}

func ModelToTrafficResponse(model *models.TrafficReport) *TrafficResponse {
	return &TrafficResponse{
		ID:          model.ID,
		Latitude:    model.Location.Lat,
		Longitude:   model.Location.Lng,
		Density:     string(model.Density),
		VesselCount: model.VesselCount,
		PortCode:    model.PortCode,
		CreatedAt:   model.CreatedAt,
		ReportedBy:  model.ReportedBy,
	}
}

func ModelsToTrafficResponses(reports []models.TrafficReport) []*TrafficResponse {
	responses := make([]*TrafficResponse, len(reports))
	for i := range reports {
		responses[i] = ModelToTrafficResponse(&reports[i])
	}
	return responses
}

// ModelsToHeatmapFeatures - тепловая карта как FeatureCollection точек
func ModelsToHeatmapFeatures(reports []models.TrafficReport) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range reports {
		f := geojson.NewFeature(r.Location.Point())
		f.ID = r.ID.String()
		f.Properties["density"] = string(r.Density)
		f.Properties["vessel_count"] = r.VesselCount
		f.Properties["created_at"] = r.CreatedAt
		if r.PortCode != "" {
			f.Properties["port_code"] = r.PortCode
		}
		fc.Append(f)
	}
	return fc
}

func ModelToRouteResponse(route *models.AnnotatedRoute) *AnnotatedRouteResponse {
	return &AnnotatedRouteResponse{
		AnnotatedRoute: route,
		Geometry:       geojson.NewGeometry(models.LineString(route.Waypoints)),
	}
}
