package service

import (
	"fmt"

	"github.com/shenikar/maritime_route_intel/internal/models"
)

// coordinateFromInput проверяет наличие и корректность координат
func coordinateFromInput(lat, lng *float64) (models.Coordinate, error) {
	if lat == nil || lng == nil {
		return models.Coordinate{}, fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	}
	c := models.Coordinate{Lat: *lat, Lng: *lng}
	if !c.Valid() {
		return models.Coordinate{}, fmt.Errorf("%w: coordinates out of range: %v, %v", ErrValidation, *lat, *lng)
	}
	return c, nil
}

func validCoordinate(name string, c models.Coordinate) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s coordinates out of range: %v, %v", ErrValidation, name, c.Lat, c.Lng)
	}
	return nil
}
