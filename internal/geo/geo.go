package geo

import (
	"math"

	"github.com/paulmach/orb/geo"
	"github.com/shenikar/maritime_route_intel/internal/models"
)

const (
	// EarthRadiusNm - радиус Земли в морских милях
	EarthRadiusNm = 3440.065
	// KmPerNm - километров в морской миле
	KmPerNm = 1.852
	// NmPerKm - морских миль в километре
	NmPerKm = 0.539957
)

const sectorEpsilon = 1e-9

var compass = [8]string{"North", "NE", "East", "SE", "South", "SW", "West", "NW"}

// Distance возвращает расстояние по большому кругу (haversine) в морских милях
func Distance(a, b models.Coordinate) float64 {
	if a == b {
		return 0
	}
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := lat2 - lat1
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusNm * c
}

// DistanceKm - то же расстояние в километрах
func DistanceKm(a, b models.Coordinate) float64 {
	return Distance(a, b) * KmPerNm
}

// Bearing возвращает начальный азимут от a к b в градусах, в диапазоне [0, 360)
func Bearing(a, b models.Coordinate) float64 {
	return math.Mod(geo.Bearing(a.Point(), b.Point())+360, 360)
}

// BearingToDirection переводит азимут в одно из восьми направлений компаса.
// Сектор начинается на своем направлении: [0, 45) - North, [45, 90) - NE и т.д.
func BearingToDirection(bearing float64) string {
	// азимут на границе сектора с погрешностью float (89.99999999999999) относим к следующему сектору
	idx := int(math.Floor(bearing/45+sectorEpsilon)) % 8
	if idx < 0 {
		idx += 8
	}
	return compass[idx]
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
