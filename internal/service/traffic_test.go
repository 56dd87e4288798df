package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/internal/service/mocks"
	"github.com/shenikar/maritime_route_intel/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTrafficService(t *testing.T, stored ...models.TrafficReport) (*trafficService, *memoryStorage[models.TrafficReport], *testClock) {
	storage := &memoryStorage[models.TrafficReport]{items: stored}
	clock := newTestClock()

	svc := NewTrafficService(context.Background(), storage, logger.Discard(), testConfig()).(*trafficService)
	svc.now = clock.Now
	return svc, storage, clock
}

func TestReportTraffic_Defaults(t *testing.T) {
	// Подготовка
	svc, storage, clock := newTestTrafficService(t)

	// Действие
	report, err := svc.ReportTraffic(context.Background(), models.TrafficInput{
		Lat: ptr(1.29),
		Lng: ptr(103.85),
	})

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, models.DensityMedium, report.Density)
	assert.Zero(t, report.VesselCount)
	assert.Equal(t, "anonymous", report.ReportedBy)
	assert.Equal(t, clock.Now(), report.CreatedAt)
	assert.Equal(t, []models.TrafficReport{*report}, storage.snapshot())
}

func TestReportTraffic_ReporterFallsBackToVessel(t *testing.T) {
	svc, _, _ := newTestTrafficService(t)

	report, err := svc.ReportTraffic(context.Background(), models.TrafficInput{
		Lat:         ptr(1.0),
		Lng:         ptr(1.0),
		Density:     models.DensityHigh,
		VesselCount: 12,
		PortCode:    "SGSIN",
		VesselID:    "IMO-9",
	})

	require.NoError(t, err)
	assert.Equal(t, "IMO-9", report.ReportedBy)
	assert.Equal(t, models.DensityHigh, report.Density)
	assert.Equal(t, uint(12), report.VesselCount)
	assert.Equal(t, "SGSIN", report.PortCode)
}

func TestReportTraffic_InvalidCoordinates(t *testing.T) {
	svc, storage, _ := newTestTrafficService(t)

	_, err := svc.ReportTraffic(context.Background(), models.TrafficInput{Lat: ptr(10.0), Lng: ptr(200.0)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ReportTraffic(context.Background(), models.TrafficInput{Lng: ptr(10.0)})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, storage.saves)
}

func TestReportTraffic_RetentionKeepsNewest(t *testing.T) {
	// Подготовка
	svc, storage, clock := newTestTrafficService(t)
	ctx := context.Background()

	// Действие
	var first, last *models.TrafficReport
	for i := 0; i < 1001; i++ {
		report, err := svc.ReportTraffic(ctx, models.TrafficInput{Lat: ptr(1.0), Lng: ptr(1.0)})
		require.NoError(t, err)
		if i == 0 {
			first = report
		}
		last = report
		clock.Advance(time.Second)
	}

	// Проверки
	stored := storage.snapshot()
	require.Len(t, stored, 1000)
	for _, r := range stored {
		assert.NotEqual(t, first.ID, r.ID)
	}
	assert.Equal(t, last.ID, stored[len(stored)-1].ID)
}

func TestReportTraffic_StorageFailure(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockTrafficStorage(ctrl)

	// Ожидания
	storage.EXPECT().Load(gomock.Any()).Return([]models.TrafficReport{}, nil).Times(1)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(1)

	svc := NewTrafficService(context.Background(), storage, logger.Discard(), testConfig())

	// Действие
	report, err := svc.ReportTraffic(context.Background(), models.TrafficInput{Lat: ptr(1.0), Lng: ptr(1.0)})

	// Проверки
	require.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, report)
	recent, err := svc.RecentTraffic(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestRecentTraffic_Window(t *testing.T) {
	// Подготовка
	clock := newTestClock()
	now := clock.Now()
	fresh := models.TrafficReport{ID: uuid.New(), CreatedAt: now.Add(-time.Hour)}
	older := models.TrafficReport{ID: uuid.New(), CreatedAt: now.Add(-12 * time.Hour)}
	stale := models.TrafficReport{ID: uuid.New(), CreatedAt: now.Add(-30 * time.Hour)}
	svc, _, _ := newTestTrafficService(t, stale, older, fresh)

	// Действие
	routeWindow, err := svc.RecentTraffic(context.Background(), RouteTrafficWindow)
	require.NoError(t, err)
	heatmap, err := svc.Heatmap(context.Background())
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, []models.TrafficReport{fresh}, routeWindow)
	assert.Equal(t, []models.TrafficReport{older, fresh}, heatmap)
}
