package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/internal/service/mocks"
	"github.com/shenikar/maritime_route_intel/internal/webhook"
	webhook_mocks "github.com/shenikar/maritime_route_intel/internal/webhook/mocks"
	"github.com/shenikar/maritime_route_intel/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHazardService — вспомогательная функция для создания сервиса с хранилищем в памяти
func newTestHazardService(t *testing.T, stored ...models.HazardReport) (*hazardService, *memoryStorage[models.HazardReport], *webhook_mocks.MockEventPublisher, *testClock) {
	ctrl := gomock.NewController(t)
	publisher := webhook_mocks.NewMockEventPublisher(ctrl)
	storage := &memoryStorage[models.HazardReport]{items: stored}
	clock := newTestClock()

	svc := NewHazardService(context.Background(), storage, logger.Discard(), testConfig(), publisher).(*hazardService)
	svc.now = clock.Now
	return svc, storage, publisher, clock
}

func reportAt(t *testing.T, svc *hazardService, lat, lng float64, severity models.Severity) *models.HazardReport {
	t.Helper()
	hazard, err := svc.ReportHazard(context.Background(), models.HazardInput{
		Type:     models.HazardDebris,
		Severity: severity,
		Lat:      ptr(lat),
		Lng:      ptr(lng),
	})
	require.NoError(t, err)
	return hazard
}

func TestReportHazard_Success(t *testing.T) {
	// Подготовка
	svc, storage, publisher, clock := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания
	publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.HazardEvent) {
			assert.Equal(t, webhook.EventHazardReported, event.Type)
			assert.Equal(t, models.HazardShallow, event.Hazard.Type)
		}).Return(nil).Times(1)

	// Действие
	hazard, err := svc.ReportHazard(ctx, models.HazardInput{
		Type:        models.HazardShallow,
		Lat:         ptr(18.9),
		Lng:         ptr(72.8),
		Description: "Sandbank near channel",
		ReportedBy:  "captain",
		VesselID:    "IMO-123",
	})

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, hazard.ID)
	assert.Equal(t, models.SeverityMedium, hazard.Severity)
	assert.Equal(t, clock.Now(), hazard.CreatedAt)
	assert.Equal(t, clock.Now().Add(24*time.Hour), hazard.ExpiresAt)
	assert.False(t, hazard.Verified)
	assert.Zero(t, hazard.Upvotes)
	assert.Zero(t, hazard.Downvotes)
	assert.Equal(t, []models.HazardReport{*hazard}, storage.snapshot())
}

func TestReportHazard_MissingCoordinates(t *testing.T) {
	// Подготовка
	svc, storage, publisher, _ := newTestHazardService(t)

	// Ожидания
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	hazard, err := svc.ReportHazard(context.Background(), models.HazardInput{Type: models.HazardDebris, Lat: ptr(10.0)})

	// Проверки
	require.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, hazard)
	assert.Zero(t, storage.saves)
}

func TestReportHazard_InvalidExpiry(t *testing.T) {
	svc, _, _, _ := newTestHazardService(t)

	_, err := svc.ReportHazard(context.Background(), models.HazardInput{
		Lat:         ptr(1.0),
		Lng:         ptr(1.0),
		ExpiryHours: ptr(-1.0),
	})

	require.ErrorIs(t, err, ErrValidation)
}

func TestReportHazard_ExpiryAboveLimit(t *testing.T) {
	svc, storage, _, _ := newTestHazardService(t)

	for _, hours := range []float64{models.MaxExpiryHours + 1, 3e6, math.Inf(1)} {
		hazard, err := svc.ReportHazard(context.Background(), models.HazardInput{
			Lat:         ptr(1.0),
			Lng:         ptr(1.0),
			ExpiryHours: ptr(hours),
		})

		require.ErrorIs(t, err, ErrValidation, "expiry %v", hours)
		assert.Nil(t, hazard)
	}
	assert.Empty(t, storage.snapshot())
	assert.Zero(t, storage.saves)
}

func TestReportHazard_ExpiryAtLimit(t *testing.T) {
	svc, _, publisher, clock := newTestHazardService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	hazard, err := svc.ReportHazard(context.Background(), models.HazardInput{
		Lat:         ptr(1.0),
		Lng:         ptr(1.0),
		ExpiryHours: ptr(models.MaxExpiryHours),
	})

	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(8760*time.Hour), hazard.ExpiresAt)
}

func TestReportHazard_SweepsExpired(t *testing.T) {
	// Подготовка
	clock := newTestClock()
	expired := models.HazardReport{
		ID:        uuid.New(),
		Severity:  models.SeverityLow,
		CreatedAt: clock.Now().Add(-48 * time.Hour),
		ExpiresAt: clock.Now().Add(-24 * time.Hour),
	}
	svc, storage, publisher, _ := newTestHazardService(t, expired)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Действие
	hazard := reportAt(t, svc, 5, 5, models.SeverityHigh)

	// Проверки
	stored := storage.snapshot()
	require.Len(t, stored, 1)
	assert.Equal(t, hazard.ID, stored[0].ID)
}

func TestReportHazard_ZeroExpiryIsImmediatelyInactive(t *testing.T) {
	// Подготовка
	svc, _, publisher, _ := newTestHazardService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Действие
	hazard, err := svc.ReportHazard(ctx, models.HazardInput{
		Type:        models.HazardWeather,
		Lat:         ptr(10.0),
		Lng:         ptr(10.0),
		ExpiryHours: ptr(0.0),
	})
	require.NoError(t, err)
	nearby, err := svc.NearbyHazards(ctx, models.Coordinate{Lat: 10, Lng: 10}, 50)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, nearby)
	_, err = svc.GetHazard(ctx, hazard.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportHazard_PublishFailureDoesNotFail(t *testing.T) {
	svc, _, publisher, _ := newTestHazardService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	hazard, err := svc.ReportHazard(context.Background(), models.HazardInput{Lat: ptr(1.0), Lng: ptr(1.0)})

	require.NoError(t, err)
	assert.NotNil(t, hazard)
}

func TestReportHazard_StorageFailureKeepsState(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockHazardStorage(ctrl)
	publisher := webhook_mocks.NewMockEventPublisher(ctrl)

	// Ожидания
	storage.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	svc := NewHazardService(context.Background(), storage, logger.Discard(), testConfig(), publisher)

	// Действие
	hazard, err := svc.ReportHazard(context.Background(), models.HazardInput{Lat: ptr(1.0), Lng: ptr(1.0)})

	// Проверки
	require.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, hazard)
	active, err := svc.ActiveHazards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestNearbyHazards_SortedBySeverityThenDistance(t *testing.T) {
	// Подготовка
	svc, _, publisher, _ := newTestHazardService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	lowNear := reportAt(t, svc, 0.01, 0, models.SeverityLow)
	criticalFar := reportAt(t, svc, 0.3, 0, models.SeverityCritical)
	criticalNear := reportAt(t, svc, 0.1, 0, models.SeverityCritical)
	unknown := reportAt(t, svc, 0.02, 0, models.Severity("extreme"))
	highMid := reportAt(t, svc, 0.2, 0, models.SeverityHigh)
	reportAt(t, svc, 5, 5, models.SeverityCritical) // вне радиуса

	// Действие
	nearby, err := svc.NearbyHazards(context.Background(), models.Coordinate{Lat: 0, Lng: 0}, 50)

	// Проверки
	require.NoError(t, err)
	ids := make([]uuid.UUID, len(nearby))
	for i, n := range nearby {
		ids[i] = n.Hazard.ID
	}
	assert.Equal(t, []uuid.UUID{criticalNear.ID, criticalFar.ID, highMid.ID, lowNear.ID, unknown.ID}, ids)
	assert.InDelta(t, 0.01*60.04*1.852, nearby[3].DistanceKm, 0.01)
}

func TestNearbyHazards_RadiusInKilometres(t *testing.T) {
	svc, _, publisher, _ := newTestHazardService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	// 0.1 градуса широты ~ 6 миль ~ 11.1 км
	reportAt(t, svc, 0.1, 0, models.SeverityHigh)

	inside, err := svc.NearbyHazards(context.Background(), models.Coordinate{}, 11.2)
	require.NoError(t, err)
	outside, err := svc.NearbyHazards(context.Background(), models.Coordinate{}, 11.0)
	require.NoError(t, err)

	assert.Len(t, inside, 1)
	assert.Empty(t, outside)
}

func TestNearbyHazards_PersistsSweptCollection(t *testing.T) {
	// Подготовка
	svc, storage, publisher, clock := newTestHazardService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	_, err := svc.ReportHazard(context.Background(), models.HazardInput{Lat: ptr(0.0), Lng: ptr(0.0), ExpiryHours: ptr(1.0)})
	require.NoError(t, err)
	kept := reportAt(t, svc, 0, 0, models.SeverityLow)
	clock.Advance(2 * time.Hour)
	savesBefore := storage.saves

	// Действие
	nearby, err := svc.NearbyHazards(context.Background(), models.Coordinate{}, 10)

	// Проверки
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, kept.ID, nearby[0].Hazard.ID)
	assert.Equal(t, savesBefore+1, storage.saves)
	assert.Len(t, storage.snapshot(), 1)
}

func TestNearbyHazards_InvalidInput(t *testing.T) {
	svc, _, _, _ := newTestHazardService(t)

	_, err := svc.NearbyHazards(context.Background(), models.Coordinate{Lat: 91}, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.NearbyHazards(context.Background(), models.Coordinate{}, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVoteHazard_ThreeUpvotesVerify(t *testing.T) {
	// Подготовка
	svc, storage, publisher, _ := newTestHazardService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1) // reported
	hazard := reportAt(t, svc, 1, 1, models.SeverityMedium)

	// Ожидания
	publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.HazardEvent) {
			assert.Equal(t, webhook.EventHazardVerified, event.Type)
			assert.Equal(t, hazard.ID, event.Hazard.ID)
		}).Return(nil).Times(1)

	// Действие
	var outcome *models.VoteOutcome
	var err error
	for i := 0; i < 3; i++ {
		outcome, err = svc.VoteHazard(ctx, hazard.ID, models.VoteUp)
		require.NoError(t, err)
		if i < 2 {
			assert.False(t, outcome.Hazard.Verified)
		}
	}

	// Проверки
	require.NotNil(t, outcome.Hazard)
	assert.True(t, outcome.Hazard.Verified)
	assert.Equal(t, uint(3), outcome.Hazard.Upvotes)
	assert.False(t, outcome.Removed)
	assert.True(t, storage.snapshot()[0].Verified)

	// четвертый голос не публикует повторное подтверждение
	outcome, err = svc.VoteHazard(ctx, hazard.ID, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, uint(4), outcome.Hazard.Upvotes)
}

func TestVoteHazard_FiveDownvotesRemove(t *testing.T) {
	// Подготовка
	svc, storage, publisher, _ := newTestHazardService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2) // reported + verified
	hazard := reportAt(t, svc, 1, 1, models.SeverityHigh)
	for i := 0; i < 3; i++ {
		_, err := svc.VoteHazard(ctx, hazard.ID, models.VoteUp)
		require.NoError(t, err)
	}

	// Ожидания
	publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.HazardEvent) {
			assert.Equal(t, webhook.EventHazardRemoved, event.Type)
			assert.Equal(t, uint(5), event.Hazard.Downvotes)
		}).Return(nil).Times(1)

	// Действие
	var outcome *models.VoteOutcome
	for i := 0; i < 5; i++ {
		var err error
		outcome, err = svc.VoteHazard(ctx, hazard.ID, models.VoteDown)
		require.NoError(t, err)
	}

	// Проверки
	assert.True(t, outcome.Removed)
	assert.Nil(t, outcome.Hazard)
	assert.Empty(t, storage.snapshot())

	nearby, err := svc.NearbyHazards(ctx, models.Coordinate{Lat: 1, Lng: 1}, 10)
	require.NoError(t, err)
	assert.Empty(t, nearby)

	_, err = svc.VoteHazard(ctx, hazard.ID, models.VoteUp)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVoteHazard_NotFound(t *testing.T) {
	svc, storage, _, _ := newTestHazardService(t)

	outcome, err := svc.VoteHazard(context.Background(), uuid.New(), models.VoteUp)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, outcome)
	assert.Zero(t, storage.saves)
}

func TestVoteHazard_InvalidDirection(t *testing.T) {
	svc, _, _, _ := newTestHazardService(t)

	_, err := svc.VoteHazard(context.Background(), uuid.New(), models.VoteDirection("sideways"))

	require.ErrorIs(t, err, ErrValidation)
}

func TestActiveHazards_ExcludesExpired(t *testing.T) {
	clock := newTestClock()
	active := models.HazardReport{ID: uuid.New(), ExpiresAt: clock.Now().Add(time.Hour)}
	expired := models.HazardReport{ID: uuid.New(), ExpiresAt: clock.Now()}
	svc, _, _, _ := newTestHazardService(t, active, expired)

	hazards, err := svc.ActiveHazards(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.HazardReport{active}, hazards)
}

func TestSweepExpired(t *testing.T) {
	clock := newTestClock()
	active := models.HazardReport{ID: uuid.New(), ExpiresAt: clock.Now().Add(time.Hour)}
	expired := models.HazardReport{ID: uuid.New(), ExpiresAt: clock.Now().Add(-time.Minute)}
	svc, storage, _, _ := newTestHazardService(t, expired, active)

	removed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []models.HazardReport{active}, storage.snapshot())
}

func TestLoadOrDefault_FallsBackToEmpty(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader[models.HazardReport](ctrl)

	// Ожидания
	loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("corrupt file")).Times(1)

	// Действие
	items := LoadOrDefault[models.HazardReport](context.Background(), loader, time.Second, logger.Discard())

	// Проверки
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadOrDefault_ReturnsStored(t *testing.T) {
	stored := []models.TrafficReport{{ID: uuid.New()}}
	storage := &memoryStorage[models.TrafficReport]{items: stored}

	items := LoadOrDefault[models.TrafficReport](context.Background(), storage, time.Second, logger.Discard())

	assert.Equal(t, stored, items)
}
