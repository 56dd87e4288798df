package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_route_intel/internal/config"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string) *WebhookWorker {
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger.Discard(), cfg)
}

func testEvent(t *testing.T) (HazardEvent, string) {
	event := HazardEvent{
		Type:      EventHazardReported,
		Hazard:    models.HazardReport{ID: uuid.New(), Type: models.HazardDebris, Severity: models.SeverityHigh},
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestProcessEvent_DeliversSignedPayload(t *testing.T) {
	event, payload := testEvent(t)
	var gotBody, gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	newTestWorker(srv.URL).processEvent(context.Background(), event, payload)

	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestProcessEvent_RetriesOnFailure(t *testing.T) {
	event, payload := testEvent(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	newTestWorker(srv.URL).processEvent(context.Background(), event, payload)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessEvent_GivesUpAfterMaxRetries(t *testing.T) {
	event, payload := testEvent(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	newTestWorker(srv.URL).processEvent(context.Background(), event, payload)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessEvent_NoURLSkipsDelivery(t *testing.T) {
	event, payload := testEvent(t)

	// без URL запрос не создается, паники нет
	newTestWorker("").processEvent(context.Background(), event, payload)
}

func TestGenerateHMACSHA256(t *testing.T) {
	sig := generateHMACSHA256("payload", "secret")

	assert.Len(t, sig, 64)
	assert.Equal(t, sig, generateHMACSHA256("payload", "secret"))
	assert.NotEqual(t, sig, generateHMACSHA256("payload", "other"))
}
