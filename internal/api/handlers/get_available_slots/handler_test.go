package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarpenterService/internal/service/slots/models"
)

type fakeService struct {
	slots []models.SlotResponse
	err   error
}

func (s *fakeService) ListAvailable(_ context.Context) ([]models.SlotResponse, error) {
	return s.slots, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc SlotsService) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc := &fakeService{
		slots: []models.SlotResponse{
			{ID: 1, Carpenter: "Alice", StartTime: start, EndTime: start.Add(2 * time.Hour)},
		},
	}

	rec := doRequest(t, svc)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Ответ - массив верхнего уровня
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body, 1)
	assert.Equal(t, "Alice", body[0]["carpenter"])
	assert.Contains(t, body[0], "start_time")
	assert.Contains(t, body[0], "end_time")
}

func TestHandle_EmptyList(t *testing.T) {
	rec := doRequest(t, &fakeService{slots: []models.SlotResponse{}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeService{err: errors.New("db down")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
