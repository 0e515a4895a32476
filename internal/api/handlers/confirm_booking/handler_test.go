package confirm_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarpenterService/internal/service/bookings"
)

type fakeService struct {
	err error
}

func (s *fakeService) Confirm(_ context.Context, _ int64) error {
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc BookingService, path string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/booking/{reservationId}/confirm", handler.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/api/booking/1/confirm")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestHandle_NotFound(t *testing.T) {
	rec := doRequest(t, &fakeService{err: bookings.ErrReservationNotFound}, "/api/booking/99/confirm")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/api/booking/abc/confirm")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeService{err: errors.New("db down")}, "/api/booking/1/confirm")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
