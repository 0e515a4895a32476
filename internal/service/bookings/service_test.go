package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CarpenterService/internal/infra/storage/reservation"
)

type fakeStore struct {
	mu           sync.Mutex
	reservations map[int64]*domain.Reservation
	details      map[int64]*domain.ReservationDetails
	slotAvail    map[int64]bool

	detailsErr error
	deleteErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reservations: make(map[int64]*domain.Reservation),
		details:      make(map[int64]*domain.ReservationDetails),
		slotAvail:    make(map[int64]bool),
	}
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := s.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (s *fakeStore) GetDetails(_ context.Context, id int64) (*domain.ReservationDetails, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	d, ok := s.details[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return d, nil
}

func (s *fakeStore) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	res, ok := s.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(s.reservations, id)
	return nil
}

func (s *fakeStore) MarkAvailable(_ context.Context, id int64) error {
	s.slotAvail[id] = true
	return nil
}

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(store *fakeStore) *Service {
	return NewService(store, store, &fakeTxManager{store: store}, nopLogger{})
}

func TestGetByID_Success(t *testing.T) {
	store := newFakeStore()
	store.details[1] = &domain.ReservationDetails{
		ID:            1,
		UserName:      "Bob",
		Status:        domain.StatusBooked,
		StartTime:     time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		CarpenterName: "Alice",
	}
	svc := newTestService(store)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Bob", resp.UserName)
	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, "Alice", resp.Carpenter)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	store := newFakeStore()
	store.detailsErr = errors.New("connection reset")
	svc := newTestService(store)

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestConfirm_Success(t *testing.T) {
	store := newFakeStore()
	store.reservations[1] = &domain.Reservation{ID: 1, SlotID: 5, Status: domain.StatusBooked}
	svc := newTestService(store)

	err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, store.reservations[1].Status)
}

func TestConfirm_NotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	err := svc.Confirm(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_Success(t *testing.T) {
	store := newFakeStore()
	store.reservations[1] = &domain.Reservation{ID: 1, SlotID: 5, Status: domain.StatusBooked}
	store.slotAvail[5] = false
	svc := newTestService(store)

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	// Бронирование удалено, слот снова доступен
	assert.NotContains(t, store.reservations, int64(1))
	assert.True(t, store.slotAvail[5])
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_DeleteFails(t *testing.T) {
	store := newFakeStore()
	store.reservations[1] = &domain.Reservation{ID: 1, SlotID: 5, Status: domain.StatusBooked}
	store.deleteErr = errors.New("deadlock detected")
	svc := newTestService(store)

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)

	// Слот не освобождён - транзакция прервана до MarkAvailable
	assert.False(t, store.slotAvail[5])
}
