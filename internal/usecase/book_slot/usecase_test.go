package book_slot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CarpenterService/internal/infra/storage/slot"
)

// fakeStore in-memory хранилище слотов и бронирований
// Do у fakeTxManager сериализует транзакции мьютексом - модель
// блокировки строки FOR UPDATE
type fakeStore struct {
	mu           sync.Mutex
	slots        map[int64]*domain.Slot
	reservations map[int64]*domain.Reservation
	nextID       int64

	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:        make(map[int64]*domain.Slot),
		reservations: make(map[int64]*domain.Reservation),
		nextID:       1,
	}
}

func (s *fakeStore) addSlot(id int64, available bool) {
	s.slots[id] = &domain.Slot{
		ID:          id,
		CarpenterID: 1,
		StartTime:   time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		IsAvailable: available,
	}
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	slot, ok := s.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (s *fakeStore) MarkUnavailable(_ context.Context, id int64) error {
	slot, ok := s.slots[id]
	if !ok || !slot.IsAvailable {
		return slotRepo.ErrSlotNotAvailable
	}
	slot.IsAvailable = false
	return nil
}

func (s *fakeStore) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	res.ID = s.nextID
	res.CreatedAt = time.Now()
	s.nextID++
	s.reservations[res.ID] = res
	return res, nil
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

func newTestUseCase(store *fakeStore) *UseCase {
	return NewUseCase(store, store, &fakeTxManager{store: store}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	store := newFakeStore()
	store.addSlot(1, true)
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1, UserName: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ReservationID)
	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, "Bob", resp.UserName)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)

	// Слот помечен занятым, бронирование записано
	assert.False(t, store.slots[1].IsAvailable)
	require.Len(t, store.reservations, 1)
	assert.Equal(t, "Bob", store.reservations[resp.ReservationID].UserName)
}

func TestExecute_SlotNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 42, UserName: "Bob"})
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Empty(t, store.reservations)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	store := newFakeStore()
	store.addSlot(1, false)
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1, UserName: "Bob"})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Empty(t, store.reservations)
}

func TestExecute_Validation(t *testing.T) {
	store := newFakeStore()
	store.addSlot(1, true)
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 0, UserName: "Bob"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SlotID: 1, UserName: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Хранилище не тронуто
	assert.True(t, store.slots[1].IsAvailable)
	assert.Empty(t, store.reservations)
}

func TestExecute_CreateFails_NoPartialState(t *testing.T) {
	store := newFakeStore()
	store.addSlot(1, true)
	store.createErr = errors.New("insert failed")
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 1, UserName: "Bob"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, store.reservations)
}

// Из N конкурентных бронирований одного слота ровно одно проходит,
// остальные получают ErrSlotAlreadyBooked
func TestExecute_ConcurrentBookings_SingleWinner(t *testing.T) {
	const workers = 10

	store := newFakeStore()
	store.addSlot(1, true)
	uc := newTestUseCase(store)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{SlotID: 1, UserName: "Bob"})
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotAlreadyBooked):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)
	assert.Len(t, store.reservations, 1)
	assert.False(t, store.slots[1].IsAvailable)
}
