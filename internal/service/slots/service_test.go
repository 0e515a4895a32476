package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
)

type fakeSlotRepo struct {
	slots []*domain.AvailableSlot
	err   error
}

func (r *fakeSlotRepo) ListAvailable(_ context.Context) ([]*domain.AvailableSlot, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.slots, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListAvailable_Success(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	repo := &fakeSlotRepo{
		slots: []*domain.AvailableSlot{
			{ID: 1, CarpenterName: "Alice", StartTime: start, EndTime: end},
			{ID: 2, CarpenterName: "Marco", StartTime: start.Add(3 * time.Hour), EndTime: end.Add(3 * time.Hour)},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)

	require.Len(t, resp, 2)
	assert.Equal(t, int64(1), resp[0].ID)
	assert.Equal(t, "Alice", resp[0].Carpenter)
	assert.Equal(t, start, resp[0].StartTime)
	assert.Equal(t, "Marco", resp[1].Carpenter)
}

func TestListAvailable_Empty(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, nopLogger{})

	resp, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)

	// Пустой список, а не nil - сериализуется в [] вместо null
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestListAvailable_RepositoryError(t *testing.T) {
	svc := NewService(&fakeSlotRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.ListAvailable(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
