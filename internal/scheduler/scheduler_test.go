package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReconciler struct {
	mock.Mock
}

func (m *mockReconciler) ReconcileStatuses(ctx context.Context, now time.Time) (int64, int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func TestNewScheduler_RejectsBadSpec(t *testing.T) {
	_, err := NewScheduler(new(mockReconciler), "every day")
	assert.ErrorContains(t, err, "failed to register reconcile job")

	// seconds field is not accepted
	_, err = NewScheduler(new(mockReconciler), "0 5 0 * * *")
	assert.Error(t, err)
}

func TestScheduler_Reconcile(t *testing.T) {
	at := time.Date(2024, 3, 5, 0, 5, 0, 0, time.UTC)
	r := new(mockReconciler)
	r.On("ReconcileStatuses", mock.Anything, at).Return(int64(2), int64(1), nil).Once()

	s, err := NewScheduler(r, "5 0 * * *")
	require.NoError(t, err)
	s.now = func() time.Time { return at }

	started, completed, err := s.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), started)
	assert.Equal(t, int64(1), completed)
	r.AssertExpectations(t)
}

func TestScheduler_RunLogsFailure(t *testing.T) {
	r := new(mockReconciler)
	r.On("ReconcileStatuses", mock.Anything, mock.Anything).Return(int64(0), int64(0), errors.New("db down")).Once()

	s, err := NewScheduler(r, "5 0 * * *")
	require.NoError(t, err)

	assert.NotPanics(t, s.runReconcile)
	r.AssertExpectations(t)
}

func TestScheduler_StartStop(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	s, err := NewScheduler(new(mockReconciler), "5 0 * * *")
	require.NoError(t, err)

	s.Start()
	next := s.Next()
	s.Stop()

	assert.False(t, next.IsZero())
	assert.Equal(t, 5, next.Minute())
	assert.Equal(t, time.UTC, next.Location())
	assert.Contains(t, buf.String(), "next_run="+next.Format(time.RFC3339))
}
