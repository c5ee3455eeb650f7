package statement

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargomoz/backoffice/internal/domain"
)

type stubGenerator struct {
	mu      sync.Mutex
	fail    map[uuid.UUID]error
	inUse   atomic.Int32
	maxSeen atomic.Int32
}

func (s *stubGenerator) Generate(_ context.Context, req Request) (*domain.Statement, error) {
	cur := s.inUse.Add(1)
	defer s.inUse.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if cur <= seen || s.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)

	s.mu.Lock()
	err := s.fail[req.ClientID]
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &domain.Statement{
		Client:      domain.ClientInfo{ID: req.ClientID},
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	}, nil
}

func TestBatchRunAllClients(t *testing.T) {
	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
	}

	gen := &stubGenerator{}
	results := NewBatchRunner(gen, 3).Run(context.Background(), ids, day(2025, 6, 1), day(2025, 6, 30))
	require.Len(t, results, len(ids))

	for i, res := range results {
		assert.Equal(t, ids[i], res.ClientID, "results keep the input order")
		require.NoError(t, res.Err)
		require.NotNil(t, res.Statement)
	}

	assert.LessOrEqual(t, gen.maxSeen.Load(), int32(3), "worker limit exceeded")
}

func TestBatchRunContinuesPastFailures(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	gen := &stubGenerator{fail: map[uuid.UUID]error{ids[1]: domain.ErrClientNotFound}}

	results := NewBatchRunner(gen, 2).Run(context.Background(), ids, day(2025, 6, 1), day(2025, 6, 30))
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, domain.ErrClientNotFound)
	assert.Nil(t, results[1].Statement)
	require.NoError(t, results[2].Err)
}

func TestBatchRunEmptyInput(t *testing.T) {
	results := NewBatchRunner(&stubGenerator{}, 4).Run(context.Background(), nil, day(2025, 6, 1), day(2025, 6, 30))
	assert.Empty(t, results)
}
