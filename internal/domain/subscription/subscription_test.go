package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlan(t *testing.T, quota, days uint) *Plan {
	t.Helper()
	p, err := NewPlan("Starter", quota, days, 4900)
	require.NoError(t, err)
	return p
}

func TestNewSubscription_SnapshotsPlanTerms(t *testing.T) {
	p := newTestPlan(t, 3, 30)
	s, err := NewSubscription(42, p)
	require.NoError(t, err)

	assert.Equal(t, "Starter", s.PlanName())
	assert.Equal(t, uint64(4900), s.PlanPrice())
	assert.Equal(t, uint(3), s.Quota())
	assert.True(t, s.IsActive())
	assert.Equal(t, uint(0), s.UsedCount())

	// Later plan edits must not leak into the purchased snapshot.
	require.NoError(t, p.Update("Starter", 10, 60, 9900))
	assert.Equal(t, uint(3), s.Quota())
	assert.Equal(t, uint64(4900), s.PlanPrice())
}

func TestEvaluate_QuotaBoundary(t *testing.T) {
	p := newTestPlan(t, 3, 30)
	s, err := NewSubscription(1, p)
	require.NoError(t, err)
	now := time.Now().UTC()

	require.NoError(t, s.RecordUse())
	require.NoError(t, s.RecordUse())

	entitled, flipped := s.Evaluate(now)
	assert.True(t, entitled, "2 of 3 used is still entitled")
	assert.False(t, flipped)

	require.NoError(t, s.RecordUse())

	entitled, flipped = s.Evaluate(now)
	assert.False(t, entitled, "3 of 3 used is exhausted")
	assert.True(t, flipped, "first failing evaluation flips the flag")

	entitled, flipped = s.Evaluate(now)
	assert.False(t, entitled)
	assert.False(t, flipped, "evaluation is idempotent after the flip")
}

func TestEvaluate_ExpiryBoundary(t *testing.T) {
	p := newTestPlan(t, 3, 30)
	s, err := NewSubscription(1, p)
	require.NoError(t, err)

	at := s.ExpiresAt()
	entitled, flipped := s.Evaluate(at)
	assert.True(t, entitled, "equality with expires_at is still entitled")
	assert.False(t, flipped)

	entitled, flipped = s.Evaluate(at.Add(time.Second))
	assert.False(t, entitled, "one second past expiry is not entitled")
	assert.True(t, flipped)
}

func TestActiveFlagNeverReactivates(t *testing.T) {
	p := newTestPlan(t, 1, 30)
	s, err := NewSubscription(1, p)
	require.NoError(t, err)

	require.NoError(t, s.RecordUse())
	_, _ = s.Evaluate(time.Now().UTC())
	require.False(t, s.IsActive())

	// An early instant would satisfy the liveness conditions, but the
	// flag is one-way.
	entitled, flipped := s.Evaluate(s.CreatedAt())
	assert.False(t, entitled)
	assert.False(t, flipped)
	assert.False(t, s.IsActive())
}

func TestRecordUse_GuardsAfterExhaustion(t *testing.T) {
	p := newTestPlan(t, 1, 30)
	s, err := NewSubscription(1, p)
	require.NoError(t, err)

	require.NoError(t, s.RecordUse())
	assert.ErrorIs(t, s.RecordUse(), ErrQuotaExhausted)
	assert.Equal(t, uint(1), s.UsedCount(), "used count never overruns quota")
}

func TestRemainingQuota(t *testing.T) {
	p := newTestPlan(t, 3, 30)
	s, err := NewSubscription(1, p)
	require.NoError(t, err)

	assert.Equal(t, uint(3), s.RemainingQuota())
	require.NoError(t, s.RecordUse())
	assert.Equal(t, uint(2), s.RemainingQuota())
}
