package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to DealStatus
		want     bool
	}{
		{DealNew, DealInProcess, true},
		{DealNew, DealCompleted, true},
		{DealNew, DealCanceled, true},
		{DealInProcess, DealCompleted, true},
		{DealInProcess, DealCanceled, true},
		{DealInProcess, DealNew, false},
		{DealCompleted, DealCanceled, false},
		{DealCompleted, DealNew, false},
		{DealCanceled, DealCompleted, false},
		{DealCanceled, DealInProcess, false},
		// переход в тот же статус — no-op
		{DealCompleted, DealCompleted, true},
		{DealNew, DealNew, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestApplyTransitionSetsCompletedAt(t *testing.T) {
	now := time.Now()

	d := &Deal{Status: DealNew}
	require.NoError(t, ApplyTransition(d, DealInProcess, now))
	assert.Equal(t, DealInProcess, d.Status)
	assert.Nil(t, d.CompletedAt)

	require.NoError(t, ApplyTransition(d, DealCompleted, now))
	assert.Equal(t, DealCompleted, d.Status)
	require.NotNil(t, d.CompletedAt)
	assert.Equal(t, now, *d.CompletedAt)
}

func TestApplyTransitionCanceled(t *testing.T) {
	now := time.Now()

	d := &Deal{Status: DealNew}
	require.NoError(t, ApplyTransition(d, DealCanceled, now))
	assert.Equal(t, DealCanceled, d.Status)
	require.NotNil(t, d.CompletedAt)
}

func TestApplyTransitionInvalid(t *testing.T) {
	now := time.Now()

	d := &Deal{Status: DealCompleted, CompletedAt: &now}
	err := ApplyTransition(d, DealCanceled, now)
	assert.Error(t, err)
	assert.Equal(t, DealCompleted, d.Status)

	assert.Error(t, ApplyTransition(nil, DealCanceled, now))
}
