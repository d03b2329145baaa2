package form

import (
	"testing"
	"time"

	"github.com/AlexZinkM/devnet-transfer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Inputs(t *testing.T) {
	s := NewState(0)
	s.SetAddress("addr")
	s.SetAmount("1.5")

	assert.Equal(t, "addr", s.Address())
	assert.Equal(t, "1.5", s.Amount())
	assert.Equal(t, model.FormStatusIdle, s.Snapshot().Status)
	assert.Nil(t, s.Result())
}

func TestState_Lifecycle(t *testing.T) {
	s := NewState(0)

	require.NoError(t, s.Begin())
	assert.Equal(t, model.FormStatusSubmitting, s.Snapshot().Status)

	require.NoError(t, s.Complete("sig1", "https://explorer/sig1"))
	snap := s.Snapshot()
	assert.Equal(t, model.FormStatusCompleted, snap.Status)
	require.NotNil(t, snap.Result)
	assert.Equal(t, "sig1", snap.Result.TxID)
	assert.Nil(t, snap.Error)

	// the next attempt replaces the previous result
	require.NoError(t, s.Begin())
	assert.Nil(t, s.Result())
	require.NoError(t, s.Fail(model.ErrorResponse{Error: "boom", Code: "NETWORK_FAILURE"}))

	snap = s.Snapshot()
	assert.Equal(t, model.FormStatusFailed, snap.Status)
	assert.Nil(t, snap.Result)
	require.NotNil(t, snap.Error)
	assert.Equal(t, "NETWORK_FAILURE", snap.Error.Code)
}

func TestState_RejectsReentry(t *testing.T) {
	s := NewState(0)
	require.NoError(t, s.Begin())

	assert.ErrorIs(t, s.Begin(), ErrSubmissionInProgress)
	assert.ErrorIs(t, s.Reset(), ErrSubmissionInProgress)
	assert.Equal(t, model.FormStatusSubmitting, s.Snapshot().Status)
}

func TestState_CompleteOutsideSubmission(t *testing.T) {
	s := NewState(0)
	assert.ErrorIs(t, s.Complete("sig", ""), ErrNotSubmitting)
	assert.ErrorIs(t, s.Fail(model.ErrorResponse{}), ErrNotSubmitting)
}

func TestState_Cooldown(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s := NewState(time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Begin())
	require.NoError(t, s.Complete("sig", ""))

	now = now.Add(20 * time.Second)
	err := s.Begin()
	assert.ErrorIs(t, err, ErrCooldownActive)
	assert.ErrorContains(t, err, "40s")

	now = now.Add(40 * time.Second)
	assert.NoError(t, s.Begin())
}

func TestState_FailedDoesNotStartCooldown(t *testing.T) {
	s := NewState(time.Hour)

	require.NoError(t, s.Begin())
	require.NoError(t, s.Fail(model.ErrorResponse{Error: "x"}))
	assert.NoError(t, s.Begin())
}

func TestState_Reset(t *testing.T) {
	s := NewState(0)
	s.SetAddress("addr")
	s.SetAmount("2")
	require.NoError(t, s.Begin())
	require.NoError(t, s.Complete("sig", ""))

	require.NoError(t, s.Reset())
	assert.Equal(t, model.FormState{Status: model.FormStatusIdle}, s.Snapshot())
}
