package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceMatcher(t *testing.T) {
	m := DeviceMatcher{}
	ctx := context.Background()

	ok, err := m.Verify(ctx, StudentRef{StudentNumber: "20220001", FingerprintID: "fp-01"})
	require.NoError(t, err)
	assert.True(t, ok)

	// no enrolled template, no match
	ok, err = m.Verify(ctx, StudentRef{StudentNumber: "20220002"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeviceMatcherCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DeviceMatcher{}.Verify(ctx, StudentRef{FingerprintID: "fp-01"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManualEntryMatcher(t *testing.T) {
	ok, err := ManualEntryMatcher{}.Verify(context.Background(), StudentRef{FingerprintID: "fp-01"})
	require.NoError(t, err)
	assert.False(t, ok)
}
