package dbtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, v.Minutes())

	v, err = Parse("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, v.Minutes())

	_, err = Parse("9 o'clock")
	assert.Error(t, err)
}

func TestBefore(t *testing.T) {
	a, err := Parse("09:00")
	require.NoError(t, err)
	b, err := Parse("12:00")
	require.NoError(t, err)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestValue(t *testing.T) {
	v, err := Parse("08:05")
	require.NoError(t, err)

	out, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:05:00", out)
}

func TestScanString(t *testing.T) {
	var v Tod
	require.NoError(t, v.Scan("14:15:00"))
	assert.Equal(t, 14*60+15, v.Minutes())
}
