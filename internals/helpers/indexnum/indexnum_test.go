package indexnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuffix(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "slash format", in: "CS/22/001", want: 1},
		{name: "no leading zeros", in: "EE/21/150", want: 150},
		{name: "plain digits", in: "150", want: 150},
		{name: "whitespace trimmed", in: "  CS/22/042 ", want: 42},
		{name: "dash format", in: "BSC-ME-2077", want: 2077},
		{name: "empty", in: "", wantErr: true},
		{name: "no digits", in: "CS/ABC/", wantErr: true},
		{name: "digits not trailing", in: "22CS", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSuffix(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInRange(t *testing.T) {
	ok, err := InRange("CS/22/150", 100, 199)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = InRange("CS/22/250", 100, 199)
	require.NoError(t, err)
	assert.False(t, ok)

	// boundaries are inclusive
	ok, err = InRange("CS/22/100", 100, 199)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = InRange("CS/22/199", 100, 199)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = InRange("nodigits", 100, 199)
	assert.Error(t, err)
}
