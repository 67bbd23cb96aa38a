package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationAllowed(t *testing.T) {
	tests := []struct {
		name        string
		isAdmin     bool
		assignments int64
		readOnly    bool
		want        bool
	}{
		{"assigned invigilator records", false, 1, false, true},
		{"assigned invigilator reads", false, 1, true, true},
		{"unassigned invigilator cannot record", false, 0, false, false},
		{"unassigned invigilator cannot read", false, 0, true, false},
		{"unassigned admin cannot record", true, 0, false, false},
		{"unassigned admin may audit", true, 0, true, true},
		{"assigned admin records", true, 1, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StationAllowed(tt.isAdmin, tt.assignments, tt.readOnly))
		})
	}
}
