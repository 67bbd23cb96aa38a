package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "examtrack_backend/internals/features/exams/attendance/model"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestValidateMethodRules(t *testing.T) {
	tests := []struct {
		name    string
		method  model.AttendanceMethod
		matched *bool
		note    *string
		wantErr error
	}{
		{"biometric matched ok", model.MethodBiometric, boolPtr(true), nil, nil},
		{"biometric unmatched rejected", model.MethodBiometric, boolPtr(false), nil, ErrBiometricNeedsMatch},
		{"biometric missing verdict rejected", model.MethodBiometric, nil, nil, ErrBiometricNeedsMatch},
		{"manual with note ok", model.MethodManual, nil, strPtr("scanner issue"), nil},
		{"manual without note rejected", model.MethodManual, nil, nil, ErrManualNeedsNote},
		{"manual blank note rejected", model.MethodManual, nil, strPtr("   "), ErrManualNeedsNote},
		{"unknown method rejected", model.AttendanceMethod("rfid"), nil, nil, ErrUnknownMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMethodRules(tt.method, tt.matched, tt.note)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
