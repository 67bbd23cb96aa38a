// file: internals/features/exams/attendance/service/rules.go
package service

import (
	"errors"
	"strings"

	model "examtrack_backend/internals/features/exams/attendance/model"
)

var (
	ErrManualNeedsNote     = errors.New("manual method requires an override reason note")
	ErrBiometricNeedsMatch = errors.New("biometric method requires fingerprint_matched=true")
	ErrUnknownMethod       = errors.New("method must be biometric or manual")
)

// ValidateMethodRules enforces the method/provenance pairing:
// manual needs a non-empty note, biometric needs a positive match.
func ValidateMethodRules(method model.AttendanceMethod, fingerprintMatched *bool, note *string) error {
	switch method {
	case model.MethodManual:
		if note == nil || strings.TrimSpace(*note) == "" {
			return ErrManualNeedsNote
		}
	case model.MethodBiometric:
		if fingerprintMatched == nil || !*fingerprintMatched {
			return ErrBiometricNeedsMatch
		}
	default:
		return ErrUnknownMethod
	}
	return nil
}
