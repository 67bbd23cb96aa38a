// file: internals/features/exams/attendance/service/matcher.go
package service

import (
	"context"
	"strings"
)

// FingerprintMatcher is the pluggable biometric capability. The engine asks
// it for a verdict when the client did not submit one itself.
type FingerprintMatcher interface {
	Verify(ctx context.Context, student StudentRef) (matched bool, err error)
}

// StudentRef is what a scanner needs to run a match.
type StudentRef struct {
	StudentNumber string
	FingerprintID string
}

// DeviceMatcher is the hardware-backed variant: it trusts the enrolled
// template on the reader identified by fingerprint_id.
type DeviceMatcher struct{}

func (DeviceMatcher) Verify(ctx context.Context, student StudentRef) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}
	// No enrolled template means the reader can never match.
	return strings.TrimSpace(student.FingerprintID) != "", nil
}

// ManualEntryMatcher is the fallback when no scanner is present: it never
// matches, which forces the manual-override path with its reason note.
type ManualEntryMatcher struct{}

func (ManualEntryMatcher) Verify(ctx context.Context, student StudentRef) (bool, error) {
	return false, nil
}
