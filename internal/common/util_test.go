package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_MatchWhenWrapped(t *testing.T) {
	for _, target := range []error{ErrorNotFound, ErrorInternal, ErrorUnauthorized, ErrorConflict, ErrorValidation, ErrInvalidToken, ErrTokenExpired} {
		wrapped := fmt.Errorf("layer: %w", target)
		if !errors.Is(wrapped, target) {
			t.Fatalf("errors.Is failed for %v", target)
		}
	}
}
