package protocol

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBadMagicError(t *testing.T) {
	err := &BadMagicError{}
	if !strings.Contains(err.Error(), "magic bytes") {
		t.Errorf("error message should mention magic bytes, got: %s", err.Error())
	}

	err = &BadMagicError{Got: [2]byte{0xAA, 0xBB}}
	msg := err.Error()
	if !strings.Contains(msg, "0xAA") || !strings.Contains(msg, "0xBB") {
		t.Errorf("error message should contain the offending bytes, got: %s", msg)
	}
}

func TestChecksumMismatchError(t *testing.T) {
	err := &ChecksumMismatchError{Expected: 0x013E, Actual: 0x0142}

	msg := err.Error()
	if !strings.Contains(msg, "0x013E") {
		t.Errorf("error message should contain the frame checksum, got: %s", msg)
	}
	if !strings.Contains(msg, "0x0142") {
		t.Errorf("error message should contain the computed checksum, got: %s", msg)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("device unplugged")
	err := &TransportError{Op: "sync", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
	if !strings.Contains(err.Error(), "sync") {
		t.Errorf("error message should contain the operation, got: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "device unplugged") {
		t.Errorf("error message should contain the cause, got: %s", err.Error())
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "bad magic is transient",
			err:      &BadMagicError{},
			expected: true,
		},
		{
			name:     "checksum mismatch is transient",
			err:      &ChecksumMismatchError{Expected: 1, Actual: 2},
			expected: true,
		},
		{
			name:     "transport error is not transient",
			err:      &TransportError{Op: "read block", Cause: errors.New("bus fault")},
			expected: false,
		},
		{
			name:     "wrapped bad magic is transient",
			err:      fmt.Errorf("read failed: %w", &BadMagicError{}),
			expected: true,
		},
		{
			name:     "unrelated error is not transient",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "nil is not transient",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.expected {
				t.Errorf("IsTransient() = %v, want %v", got, tt.expected)
			}
		})
	}
}
