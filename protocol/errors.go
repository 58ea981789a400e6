package protocol

import (
	"errors"
	"fmt"
)

// BadMagicError indicates that the magic marker could not be found at
// the start of a frame.
//
// On a serial stream this means synchronization was exhausted without
// locating the marker; on a block transport it means the block did not
// start with the marker. Either way it usually signals an incorrect
// baud rate or a noisy connection to the device.
type BadMagicError struct {
	// Got holds the two bytes found where the marker was expected.
	// Zero when a stream scan never produced a candidate frame.
	Got [2]byte
}

func (e *BadMagicError) Error() string {
	if e.Got == [2]byte{} {
		return "unable to find magic bytes at start of payload"
	}
	return fmt.Sprintf("unable to find magic bytes at start of payload: got 0x%02X 0x%02X, expected 0x%02X 0x%02X",
		e.Got[0], e.Got[1], MagicByte0, MagicByte1)
}

// ChecksumMismatchError indicates that a frame was aligned but its
// checksum trailer did not match the frame contents. The frame was
// corrupted in transit; retrying the read will usually clear up the
// problem.
type ChecksumMismatchError struct {
	// Expected is the checksum carried in the frame trailer
	Expected uint16

	// Actual is the checksum computed over the frame contents
	Actual uint16
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("data read was corrupt: checksum mismatch: frame has 0x%04X, computed 0x%04X",
		e.Expected, e.Actual)
}

// TransportError indicates that the underlying transport failed. The
// cause is carried opaquely and never interpreted; it may be fatal
// (unplugged device) or not, only the caller can tell.
type TransportError struct {
	// Op is the operation that failed, e.g. "sync" or "read frame"
	Op string

	// Cause is the error reported by the transport
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("read error: %s: %v", e.Op, e.Cause)
}

// Unwrap returns the transport's original error so callers can match
// it with errors.Is and errors.As.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// IsTransient returns true if the error is worth retrying with another
// read call: bad magic and checksum failures are transient line
// conditions, while transport errors are not.
func IsTransient(err error) bool {
	var badMagic *BadMagicError
	var checksum *ChecksumMismatchError
	return errors.As(err, &badMagic) || errors.As(err, &checksum)
}
