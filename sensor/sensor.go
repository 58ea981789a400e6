package sensor

import "github.com/moffa90/go-sen0177/protocol"

// AirQualitySensor is the transport-agnostic read contract shared by
// all sensor bindings.
type AirQualitySensor interface {
	// Read blocks until a full frame is available and returns the
	// decoded measurement, or fails with one of the protocol error
	// types once a bounded failure is determined.
	Read() (protocol.Reading, error)
}

// BlockReader is the capability contract for block transports: one
// call delivers one full frame-sized buffer. The transport determines
// frame boundaries itself.
type BlockReader interface {
	// ReadBlock fills p with exactly len(p) bytes in a single
	// blocking transfer.
	ReadBlock(p []byte) error
}

// AddressableBlockReader is a BlockReader over a shared bus where the
// target device is selected per call by its bus address.
type AddressableBlockReader interface {
	// ReadBlockFromAddr fills p with exactly len(p) bytes read from
	// the device at addr in a single blocking transfer.
	ReadBlockFromAddr(addr uint16, p []byte) error
}
