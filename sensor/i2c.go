package sensor

import "github.com/moffa90/go-sen0177/protocol"

// I2C reads a particulate matter sensor attached to an I2C bus.
//
// The bus delivers one full 32-byte frame per transfer, so no stream
// synchronization is performed: a block that does not start with the
// magic marker fails immediately with a protocol.BadMagicError.
// Retrying would not help, a misaligned block transport returns the
// same misaligned data on the next read; the error is reported to the
// caller instead.
type I2C struct {
	bus    BlockReader
	config Config
}

// NewI2C creates a sensor reading whole frames from the given block
// transport. Use NewI2CAddr when the device sits on a shared bus
// selected by address.
func NewI2C(bus BlockReader, opts ...Option) *I2C {
	if bus == nil {
		panic("bus cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &I2C{
		bus:    bus,
		config: cfg,
	}
}

// NewI2CAddr creates a sensor bound to the device at addr on a shared
// addressable bus.
//
// Example:
//
//	dev := sensor.NewI2CAddr(bus, 0x12)
func NewI2CAddr(bus AddressableBlockReader, addr uint16, opts ...Option) *I2C {
	if bus == nil {
		panic("bus cannot be nil")
	}
	return NewI2C(&boundAddr{bus: bus, addr: addr}, opts...)
}

// boundAddr fixes the device address of an addressable bus, turning it
// into a plain BlockReader.
type boundAddr struct {
	bus  AddressableBlockReader
	addr uint16
}

func (b *boundAddr) ReadBlock(p []byte) error {
	return b.bus.ReadBlockFromAddr(b.addr, p)
}

// Read fetches and decodes one frame from the bus.
//
// Read blocks for the duration of a single block transfer. Transient
// errors (bad magic, checksum mismatch) are reported to the caller,
// who may call Read again for the next frame.
func (i *I2C) Read() (protocol.Reading, error) {
	var frame [protocol.FrameSize]byte

	if err := i.bus.ReadBlock(frame[:]); err != nil {
		return protocol.Reading{}, &protocol.TransportError{Op: "read block", Cause: err}
	}

	return protocol.DecodeFrame(frame)
}
