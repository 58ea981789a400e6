package sensor

import (
	"io"

	"github.com/moffa90/go-sen0177/protocol"
)

// Serial reads a particulate matter sensor attached to a serial UART.
//
// The sensor streams frames continuously with no delimiter beneath the
// application layer, so every Read first synchronizes to the frame
// start marker before decoding. See the package documentation for the
// synchronization policy and the required port configuration.
type Serial struct {
	port   io.ByteReader
	config Config
}

// NewSerial creates a sensor reading from the given serial port.
// The port must deliver one blocking byte per ReadByte call; the
// caller is responsible for opening and configuring it (9600 8N1,
// non-zero read timeout).
//
// Example:
//
//	port := openMySerialPort()
//	dev := sensor.NewSerial(port,
//	    sensor.WithLogger(myLogger),
//	)
func NewSerial(port io.ByteReader, opts ...Option) *Serial {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Serial{
		port:   port,
		config: cfg,
	}
}

// Read blocks until one full frame has been received and decoded.
//
// Read never retries a failed frame: on a transient error (bad magic,
// checksum mismatch) the caller should simply call Read again, which
// usually succeeds. Transport failures abort immediately and are
// returned wrapped in a protocol.TransportError.
func (s *Serial) Read() (protocol.Reading, error) {
	var frame [protocol.FrameSize]byte

	if err := s.synchronize(&frame); err != nil {
		return protocol.Reading{}, err
	}

	// Magic bytes are already in place; fill in the rest of the frame.
	for i := 2; i < protocol.FrameSize; i++ {
		b, err := s.readByte("read frame")
		if err != nil {
			return protocol.Reading{}, err
		}
		frame[i] = b
	}

	return protocol.DecodeFrame(frame)
}

// synchronize advances the stream until both magic marker bytes have
// been consumed, then writes them into the first two slots of frame.
//
// Each attempt scans at most protocol.SyncWindow bytes for the first
// marker byte and then tests the byte after it. A mismatched second
// byte is discarded, not reconsidered as a candidate first byte; the
// scan restarts fresh on the next attempt.
func (s *Serial) synchronize(frame *[protocol.FrameSize]byte) error {
	for attempt := 1; attempt <= s.config.SyncAttempts; attempt++ {
		found, err := s.findByte(protocol.MagicByte0, protocol.SyncWindow)
		if err != nil {
			return err
		}
		if !found {
			// No marker byte within four frame lengths: the line is
			// not producing frames at all, more scanning won't align.
			break
		}

		b, err := s.readByte("sync")
		if err != nil {
			return err
		}
		if b == protocol.MagicByte1 {
			if attempt > 1 {
				s.logDebug("frame start found after resync", "attempt", attempt)
			}
			frame[0] = protocol.MagicByte0
			frame[1] = protocol.MagicByte1
			return nil
		}
	}

	return &protocol.BadMagicError{}
}

// findByte consumes stream bytes until want is read or the window is
// exhausted. Returns whether want was found.
func (s *Serial) findByte(want byte, window int) (bool, error) {
	for i := 0; i < window; i++ {
		b, err := s.readByte("sync")
		if err != nil {
			return false, err
		}
		if b == want {
			return true, nil
		}
	}
	return false, nil
}

// readByte reads a single byte, wrapping any transport failure.
func (s *Serial) readByte(op string) (byte, error) {
	b, err := s.port.ReadByte()
	if err != nil {
		return 0, &protocol.TransportError{Op: op, Cause: err}
	}
	return b, nil
}

// logDebug logs a debug message if a logger is configured.
func (s *Serial) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}
