// Package sensor provides high-level read access to Plantower-family
// particulate matter sensors (PMS5003/PMS7003/SEN0177 and compatible
// devices) over serial UART or I2C.
//
// # Overview
//
// The package binds the frame decoding core in the protocol package to
// one of two transport shapes:
//   - Serial: an unframed byte stream. Each read synchronizes to the
//     frame start marker before decoding (see Synchronization below).
//   - I2C: a block transport that delivers whole 32-byte frames. Each
//     read fetches one block and decodes it directly.
//
// Both sensor types expose the same blocking read contract:
//
//	Read() (protocol.Reading, error)
//
// # Basic Usage
//
//	// User provides the transport (io.ByteReader for serial)
//	port := openMySerialPort()
//
//	dev := sensor.NewSerial(port)
//	reading, err := dev.Read()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("PM2.5: %dµg/m³\n", reading.PM2_5)
//
// # Synchronization
//
// Serial transports carry no frame delimiter beneath the application
// layer, so a read may start mid-frame after a partial frame, a
// dropped byte, or a wrong baud rate. NewSerial sensors self-heal by
// scanning for the two-byte magic marker: up to 10 scan attempts per
// read, each consuming at most 128 bytes looking for the marker.
// A permanently desynchronized link therefore fails with a
// BadMagicError after a bounded number of reads instead of hanging.
//
// I2C transports determine frame boundaries themselves, so a block
// whose first two bytes are not the marker fails immediately without
// retrying: the next block read would return the same misaligned data.
//
// # Error Handling
//
// Read returns one of three error shapes from the protocol package:
//   - protocol.BadMagicError: could not align to a frame start
//   - protocol.ChecksumMismatchError: frame corrupted in transit
//   - protocol.TransportError: the underlying transport failed
//
// The package never retries across Read calls. BadMagicError and
// ChecksumMismatchError are transient; calling Read again usually
// succeeds. Use protocol.IsTransient to classify.
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	dev := sensor.NewSerial(port,
//	    sensor.WithLogger(myLogger),
//	    sensor.WithSyncAttempts(20),
//	)
//
// # Concurrency
//
// Reads are synchronous and single-threaded. Each Read owns its
// working buffer for the duration of the call; nothing is shared
// between calls. If multiple goroutines need one physical transport,
// serializing access is the caller's responsibility.
//
// # Hardware Independence
//
// This package does NOT implement hardware communication. Serial
// sensors consume any io.ByteReader; I2C sensors consume a BlockReader.
// This lets the library work with any driver (go.bug.st/serial,
// periph.io, tinygo machine, or mocks for testing) and keeps transport
// configuration out of scope. A serial port must be configured by the
// caller as 9600 baud, 8 data bits, no parity, one stop bit, no flow
// control, with a non-zero read timeout (1500ms works well).
package sensor
