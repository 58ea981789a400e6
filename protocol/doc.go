// Package protocol implements the Plantower-family particulate matter
// sensor wire protocol (PMS5003/PMS7003/SEN0177 and compatible devices).
//
// This package provides the frame-level logic only: checksum validation
// and measurement field extraction. It performs no I/O; transport
// handling lives in the sensor package.
//
// # Frame Format
//
// The sensor emits fixed 32-byte frames. All multi-byte fields are
// big-endian unsigned 16-bit values:
//
//	Offset  Field
//	0-1     Magic marker (0x42, 0x4D)
//	2-3     Frame length (wire format only, not surfaced)
//	4-5     PM1.0 concentration, standard (µg/m³)
//	6-7     PM2.5 concentration, standard (µg/m³)
//	8-9     PM10 concentration, standard (µg/m³)
//	10-11   PM1.0 concentration, environmental (µg/m³)
//	12-13   PM2.5 concentration, environmental (µg/m³)
//	14-15   PM10 concentration, environmental (µg/m³)
//	16-17   Particle count > 0.3µm
//	18-19   Particle count > 0.5µm
//	20-21   Particle count > 1µm
//	22-23   Particle count > 2.5µm
//	24-25   Particle count > 5µm
//	26-27   Particle count > 10µm
//	28-29   Reserved
//	30-31   Checksum (sum of bytes 0-29, mod 65536)
//
// # Decoding
//
// Use DecodeFrame to validate and extract a frame:
//
//	reading, err := protocol.DecodeFrame(frame)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("PM2.5: %dµg/m³\n", reading.PM2_5)
//
// DecodeFrame is a pure function of its input: it performs no I/O and
// always returns either a Reading or one of the typed errors below.
//
// # Error Handling
//
// Failures are reported through a closed set of error types:
//   - BadMagicError: the buffer does not start with the magic marker
//   - ChecksumMismatchError: the frame checksum does not match
//   - TransportError: the underlying transport failed (sensor package)
//
// BadMagicError and ChecksumMismatchError are transient; retrying the
// read usually clears them. Use IsTransient to classify an error.
//
// # Checksum
//
// The checksum is a simple additive 16-bit sum, not a CRC. This is
// what the hardware implements and it is preserved bit-for-bit for
// compatibility; it is not robust against burst errors.
package protocol
