package protocol

import "encoding/binary"

// DecodeFrame validates a 32-byte frame and extracts its measurement
// fields.
//
// The frame must start with the magic marker and carry a valid
// checksum trailer: the big-endian 16-bit value at bytes 30-31 must
// equal the sum of bytes 0-29 (mod 65536). A frame that fails either
// check is discarded whole; no fields are extracted from it.
//
// DecodeFrame performs no I/O and is deterministic: decoding the same
// frame twice yields identical Readings. It fails only with
// BadMagicError or ChecksumMismatchError.
func DecodeFrame(frame [FrameSize]byte) (Reading, error) {
	if frame[0] != MagicByte0 || frame[1] != MagicByte1 {
		return Reading{}, &BadMagicError{Got: [2]byte{frame[0], frame[1]}}
	}

	expected := binary.BigEndian.Uint16(frame[ChecksumOffset:])
	actual := CalculateChecksum(frame[:ChecksumOffset])
	if expected != actual {
		return Reading{}, &ChecksumMismatchError{Expected: expected, Actual: actual}
	}

	field := func(offset int) uint16 {
		return binary.BigEndian.Uint16(frame[offset : offset+2])
	}

	return Reading{
		PM1:          field(offsetPM1),
		PM2_5:        field(offsetPM2_5),
		PM10:         field(offsetPM10),
		EnvPM1:       field(offsetEnvPM1),
		EnvPM2_5:     field(offsetEnvPM2_5),
		EnvPM10:      field(offsetEnvPM10),
		Particles0_3: field(offsetParticles0_3),
		Particles0_5: field(offsetParticles0_5),
		Particles1:   field(offsetParticles1),
		Particles2_5: field(offsetParticles2_5),
		Particles5:   field(offsetParticles5),
		Particles10:  field(offsetParticles10),
	}, nil
}
