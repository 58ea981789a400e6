package protocol

// Frame structure constants per the Plantower wire protocol.
const (
	// MagicByte0 is the first byte of the frame start marker (0x42, 'B')
	MagicByte0 = 0x42

	// MagicByte1 is the second byte of the frame start marker (0x4D, 'M')
	MagicByte1 = 0x4D

	// FrameSize is the fixed frame size in bytes:
	// MAGIC(2) + LEN(2) + DATA(26) + CHECKSUM(2)
	FrameSize = 32

	// ChecksumOffset is the byte offset of the big-endian 16-bit
	// checksum trailer. The checksum covers bytes 0 through
	// ChecksumOffset-1 inclusive.
	ChecksumOffset = 30
)

// Measurement field offsets within a frame. Each field is a big-endian
// unsigned 16-bit value.
const (
	offsetPM1          = 4
	offsetPM2_5        = 6
	offsetPM10         = 8
	offsetEnvPM1       = 10
	offsetEnvPM2_5     = 12
	offsetEnvPM10      = 14
	offsetParticles0_3 = 16
	offsetParticles0_5 = 18
	offsetParticles1   = 20
	offsetParticles2_5 = 22
	offsetParticles5   = 24
	offsetParticles10  = 26
)

// Stream synchronization bounds. Serial transports deliver an unframed
// byte stream, so the reader scans for the magic marker before each
// frame. Block transports (I2C) deliver whole frames and never scan.
const (
	// DefaultSyncAttempts is the number of times one read will restart
	// the magic marker scan before giving up with BadMagicError.
	DefaultSyncAttempts = 10

	// SyncWindow is the maximum number of bytes consumed by a single
	// scan for the first magic byte (four frame lengths).
	SyncWindow = FrameSize * 4
)
