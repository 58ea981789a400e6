package protocol

// CalculateChecksum computes the additive 16-bit checksum over data.
// The sum wraps on overflow (mod 65536), matching what the sensor
// firmware computes over bytes 0-29 of each frame.
//
// This is a plain byte sum, not a CRC. The hardware protocol defines
// it this way and it must be preserved bit-for-bit for compatibility.
func CalculateChecksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}
