package sensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-sen0177/protocol"
)

// mockBus is a BlockReader handing out the same block on every call.
type mockBus struct {
	block []byte
	err   error
	calls int
}

func (b *mockBus) ReadBlock(p []byte) error {
	b.calls++
	if b.err != nil {
		return b.err
	}
	copy(p, b.block)
	return nil
}

// mockAddrBus records the address used for each transfer.
type mockAddrBus struct {
	block []byte
	addrs []uint16
}

func (b *mockAddrBus) ReadBlockFromAddr(addr uint16, p []byte) error {
	b.addrs = append(b.addrs, addr)
	copy(p, b.block)
	return nil
}

func TestI2CRead(t *testing.T) {
	bus := &mockBus{block: validFrame(25, 50, 100)}
	dev := NewI2C(bus)

	reading, err := dev.Read()

	require.NoError(t, err)
	assert.Equal(t, uint16(25), reading.PM1)
	assert.Equal(t, uint16(50), reading.PM2_5)
	assert.Equal(t, uint16(100), reading.PM10)
	assert.Equal(t, 1, bus.calls)
}

func TestI2CReadBadMagicNoRetry(t *testing.T) {
	// A misaligned block transport stays misaligned: the error is
	// reported after a single transfer, never retried.
	block := validFrame(1, 2, 3)
	block[0], block[1] = 0xAA, 0xBB
	bus := &mockBus{block: block}
	dev := NewI2C(bus)

	_, err := dev.Read()

	var badMagic *protocol.BadMagicError
	require.ErrorAs(t, err, &badMagic)
	assert.Equal(t, [2]byte{0xAA, 0xBB}, badMagic.Got)
	assert.Equal(t, 1, bus.calls, "bad magic on a block transport must not retry")
}

func TestI2CReadChecksumMismatch(t *testing.T) {
	block := validFrame(1, 2, 3)
	block[8] ^= 0x10
	bus := &mockBus{block: block}
	dev := NewI2C(bus)

	_, err := dev.Read()

	var mismatch *protocol.ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, protocol.IsTransient(err))
}

func TestI2CReadTransportError(t *testing.T) {
	cause := errors.New("bus fault")
	bus := &mockBus{err: cause}
	dev := NewI2C(bus)

	_, err := dev.Read()

	var transport *protocol.TransportError
	require.ErrorAs(t, err, &transport)
	assert.ErrorIs(t, err, cause)
}

func TestI2CAddrBinding(t *testing.T) {
	bus := &mockAddrBus{block: validFrame(7, 8, 9)}
	dev := NewI2CAddr(bus, 0x12)

	reading, err := dev.Read()

	require.NoError(t, err)
	assert.Equal(t, uint16(8), reading.PM2_5)
	assert.Equal(t, []uint16{0x12}, bus.addrs)
}

func TestNewI2CNilBus(t *testing.T) {
	assert.Panics(t, func() {
		NewI2C(nil)
	})
	assert.Panics(t, func() {
		NewI2CAddr(nil, 0x12)
	})
}
