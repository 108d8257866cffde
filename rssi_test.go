package lms7002m

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getRSSI must assemble the full 18-bit magnitude, not truncate it to
// the width of either half register.
func TestGetRSSIAssemblesFullWidth(t *testing.T) {
	dev := newFakeDevice()
	dev.regs[0x040F] = 0xFFFF
	dev.regs[0x040E] = 0x3
	c := New(dev)

	got, err := c.getRSSI()
	require.NoError(t, err)
	assert.EqualValues(t, 0x3FFFF, got)
	assert.Greater(t, got, uint32(0xFFFF), "18-bit RSSI must not fit in 16 bits")
}

func TestRSSIToDBFSZeroGuard(t *testing.T) {
	assert.Equal(t, RSSIToDBFS(0), RSSIToDBFS(1))
}

func TestRSSIToDBFSFullScaleIsZero(t *testing.T) {
	assert.InDelta(t, 0, RSSIToDBFS(maxRSSI), 1e-9)
}

func TestRSSIToDBFSMonotonic(t *testing.T) {
	assert.Less(t, RSSIToDBFS(100), RSSIToDBFS(1000))
	assert.Less(t, RSSIToDBFS(1000), RSSIToDBFS(10000))
}
