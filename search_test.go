package lms7002m

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// With a constant RSSI model the search can never distinguish one
// candidate from another, so every comparison in binarySearch resolves
// the same way it does on a flat signal: the final tie-break always
// favors the right (greater) candidate. This gives an exact, provable
// expectation independent of the range searched.
func TestBinarySearchConstantRSSIConvergesToMax(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := int16(rapid.IntRange(-63, 50).Draw(rt, "lo"))
		hi := lo + int16(rapid.IntRange(0, 13).Draw(rt, "span"))
		constant := uint32(rapid.IntRange(0, 0x3FFFF).Draw(rt, "constant"))

		dev := newFakeDevice()
		dev.rssi = func(map[uint16]uint16) uint32 { return constant }
		c := New(dev)

		p := &SearchParam{Field: dcoffiRFE, Min: lo, Max: hi, rxDC: true}
		require.NoError(rt, c.binarySearch(p))
		assert.Equal(rt, hi, p.Result)

		got, err := c.readField(dcoffiRFE)
		require.NoError(rt, err)
		assert.Equal(rt, encodeDCOffset(hi), got)
	})
}

// Regardless of the RSSI model, binarySearch must never report a result
// outside the caller-supplied domain: left and right only ever move
// toward each other.
func TestBinarySearchStaysWithinDomain(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := int16(rapid.IntRange(-63, 50).Draw(rt, "lo"))
		hi := lo + int16(rapid.IntRange(0, 13).Draw(rt, "span"))

		dev := newFakeDevice()
		n := 0
		dev.rssi = func(map[uint16]uint16) uint32 {
			n++
			// an arbitrary, non-monotonic sequence - the bound
			// invariant must hold even against adversarial noise.
			return uint32((n * 2654435761) % 0x3FFFF)
		}
		c := New(dev)

		p := &SearchParam{Field: dcoffiRFE, Min: lo, Max: hi, rxDC: true}
		require.NoError(rt, c.binarySearch(p))
		assert.GreaterOrEqual(rt, p.Result, lo)
		assert.LessOrEqual(rt, p.Result, hi)
	})
}

// Hand-traced fixed case: a clean, noiseless V-shaped cost minimized at
// raw value 1 within [-4,4] converges exactly to the minimum.
func TestBinarySearchConvergesOnCleanVShape(t *testing.T) {
	const target = 1

	dev := newFakeDevice()
	dev.rssi = func(regs map[uint16]uint16) uint32 {
		raw := int16(int8(regs[dccorriTXTSP.Address] >> 8))
		d := raw - target
		if d < 0 {
			d = -d
		}
		return uint32(d) * 10
	}
	c := New(dev)

	p := &SearchParam{Field: dccorriTXTSP, Min: -4, Max: 4}
	require.NoError(t, c.binarySearch(p))
	assert.EqualValues(t, target, p.Result)
}

func TestDCOffsetEncodeDecodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := int16(rapid.IntRange(-63, 63).Draw(rt, "v"))
		assert.Equal(rt, v, decodeDCOffset(encodeDCOffset(v)))
	})
}

func TestEncodeDCOffsetSignBit(t *testing.T) {
	assert.EqualValues(t, 5, encodeDCOffset(5))
	assert.EqualValues(t, 0x45, encodeDCOffset(-5))
	assert.EqualValues(t, 0, encodeDCOffset(0))
}
