package lms7002m

import (
	"math"
	"time"
)

// maxRSSI is the full-scale 18-bit RSSI reading (0 dBFS).
const maxRSSI = 0x15FF4

// rssiSettleDelay is the stabilization wait observed before every
// capture pulse.
const rssiSettleDelay = 10 * time.Millisecond

// getRSSI arms a capture pulse and assembles the resulting 18-bit
// magnitude from the two result registers. Lower is better: this is
// the signal every search and saturation routine minimizes.
func (c *Calibrator) getRSSI() (uint32, error) {
	time.Sleep(rssiSettleDelay)
	if err := c.flipRisingEdge(capture); err != nil {
		return 0, err
	}
	hi, err := c.readReg(0x040F)
	if err != nil {
		return 0, err
	}
	lo, err := c.readReg(0x040E)
	if err != nil {
		return 0, err
	}
	return (uint32(hi) << 2) | uint32(lo&0x3), nil
}

// RSSIToDBFS converts a raw RSSI magnitude to an approximate dBFS
// value, with the explicit 0->1 guard the reference applies before
// taking the log.
func RSSIToDBFS(rssi uint32) float64 {
	if rssi == 0 {
		rssi = 1
	}
	return 20 * math.Log10(float64(rssi)/float64(maxRSSI))
}
