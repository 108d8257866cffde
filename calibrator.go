package lms7002m

import (
	"io"
	"log"
)

// Calibrator owns transient access to a Device for the duration of a
// single CalibrateTx/CalibrateRx call. It holds no state across calls
// beyond the user-supplied bandwidth. On exit it restores only the
// channel selector register; every other register keeps the value the
// calibration left in it.
type Calibrator struct {
	dev         Device
	bandwidthRF float64
	log         *log.Logger
}

// New returns a Calibrator over dev with a discarding logger, in the
// teacher's New/setup constructor split.
func New(dev Device) *Calibrator {
	c := new(dev)
	c.log = log.New(io.Discard, "", 0)
	return c
}

// NewWithLog returns a Calibrator that logs phase transitions to the
// given logger, useful for diagnosing a calibration run interactively.
func NewWithLog(dev Device, logger *log.Logger) *Calibrator {
	c := new(dev)
	c.log = logger
	return c
}

func new(dev Device) *Calibrator {
	return &Calibrator{
		dev:         dev,
		bandwidthRF: 5e6, // matches the reference's default calibration bandwidth
	}
}

// SetBandwidthRF sets the calibration bandwidth in Hz, shared state
// consulted by both CalibrateTx and CalibrateRx.
func (c *Calibrator) SetBandwidthRF(hz float64) {
	c.bandwidthRF = hz
}
