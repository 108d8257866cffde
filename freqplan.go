package lms7002m

import "math"

// Fixed constants of the calibration frequency plan.
const (
	sxOffsetHz = 1e6
	offsetNCO  = 0.1e6
	bwDivider  = 5
)

// setupCGEN chooses the CGEN multiplier from the chip's current CGEN
// frequency, clamps it into the supported range, retunes CGEN, and
// derives the Rx GFIR3 decimation factor from the resulting multiplier.
func (c *Calibrator) setupCGEN() (Status, error) {
	cur, err := c.dev.FrequencyCGEN()
	if err != nil {
		return 0, err
	}

	m := uint8(cur/46.08e6 + 0.5)
	if m < 2 {
		m = 2
	}
	if m > 9 && m < 12 {
		m = 12
	}
	if m > 13 {
		m = 13
	}

	status, err := c.dev.SetFrequencyCGEN(46.08e6 * float64(m))
	if err != nil {
		return 0, err
	}
	if status != StatusOK {
		return status, nil
	}

	n := uint32(4) * uint32(m)
	enADCClkH, err := c.readField(enADCCLKHClkgn)
	if err != nil {
		return 0, err
	}
	if enADCClkH == 1 {
		shift, err := c.readField(clkhOvClklCgen)
		if err != nil {
			return 0, err
		}
		n /= 1 << shift
	}
	k := uint16(math.Log2(float64(n)))
	encoded := uint16(1)<<k - 1
	if err := c.modifyField(gfir3NRXTSP, encoded); err != nil {
		return 0, err
	}
	return StatusOK, nil
}
