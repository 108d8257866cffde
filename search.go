package lms7002m

// SearchParam is the ephemeral record driving one binary_search call.
type SearchParam struct {
	Field  Field
	Min    int16
	Max    int16
	Result int16

	// rxDC selects sign-magnitude encoding (bit 6 is the sign) instead
	// of plain two's complement. Modeled as a per-call attribute rather
	// than the reference's module-wide convert_to_rx_dc flag, per the
	// rewrite note in the Design Notes section.
	rxDC bool
}

// encodeDCOffset converts a signed offset in [-63,63] into the chip's
// sign-magnitude representation for the Rx DC-offset register.
func encodeDCOffset(v int16) uint16 {
	if v >= 0 {
		return uint16(v)
	}
	return uint16(-v) | 0x40
}

// decodeDCOffset is the inverse of encodeDCOffset.
func decodeDCOffset(v uint16) int16 {
	mag := int16(v & 0x3F)
	if v&0x40 != 0 {
		return -mag
	}
	return mag
}

// encode applies sign-magnitude encoding when the search targets the
// Rx DC-offset register, otherwise passes the value through as plain
// two's complement (the field write truncates to its own width).
func (p *SearchParam) encode(v int16) uint16 {
	if p.rxDC {
		return encodeDCOffset(v)
	}
	return uint16(v)
}

// binarySearch locates the integer in [p.Min, p.Max] that minimizes
// getRSSI() after writing it to p.Field, leaves it written, and
// records it in p.Result. The RSSI curve is assumed roughly V-shaped
// with one minimum in range, but noisy near the minimum — the
// algorithm samples both an old and a new endpoint each iteration and
// always shrinks toward the better-measured side.
func (c *Calibrator) binarySearch(p *SearchParam) error {
	regValue, err := c.readReg(p.Field.Address)
	if err != nil {
		return err
	}

	rssiLeft := uint32(0xFFFFFFFF)
	left, right := p.Min, p.Max

	write := func(v int16) error {
		return c.modifyFieldCached(p.Field, p.encode(v), regValue)
	}

	if err := write(right); err != nil {
		return err
	}
	rssiRight, err := c.getRSSI()
	if err != nil {
		return err
	}

	for right-left >= 1 {
		step := (right - left) / 2
		if rssiLeft < rssiRight {
			if err := write(right); err != nil {
				return err
			}
			rssiRight, err = c.getRSSI()
		} else {
			if err := write(left); err != nil {
				return err
			}
			rssiLeft, err = c.getRSSI()
		}
		if err != nil {
			return err
		}
		if step == 0 {
			break
		}
		if rssiLeft < rssiRight {
			right -= step
		} else {
			left += step
		}
	}

	if rssiLeft < rssiRight {
		p.Result = left
	} else {
		p.Result = right
	}
	return write(p.Result)
}
