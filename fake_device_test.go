package lms7002m

// fakeDevice is an in-memory Device used by the test suite: a register
// image plus a pluggable RSSI model, in place of real SPI hardware.
type fakeDevice struct {
	regs map[uint16]uint16

	cgenHz float64
	sxHz   [2]float64

	// rssi computes the 18-bit magnitude the chip would report for the
	// current register image. nil means "always zero".
	rssi func(regs map[uint16]uint16) uint32

	// sxSetStatus, when non-zero, is returned by SetFrequencySX for the
	// given direction instead of StatusOK, simulating a synthesizer
	// lock failure.
	sxSetStatus [2]Status
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		regs:   make(map[uint16]uint16),
		cgenHz: 122.88e6,
	}
}

func (d *fakeDevice) ReadReg(addr uint16) (uint16, error) {
	if addr == 0x040F || addr == 0x040E {
		var full uint32
		if d.rssi != nil {
			full = d.rssi(d.regs)
		}
		if addr == 0x040F {
			return uint16(full >> 2), nil
		}
		return uint16(full & 0x3), nil
	}
	return d.regs[addr], nil
}

func (d *fakeDevice) WriteReg(addr uint16, val uint16) error {
	d.regs[addr] = val
	return nil
}

func (d *fakeDevice) FrequencyCGEN() (float64, error) {
	return d.cgenHz, nil
}

func (d *fakeDevice) SetFrequencyCGEN(hz float64) (Status, error) {
	d.cgenHz = hz
	return StatusOK, nil
}

func (d *fakeDevice) FrequencySX(dir Direction) (float64, error) {
	return d.sxHz[dir], nil
}

func (d *fakeDevice) SetFrequencySX(dir Direction, hz float64) (Status, error) {
	d.sxHz[dir] = hz
	if d.sxSetStatus[dir] != StatusOK {
		return d.sxSetStatus[dir], nil
	}
	return StatusOK, nil
}

func (d *fakeDevice) SetNCOFrequency(dir Direction, hz float64) error {
	return nil
}
