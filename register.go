package lms7002m

import "fmt"

// Field identifies a contiguous bit range within one 16-bit register:
// bits [lsb, msb] inclusive. Field values are constant for the life of
// the process; they describe the chip, not a calibration run.
type Field struct {
	Address uint16
	Msb     uint8
	Lsb     uint8
}

func (f Field) width() uint8 {
	return f.Msb - f.Lsb + 1
}

func (f Field) mask() uint16 {
	return uint16((1<<f.width())-1) << f.Lsb
}

// readReg and writeReg are thin wrappers giving calibration code a
// short name and a consistent error-wrapping point, in the style of
// the teacher's readReg/writeReg helpers.
func (c *Calibrator) readReg(addr uint16) (uint16, error) {
	v, err := c.dev.ReadReg(addr)
	if err != nil {
		return 0, fmt.Errorf("lms7002m: read 0x%04X: %w", addr, err)
	}
	return v, nil
}

func (c *Calibrator) writeReg(addr uint16, val uint16) error {
	if err := c.dev.WriteReg(addr, val); err != nil {
		return fmt.Errorf("lms7002m: write 0x%04X: %w", addr, err)
	}
	return nil
}

// readField extracts a named bit range from its register.
func (c *Calibrator) readField(f Field) (uint16, error) {
	reg, err := c.readReg(f.Address)
	if err != nil {
		return 0, err
	}
	return (reg & f.mask()) >> f.Lsb, nil
}

// modifyField performs a masked read-modify-write of a single field,
// leaving every other bit of the register untouched.
func (c *Calibrator) modifyField(f Field, value uint16) error {
	reg, err := c.readReg(f.Address)
	if err != nil {
		return err
	}
	return c.modifyFieldCached(f, value, reg)
}

// modifyFieldCached performs the same masked write as modifyField but
// without a prior read, using a caller-supplied image of the full
// register. This is the fast path used inside binary-search loops
// that touch the same register on every iteration: one read up front,
// one write per step, instead of a read and a write per step.
func (c *Calibrator) modifyFieldCached(f Field, value uint16, cachedReg uint16) error {
	newReg := (cachedReg &^ f.mask()) | ((value << f.Lsb) & f.mask())
	return c.writeReg(f.Address, newReg)
}

// flipRisingEdge writes 0 then 1 into a single-bit field, preserving
// every other bit, producing a positive edge that triggers a hardware
// capture latch.
func (c *Calibrator) flipRisingEdge(f Field) error {
	reg, err := c.readReg(f.Address)
	if err != nil {
		return err
	}
	if err := c.modifyFieldCached(f, 0, reg); err != nil {
		return err
	}
	return c.modifyFieldCached(f, 1, reg)
}
