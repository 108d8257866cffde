package lms7002m

// Bit-exact register constants, reproduced verbatim from the
// reference calibration data block.

// sxDefaultAddr/sxDefaultValue restore the SX synthesizers to their
// known-good defaults before retuning.
var (
	sxDefaultAddr = [8]uint16{
		0x011C, 0x011D, 0x011E, 0x011F, 0x0120, 0x0121, 0x0122, 0x0123,
	}
	sxDefaultValue = [8]uint16{
		0xAD43, 0x0400, 0x0780, 0x3640, 0xB9FF, 0x3404, 0x033F, 0x067B,
	}
)

// rxGFIR3HalfCoefs is one half of the 120-tap symmetric Rx GFIR3 FIR
// filter; the other half mirrors it (coefficient[119-i] for i in
// [60,119]).
var rxGFIR3HalfCoefs = [60]int16{
	8, 4, 0, -6, -11, -16, -20, -22, -22, -20, -14, -5, 6, 20, 34, 46,
	56, 61, 58, 48, 29, 3, -29, -63, -96, -123, -140, -142, -128, -94, -44, 20,
	93, 167, 232, 280, 302, 291, 244, 159, 41, -102, -258, -409, -539, -628, -658, -614,
	-486, -269, 34, 413, 852, 1328, 1814, 2280, 2697, 3038, 3277, 3401,
}

// rxGFIR3Coef returns tap i (0..119) of the full, mirrored filter.
func rxGFIR3Coef(i int) int16 {
	if i < 60 {
		return rxGFIR3HalfCoefs[i]
	}
	return rxGFIR3HalfCoefs[119-i]
}

// rxGFIR3Addr returns the register address tap i is written to: three
// 40-tap banks separated by 24-address gaps.
func rxGFIR3Addr(i int) uint16 {
	return 0x0500 + uint16(i) + 24*uint16(i/40)
}

// txSetupAddr/Data/Mask: masked read-modify-write table applied during
// Tx setup (addr, data, mask) -> write(addr, (read(addr) &^ mask) | data).
var (
	txSetupAddr = [7]uint16{0x0082, 0x0085, 0x00AE, 0x0101, 0x0200, 0x0208, 0x0084}
	txSetupData = [7]uint16{0x0000, 0x0001, 0xF000, 0x0001, 0x000C, 0x0000, 0x0000}
	txSetupMask = [7]uint16{0x0018, 0x0007, 0xF000, 0x1801, 0x000C, 0x210B, 0xF83F}
)

// txSetupWrOnlyAddr/Data: full-register overwrites applied during Tx
// setup, for blocks that must start from a known state.
var (
	txSetupWrOnlyAddr = [34]uint16{
		0x010C, 0x010D, 0x010E, 0x010F, 0x0110, 0x0111, 0x0112, 0x0113,
		0x0115, 0x0116, 0x0117, 0x0118, 0x0119, 0x0201, 0x0202, 0x0400,
		0x0401, 0x0402, 0x0403, 0x0404, 0x0405, 0x0406, 0x0407, 0x0408,
		0x0409, 0x040A, 0x040B, 0x040C, 0x040D, 0x040E, 0x0440, 0x0441,
		0x0442, 0x0443,
	}
	txSetupWrOnlyData = [34]uint16{
		0x88E5, 0x00DE, 0x2040, 0x3042, 0x0BFF, 0x0083, 0x4032, 0x03DF,
		0x0005, 0x8180, 0x280C, 0x218C, 0x3180, 0x07FF, 0x07FF, 0x0081,
		0x07FF, 0x07FF, 0x4000, 0x0000, 0x0000, 0x0000, 0x0700, 0x0000,
		0x0000, 0x1000, 0x0000, 0x0098, 0x0000, 0x0002, 0x0020, 0x0000,
		0x0000, 0x0000,
	}
)

// rxSetupAddr/Data/Mask: masked read-modify-write table applied during
// Rx setup.
var (
	rxSetupAddr = [19]uint16{
		0x0082, 0x0085, 0x00AE, 0x0100, 0x0101, 0x0108, 0x010C, 0x010D,
		0x0110, 0x0113, 0x0115, 0x0119, 0x0200, 0x0208, 0x0400, 0x0403,
		0x0407, 0x040A, 0x040C,
	}
	rxSetupData = [19]uint16{
		0x0000, 0x0001, 0xF000, 0x0000, 0x0001, 0x0426, 0x0000, 0x0040,
		0x001F, 0x000C, 0x0000, 0x0000, 0x008C, 0x2070, 0x0000, 0x4000,
		0x0700, 0x1000, 0x0098,
	}
	rxSetupMask = [19]uint16{
		0x0008, 0x0007, 0xF000, 0x0001, 0x1801, 0xFFFF, 0x001A, 0x0040,
		0x001F, 0x003C, 0xC000, 0x8000, 0x018C, 0xE170, 0x6000, 0x7000,
		0x0700, 0x3007, 0xC0D8,
	}
)

// applyMaskedTable performs write(addr, (read(addr) &^ mask) | data)
// for every row, the masked-write pattern component E uses for both
// setup routines.
func (c *Calibrator) applyMaskedTable(addr, data, mask []uint16) error {
	for i := range addr {
		cur, err := c.readReg(addr[i])
		if err != nil {
			return err
		}
		if err := c.writeReg(addr[i], (cur &^ mask[i])|data[i]); err != nil {
			return err
		}
	}
	return nil
}

// applyWrOnlyTable performs a direct full-register write for every
// row, the write-only fast path component E uses to reset a block to
// a known state without reading it first.
func (c *Calibrator) applyWrOnlyTable(addr, data []uint16) error {
	for i := range addr {
		if err := c.writeReg(addr[i], data[i]); err != nil {
			return err
		}
	}
	return nil
}

// setRxGFIR3Coefficients loads the 120-tap symmetric Rx GFIR3 filter.
func (c *Calibrator) setRxGFIR3Coefficients() error {
	for i := 0; i < 120; i++ {
		if err := c.writeReg(rxGFIR3Addr(i), uint16(rxGFIR3Coef(i))); err != nil {
			return err
		}
	}
	return nil
}

// setDefaultsSX restores the SX synthesizer registers to their known
// defaults ahead of a retune.
func (c *Calibrator) setDefaultsSX() error {
	for i := range sxDefaultAddr {
		if err := c.writeReg(sxDefaultAddr[i], sxDefaultValue[i]); err != nil {
			return err
		}
	}
	return nil
}

// loadDCRegTxIQ injects the DC test tone used as the calibration
// signal source: write the full-scale I code, pulse its load strobe,
// write the full-scale Q code, pulse its load strobe.
func (c *Calibrator) loadDCRegTxIQ() error {
	if err := c.writeReg(0x020C, 0x7FFF); err != nil {
		return err
	}
	if err := c.flipRisingEdge(tsgdcldiTXTSP); err != nil {
		return err
	}
	if err := c.writeReg(0x020C, 0x8000); err != nil {
		return err
	}
	return c.flipRisingEdge(tsgdcldqTXTSP)
}
