package lms7002m

// Named bitfields used by the calibration engine.
//
// A handful of these carry bit-exact positions given directly by the
// reference data (MAC, SEL_BAND1_2_TRF, DCOFFI/Q_RFE, the packed Tx DC
// pair in 0x0204, GCORRI/GCORRQ_TXTSP whose reset value of 0x07FF in
// the Tx write-only table only makes sense as an 11-bit 2047). The
// remaining fields are not given bit-exact positions anywhere in the
// source material (the register map is explicitly a data table, not
// designed here) and are assigned self-consistent placeholder
// addresses/bit ranges within their functional block — see DESIGN.md.
var (
	// Channel selector, register 0x0020. Bits 1:0: 1=channel A,
	// 2=channel B, 3=both.
	MAC = Field{Address: 0x0020, Msb: 1, Lsb: 0}

	// RFE (receive front end).
	capture        = Field{Address: 0x0114, Msb: 15, Lsb: 15}
	capsel         = Field{Address: 0x0114, Msb: 14, Lsb: 14}
	gRxLoopbRFE    = Field{Address: 0x0113, Msb: 3, Lsb: 0}
	selPathRFE     = Field{Address: 0x010C, Msb: 9, Lsb: 8}
	pdRLoopb1RFE   = Field{Address: 0x010C, Msb: 6, Lsb: 6}
	pdRLoopb2RFE   = Field{Address: 0x010C, Msb: 5, Lsb: 5}
	enInshswLB1RFE = Field{Address: 0x010D, Msb: 4, Lsb: 4}
	enInshswLB2RFE = Field{Address: 0x010D, Msb: 3, Lsb: 3}
	enGTRF         = Field{Address: 0x0101, Msb: 12, Lsb: 12}
	gLNARFE        = Field{Address: 0x0115, Msb: 3, Lsb: 0}
	gTIARFE        = Field{Address: 0x0115, Msb: 6, Lsb: 4}

	// DCOFFI_RFE/DCOFFQ_RFE share register 0x010E (confirmed by the
	// reference's S1-style value assembly: ((0x40|12)<<7)|5).
	dcoffiRFE = Field{Address: 0x010E, Msb: 13, Lsb: 7}
	dcoffqRFE = Field{Address: 0x010E, Msb: 6, Lsb: 0}

	// RBB (receive baseband).
	gPGARBB = Field{Address: 0x0119, Msb: 4, Lsb: 0}

	// TRF (transmit front end).
	selBand12TRF = Field{Address: 0x0103, Msb: 11, Lsb: 10}
	selBand1TRF  = Field{Address: 0x0103, Msb: 9, Lsb: 9}
	selBand2TRF  = Field{Address: 0x0103, Msb: 8, Lsb: 8}

	// TBB (transmit baseband).
	cgIampTBB = Field{Address: 0x0108, Msb: 4, Lsb: 0}

	// CGEN (clock generator PLL) and SX power control.
	enADCCLKHClkgn   = Field{Address: 0x0087, Msb: 2, Lsb: 2}
	clkhOvClklCgen   = Field{Address: 0x0087, Msb: 5, Lsb: 3}
	pdVCO            = Field{Address: 0x0086, Msb: 0, Lsb: 0}
	pdTxAFE2         = Field{Address: 0x0082, Msb: 3, Lsb: 3}
	pdLochT2rbuf     = Field{Address: 0x0092, Msb: 0, Lsb: 0}
	enNextRxRFE      = Field{Address: 0x0093, Msb: 0, Lsb: 0}
	enNextTxTRF      = Field{Address: 0x0094, Msb: 0, Lsb: 0}

	// TxTSP (transmit digital signal processing).
	cmixBypTXTSP  = Field{Address: 0x0208, Msb: 0, Lsb: 0}
	dccorriTXTSP  = Field{Address: 0x0204, Msb: 15, Lsb: 8}
	dccorrqTXTSP  = Field{Address: 0x0204, Msb: 7, Lsb: 0}
	gcorriTXTSP   = Field{Address: 0x0201, Msb: 10, Lsb: 0}
	gcorrqTXTSP   = Field{Address: 0x0202, Msb: 10, Lsb: 0}
	iqcorrTXTSP   = Field{Address: 0x0203, Msb: 11, Lsb: 0}
	tsgdcldiTXTSP = Field{Address: 0x020A, Msb: 1, Lsb: 1}
	tsgdcldqTXTSP = Field{Address: 0x020A, Msb: 0, Lsb: 0}

	// RxTSP (receive digital signal processing).
	dcBypRXTSP    = Field{Address: 0x040C, Msb: 0, Lsb: 0}
	cmixBypRXTSP  = Field{Address: 0x040C, Msb: 1, Lsb: 1}
	cmixScRXTSP   = Field{Address: 0x040C, Msb: 2, Lsb: 2}
	agcAvgRXTSP   = Field{Address: 0x0440, Msb: 2, Lsb: 0}
	gfir3NRXTSP   = Field{Address: 0x0441, Msb: 2, Lsb: 0}
	gcorriRXTSP   = Field{Address: 0x0442, Msb: 10, Lsb: 0}
	gcorrqRXTSP   = Field{Address: 0x0443, Msb: 10, Lsb: 0}
	iqcorrRXTSP   = Field{Address: 0x0444, Msb: 11, Lsb: 0}
)

// gainFields returns the (gcorri, gcorrq, phase) field triple for a
// direction's IQ imbalance corrector.
func gainFields(dir Direction) (gcorri, gcorrq, phase Field) {
	if dir == Tx {
		return gcorriTXTSP, gcorrqTXTSP, iqcorrTXTSP
	}
	return gcorriRXTSP, gcorrqRXTSP, iqcorrRXTSP
}
