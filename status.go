package lms7002m

import "fmt"

// Status is the byte-coded outcome of a calibration call. Zero is
// success; everything else identifies which sub-step of the setup
// sequencer rejected the request. Modeled on the teacher's RangeStatus
// enum: a small value type with a human-readable String().
type Status uint8

const (
	StatusOK Status = 0

	// StatusRxPathUnsupported is returned by the Rx setup sequencer when
	// SEL_PATH_RFE names neither LNAL nor LNAW.
	StatusRxPathUnsupported Status = 1

	// StatusTxBandUnsupported is returned by the Tx setup sequencer when
	// SEL_BAND1_2_TRF names neither BAND1 nor BAND2.
	StatusTxBandUnsupported Status = 5
)

const (
	cgenStatusOffset Status = 0x30
	sxrStatusOffset  Status = 0x40
	sxtStatusOffset  Status = 0x50
)

// String renders a short diagnostic for logs, grounded on the
// teacher's RangeStatus.String().
func (s Status) String() string {
	switch {
	case s == StatusOK:
		return "ok"
	case s == StatusRxPathUnsupported:
		return "rx lna path unsupported (must be LNAL or LNAW)"
	case s == StatusTxBandUnsupported:
		return "tx band unsupported (must be BAND1 or BAND2)"
	case s >= cgenStatusOffset && s < sxrStatusOffset:
		return fmt.Sprintf("cgen setup failed (%d)", uint8(s-cgenStatusOffset))
	case s >= sxrStatusOffset && s < sxtStatusOffset:
		return fmt.Sprintf("sxr retune failed (%d)", uint8(s-sxrStatusOffset))
	case s >= sxtStatusOffset:
		return fmt.Sprintf("sxt retune failed (%d)", uint8(s-sxtStatusOffset))
	default:
		return fmt.Sprintf("unknown status (%d)", uint8(s))
	}
}
