package lms7002m

import (
	"fmt"
	"time"
)

// Report captures the corrections a calibration call converged on, so
// a caller can log or persist them without re-reading chip registers.
// Supplements the reference's verbose parameter dump, which only ever
// went to stdout.
type Report struct {
	Direction Direction
	Status    Status
	Duration  time.Duration

	DCOffsetI int16
	DCOffsetQ int16
	GainI     uint16
	GainQ     uint16
	PhaseCorr int16
}

// String renders the "DC | GAIN | PHASE" table the reference prints
// after a successful Tx calibration.
func (r Report) String() string {
	return fmt.Sprintf(
		"   | DC  | GAIN | PHASE\n"+
			"---+-----+------+------\n"+
			"I: | %3d | %4d | %d\n"+
			"Q: | %3d | %4d |\n",
		r.DCOffsetI, r.GainI, r.PhaseCorr,
		r.DCOffsetQ, r.GainQ,
	)
}
