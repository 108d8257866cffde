package lms7002m

import "time"

// CalibrateTx runs the Tx calibration protocol: arm the chip
// (calibrateTxSetup), saturate the Rx loopback gain, null Rx DC, null
// Tx DC, then null Tx IQ imbalance, retuning the Rx NCO between each
// measurement phase. The channel selector register (0x0020) is
// restored on every exit path; registers written by the setup tables
// and the later steps are not restored.
func (c *Calibrator) CalibrateTx() (Status, Report, error) {
	start := time.Now()
	entry, err := c.readReg(0x0020)
	if err != nil {
		return 0, Report{}, err
	}
	defer c.writeReg(0x0020, entry)

	status, err := c.calibrateTxSetup()
	if err != nil {
		return 0, Report{}, err
	}
	if status != StatusOK {
		c.log.Printf("tx setup failed: %s", status)
		return status, Report{Direction: Tx, Status: status, Duration: time.Since(start)}, nil
	}

	if err := c.checkSaturationTxRx(); err != nil {
		return 0, Report{}, err
	}
	if _, _, err := c.calibrateRxDC(); err != nil {
		return 0, Report{}, err
	}

	if err := c.dev.SetNCOFrequency(Rx, sxOffsetHz-offsetNCO+c.bandwidthRF/bwDivider); err != nil {
		return 0, Report{}, err
	}
	dcI, dcQ, err := c.calibrateTxDC()
	if err != nil {
		return 0, Report{}, err
	}

	if err := c.dev.SetNCOFrequency(Rx, sxOffsetHz-offsetNCO); err != nil {
		return 0, Report{}, err
	}
	gain, gainIsI, phase, err := c.calibrateIQImbalance(Tx)
	if err != nil {
		return 0, Report{}, err
	}

	report := Report{
		Direction: Tx,
		Status:    StatusOK,
		Duration:  time.Since(start),
		DCOffsetI: dcI,
		DCOffsetQ: dcQ,
		PhaseCorr: phase,
	}
	if gainIsI {
		report.GainI = gain
		report.GainQ = 2047
	} else {
		report.GainI = 2047
		report.GainQ = gain
	}

	c.log.Printf("tx calibration complete in %s", report.Duration)
	return StatusOK, report, nil
}
