package lms7002m

import "time"

// CalibrateRx runs the Rx calibration protocol: arm the chip
// (calibrateRxSetup), null Rx DC, enable the loopback path matching
// the selected LNA, handle the TDD/FDD VCO power sequencing, saturate
// the Rx loopback gain, then null Rx IQ imbalance. The channel
// selector register (0x0020) is restored on every exit path; registers
// written by the setup tables and the later steps are not restored.
func (c *Calibrator) CalibrateRx() (Status, Report, error) {
	start := time.Now()
	entry, err := c.readReg(0x0020)
	if err != nil {
		return 0, Report{}, err
	}
	defer c.writeReg(0x0020, entry)

	status, err := c.calibrateRxSetup()
	if err != nil {
		return 0, Report{}, err
	}
	if status != StatusOK {
		c.log.Printf("rx setup failed: %s", status)
		return status, Report{Direction: Rx, Status: status, Duration: time.Since(start)}, nil
	}

	dcI, dcQ, err := c.calibrateRxDC()
	if err != nil {
		return 0, Report{}, err
	}

	path, err := c.readField(selPathRFE)
	if err != nil {
		return 0, Report{}, err
	}
	if path == 2 { // LNAW
		if err := c.modifyField(pdRLoopb2RFE, 0); err != nil {
			return 0, Report{}, err
		}
		if err := c.modifyField(enInshswLB2RFE, 0); err != nil {
			return 0, Report{}, err
		}
	} else {
		if err := c.modifyField(pdRLoopb1RFE, 0); err != nil {
			return 0, Report{}, err
		}
		if err := c.modifyField(enInshswLB1RFE, 0); err != nil {
			return 0, Report{}, err
		}
	}

	if err := c.modifyField(MAC, 2); err != nil {
		return 0, Report{}, err
	}
	isTDD, err := c.readField(pdLochT2rbuf)
	if err != nil {
		return 0, Report{}, err
	}
	if isTDD == 0 {
		if err := c.modifyField(pdLochT2rbuf, 1); err != nil {
			return 0, Report{}, err
		}
		if err := c.modifyField(MAC, 1); err != nil {
			return 0, Report{}, err
		}
		if err := c.modifyField(pdVCO, 0); err != nil {
			return 0, Report{}, err
		}
	}
	if err := c.writeReg(0x0020, entry); err != nil {
		return 0, Report{}, err
	}

	if err := c.checkSaturationRx(c.bandwidthRF); err != nil {
		return 0, Report{}, err
	}

	if err := c.modifyField(cmixScRXTSP, 1); err != nil {
		return 0, Report{}, err
	}
	if err := c.modifyField(cmixBypRXTSP, 0); err != nil {
		return 0, Report{}, err
	}
	if err := c.dev.SetNCOFrequency(Rx, c.bandwidthRF/bwDivider+offsetNCO); err != nil {
		return 0, Report{}, err
	}

	gain, gainIsI, phase, err := c.calibrateIQImbalance(Rx)
	if err != nil {
		return 0, Report{}, err
	}

	report := Report{
		Direction: Rx,
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

	c.log.Printf("rx calibration complete in %s", report.Duration)
	return StatusOK, report, nil
}
