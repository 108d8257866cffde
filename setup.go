package lms7002m

// calibrateTxSetup arms the chip for a Tx calibration run: applies the
// Tx register program, loads the Rx GFIR3 filter, retunes CGEN and the
// SX synthesizers, wires the Rx loopback path for the selected Tx
// band, and injects the DC test tone.
func (c *Calibrator) calibrateTxSetup() (Status, error) {
	x0020, err := c.readReg(0x0020)
	if err != nil {
		return 0, err
	}

	if err := c.applyMaskedTable(txSetupAddr[:], txSetupData[:], txSetupMask[:]); err != nil {
		return 0, err
	}
	if err := c.applyWrOnlyTable(txSetupWrOnlyAddr[:], txSetupWrOnlyData[:]); err != nil {
		return 0, err
	}
	if err := c.setRxGFIR3Coefficients(); err != nil {
		return 0, err
	}

	status, err := c.setupCGEN()
	if err != nil {
		return 0, err
	}
	if status != StatusOK {
		return cgenStatusOffset + status, nil
	}

	// SXR: switch to channel A, restore SX defaults, retune relative to
	// the Tx synthesizer.
	if err := c.modifyFieldCached(MAC, 1, x0020); err != nil {
		return 0, err
	}
	if err := c.setDefaultsSX(); err != nil {
		return 0, err
	}
	txFreq, err := c.dev.FrequencySX(Tx)
	if err != nil {
		return 0, err
	}
	sxrFreq := txFreq - c.bandwidthRF/bwDivider - sxOffsetHz
	status, err = c.dev.SetFrequencySX(Rx, sxrFreq)
	if err != nil {
		return 0, err
	}
	if status != StatusOK {
		// Offset by the Tx family even though this retunes the Rx
		// synthesizer: the family identifies which top-level setup is
		// running (calibrateTxSetup), not which Direction was retuned.
		return sxtStatusOffset + status, nil
	}

	if x0020&0x2 != 0 {
		if err := c.modifyField(pdTxAFE2, 0); err != nil {
			return 0, err
		}
		if err := c.modifyField(enNextRxRFE, 1); err != nil {
			return 0, err
		}
		if err := c.modifyField(enNextTxTRF, 1); err != nil {
			return 0, err
		}
	}

	// SXT: switch to channel B, power down the T2R LO buffer, then
	// restore the channel that was active on entry.
	if err := c.modifyFieldCached(MAC, 2, x0020); err != nil {
		return 0, err
	}
	if err := c.modifyField(pdLochT2rbuf, 1); err != nil {
		return 0, err
	}
	if err := c.writeReg(0x0020, x0020); err != nil {
		return 0, err
	}

	if err := c.loadDCRegTxIQ(); err != nil {
		return 0, err
	}
	if err := c.dev.SetNCOFrequency(Tx, c.bandwidthRF/bwDivider); err != nil {
		return 0, err
	}

	band, err := c.readField(selBand12TRF)
	if err != nil {
		return 0, err
	}
	if band != 1 && band != 2 {
		return StatusTxBandUnsupported, nil
	}
	if err := c.modifyField(selPathRFE, band+1); err != nil {
		return 0, err
	}
	loopbBits := band ^ 0x3
	if err := c.modifyField(pdRLoopb1RFE, loopbBits>>1); err != nil {
		return 0, err
	}
	if err := c.modifyField(pdRLoopb2RFE, loopbBits&0x1); err != nil {
		return 0, err
	}
	if err := c.modifyField(enInshswLB1RFE, loopbBits>>1); err != nil {
		return 0, err
	}
	if err := c.modifyField(enInshswLB2RFE, loopbBits&0x1); err != nil {
		return 0, err
	}

	return StatusOK, nil
}

// calibrateRxSetup arms the chip for an Rx calibration run: applies
// the Rx register program, selects the TRF band matching the selected
// LNA path, retunes the TDD/FDD-appropriate synthesizer, loads the
// Rx GFIR3 filter, retunes CGEN, and injects the DC test tone.
func (c *Calibrator) calibrateRxSetup() (Status, error) {
	x0020, err := c.readReg(0x0020)
	if err != nil {
		return 0, err
	}

	if err := c.applyMaskedTable(rxSetupAddr[:], rxSetupData[:], rxSetupMask[:]); err != nil {
		return 0, err
	}

	path, err := c.readField(selPathRFE)
	if err != nil {
		return 0, err
	}
	switch path {
	case 2: // LNAW
		if err := c.modifyField(selBand2TRF, 1); err != nil {
			return 0, err
		}
		if err := c.modifyField(selBand1TRF, 0); err != nil {
			return 0, err
		}
	case 3: // LNAL
		if err := c.modifyField(selBand2TRF, 0); err != nil {
			return 0, err
		}
		if err := c.modifyField(selBand1TRF, 1); err != nil {
			return 0, err
		}
	default:
		return StatusRxPathUnsupported, nil
	}

	if err := c.modifyField(MAC, 2); err != nil {
		return 0, err
	}
	isTDD, err := c.readField(pdLochT2rbuf)
	if err != nil {
		return 0, err
	}

	if isTDD == 0 {
		if err := c.modifyField(MAC, 1); err != nil {
			return 0, err
		}
		if err := c.setDefaultsSX(); err != nil {
			return 0, err
		}
		txFreq, err := c.dev.FrequencySX(Tx)
		if err != nil {
			return 0, err
		}
		status, err := c.dev.SetFrequencySX(Rx, txFreq-c.bandwidthRF/bwDivider-9e6)
		if err != nil {
			return 0, err
		}
		if status != StatusOK {
			return sxrStatusOffset + status, nil
		}
	} else {
		rxFreq, err := c.dev.FrequencySX(Rx)
		if err != nil {
			return 0, err
		}
		if err := c.modifyField(MAC, 2); err != nil {
			return 0, err
		}
		if err := c.setDefaultsSX(); err != nil {
			return 0, err
		}
		status, err := c.dev.SetFrequencySX(Tx, rxFreq+c.bandwidthRF/bwDivider+9e6)
		if err != nil {
			return 0, err
		}
		if status != StatusOK {
			// Offset by the Rx family even though this retunes the Tx
			// synthesizer: the family identifies which top-level setup is
			// running (calibrateRxSetup), not which Direction was retuned.
			return sxrStatusOffset + status, nil
		}
	}

	if err := c.writeReg(0x0020, x0020); err != nil {
		return 0, err
	}
	if err := c.loadDCRegTxIQ(); err != nil {
		return 0, err
	}

	status, err := c.setupCGEN()
	if err != nil {
		return 0, err
	}
	if status != StatusOK {
		return cgenStatusOffset + status, nil
	}
	if err := c.setRxGFIR3Coefficients(); err != nil {
		return 0, err
	}

	if err := c.dev.SetNCOFrequency(Tx, 9e6); err != nil {
		return 0, err
	}
	if err := c.dev.SetNCOFrequency(Rx, c.bandwidthRF/bwDivider-offsetNCO); err != nil {
		return 0, err
	}

	if x0020&0x3 == 2 {
		if err := c.modifyField(MAC, 1); err != nil {
			return 0, err
		}
		if err := c.modifyField(enNextRxRFE, 1); err != nil {
			return 0, err
		}
		if err := c.modifyField(enNextTxTRF, 1); err != nil {
			return 0, err
		}
		if err := c.modifyField(pdTxAFE2, 0); err != nil {
			return 0, err
		}
		if err := c.writeReg(0x0020, x0020); err != nil {
			return 0, err
		}
	}

	return StatusOK, nil
}
