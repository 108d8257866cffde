package lms7002m

// saturationTarget is the RSSI level ("-3 dBFS") the gain escalators
// chase before giving up and running with whatever headroom they
// reached.
const saturationTarget = 0x0B000

// checkSaturationTxRx raises Rx loopback and PGA gain until the
// measured RSSI reaches saturationTarget or the gain rails are
// exhausted, ahead of the Rx-DC/Tx-DC/Tx-IQ null passes of a Tx
// calibration.
func (c *Calibrator) checkSaturationTxRx() error {
	if err := c.modifyField(dcBypRXTSP, 0); err != nil {
		return err
	}
	if err := c.modifyField(cmixBypRXTSP, 0); err != nil {
		return err
	}
	if err := c.dev.SetNCOFrequency(Rx, sxOffsetHz-offsetNCO+2*(c.bandwidthRF/bwDivider)); err != nil {
		return err
	}

	rssi, err := c.getRSSI()
	if err != nil {
		return err
	}

	gPGA, err := c.readField(gPGARBB)
	if err != nil {
		return err
	}
	gLoopb, err := c.readField(gRxLoopbRFE)
	if err != nil {
		return err
	}

	for rssi < saturationTarget {
		if gLoopb < 15 {
			gLoopb++
		} else {
			break
		}
		if err := c.modifyField(gRxLoopbRFE, gLoopb); err != nil {
			return err
		}
		if rssi, err = c.getRSSI(); err != nil {
			return err
		}
	}

	rssiPrev := rssi
	for gLoopb == 15 && rssi < saturationTarget {
		if gPGA < 18 {
			gPGA++
		} else {
			break
		}
		if err := c.modifyField(gPGARBB, gPGA); err != nil {
			return err
		}
		if rssi, err = c.getRSSI(); err != nil {
			return err
		}
		if rssi < rssiPrev {
			gPGA--
			if err := c.modifyField(gPGARBB, gPGA); err != nil {
				return err
			}
			break
		}
		rssiPrev = rssi
	}

	if err := c.modifyField(cmixBypRXTSP, 1); err != nil {
		return err
	}
	return c.modifyField(dcBypRXTSP, 1)
}

// checkSaturationRx raises Rx loopback gain in steps of two until
// saturationTarget is reached or the rail is hit, ahead of the Rx-IQ
// null pass of an Rx calibration.
//
// A second escalation stage for CG_IAMP_TBB exists structurally below
// but is gated off by an unconditional break at its entry — the
// reference leaves it this way, and this rewrite preserves the
// observed behavior rather than guessing whether it was meant to run.
func (c *Calibrator) checkSaturationRx(bandwidthHz float64) error {
	const rxLoopbStep = 2

	if err := c.modifyField(cmixScRXTSP, 0); err != nil {
		return err
	}
	if err := c.modifyField(cmixBypRXTSP, 0); err != nil {
		return err
	}
	if err := c.dev.SetNCOFrequency(Rx, bandwidthHz/bwDivider-offsetNCO); err != nil {
		return err
	}

	rssi, err := c.getRSSI()
	if err != nil {
		return err
	}

	gLoopb, err := c.readField(gRxLoopbRFE)
	if err != nil {
		return err
	}

	for rssi < saturationTarget {
		gLoopb += rxLoopbStep
		if gLoopb > 15 {
			gLoopb -= rxLoopbStep
			break
		}
		if err := c.modifyField(gRxLoopbRFE, gLoopb); err != nil {
			return err
		}
		if rssi, err = c.getRSSI(); err != nil {
			return err
		}
	}

	for rssi < saturationTarget {
		// Disabled second stage (CG_IAMP_TBB escalation): kept
		// structurally present, never entered. See Open Questions.
		break
	}

	return nil
}
