package lms7002m

// calibrateRxDC nulls the Rx DC offset with a coarse pass over I then
// Q, followed by two refining passes with shrinking windows. Used by
// both the Tx and Rx top-level drivers (the Tx path nulls Rx DC as an
// intermediate step before it can see its own Tx DC cleanly).
func (c *Calibrator) calibrateRxDC() (i, q int16, err error) {
	if err := c.modifyField(enGTRF, 0); err != nil {
		return 0, 0, err
	}
	if err := c.modifyField(dcBypRXTSP, 1); err != nil {
		return 0, 0, err
	}
	if err := c.modifyField(capsel, 0); err != nil {
		return 0, 0, err
	}
	// seed both channels at their mid-scale magnitude before the search
	if err := c.writeReg(0x010E, (encodeDCOffset(32)<<7)|encodeDCOffset(32)); err != nil {
		return 0, 0, err
	}

	argsI := SearchParam{Field: dcoffiRFE, Min: -63, Max: 63, rxDC: true}
	argsQ := SearchParam{Field: dcoffqRFE, Min: -63, Max: 63, rxDC: true}

	if err := c.binarySearch(&argsI); err != nil {
		return 0, 0, err
	}
	if err := c.binarySearch(&argsQ); err != nil {
		return 0, 0, err
	}

	argsI.Min, argsI.Max = argsI.Result-8, argsI.Result+8
	argsQ.Min, argsQ.Max = argsQ.Result-8, argsQ.Result+8
	if err := c.binarySearch(&argsI); err != nil {
		return 0, 0, err
	}
	if err := c.binarySearch(&argsQ); err != nil {
		return 0, 0, err
	}

	argsI.Min, argsI.Max = argsI.Result-4, argsI.Result+4
	if err := c.binarySearch(&argsI); err != nil {
		return 0, 0, err
	}

	if err := c.modifyField(dcBypRXTSP, 0); err != nil {
		return 0, 0, err
	}
	if err := c.modifyField(enGTRF, 1); err != nil {
		return 0, 0, err
	}

	c.log.Printf("rx dc null: i=%d q=%d", argsI.Result, argsQ.Result)
	return argsI.Result, argsQ.Result, nil
}

// calibrateTxDC nulls the Tx DC offset with a coarse pass over I then
// Q, followed by one refining pass each, and packs the final pair into
// register 0x0204.
func (c *Calibrator) calibrateTxDC() (i, q int16, err error) {
	if err := c.modifyField(enGTRF, 1); err != nil {
		return 0, 0, err
	}
	if err := c.modifyField(cmixBypTXTSP, 0); err != nil {
		return 0, 0, err
	}
	if err := c.modifyField(cmixBypRXTSP, 0); err != nil {
		return 0, 0, err
	}
	// zero both DC correction halves before searching either one
	if err := c.writeReg(0x0204, 0); err != nil {
		return 0, 0, err
	}

	argsI := SearchParam{Field: dccorriTXTSP, Min: -128, Max: 127}
	argsQ := SearchParam{Field: dccorrqTXTSP, Min: -128, Max: 127}

	if err := c.binarySearch(&argsI); err != nil {
		return 0, 0, err
	}
	if err := c.binarySearch(&argsQ); err != nil {
		return 0, 0, err
	}

	argsI.Min, argsI.Max = argsI.Result-4, argsI.Result+4
	if err := c.binarySearch(&argsI); err != nil {
		return 0, 0, err
	}
	argsQ.Min, argsQ.Max = argsQ.Result-4, argsQ.Result+4
	if err := c.binarySearch(&argsQ); err != nil {
		return 0, 0, err
	}

	packed := (uint16(argsI.Result) << 8) | (uint16(argsQ.Result) & 0xFF)
	if err := c.writeReg(0x0204, packed); err != nil {
		return 0, 0, err
	}

	c.log.Printf("tx dc null: i=%d q=%d", argsI.Result, argsQ.Result)
	return argsI.Result, argsQ.Result, nil
}

// calibrateIQImbalance nulls phase error then gain imbalance for the
// given direction: a coarse phase search, a coarse gain-side
// selection (which of I or Q gain actually needs adjusting), a binary
// search of the chosen gain, then a phase refine pass.
func (c *Calibrator) calibrateIQImbalance(dir Direction) (gain uint16, gainIsI bool, phase int16, err error) {
	gcorri, gcorrq, phaseField := gainFields(dir)

	argsPhase := SearchParam{Field: phaseField, Min: -128, Max: 128}
	if err := c.binarySearch(&argsPhase); err != nil {
		return 0, false, 0, err
	}

	if err := c.writeReg(gcorri.Address, 2047-64); err != nil {
		return 0, false, 0, err
	}
	if err := c.writeReg(gcorrq.Address, 2047); err != nil {
		return 0, false, 0, err
	}
	rssiIGain, err := c.getRSSI()
	if err != nil {
		return 0, false, 0, err
	}

	if err := c.writeReg(gcorri.Address, 2047); err != nil {
		return 0, false, 0, err
	}
	if err := c.writeReg(gcorrq.Address, 2047-64); err != nil {
		return 0, false, 0, err
	}
	rssiQGain, err := c.getRSSI()
	if err != nil {
		return 0, false, 0, err
	}

	var argsGain SearchParam
	if rssiIGain < rssiQGain {
		argsGain.Field = gcorri
		gainIsI = true
	} else {
		argsGain.Field = gcorrq
		gainIsI = false
	}
	// restore the untouched side to unity before searching the chosen one
	if err := c.writeReg(gcorrq.Address, 2047); err != nil {
		return 0, false, 0, err
	}

	argsGain.Min, argsGain.Max = 2047-512, 2047
	if err := c.binarySearch(&argsGain); err != nil {
		return 0, false, 0, err
	}

	argsPhase.Min, argsPhase.Max = argsPhase.Result-16, argsPhase.Result+16
	if err := c.binarySearch(&argsPhase); err != nil {
		return 0, false, 0, err
	}

	if err := c.writeReg(argsGain.Field.Address, uint16(argsGain.Result)); err != nil {
		return 0, false, 0, err
	}
	if err := c.modifyField(argsPhase.Field, uint16(argsPhase.Result)); err != nil {
		return 0, false, 0, err
	}

	c.log.Printf("%s iq imbalance: gain=%d gainIsI=%v phase=%d", dir, argsGain.Result, gainIsI, argsPhase.Result)
	return uint16(argsGain.Result), gainIsI, argsPhase.Result, nil
}
