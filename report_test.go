package lms7002m

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStringRendersTable(t *testing.T) {
	r := Report{
		Direction: Tx,
		Status:    StatusOK,
		DCOffsetI: 12,
		DCOffsetQ: -7,
		GainI:     2047,
		GainQ:     1800,
		PhaseCorr: -42,
	}
	out := r.String()
	assert.True(t, strings.Contains(out, "DC"))
	assert.True(t, strings.Contains(out, "GAIN"))
	assert.True(t, strings.Contains(out, "PHASE"))
	assert.True(t, strings.Contains(out, "2047"))
	assert.True(t, strings.Contains(out, "-42"))
}
