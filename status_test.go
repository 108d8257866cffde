package lms7002m

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusOK, "ok"},
		{StatusRxPathUnsupported, "rx lna path unsupported (must be LNAL or LNAW)"},
		{StatusTxBandUnsupported, "tx band unsupported (must be BAND1 or BAND2)"},
		{cgenStatusOffset + 2, "cgen setup failed (2)"},
		{sxrStatusOffset + 3, "sxr retune failed (3)"},
		{sxtStatusOffset + 1, "sxt retune failed (1)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.status.String())
	}
}
