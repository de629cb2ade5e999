package cpu

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveBitScan(t *testing.T) {
	switch runtime.GOARCH {
	case "amd64":
		assert.Contains(t, []BitScan{BSF, TZCNT}, ActiveBitScan())
		assert.True(t, HardwareBitScan())
	case "arm64":
		assert.Equal(t, RBITCLZ, ActiveBitScan())
		assert.True(t, HardwareBitScan())
	default:
		assert.Equal(t, Software, ActiveBitScan())
	}
}

func TestBitScanString(t *testing.T) {
	assert.Equal(t, "software", Software.String())
	assert.Equal(t, "bsf", BSF.String())
	assert.Equal(t, "tzcnt", TZCNT.String())
	assert.Equal(t, "rbit+clz", RBITCLZ.String())
	assert.Equal(t, "unknown", BitScan(42).String())
}

func TestDescribe(t *testing.T) {
	d := Describe()
	assert.True(t, strings.HasPrefix(d, "arch="+runtime.GOARCH))
	assert.Contains(t, d, "bitscan="+ActiveBitScan().String())
}
