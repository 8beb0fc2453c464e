package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesmunns/blinq/pattern"
)

func TestSymbols_WellFormed(t *testing.T) {
	assert := assert.New(t)

	for r, p := range symbols {
		assert.LessOrEqual(p.Len(), pattern.MaxSteps, "%q", r)
		if r == ' ' {
			continue
		}
		assert.Greater(p.Len(), 0, "%q", r)

		// Every symbol ends with its element gap.
		steps := p.String()
		assert.Equal(byte('0'), steps[len(steps)-1], "%q", r)
	}
}

func TestElements(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("10", Dot.String())
	assert.Equal("110", Dash.String())

	// E is a single dot, T a single dash.
	assert.Equal(Dot, E)
	assert.Equal(Dash, T)
}

func TestSOS(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(21, SOS.Len())
	assert.Equal("101010110110110101010", SOS.String())
	assert.Equal(S.String()+O.String()+S.String(), SOS.String())
}
