package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzPattern(f *testing.F) {
	f.Add(uint32(0), 0)
	f.Add(uint32(0b101), 3)
	f.Add(uint32(0xffffffff), 32)
	f.Add(uint32(0xdeadbeef), 17)
	f.Add(uint32(1), -4)
	f.Add(uint32(0x12345678), 64)

	f.Fuzz(func(t *testing.T, value uint32, used int) {
		assert := assert.New(t)

		p := FromBits(value, used)
		n := p.Len()
		assert.GreaterOrEqual(n, 0)
		assert.LessOrEqual(n, MaxSteps)

		// Extraction reproduces the low n bits of the input, leftmost
		// first, and wraps around after n steps.
		cur := p
		for i := 0; i < 2*n; i++ {
			want := (value>>(n-1-i%n))&1 == 1
			assert.Equal(want, cur.Step(), "step %d", i)
		}

		// Double reverse is the identity.
		assert.Equal(p, p.Reverse().Reverse())

		// Reverse plays the same steps backwards.
		var fwd, rev []bool
		for s := range p.Steps() {
			fwd = append(fwd, s)
		}
		for s := range p.Reverse().Steps() {
			rev = append(rev, s)
		}
		assert.Equal(len(fwd), len(rev))
		for i := range fwd {
			assert.Equal(fwd[i], rev[len(rev)-1-i], "reversed step %d", i)
		}
	})
}
