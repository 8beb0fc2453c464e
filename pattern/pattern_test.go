package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBits_Order(t *testing.T) {
	assert := assert.New(t)

	p := FromBits(0b10110, 5)
	assert.Equal(5, p.Len())

	var steps []bool
	for i := 0; i < 5; i++ {
		steps = append(steps, p.Step())
	}
	assert.Equal([]bool{true, false, true, true, false}, steps)
}

func TestFromBits_Clamp(t *testing.T) {
	assert := assert.New(t)

	p := FromBits(0xffffffff, 40)
	assert.Equal(32, p.Len())

	p = FromBits(0b1, -1)
	assert.Equal(0, p.Len())

	p = FromBits(0b1, 0)
	assert.Equal(0, p.Len())
}

func TestStep_Cyclic(t *testing.T) {
	assert := assert.New(t)

	p := FromBits(0b110, 3)
	first := []bool{p.Step(), p.Step(), p.Step()}
	second := []bool{p.Step(), p.Step(), p.Step()}
	assert.Equal([]bool{true, true, false}, first)
	assert.Equal(first, second)
}

func TestAppend(t *testing.T) {
	assert := assert.New(t)

	on := FromBits(0b1, 1)
	off := FromBits(0b000, 3)
	p := on.Append(off)
	assert.Equal(4, p.Len())
	assert.Equal("1000", p.String())

	q := off.Append(on)
	assert.Equal("0001", q.String())
}

func TestAppend_Truncates(t *testing.T) {
	assert := assert.New(t)

	long := FromBits(0xaaaaaaaa, 32)
	p := long.Append(FromBits(0b1, 1))
	assert.Equal(32, p.Len())
	assert.Equal(long.String(), p.String())

	// A partial overflow keeps the head of the second pattern.
	p = FromBits(0xaaaaaaaa, 30).Append(FromBits(0b1111, 4))
	assert.Equal(32, p.Len())
	assert.Equal(FromBits(0xaaaaaaaa, 30).String()+"11", p.String())
}

func TestReverse(t *testing.T) {
	assert := assert.New(t)

	p := FromBits(0b1000, 4)
	r := p.Reverse()
	assert.Equal("1000", p.String())
	assert.Equal("0001", r.String())
	assert.Equal(p, r.Reverse())
}

func TestSteps(t *testing.T) {
	assert := assert.New(t)

	p := FromBits(0b101, 3)
	var got []bool
	for active := range p.Steps() {
		got = append(got, active)
	}
	assert.Equal([]bool{true, false, true}, got)

	// The pattern itself is untouched.
	assert.Equal("101", p.String())
}

func TestZeroValue(t *testing.T) {
	assert := assert.New(t)

	var p Pattern
	assert.Equal(0, p.Len())
	assert.Equal("", p.String())
	assert.False(p.Step())
}
