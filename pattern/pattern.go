package pattern

import (
	"iter"
	"math/bits"
	"strings"
)

// MaxSteps is the most steps a single Pattern can hold.
const MaxSteps = 32

// Pattern is a sequence of up to MaxSteps on/off steps.
//
// Internally the steps are stored bit-reversed and right-aligned, so that
// Step can consume them from bit zero in the order the caller wrote them.
// The zero value is an empty pattern.
type Pattern struct {
	bits uint32
	used uint8
}

// FromBits builds a pattern from the low used bits of value. The leftmost
// written bit of the literal is the first step: FromBits(0b10, 2) is on
// then off. A used outside [0, MaxSteps] is clamped; out-of-range bits are
// never read.
func FromBits(value uint32, used int) Pattern {
	if used <= 0 {
		return Pattern{}
	}
	if used > MaxSteps {
		used = MaxSteps
	}

	return Pattern{
		bits: bits.Reverse32(value) >> (MaxSteps - used),
		used: uint8(used),
	}
}

// Len returns the number of meaningful steps.
func (p Pattern) Len() int {
	return int(p.used)
}

// Append returns a pattern that plays p's steps followed by other's. The
// combined length saturates at MaxSteps; steps beyond the limit are
// silently dropped.
func (p Pattern) Append(other Pattern) Pattern {
	used := int(p.used) + int(other.used)
	if used > MaxSteps {
		used = MaxSteps
	}

	return Pattern{
		bits: p.bits | other.bits<<p.used,
		used: uint8(used),
	}
}

// Reverse returns a pattern with the same steps in the opposite order.
// Reversing twice restores the original pattern.
func (p Pattern) Reverse() Pattern {
	return FromBits(p.bits, int(p.used))
}

// Step extracts the next step, reporting whether it is active, and rotates
// the remaining steps down so the following call observes the next one.
// Rotation is cyclic over the Len meaningful steps: the extracted step is
// re-inserted at the far end.
func (p *Pattern) Step() (active bool) {
	active = p.bits&1 == 1
	p.bits >>= 1
	if active {
		p.bits |= 1 << (p.used - 1)
	}
	return
}

// Steps iterates the pattern's Len steps in order. The pattern itself is
// not consumed; iteration walks a private copy.
func (p Pattern) Steps() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		cur := p
		for range cur.Len() {
			if !yield(cur.Step()) {
				return
			}
		}
	}
}

// String renders the steps left to right, '1' for active and '0' for
// inactive.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(p.Len())
	for active := range p.Steps() {
		if active {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
