// Package blink provides common duty-cycle blink patterns.
package blink

import (
	"github.com/jamesmunns/blinq/pattern"
)

var (
	ShortOnOff = pattern.FromBits(0b10, 2)
	ShortOffOn = ShortOnOff.Reverse()

	MediumOnOff = pattern.FromBits(0b1100, 4)
	MediumOffOn = MediumOnOff.Reverse()

	LongOnOff = pattern.FromBits(0b11110000, 8)
	LongOffOn = LongOnOff.Reverse()

	// QuarterDuty is one step on, three steps off.
	QuarterDuty = pattern.FromBits(0b1000, 4)
)
