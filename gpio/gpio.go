// Package gpio adapts Raspberry Pi GPIO pins to the sequencer's Pin
// interface, using the BCM2835 memory-mapped GPIO range.
package gpio

import (
	"github.com/stianeikeland/go-rpio/v4"

	"github.com/jamesmunns/blinq/sequencer"
)

// Open maps the GPIO range. Call once before Output, and Close when done.
func Open() error {
	return rpio.Open()
}

// Close unmaps the GPIO range.
func Close() error {
	return rpio.Close()
}

// Pin is a single output pin. Register writes cannot fail once Open has
// succeeded, so SetHigh and SetLow always return nil.
type Pin struct {
	pin rpio.Pin
}

var _ sequencer.Pin = (*Pin)(nil)

// Output configures the BCM-numbered pin as an output, initially low.
func Output(bcm int) *Pin {
	p := rpio.Pin(bcm)
	p.Output()
	p.Low()

	return &Pin{pin: p}
}

func (p *Pin) SetHigh() error {
	p.pin.High()
	return nil
}

func (p *Pin) SetLow() error {
	p.pin.Low()
	return nil
}
