package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/jamesmunns/blinq/gpio"
	"github.com/jamesmunns/blinq/morse"
	"github.com/jamesmunns/blinq/pattern"
	"github.com/jamesmunns/blinq/sequencer"
)

// consolePin renders each step on stdout so a message can be previewed
// without hardware.
type consolePin struct{}

func (c *consolePin) SetHigh() error {
	_, err := os.Stdout.WriteString("#")
	return err
}

func (c *consolePin) SetLow() error {
	_, err := os.Stdout.WriteString(".")
	return err
}

func main() {
	var pin int
	var activeLow bool
	var period time.Duration
	var capacity int
	var text string
	var repeat int
	var console bool

	flag.IntVar(&pin, "p", 21, "BCM pin number to drive")
	flag.BoolVar(&activeLow, "l", false, "Treat the pin as active-low")
	flag.DurationVar(&period, "t", 125*time.Millisecond, "Step period")
	flag.IntVar(&capacity, "q", sequencer.DefaultCapacity, "Pattern queue capacity")
	flag.StringVar(&text, "m", "sos", "Message to blink in morse code")
	flag.IntVar(&repeat, "n", 1, "Times to repeat the message, 0 for forever")
	flag.BoolVar(&console, "c", false, "Render steps to stdout instead of GPIO")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	message, err := morse.Encode(text)
	if err != nil {
		log.Fatalf("%q: %v", text, err)
	}

	var out sequencer.Pin
	if console {
		out = &consolePin{}
	} else {
		if err = gpio.Open(); err != nil {
			log.Fatalf("gpio: %v", err)
		}
		defer gpio.Close()
		out = gpio.Output(pin)
	}

	seq := sequencer.New(out, activeLow, capacity)

	tick := time.NewTicker(period)
	defer tick.Stop()

	var pending []pattern.Pattern
	for sent := 0; ; {
		if len(pending) == 0 && seq.Idle() {
			if repeat != 0 && sent == repeat {
				break
			}
			pending = append(pending, message...)
			sent++
		}

		// Feed the queue as far as it will go; the rest waits here.
		for len(pending) > 0 {
			if err = seq.TryEnqueue(pending[0]); err != nil {
				break
			}
			pending = pending[1:]
		}

		<-tick.C
		seq.Step()
	}

	if console {
		_, _ = os.Stdout.WriteString("\n")
	}
}
