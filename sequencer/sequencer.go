package sequencer

import (
	"github.com/jamesmunns/blinq/pattern"
)

// Pin is the binary output driven by a Sequencer. Implementations report
// failure through the returned error; the sequencer never inspects it
// beyond nil-ness.
type Pin interface {
	SetHigh() error
	SetLow() error
}

// Sequencer plays queued patterns on a Pin, one step per call.
//
// The Pin is exclusively owned: nothing else may drive it while the
// sequencer is alive. Construct with New; the zero value has no pin.
type Sequencer struct {
	queue     Queue
	current   pattern.Pattern
	playing   bool
	step      int
	pin       Pin
	activeLow bool
}

// New returns an idle sequencer owning pin, with room for capacity queued
// patterns (DefaultCapacity when capacity is zero or negative). The pin is
// driven to its inactive level immediately; an error from that first write
// is discarded.
func New(pin Pin, activeLow bool, capacity int) *Sequencer {
	s := &Sequencer{
		queue:     Queue{Capacity: capacity},
		pin:       pin,
		activeLow: activeLow,
	}
	_ = s.drive(false)

	return s
}

// Enqueue adds a pattern at the tail of the queue. If the queue is full
// the pattern is silently dropped.
func (s *Sequencer) Enqueue(p pattern.Pattern) {
	_ = s.TryEnqueue(p)
}

// TryEnqueue adds a pattern at the tail of the queue, or returns
// ErrQueueFull leaving the queue unchanged.
func (s *Sequencer) TryEnqueue(p pattern.Pattern) error {
	return s.queue.Push(p)
}

// Step advances the sequencer by one step and drives the pin, discarding
// any pin error.
//
// The sequencer has no concept of time; call Step at the rate one step
// should last. For the pattern 0b10 to be a 1 Hz blink, call Step every
// 500ms.
func (s *Sequencer) Step() {
	_ = s.TryStep()
}

// TryStep advances the sequencer by one step and drives the pin,
// propagating any pin error. The queue and cursor advance before the pin
// is written, so a failing pin never stalls the sequence; only the
// caller's view of the physical pin is affected.
//
// With no active pattern, the head of the queue becomes active, skipping
// zero-length entries. With nothing left to play, the pin is driven to its
// inactive level.
func (s *Sequencer) TryStep() error {
	if !s.playing {
		for {
			p, ok := s.queue.Pop()
			if !ok {
				break
			}
			if p.Len() != 0 {
				s.current = p
				s.playing = true
				s.step = 0
				break
			}
		}
	}

	state := false
	if s.playing {
		state = s.current.Step()
		s.step++
		if s.step >= s.current.Len() {
			s.playing = false
			s.step = 0
		}
	}

	// Drive the pin last, so an error cannot leave internal state behind.
	return s.drive(state)
}

// Idle reports whether there is nothing left to play: no active pattern
// and an empty queue.
func (s *Sequencer) Idle() bool {
	return !s.playing && s.queue.Empty()
}

// drive maps a logical state through the polarity flag and writes the pin.
func (s *Sequencer) drive(state bool) error {
	if state != s.activeLow {
		return s.pin.SetHigh()
	}
	return s.pin.SetLow()
}
