package sequencer

import (
	"errors"

	"github.com/jamesmunns/blinq/translate"
)

var f = translate.From

var (
	// Queue errors
	ErrQueueFull = errors.New(f("queue full"))
)
