package morse

import (
	"github.com/jamesmunns/blinq/translate"
)

var f = translate.From

// ErrUnknownRune reports a rune with no morse encoding.
type ErrUnknownRune rune

func (err ErrUnknownRune) Error() string {
	return f("no morse encoding for %q", rune(err))
}

func (err ErrUnknownRune) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownRune)
	return
}
