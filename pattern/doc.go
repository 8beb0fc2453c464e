// Package pattern implements the on/off step encoding consumed by the
// sequencer.
//
// A Pattern packs up to 32 ordered binary steps into a single uint32,
// together with a count of how many are meaningful. Literals read left to
// right: FromBits(0b1000, 4) is one step on followed by three steps off.
// Patterns are plain values with no shared state; all constructors are pure
// and allocation-free, and Step mutates only the copy it is called on, so
// catalogue patterns stay immutable.
package pattern
