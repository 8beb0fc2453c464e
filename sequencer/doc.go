// Package sequencer drives a single binary output through queued on/off
// patterns, one discrete step per call.
//
// A Sequencer owns its Pin exclusively and has no notion of time: the
// caller invokes Step at whatever cadence suits the pattern, typically from
// a timer loop or periodic interrupt. Everything is synchronous; after
// construction no call allocates, blocks, or performs I/O beyond the single
// pin write per step.
package sequencer
