// Package io provides the host devices of the redstone emulator: word
// channels that feed the input registers and record the output registers
// (Tape, Rom), and the text renderer for the lamp display (Screen).
package io

import (
	"iter"

	"github.com/ezrec/redstone/machine"
)

// Channel defines the interface for all I/O channels.
// Channels receive input register values, and are sent output register
// writes.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields input values from the channel.
	Receive() iter.Seq[int16]
	// Send records an output register write.
	Send(out machine.Output) error
}
