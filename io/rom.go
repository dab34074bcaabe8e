package io

import (
	"iter"

	"github.com/ezrec/redstone/machine"
)

// Rom is a read-only channel of fixed input values.
type Rom struct {
	Data []int16

	index int
}

var _ Channel = (*Rom)(nil)

// Rewind restarts reading from the first value.
func (rc *Rom) Rewind() {
	rc.index = 0
}

// Receive returns an iterator that yields the values not yet read.
func (rc *Rom) Receive() iter.Seq[int16] {
	return func(yield func(value int16) bool) {
		for rc.index < len(rc.Data) {
			value := rc.Data[rc.index]
			rc.index++
			if !yield(value) {
				return
			}
		}
	}
}

// Send fails, as a Rom can not be written.
func (rc *Rom) Send(out machine.Output) error {
	return ErrChannelFull
}
