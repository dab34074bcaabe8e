package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/ezrec/redstone/machine"
)

// Tape provides sequential I/O on byte streams. Input is read as whitespace
// separated numbers, output register writes are written one per line as
// "REGISTER: VALUE".
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Err returns the first error encountered while reading the input.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields numbers from the input stream,
// until it is exhausted or a word is not a 16-bit number.
func (tc *Tape) Receive() iter.Seq[int16] {
	return func(yield func(value int16) bool) {
		if tc.Input == nil || tc.err != nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(bufio.ScanWords)
		}
		for tc.scanner.Scan() {
			word := tc.scanner.Text()
			value, err := strconv.ParseInt(word, 0, 16)
			if err != nil {
				tc.err = ErrTapeValue(word)
				return
			}
			if !yield(int16(value)) {
				return
			}
		}
		tc.err = tc.scanner.Err()
	}
}

// Send writes an output register write to the output stream.
func (tc *Tape) Send(out machine.Output) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d: %d\n", out.Register, out.Value)
	return
}
