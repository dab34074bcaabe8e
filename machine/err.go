package machine

import (
	"errors"

	"github.com/ezrec/redstone/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrArgumentMissing    = errors.New(f("argument missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// IndexFault is raised when an instruction addresses a table outside of
// its bounds.
type IndexFault struct {
	Table string // Table being addressed.
	Index int    // Offending index.
}

func (err IndexFault) Error() string {
	return f("%v index %d out of range", err.Table, err.Index)
}

// Is matches any IndexFault.
func (err IndexFault) Is(target error) (ok bool) {
	_, ok = target.(IndexFault)
	return
}

// DisplayProtocolFault is raised when a screen operation is written before
// any screen position was written.
type DisplayProtocolFault struct {
	Value int16 // Screen operation value written to register 6.
}

func (err DisplayProtocolFault) Error() string {
	return f("screen op %d without screen position", err.Value)
}

// Is matches any DisplayProtocolFault.
func (err DisplayProtocolFault) Is(target error) (ok bool) {
	_, ok = target.(DisplayProtocolFault)
	return
}

// ErrExecute locates a fault at the instruction that raised it.
type ErrExecute struct {
	Ip          int
	Instruction Instruction
	Err         error
}

func (err *ErrExecute) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Instruction.Format(), err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an invalid line of program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
