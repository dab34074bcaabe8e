package assembler

import (
	"errors"

	"github.com/ezrec/redstone/machine"
	"github.com/ezrec/redstone/translate"
)

var f = translate.From

// ErrSyntax locates an assembly error at its source line.
type ErrSyntax = machine.ErrSyntax

var (
	ErrArgumentMissing    = machine.ErrArgumentMissing
	ErrInstructionInvalid = machine.ErrInstructionInvalid

	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelSyntax     = errors.New(f("label syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrMacroRecursion  = errors.New(f(".macro expands itself"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
	ErrVariableLimit   = errors.New(f("too many variables"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSymbolUnknown string

func (err ErrSymbolUnknown) Error() string {
	return f("symbol '%v' unknown", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
