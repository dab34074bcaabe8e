package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is a single parsed line of program text.
type Instruction struct {
	Name   string   // Mnemonic text, as written.
	Arg    int      // Argument, valid only if HasArg is set.
	HasArg bool     // Set if the line carried an argument.
	Op     Mnemonic // Decoded operation.
}

// Terminator is the empty instruction returned once execution runs off the
// end of the program.
var Terminator = Instruction{Op: OP_NOP}

// Parse parses a line of program text.
//
// A second word that is not a plain decimal number is taken as 0, so that
// symbolic placeholders left in the text still load. Any further words are
// ignored.
func Parse(line string) (ins Instruction) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Terminator
	}

	ins.Name = words[0]
	ins.Op = LookupMnemonic(ins.Name)

	if len(words) > 1 {
		ins.HasArg = true
		if isDecimal(words[1]) {
			arg, err := strconv.Atoi(words[1])
			if err == nil {
				ins.Arg = arg
			}
		}
	}

	return
}

// isDecimal returns true if word is made only of the digits 0-9.
func isDecimal(word string) bool {
	if len(word) == 0 {
		return false
	}

	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// IsInput returns true if the instruction reads an input register rather
// than a cache slot.
func (ins Instruction) IsInput() bool {
	return (ins.Op == OP_LA || ins.Op == OP_LB) && ins.HasArg && ins.Arg/CACHE_SIZE != 0
}

// Valid returns true if the instruction is a known operation, or the
// empty terminator.
func (ins Instruction) Valid() bool {
	return ins.Op != OP_INVALID
}

// Format renders the instruction back to program text.
func (ins Instruction) Format() string {
	if ins.HasArg {
		return fmt.Sprintf("%v %d", ins.Name, ins.Arg)
	}

	return ins.Name
}

// String returns the instruction as program text.
func (ins Instruction) String() string {
	return ins.Format()
}

// Program is an ordered list of instructions.
type Program []Instruction

// ParseProgram parses newline separated program text. Every line, blank
// ones included, becomes one instruction.
func ParseProgram(text string) (prog Program) {
	lines := strings.Split(text, "\n")
	prog = make(Program, len(lines))
	for n, line := range lines {
		prog[n] = Parse(strings.TrimSuffix(line, "\r"))
	}

	return
}

// Validate checks that every instruction is a known operation.
func (prog Program) Validate() (err error) {
	for n, ins := range prog {
		if !ins.Valid() {
			err = ErrSyntax{LineNo: n + 1, Line: ins.Format(), Err: ErrInstructionInvalid}
			return
		}
	}

	return
}

// Text renders the program as newline separated program text.
func (prog Program) Text() string {
	lines := make([]string, len(prog))
	for n, ins := range prog {
		lines[n] = ins.Format()
	}

	return strings.Join(lines, "\n")
}
