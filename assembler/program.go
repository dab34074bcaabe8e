package assembler

import (
	"iter"
	"strings"

	"github.com/ezrec/redstone/machine"
)

// Opcode is an assembled instruction, and where it came from.
type Opcode struct {
	LineNo      int                 // Source line number.
	Ip          int                 // Instruction index in the program.
	Words       []string            // Source words, after expansion.
	Instruction machine.Instruction // Assembled instruction.
	LinkLabel   string              // Jump label resolved into the argument.
}

// Program is an assembled program.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode at an instruction index, or nil if there is none.
func (prog *Program) Debug(ip int) (op *Opcode) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Ip == ip {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Instructions iterates over the assembled instructions by index.
func (prog *Program) Instructions() iter.Seq2[int, machine.Instruction] {
	return func(yield func(ip int, ins machine.Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Instruction) {
				return
			}
		}
	}
}

// Machine returns the assembled instructions as a machine program.
func (prog *Program) Machine() (mp machine.Program) {
	mp = make(machine.Program, 0, len(prog.Opcodes))
	for _, ins := range prog.Instructions() {
		mp = append(mp, ins)
	}

	return
}

// Text returns the plain program text, one instruction per line.
func (prog *Program) Text() string {
	lines := make([]string, 0, len(prog.Opcodes))
	for _, ins := range prog.Instructions() {
		lines = append(lines, ins.Format())
	}

	return strings.Join(lines, "\n")
}
