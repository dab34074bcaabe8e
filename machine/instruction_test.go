package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line     string
		expected Instruction
	}){
		{"", Terminator},
		{"   ", Terminator},
		{"STP", Instruction{Name: "STP", Op: OP_STP}},
		{"LAL 5", Instruction{Name: "LAL", Arg: 5, HasArg: true, Op: OP_LAL}},
		{"  JMP   12  ", Instruction{Name: "JMP", Arg: 12, HasArg: true, Op: OP_JMP}},
		{"SVA 39", Instruction{Name: "SVA", Arg: 39, HasArg: true, Op: OP_SVA}},
		{"SVA $x", Instruction{Name: "SVA", Arg: 0, HasArg: true, Op: OP_SVA}},
		{"JMP ->loop", Instruction{Name: "JMP", Arg: 0, HasArg: true, Op: OP_JMP}},
		{"LA -3", Instruction{Name: "LA", Arg: 0, HasArg: true, Op: OP_LA}},
		{"LA 99999999999999999999999", Instruction{Name: "LA", Arg: 0, HasArg: true, Op: OP_LA}},
		{"LB 4 extra words", Instruction{Name: "LB", Arg: 4, HasArg: true, Op: OP_LB}},
		{"lal 5", Instruction{Name: "lal", Arg: 5, HasArg: true, Op: OP_INVALID}},
		{"NOP", Instruction{Name: "NOP", Op: OP_INVALID}},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, Parse(entry.line), entry.line)
	}
}

func TestInstruction_IsInput(t *testing.T) {
	assert := assert.New(t)

	assert.False(Parse("LA").IsInput())
	assert.False(Parse("LB").IsInput())
	for arg := range 32 {
		assert.False(Instruction{Name: "LA", Arg: arg, HasArg: true, Op: OP_LA}.IsInput(), arg)
		assert.False(Instruction{Name: "LB", Arg: arg, HasArg: true, Op: OP_LB}.IsInput(), arg)
	}
	for arg := 32; arg < 256; arg++ {
		assert.True(Instruction{Name: "LA", Arg: arg, HasArg: true, Op: OP_LA}.IsInput(), arg)
		assert.True(Instruction{Name: "LB", Arg: arg, HasArg: true, Op: OP_LB}.IsInput(), arg)
	}

	assert.False(Parse("LAL 40").IsInput())
	assert.False(Parse("SVA 40").IsInput())
	assert.False(Parse("LBH 33").IsInput())
}

func TestInstruction_Format(t *testing.T) {
	assert := assert.New(t)

	lines := []string{
		"",
		"STP",
		"ADD",
		"LAL 255",
		"SVA 38",
		"JLE 0",
		"UNKNOWN 7",
	}

	for _, line := range lines {
		assert.Equal(line, Parse(line).Format())
	}

	// The placeholder fallback does not round trip.
	assert.Equal("SVA 0", Parse("SVA @screenop").Format())
}

func TestProgram(t *testing.T) {
	assert := assert.New(t)

	prog := ParseProgram("LAL 5\nLBL 3\n\nADD\r\nSVA 38")
	assert.Equal(5, len(prog))
	assert.Equal(OP_LAL, prog[0].Op)
	assert.Equal(Terminator, prog[2])
	assert.Equal(OP_ADD, prog[3].Op)
	assert.NoError(prog.Validate())
	assert.Equal("LAL 5\nLBL 3\n\nADD\nSVA 38", prog.Text())

	// Trailing newline keeps a trailing empty line.
	prog = ParseProgram("STP\n")
	assert.Equal(2, len(prog))
	assert.Equal("STP\n", prog.Text())
}

func TestProgram_Validate(t *testing.T) {
	assert := assert.New(t)

	prog := ParseProgram("LAL 5\nLBL 3\nADDX\nSTP")
	err := prog.Validate()
	assert.True(errors.Is(err, ErrInstructionInvalid))

	var syntax ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(3, syntax.LineNo)
		assert.Equal("ADDX", syntax.Line)
	}
}

func TestLookupMnemonic(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(OP_NOP, LookupMnemonic(""))
	assert.Equal(OP_INVALID, LookupMnemonic("nop"))
	assert.Equal(OP_INVALID, LookupMnemonic("?"))
	for op := OP_LA; op <= OP_JLE; op++ {
		assert.Equal(op, LookupMnemonic(op.String()))
	}
	assert.Equal("JGE", OP_JGE.String())
	assert.Equal("Mnemonic(99)", Mnemonic(99).String())
	assert.Equal("toggle", SCREEN_OP_TOGGLE.String())
	assert.Equal("ScreenOp(3)", ScreenOp(3).String())
}
