package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBankOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		b    int16
		bank int
		slot int
	}){
		{0, 0, 0},
		{15, 0, 15},
		{16, 1, 0},
		{32, 2, 0},
		{80, 5, 0},
		{1023, 63, 15},
		{1024, 0, 0},
		{-1, 63, 15},
		{-16, 63, 0},
		{-17, 62, 15},
		{-0x8000, 0, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.bank, bankOf(entry.b), entry.b)
		assert.Equal(entry.slot, slotOf(entry.b), entry.b)
	}
}

func TestState_SelectBank(t *testing.T) {
	assert := assert.New(t)

	var st State
	st.Reset()

	st.Bank[4] = 11
	st.SelectBank(0)
	assert.Equal(int16(0), st.Ram[0][4], "same bank is not written back")

	st.SelectBank(9)
	assert.Equal(9, st.BankIndex)
	assert.Equal(int16(11), st.Ram[0][4])
	assert.Equal(int16(0), st.Bank[4])

	st.Bank[1] = 22
	mem := st.Memory()
	assert.Equal(int16(11), mem[4])
	assert.Equal(int16(22), mem[9*BANK_SIZE+1])
	assert.Equal(int16(0), st.Ram[9][1], "window not yet written back")

	st.SelectBank(0)
	assert.Equal(int16(22), st.Ram[9][1])
	assert.Equal(int16(11), st.Bank[4])
	assert.Equal(mem, st.Memory())
}

func TestState_Reset(t *testing.T) {
	assert := assert.New(t)

	st := State{
		Program:    ParseProgram("LAL 1\nSTP"),
		Ip:         2,
		ClockCycle: 9,
		A:          1,
		B:          2,
		BankIndex:  4,
	}
	st.Cache[3] = 3
	st.Ram[4][5] = 6
	st.Bank[1] = 7
	st.Inputs[2] = 8

	st.Reset()

	assert.Equal(2, len(st.Program))
	assert.Equal(int16(8), st.Inputs[2])
	assert.True(st.Running)
	assert.Equal(0, st.Ip)
	assert.Equal(0, st.ClockCycle)
	assert.Equal(int16(0), st.A)
	assert.Equal(int16(0), st.B)
	assert.Equal(0, st.BankIndex)
	assert.Equal([RAM_SIZE]int16{}, st.Memory())
	assert.Equal([CACHE_SIZE]int16{}, st.Cache)
}

func TestState_Current(t *testing.T) {
	assert := assert.New(t)

	st := State{Program: ParseProgram("LAL 1\nSTP")}

	assert.Equal(OP_LAL, st.Current().Op)
	st.Ip = 1
	assert.Equal(OP_STP, st.Current().Op)
	st.Ip = 2
	assert.Equal(Terminator, st.Current())
	st.Ip = -1
	assert.Equal(Terminator, st.Current())
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	var st State
	st.Reset()
	st.A = -5

	text := st.String()
	assert.Contains(text, "   ip: 0 (running)\n")
	assert.Contains(text, "    a: -5\n")
	assert.Contains(text, "clock: 0\n")
}
