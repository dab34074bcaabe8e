package machine

import (
	"fmt"
	"strings"
)

const (
	CACHE_SIZE   = 32                     // Directly addressable cache slots.
	BANK_SIZE    = 16                     // Words per RAM bank.
	BANK_COUNT   = 64                     // Number of RAM banks.
	RAM_SIZE     = BANK_SIZE * BANK_COUNT // Words of RAM.
	INPUT_COUNT  = 8                      // Host supplied input registers.
	OUTPUT_COUNT = 32                     // Output registers.

	REGISTER_SCREEN_OP  = 6 // Output register for screen operations.
	REGISTER_SCREEN_POS = 7 // Output register for the screen position.
)

// State is the complete mutable state of the machine, less the display.
type State struct {
	Program    Program // Program listing.
	Ip         int     // Instruction pointer.
	ClockCycle int     // Completed steps since reset.

	A int16 // Accumulator A.
	B int16 // Accumulator B.

	Cache     [CACHE_SIZE]int16            // Cache slots.
	Ram       [BANK_COUNT][BANK_SIZE]int16 // Main memory, by bank.
	Bank      [BANK_SIZE]int16             // Loaded bank window.
	BankIndex int                          // Bank mirrored by the window.

	Running bool               // Cleared by STP, a fault, or running off the program.
	Inputs  [INPUT_COUNT]int16 // Host supplied input registers.
}

// Reset clears all state except the program and the inputs, and marks the
// machine as running from the first instruction.
func (st *State) Reset() {
	st.Ip = 0
	st.ClockCycle = 0
	st.A = 0
	st.B = 0
	clear(st.Cache[:])
	for n := range st.Ram {
		clear(st.Ram[n][:])
	}
	clear(st.Bank[:])
	st.BankIndex = 0
	st.Running = true
}

// bankOf returns the RAM bank selected by a B register value.
func bankOf(b int16) int {
	// Unsigned view gives floor division for negative values.
	return int(uint16(b)/BANK_SIZE) % BANK_COUNT
}

// slotOf returns the loaded bank slot selected by a B register value.
func slotOf(b int16) int {
	return int(uint16(b) % BANK_SIZE)
}

// SelectBank repoints the loaded bank window, first writing the current
// window back to RAM. Selecting the loaded bank does nothing.
func (st *State) SelectBank(bank int) {
	if bank == st.BankIndex {
		return
	}

	st.Ram[st.BankIndex] = st.Bank
	st.Bank = st.Ram[bank]
	st.BankIndex = bank
}

// Memory returns a copy of RAM as seen by the machine, with the loaded
// window folded in at its bank.
func (st *State) Memory() (ram [RAM_SIZE]int16) {
	for bank := range st.Ram {
		words := st.Ram[bank]
		if bank == st.BankIndex {
			words = st.Bank
		}
		copy(ram[bank*BANK_SIZE:], words[:])
	}

	return
}

// Current returns the instruction at the instruction pointer, or the
// terminator if the pointer is outside of the program.
func (st *State) Current() Instruction {
	if st.Ip < 0 || st.Ip >= len(st.Program) {
		return Terminator
	}

	return st.Program[st.Ip]
}

// String returns the register state as a string.
func (st *State) String() (text string) {
	var sb strings.Builder

	running := "stopped"
	if st.Running {
		running = "running"
	}

	fmt.Fprintf(&sb, "%5s: %d (%v)\n", "ip", st.Ip, running)
	fmt.Fprintf(&sb, "%5s: %d\n", "clock", st.ClockCycle)
	fmt.Fprintf(&sb, "%5s: %d\n", "a", st.A)
	fmt.Fprintf(&sb, "%5s: %d\n", "b", st.B)
	fmt.Fprintf(&sb, "%5s: %d %v\n", "bank", st.BankIndex, st.Bank)
	fmt.Fprintf(&sb, "%5s: %v\n", "cache", st.Cache)
	fmt.Fprintf(&sb, "%5s: %v\n", "input", st.Inputs)

	text = sb.String()
	return
}
