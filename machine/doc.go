// Package machine implements the redstone computer.
//
// The machine has two 16-bit signed accumulators (A and B), 32 directly
// addressable cache slots, 1024 words of RAM visible one 16-word bank at a
// time through the loaded bank window, eight host-supplied input registers,
// and 32 output registers. Output registers 6 and 7 drive a 64x64 lamp
// display: register 7 latches the lamp position, register 6 applies a
// screen operation at that position.
//
// Programs are newline separated plain text, one "MNEMONIC" or
// "MNEMONIC ARG" per line. The Engine executes them one instruction per Step.
package machine
