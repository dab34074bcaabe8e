package emulator

import (
	"errors"
	"io"
	"iter"
	"log"
	"maps"
	"strconv"

	"github.com/ezrec/redstone/assembler"
	"github.com/ezrec/redstone/internal"
	rio "github.com/ezrec/redstone/io"
	"github.com/ezrec/redstone/machine"
)

var _emulator_defines = map[string]string{
	"RAM_SIZE": strconv.Itoa(machine.RAM_SIZE),
}

// Emulator state. Engine + program listing + IO channels.
type Emulator struct {
	Verbose         bool               // If set, enables verbose logging.
	*machine.Engine                    // Reference to the machine engine.
	Program         *assembler.Program // Assembled listing, or nil for plain program text.
	Assembler       assembler.Assembler

	Tape  rio.Tape    // Tape IO channel.
	Rom   rio.Rom     // ROM IO channel.
	Input rio.Channel // Channel feeding input registers when PauseOnInput is set.

	PauseOnInput bool // If set, input registers are fed from Input before each input read.

	next machine.Instruction  // Instruction the next Tick executes.
	sent int                  // Count of outputs sent to the tape.
	pull func() (int16, bool) // Pull iterator over Input.
	stop func()               // Stops the pull iterator.
}

// NewEmulator creates a new emulator, with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Engine: &machine.Engine{},
	}

	emu.Input = &emu.Tape
	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Assembler.Defines(),
	)
}

// Close the emulator
func (emu *Emulator) Close() (err error) {
	emu.stopInput()

	return
}

// Load a plain text program, and reset the emulator.
func (emu *Emulator) Load(text string) (err error) {
	prog := machine.ParseProgram(text)
	err = prog.Validate()
	if err != nil {
		return
	}

	emu.Program = nil
	emu.Engine.Program = prog
	emu.Reset()

	return
}

// Assemble a symbolic program, and reset the emulator.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	emu.Assembler.Verbose = emu.Verbose

	prog, err := emu.Assembler.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Engine.Program = prog.Machine()
	emu.Reset()

	return
}

// Save writes the plain program text. The text has no trailing newline, so
// that it loads back as the same program.
func (emu *Emulator) Save(w io.Writer) (err error) {
	_, err = io.WriteString(w, emu.Engine.Program.Text())
	return
}

// Reset the machine, and rewind the input.
func (emu *Emulator) Reset() {
	emu.Engine.Verbose = emu.Verbose
	emu.Engine.Reset()

	emu.next = emu.Current()
	emu.sent = 0

	emu.stopInput()
	if emu.Input != nil {
		emu.Input.Rewind()
	}
}

// stopInput releases the pull iterator over the input channel.
func (emu *Emulator) stopInput() {
	if emu.stop != nil {
		emu.stop()
	}
	emu.pull = nil
	emu.stop = nil
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	ip := emu.Ip

	if emu.Program != nil {
		op := emu.Program.Debug(ip)
		if op == nil {
			return 0
		}
		return op.LineNo
	}

	if ip < 0 || ip >= len(emu.Engine.Program) {
		return 0
	}

	return ip + 1
}

// feed sets the input register read by an instruction from the next value
// of the input channel.
func (emu *Emulator) feed(ins machine.Instruction) (err error) {
	index := ins.Arg % machine.OUTPUT_COUNT
	if index >= machine.INPUT_COUNT || emu.Input == nil {
		// Faults, or reads the preset value, when executed.
		return
	}

	if emu.pull == nil {
		emu.pull, emu.stop = iter.Pull(emu.Input.Receive())
	}

	value, ok := emu.pull()
	if !ok {
		err = ErrInputExhausted
		if tape, ok := emu.Input.(interface{ Err() error }); ok && tape.Err() != nil {
			err = errors.Join(err, tape.Err())
		}
		return
	}

	if emu.Verbose {
		log.Printf("input: %d <- %d", index, value)
	}

	err = emu.SetInput(index, value)
	return
}

// flush sends new output register writes to the tape.
func (emu *Emulator) flush() (err error) {
	for emu.sent < len(emu.Outputs) {
		err = emu.Tape.Send(emu.Outputs[emu.sent])
		if err != nil {
			return
		}
		emu.sent++
	}

	return
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if !emu.Running {
		done = true
		return
	}

	// Set engine verbosity
	emu.Engine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.PauseOnInput && emu.next.IsInput() {
		err = emu.feed(emu.next)
		if err != nil {
			emu.Running = false
			return
		}
	}

	emu.next, err = emu.Step()
	if err != nil {
		return
	}

	err = emu.flush()
	if err != nil {
		emu.Running = false
		return
	}

	done = !emu.Running
	return
}

// Run ticks the emulator until it stops, or until limit ticks have run if
// limit is positive.
func (emu *Emulator) Run(limit int) (done bool, err error) {
	for n := 0; limit <= 0 || n < limit; n++ {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return
}
