package machine

import (
	"log"
)

// Output is a value written to an output register.
type Output struct {
	Register int
	Value    int16
}

// Engine executes a program against the machine state and display.
type Engine struct {
	Verbose bool // Set to enable verbose logging.

	State           // Machine state.
	Display Display // Lamp display.

	Outputs     []Output // Output register history, oldest first.
	Position    Position // Most recent screen position written.
	HasPosition bool     // Set once a screen position has been written.
}

// NewEngine creates an engine for the program text, ready to run.
func NewEngine(text string) (eng *Engine, err error) {
	prog := ParseProgram(text)
	err = prog.Validate()
	if err != nil {
		return
	}

	eng = &Engine{}
	eng.Program = prog
	eng.Reset()

	return
}

// Reset the engine to run the program from the start. The program and the
// input registers are kept.
func (eng *Engine) Reset() {
	if eng.Verbose {
		log.Printf("engine: reset")
	}

	eng.State.Reset()
	eng.Display.Reset()
	eng.Outputs = nil
	eng.Position = Position{}
	eng.HasPosition = false
}

// SetInput sets an input register.
func (eng *Engine) SetInput(index int, value int16) (err error) {
	if index < 0 || index >= len(eng.Inputs) {
		err = IndexFault{Table: "input", Index: index}
		return
	}

	eng.Inputs[index] = value
	return
}

// LastOutput finds the most recent value written to an output register.
func (eng *Engine) LastOutput(register int) (out Output, ok bool) {
	for n := len(eng.Outputs) - 1; n >= 0; n-- {
		if eng.Outputs[n].Register == register {
			out = eng.Outputs[n]
			ok = true
			return
		}
	}

	return
}

// Step executes the instruction at the instruction pointer, and returns the
// instruction that will execute next. Once the instruction pointer is past
// the end of the program the machine stops, and the terminator is returned.
//
// If the instruction faults the machine stops with the instruction pointer
// on the faulting instruction, and nothing else is changed.
//
// Step does not check Running; callers should not step a stopped machine.
func (eng *Engine) Step() (next Instruction, err error) {
	ip := eng.Ip
	if ip < 0 || ip >= len(eng.Program) {
		eng.Running = false
		next = Terminator
		return
	}

	ins := eng.Program[ip]
	if eng.Verbose {
		log.Printf("%02d: %v", ip, ins)
	}

	eng.Ip++

	err = eng.Execute(ins)
	if err != nil {
		eng.Ip = ip
		eng.Running = false
		err = &ErrExecute{Ip: ip, Instruction: ins, Err: err}
		return
	}

	eng.ClockCycle++

	if eng.Ip < 0 || eng.Ip >= len(eng.Program) {
		eng.Running = false
	}

	next = eng.Current()
	return
}

// Execute executes a single instruction. On error, the state is unchanged.
func (eng *Engine) Execute(ins Instruction) (err error) {
	op := ins.Op
	arg := ins.Arg

	if op.NeedsArgument() && !ins.HasArg {
		err = ErrArgumentMissing
		return
	}

	if ins.IsInput() {
		index := arg % OUTPUT_COUNT
		if index < 0 || index >= len(eng.Inputs) {
			err = IndexFault{Table: "input", Index: index}
			return
		}
		if op == OP_LA {
			eng.A = eng.Inputs[index]
		} else {
			eng.B = eng.Inputs[index]
		}
		return
	}

	switch op {
	case OP_NOP:
		// pass
	case OP_LA, OP_LB:
		var value int16
		value, err = eng.cache(arg)
		if err != nil {
			return
		}
		if op == OP_LA {
			eng.A = value
		} else {
			eng.B = value
		}
	case OP_LAL:
		eng.A = int16(arg & 0xff)
	case OP_LAH:
		eng.A |= int16(uint16(arg << 8))
	case OP_LBL:
		eng.B = int16(arg & 0xff)
	case OP_LBH:
		eng.B |= int16(uint16(arg << 8))
	case OP_SVA:
		if arg < 0 {
			err = IndexFault{Table: "cache", Index: arg}
			return
		}
		if arg/CACHE_SIZE != 0 {
			err = eng.emit(arg%OUTPUT_COUNT, eng.A)
			return
		}
		eng.Cache[arg] = eng.A
	case OP_STP:
		eng.Running = false
	case OP_ADD:
		eng.A += eng.B
	case OP_SUB:
		eng.A -= eng.B
	case OP_AND:
		eng.A &= eng.B
	case OP_OR:
		eng.A |= eng.B
	case OP_XOR:
		eng.A ^= eng.B
	case OP_SUP:
		eng.A <<= shiftOf(ins)
	case OP_SDN:
		eng.A >>= shiftOf(ins)
	case OP_MUL:
		eng.A *= eng.B
	case OP_INB:
		eng.B++
	case OP_RW:
		eng.Bank[slotOf(eng.B)] = eng.A
	case OP_RR:
		eng.A = eng.Bank[slotOf(eng.B)]
	case OP_RC:
		eng.SelectBank(bankOf(eng.B))
	case OP_JMP:
		eng.Ip = arg
	case OP_JE:
		if eng.A == eng.B {
			eng.Ip = arg
		}
	case OP_JNE:
		if eng.A != eng.B {
			eng.Ip = arg
		}
	case OP_JG:
		if eng.A > eng.B {
			eng.Ip = arg
		}
	case OP_JL:
		if eng.A < eng.B {
			eng.Ip = arg
		}
	case OP_JGE:
		if eng.A >= eng.B {
			eng.Ip = arg
		}
	case OP_JLE:
		if eng.A <= eng.B {
			eng.Ip = arg
		}
	default:
		err = ErrInstructionInvalid
		return
	}

	return
}

// shiftOf returns the shift count of a SUP or SDN; one if no argument.
func shiftOf(ins Instruction) uint {
	if !ins.HasArg {
		return 1
	}

	return uint(ins.Arg)
}

// cache reads a cache slot.
func (eng *Engine) cache(index int) (value int16, err error) {
	if index < 0 || index >= len(eng.Cache) {
		err = IndexFault{Table: "cache", Index: index}
		return
	}

	value = eng.Cache[index]
	return
}

// emit writes a value to an output register, applying the display side
// effects of the screen registers.
func (eng *Engine) emit(register int, value int16) (err error) {
	switch register {
	case REGISTER_SCREEN_OP:
		if !eng.HasPosition {
			err = DisplayProtocolFault{Value: value}
			return
		}
		op := ScreenOp(value)
		ok := eng.Display.Apply(op, eng.Position)
		if eng.Verbose {
			if ok {
				log.Printf("screen: %v at %+v", op, eng.Position)
			} else {
				log.Printf("screen: ignoring op %d", value)
			}
		}
	case REGISTER_SCREEN_POS:
		eng.Position = DecodePosition(value)
		eng.HasPosition = true
	}

	if eng.Verbose {
		log.Printf("output: %d <- %d", register, value)
	}

	eng.Outputs = append(eng.Outputs, Output{Register: register, Value: value})

	return
}
