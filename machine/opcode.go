package machine

// Mnemonic is an instruction operation.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_INVALID = Mnemonic(0)  // ?
	OP_NOP     = Mnemonic(1)  // nop
	OP_LA      = Mnemonic(2)  // LA
	OP_LB      = Mnemonic(3)  // LB
	OP_LAL     = Mnemonic(4)  // LAL
	OP_LAH     = Mnemonic(5)  // LAH
	OP_LBL     = Mnemonic(6)  // LBL
	OP_LBH     = Mnemonic(7)  // LBH
	OP_SVA     = Mnemonic(8)  // SVA
	OP_STP     = Mnemonic(9)  // STP
	OP_ADD     = Mnemonic(10) // ADD
	OP_SUB     = Mnemonic(11) // SUB
	OP_AND     = Mnemonic(12) // AND
	OP_OR      = Mnemonic(13) // OR
	OP_XOR     = Mnemonic(14) // XOR
	OP_SUP     = Mnemonic(15) // SUP
	OP_SDN     = Mnemonic(16) // SDN
	OP_MUL     = Mnemonic(17) // MUL
	OP_INB     = Mnemonic(18) // INB
	OP_RW      = Mnemonic(19) // RW
	OP_RR      = Mnemonic(20) // RR
	OP_RC      = Mnemonic(21) // RC
	OP_JMP     = Mnemonic(22) // JMP
	OP_JE      = Mnemonic(23) // JE
	OP_JNE     = Mnemonic(24) // JNE
	OP_JG      = Mnemonic(25) // JG
	OP_JL      = Mnemonic(26) // JL
	OP_JGE     = Mnemonic(27) // JGE
	OP_JLE     = Mnemonic(28) // JLE
)

// mnemonicMap maps instruction text to its operation.
var mnemonicMap = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, OP_JLE-OP_LA+1)
	for op := OP_LA; op <= OP_JLE; op++ {
		m[op.String()] = op
	}
	return m
}()

// LookupMnemonic returns the operation for an instruction name. The empty
// name is the no-op terminator; unknown names are OP_INVALID.
func LookupMnemonic(name string) Mnemonic {
	if len(name) == 0 {
		return OP_NOP
	}

	op, ok := mnemonicMap[name]
	if !ok {
		return OP_INVALID
	}

	return op
}

// NeedsArgument returns true if the operation cannot execute without an argument.
func (op Mnemonic) NeedsArgument() bool {
	switch op {
	case OP_LA, OP_LB, OP_LAL, OP_LAH, OP_LBL, OP_LBH, OP_SVA,
		OP_JMP, OP_JE, OP_JNE, OP_JG, OP_JL, OP_JGE, OP_JLE:
		return true
	}

	return false
}

// ScreenOp is a display operation written to output register 6.
type ScreenOp int

//go:generate go tool stringer -linecomment -type=ScreenOp
const (
	SCREEN_OP_REFRESH = ScreenOp(1)  // refresh
	SCREEN_OP_RESET   = ScreenOp(2)  // reset
	SCREEN_OP_ON      = ScreenOp(4)  // on
	SCREEN_OP_TOGGLE  = ScreenOp(8)  // toggle
	SCREEN_OP_OFF     = ScreenOp(16) // off
)
