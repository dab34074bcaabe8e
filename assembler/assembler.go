package assembler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/redstone/internal"
	"github.com/ezrec/redstone/machine"
)

// Macro represents a macro definition.
type Macro struct {
	LineNo int      // Line number of the first line of the macro body.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":        "0",
	"CACHE_SIZE":    strconv.Itoa(machine.CACHE_SIZE),
	"BANK_SIZE":     strconv.Itoa(machine.BANK_SIZE),
	"BANK_COUNT":    strconv.Itoa(machine.BANK_COUNT),
	"INPUT_COUNT":   strconv.Itoa(machine.INPUT_COUNT),
	"OUTPUT_COUNT":  strconv.Itoa(machine.OUTPUT_COUNT),
	"SCREEN_WIDTH":  strconv.Itoa(machine.SCREEN_WIDTH),
	"SCREEN_HEIGHT": strconv.Itoa(machine.SCREEN_HEIGHT),
}

// aliasMap maps register aliases to LA, LB and SVA arguments.
var aliasMap = func() (aliases map[string]string) {
	aliases = map[string]string{
		"@screenop":  strconv.Itoa(machine.CACHE_SIZE + machine.REGISTER_SCREEN_OP),
		"@screenpos": strconv.Itoa(machine.CACHE_SIZE + machine.REGISTER_SCREEN_POS),
	}
	for n := range machine.INPUT_COUNT {
		aliases[fmt.Sprintf("@in%d", n)] = strconv.Itoa(machine.CACHE_SIZE + n)
	}
	for n := range machine.OUTPUT_COUNT {
		aliases[fmt.Sprintf("@out%d", n)] = strconv.Itoa(machine.CACHE_SIZE + n)
	}
	return
}()

// screenOpMap maps screen operation names to their register 6 values.
var screenOpMap = map[string]string{
	"!refresh": strconv.Itoa(int(machine.SCREEN_OP_REFRESH)),
	"!reset":   strconv.Itoa(int(machine.SCREEN_OP_RESET)),
	"!on":      strconv.Itoa(int(machine.SCREEN_OP_ON)),
	"!toogle":  strconv.Itoa(int(machine.SCREEN_OP_TOGGLE)),
	"!toggle":  strconv.Itoa(int(machine.SCREEN_OP_TOGGLE)),
	"!off":     strconv.Itoa(int(machine.SCREEN_OP_OFF)),
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass macro assembler for redstone programs.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of jump labels to instruction indexes.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
	Variable  map[string]int      // Map of variable names to cache slots.

	expanding  map[string]bool // Macros being expanded.
	expansions int             // Count of macro expansions.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Defines returns an iterator over all of the predefined symbols.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	equates := maps.Clone(sysEquate)
	maps.Copy(equates, asm.predefine)

	return internal.IterSeq2Concat(
		internal.IterSeq2Sorted(aliasMap),
		internal.IterSeq2Sorted(screenOpMap),
		internal.IterSeq2Sorted(equates),
	)
}

// valueOf returns the value of a numeric word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil || v64 < 0 {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// decodeWord expands a variable, register alias or screen operation symbol.
func (asm *Assembler) decodeWord(word string) (decoded string, err error) {
	decoded = word

	switch {
	case strings.HasPrefix(word, "$"):
		if len(word) == 1 {
			err = ErrSymbolUnknown(word)
			return
		}
		slot, ok := asm.Variable[word]
		if !ok {
			slot = len(asm.Variable)
			if slot >= machine.CACHE_SIZE {
				err = ErrVariableLimit
				return
			}
			asm.Variable[word] = slot
		}
		decoded = strconv.Itoa(slot)
	case strings.HasPrefix(word, "@"):
		value, ok := aliasMap[word]
		if !ok {
			err = ErrSymbolUnknown(word)
			return
		}
		decoded = value
	case strings.HasPrefix(word, "!"):
		value, ok := screenOpMap[word]
		if !ok {
			err = ErrSymbolUnknown(word)
			return
		}
		decoded = value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands a single line into the words of an instruction.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.Itoa(value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if len(label) == 0 {
			err = ErrLabelSyntax
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentIp()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		if asm.expanding[name] {
			err = ErrMacroRecursion
			return
		}
		asm.expanding[name] = true

		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() {
			asm.Equate = old_equate
			delete(asm.expanding, name)
		}()

		asm.expansions++
		prefix := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, body := range macro.Lines {
			lineno := macro.LineNo + n

			body = strings.ReplaceAll(body, "@@", prefix)
			var body_words []string
			body_words, err = asm.parseLine(body, lineno)
			if err == nil {
				err = asm.parseWords(body_words, lineno)
			}
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentIp gets the index of the next instruction.
func (asm *Assembler) currentIp() int {
	return len(asm.Opcode)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Label = make(map[string]int)
	asm.Macro = make(map[string](*Macro))
	asm.Variable = make(map[string]int)
	asm.expanding = make(map[string]bool)
	asm.expansions = 0
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}

		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
				Args:   words[2:],
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		ip, ok := asm.Label[op.LinkLabel]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		op.Instruction.Arg = ip
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords assembles the words of a line into an instruction.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	if len(words) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	op := machine.LookupMnemonic(words[0])
	if op == machine.OP_INVALID {
		err = ErrInstructionInvalid
		return
	}

	ins := machine.Instruction{Name: words[0], Op: op}

	var label string
	if len(words) == 2 {
		ins.HasArg = true
		arg := words[1]
		if strings.HasPrefix(arg, "->") {
			label = arg[2:]
			if len(label) == 0 {
				err = ErrLabelSyntax
				return
			}
		} else {
			arg, err = asm.decodeWord(arg)
			if err != nil {
				return
			}
			ins.Arg, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			words = []string{words[0], arg}
		}
	}

	if op.NeedsArgument() && !ins.HasArg {
		err = ErrArgumentMissing
		return
	}

	ip := asm.currentIp()
	if asm.Verbose {
		log.Printf("%02d: %v", ip, ins)
	}

	opcode := Opcode{LineNo: lineno, Ip: ip, Words: words, Instruction: ins, LinkLabel: label}
	asm.Opcode = append(asm.Opcode, opcode)

	return
}
