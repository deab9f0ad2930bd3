// isa.go - ENGR 433 instruction table

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import "sort"

// ---------------------------------------------------------------------
// Opcode constants
// ---------------------------------------------------------------------
const (
	OP_LOAD   = 0b00000000
	OP_LOADI0 = 0b00000001
	OP_LOADI1 = 0b00000011
	OP_LOADI2 = 0b00000101
	OP_LOADI3 = 0b00000111
	OP_LOADS0 = 0b00111001
	OP_LOADS1 = 0b00111011
	OP_LOADS2 = 0b00111101
	OP_LOADS3 = 0b00111111
	OP_ADD    = 0b00001000
	OP_ADDI   = 0b00001001
	OP_SHR    = 0b00010001
	OP_SHL    = 0b00011001
	OP_AND    = 0b00100000
	OP_ANDI   = 0b00100001
	OP_OR     = 0b00101000
	OP_ORI    = 0b00101001
	OP_XOR    = 0b00110000
	OP_XORI   = 0b00110001
	OP_STORE  = 0b01000000
	OP_BR     = 0b10000000
	OP_BRZ    = 0b10000100
	OP_BRNZ   = 0b10001000
	OP_BRP    = 0b10001100
	OP_BRN    = 0b10010000
	OP_WAIT   = 0b10111100
	OP_SSEGL  = 0b11000000
	OP_SSEGI  = 0b11000001
	OP_SSEGH  = 0b11000100
	OP_LEDL   = 0b11001000
	OP_LEDH   = 0b11001100
)

// Word layout
const (
	WordBits     = 18
	OperandBits  = 10
	OperandLimit = 1 << OperandBits // immediates are [0, OperandLimit)
	MemoryWords  = 2048

	// Branch opcodes keep their two low bits clear, which widens the
	// displacement to 12 bits.
	BranchBits = 12
	BranchWrap = 1 << BranchBits

	wordMask = 1<<WordBits - 1
)

// OperandClass selects operand syntax and encoding for a mnemonic.
type OperandClass int

const (
	ClassNone      OperandClass = iota // no operand
	ClassImmediate                     // #literal, 10-bit unsigned
	ClassRegister                      // rN
	ClassBranch                        // label, PC-relative
)

func (c OperandClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassImmediate:
		return "immediate"
	case ClassRegister:
		return "register"
	case ClassBranch:
		return "branch"
	}
	return "unknown"
}

// Instruction is one entry of the instruction table.
type Instruction struct {
	Mnemonic string
	Opcode   uint32
	Class    OperandClass
}

// Word returns the instruction word with the given operand field.
func (in Instruction) Word(field uint32) uint32 {
	return in.Opcode<<OperandBits | field
}

var instructions = func() map[string]Instruction {
	m := make(map[string]Instruction)
	add := func(class OperandClass, entries map[string]uint32) {
		for name, op := range entries {
			m[name] = Instruction{Mnemonic: name, Opcode: op, Class: class}
		}
	}
	add(ClassImmediate, map[string]uint32{
		"loadi0": OP_LOADI0, "loadi1": OP_LOADI1, "loadi2": OP_LOADI2, "loadi3": OP_LOADI3,
		"addi": OP_ADDI, "andi": OP_ANDI, "ori": OP_ORI, "xori": OP_XORI,
		"ssegi": OP_SSEGI,
	})
	add(ClassRegister, map[string]uint32{
		"load": OP_LOAD, "add": OP_ADD, "and": OP_AND, "or": OP_OR,
		"xor": OP_XOR, "store": OP_STORE,
	})
	add(ClassBranch, map[string]uint32{
		"br": OP_BR, "brz": OP_BRZ, "brnz": OP_BRNZ, "brp": OP_BRP, "brn": OP_BRN,
	})
	add(ClassNone, map[string]uint32{
		"loads0": OP_LOADS0, "loads1": OP_LOADS1, "loads2": OP_LOADS2, "loads3": OP_LOADS3,
		"shr": OP_SHR, "shl": OP_SHL, "wait": OP_WAIT,
		"ssegl": OP_SSEGL, "ssegh": OP_SSEGH, "ledl": OP_LEDL, "ledh": OP_LEDH,
	})
	return m
}()

// Lookup finds a mnemonic. Matching is exact and case-sensitive.
func Lookup(mnemonic string) (Instruction, bool) {
	in, ok := instructions[mnemonic]
	return in, ok
}

// Mnemonics returns every known mnemonic in sorted order.
func Mnemonics() []string {
	names := make([]string, 0, len(instructions))
	for name := range instructions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
