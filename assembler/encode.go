// encode.go - Pass 2: instruction encoding

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

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EncodeProgram encodes every instruction line using the labels from
// pass 1. A line that fails to encode still takes its address: a zero
// word is emitted in its place and a diagnostic is returned for it.
func EncodeProgram(lines []Line, labels Labels) ([]uint32, []*Diagnostic) {
	var words []uint32
	var diags []*Diagnostic
	for _, l := range lines {
		if l.Kind != LineInstruction {
			continue
		}
		word, err := Encode(l, len(words), labels)
		if err != nil {
			diags = append(diags, err)
			word = 0
		}
		words = append(words, word)
	}
	return words, diags
}

// Encode encodes a single instruction line located at address here.
func Encode(l Line, here int, labels Labels) (uint32, *Diagnostic) {
	in, ok := Lookup(l.Mnemonic)
	if !ok {
		return 0, newDiagnostic(l, UnknownMnemonic, "invalid instruction %s", l.Mnemonic)
	}

	switch in.Class {
	case ClassImmediate:
		return encodeImmediate(in, l)
	case ClassRegister:
		return encodeRegister(in, l)
	case ClassBranch:
		return encodeBranch(in, l, here, labels)
	default:
		if l.Operand != "" {
			return 0, newDiagnostic(l, UnexpectedOperand,
				"not expecting an operand with instruction %s", l.Mnemonic)
		}
		return in.Word(0), nil
	}
}

// encodeImmediate handles: mnemonic #value, 0 <= value < 1024
func encodeImmediate(in Instruction, l Line) (uint32, *Diagnostic) {
	if l.Operand == "" {
		return 0, newDiagnostic(l, MissingOperand, "missing operand for instruction %s", l.Mnemonic)
	}
	if !strings.HasPrefix(l.Operand, "#") {
		return 0, invalidOperand(l)
	}
	val, err := parseLiteral(l.Operand[1:])
	if errors.Is(err, strconv.ErrRange) || (err == nil && val >= OperandLimit) {
		return 0, newDiagnostic(l, OperandOutOfRange,
			"operand %s outside allowed range for instruction %s", l.Operand, l.Mnemonic)
	}
	if err != nil {
		return 0, invalidOperand(l)
	}
	return in.Word(uint32(val)), nil
}

// encodeRegister handles: mnemonic rN. N is not range checked beyond
// fitting the word.
func encodeRegister(in Instruction, l Line) (uint32, *Diagnostic) {
	if l.Operand == "" {
		return 0, newDiagnostic(l, MissingOperand, "missing operand for instruction %s", l.Mnemonic)
	}
	if !strings.HasPrefix(l.Operand, "r") {
		return 0, invalidOperand(l)
	}
	val, err := parseLiteral(l.Operand[1:])
	if errors.Is(err, strconv.ErrRange) || (err == nil && val > wordMask) {
		return 0, newDiagnostic(l, OperandOutOfRange,
			"register %s does not fit instruction %s", l.Operand, l.Mnemonic)
	}
	if err != nil {
		return 0, invalidOperand(l)
	}
	return in.Word(uint32(val)), nil
}

// encodeBranch handles: mnemonic label (displacement = label - here)
func encodeBranch(in Instruction, l Line, here int, labels Labels) (uint32, *Diagnostic) {
	if l.Operand == "" {
		return 0, newDiagnostic(l, MissingOperand, "missing label for branch instruction %s", l.Mnemonic)
	}
	target, ok := labels[l.Operand]
	if !ok {
		return 0, newDiagnostic(l, UnknownLabel,
			"invalid label %s for branch instruction %s", l.Operand, l.Mnemonic)
	}
	disp, err := branchDisplacement(here, target)
	if err != nil {
		return 0, newDiagnostic(l, BranchOutOfRange, "%s: %v", l.Mnemonic, err)
	}
	return in.Word(disp), nil
}

// branchDisplacement returns the 12-bit two's complement distance from
// here to target.
func branchDisplacement(here, target int) (uint32, error) {
	delta := target - here
	if delta < -BranchWrap/2 || delta >= BranchWrap/2 {
		return 0, fmt.Errorf("target %d is %d words from %d, limit is %d..%d",
			target, delta, here, -BranchWrap/2, BranchWrap/2-1)
	}
	if target >= here {
		return uint32(delta), nil
	}
	return uint32(BranchWrap - (here - target)), nil
}

func invalidOperand(l Line) *Diagnostic {
	return newDiagnostic(l, InvalidOperandSyntax,
		"invalid operand %s for instruction %s", l.Operand, l.Mnemonic)
}

// parseLiteral parses an unsigned integer with an optional 0b, 0o or 0x
// prefix. Decimal literals may not carry leading zeros.
func parseLiteral(s string) (uint64, error) {
	if len(s) > 1 && s[0] == '0' && strings.IndexByte("bBoOxX", s[1]) < 0 {
		if strings.Trim(s, "0_") != "" {
			return 0, fmt.Errorf("invalid literal %q: leading zeros in decimal", s)
		}
	}
	return strconv.ParseUint(s, 0, 64)
}
