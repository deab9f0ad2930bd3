// diag.go - Assembly diagnostics

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
	"strings"
)

// ErrProgramTooLarge is returned when a program needs more words than
// program memory holds.
var ErrProgramTooLarge = errors.New("program does not fit in program memory")

// Kind identifies what went wrong on a line.
type Kind int

const (
	UnknownMnemonic Kind = iota
	MissingOperand
	InvalidOperandSyntax
	OperandOutOfRange
	UnexpectedOperand
	UnknownLabel
	DuplicateLabel
	BranchOutOfRange
)

var kindNames = [...]string{
	UnknownMnemonic:      "unknown mnemonic",
	MissingOperand:       "missing operand",
	InvalidOperandSyntax: "invalid operand syntax",
	OperandOutOfRange:    "operand out of range",
	UnexpectedOperand:    "unexpected operand",
	UnknownLabel:         "unknown label",
	DuplicateLabel:       "duplicate label",
	BranchOutOfRange:     "branch out of range",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic reports a problem with one source line.
type Diagnostic struct {
	Line     int
	Kind     Kind
	Mnemonic string
	Operand  string
	Message  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

func newDiagnostic(l Line, kind Kind, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Line:     l.Number,
		Kind:     kind,
		Mnemonic: l.Mnemonic,
		Operand:  l.Operand,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Error is returned by Assemble when any line produced a diagnostic.
type Error struct {
	Diagnostics []*Diagnostic
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.Error()
	}
	return fmt.Sprintf("assembly errors:\n%s", strings.Join(msgs, "\n"))
}
