// assembler.go - ENGR 433 two-pass assembler

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

/*
Instruction Encoding (18 bits):
  Bits 17-10: Opcode (8 bits)
  Bits  9-0:  Operand field (10 bits)

Branch opcodes have bits 11-10 clear, so for branches bits 11-0 hold a
12-bit two's complement displacement from the branch to its target.

Source Syntax:

  label:  mnemonic  operand   ; comment

  - a label starts in column 0 and ends with ':'
  - at least one blank precedes the mnemonic
  - immediate operands: #42, #0x2a, #0b101010
  - register operands:  r0, r1, ...
  - branch operands:    a label name
  - lines that do not fit this shape take no address and are skipped

Output: 2048 lines of 18 binary digits, one per program memory word.
*/

package assembler

import (
	"fmt"

	"github.com/golang/glog"
)

// Assembler assembles ENGR 433 source into program memory words.
type Assembler struct {
	labels      Labels
	listingMode bool
	listing     []string
	warnings    []string
	diagnostics []*Diagnostic
}

// NewAssembler creates a new assembler instance.
func NewAssembler() *Assembler {
	return &Assembler{labels: make(Labels)}
}

// SetListingMode enables or disables listing output.
func (a *Assembler) SetListingMode(enabled bool) {
	a.listingMode = enabled
}

// GetListing returns the assembly listing lines.
func (a *Assembler) GetListing() []string {
	return a.listing
}

// GetWarnings returns any warnings generated during assembly.
func (a *Assembler) GetWarnings() []string {
	return a.warnings
}

// Labels returns the label table of the last assembly.
func (a *Assembler) Labels() Labels {
	return a.labels
}

// Diagnostics returns every diagnostic of the last assembly, pass 1 first.
func (a *Assembler) Diagnostics() []*Diagnostic {
	return a.diagnostics
}

func (a *Assembler) addWarning(format string, args ...interface{}) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

func (a *Assembler) addListing(addr int, word uint32, ok bool, source string) {
	if !a.listingMode {
		return
	}
	if !ok {
		a.listing = append(a.listing, fmt.Sprintf("%03X  %-18s  %s", addr, "??????????????????", source))
		return
	}
	a.listing = append(a.listing, fmt.Sprintf("%03X  %0*b  %s", addr, WordBits, word, source))
}

// Assemble runs both passes over source and returns the program words,
// unpadded. If any line produced a diagnostic the result is nil and the
// error is an *Error listing all of them.
func (a *Assembler) Assemble(source string) ([]uint32, error) {
	a.listing = nil
	a.warnings = nil
	a.diagnostics = nil

	lines := ParseSource(source)
	for _, l := range lines {
		if l.Kind == LineUnrecognised {
			a.addWarning("line %d: not an instruction, skipped: %s", l.Number, l.Text)
		}
	}

	// Pass 1: label collection, address assignment
	labels, count, diags := ResolveLabels(lines)
	a.labels = labels
	a.diagnostics = append(a.diagnostics, diags...)
	glog.V(1).Infof("pass 1: %d instructions, %d labels", count, len(labels))
	if glog.V(2) {
		for _, name := range labels.Names() {
			glog.Infof("label %s = %d", name, labels[name])
		}
	}
	if count > MemoryWords {
		return nil, fmt.Errorf("%w: %d instructions, memory holds %d", ErrProgramTooLarge, count, MemoryWords)
	}

	// Pass 2: code generation
	words, diags := EncodeProgram(lines, labels)
	a.diagnostics = append(a.diagnostics, diags...)
	if a.listingMode {
		failed := make(map[int]bool, len(diags))
		for _, d := range diags {
			failed[d.Line] = true
		}
		addr := 0
		for _, l := range lines {
			if l.Kind != LineInstruction {
				continue
			}
			a.addListing(addr, words[addr], !failed[l.Number], l.Text)
			addr++
		}
	}
	glog.V(1).Infof("pass 2: %d words, %d diagnostics", len(words), len(a.diagnostics))

	if len(a.diagnostics) > 0 {
		return nil, &Error{Diagnostics: a.diagnostics}
	}
	return words, nil
}
