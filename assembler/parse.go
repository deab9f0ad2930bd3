// parse.go - Source line parser

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

import "strings"

// LineKind classifies a source line. Only LineInstruction lines take an
// address; the other kinds are skipped by both passes.
type LineKind int

const (
	LineBlank        LineKind = iota // empty or whitespace only
	LineComment                      // first non-blank character is ';'
	LineUnrecognised                 // text that does not fit the line grammar
	LineInstruction                  // [label:] mnemonic [operand]
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineUnrecognised:
		return "unrecognised"
	case LineInstruction:
		return "instruction"
	}
	return "unknown"
}

// Line is one parsed source line. Label and Operand are empty when absent.
type Line struct {
	Number   int // 1-based
	Text     string
	Kind     LineKind
	Label    string
	Mnemonic string
	Operand  string
}

// ParseSource splits source into lines and parses each of them.
func ParseSource(source string) []Line {
	if source == "" {
		return nil
	}
	texts := strings.Split(source, "\n")
	if strings.HasSuffix(source, "\n") {
		texts = texts[:len(texts)-1]
	}
	lines := make([]Line, len(texts))
	for i, text := range texts {
		lines[i] = ParseLine(text, i+1)
	}
	return lines
}

// ParseLine parses a single line of source.
//
// Grammar:
//
//	[ident:] <space> mnemonic (<space> | EOL) [#literal | ident] [anything]
//
// The label must start in column 0 and at least one blank must precede
// the mnemonic. A literal operand is '#' followed by characters from
// [bxa-f0-9]; scanning stops at the first other character. Text after
// the operand token is ignored.
func ParseLine(text string, number int) Line {
	text = strings.TrimSuffix(text, "\r")
	l := Line{Number: number, Text: text, Kind: LineUnrecognised}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		l.Kind = LineBlank
		return l
	}
	if strings.HasPrefix(trimmed, ";") {
		l.Kind = LineComment
		return l
	}

	pos := 0
	if end := scanIdent(text, 0); end > 0 && end < len(text) && text[end] == ':' {
		l.Label = text[:end]
		pos = end + 1
	}

	// Mandatory blank before the mnemonic.
	if pos >= len(text) || !isBlank(text[pos]) {
		l.Label = ""
		return l
	}
	pos = skipBlanks(text, pos)

	end := scanIdent(text, pos)
	if end == pos {
		l.Label = ""
		return l
	}
	mnemonic := text[pos:end]
	pos = end

	// The mnemonic must be followed by a blank or the end of the line.
	if pos < len(text) && !isBlank(text[pos]) {
		l.Label = ""
		return l
	}
	pos = skipBlanks(text, pos)

	l.Kind = LineInstruction
	l.Mnemonic = mnemonic
	l.Operand = scanOperand(text, pos)
	return l
}

func scanOperand(text string, pos int) string {
	if pos >= len(text) {
		return ""
	}
	if text[pos] == '#' {
		end := pos + 1
		for end < len(text) && isLiteralChar(text[end]) {
			end++
		}
		if end == pos+1 {
			return ""
		}
		return text[pos:end]
	}
	return text[pos:scanIdent(text, pos)]
}

// scanIdent returns the end of the identifier starting at pos, or pos
// when there is none.
func scanIdent(s string, pos int) int {
	for pos < len(s) && isIdentChar(s[pos]) {
		pos++
	}
	return pos
}

func skipBlanks(s string, pos int) int {
	for pos < len(s) && isBlank(s[pos]) {
		pos++
	}
	return pos
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func isLiteralChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || c == 'b' || c == 'x'
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}
