// image_test.go - Program memory image tests

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
	"bytes"
	"errors"
	"strings"
	"testing"
)

func writeImageString(t *testing.T, words []uint32) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteImage(&buf, words); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	return buf.String()
}

func checkImageShape(t *testing.T, out string) []string {
	t.Helper()
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("image does not end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != MemoryWords {
		t.Fatalf("image has %d lines, want %d", len(lines), MemoryWords)
	}
	for i, line := range lines {
		if len(line) != WordBits || strings.Trim(line, "01") != "" {
			t.Fatalf("line %d = %q, want %d binary digits", i, line, WordBits)
		}
	}
	return lines
}

func TestWriteImage_Empty(t *testing.T) {
	out := writeImageString(t, nil)
	want := strings.Repeat("000000000000000000\n", MemoryWords)
	if out != want {
		t.Error("empty program should produce 2048 zero words")
	}
	checkImageShape(t, out)
}

func TestWriteImage_Scenario(t *testing.T) {
	words := assembleString(t, "start: load r0\n    add r0\n    br start\n")
	lines := checkImageShape(t, writeImageString(t, words))
	want := []string{
		"000000000000000000",
		"000010000000000000",
		"100000111111111110",
		"000000000000000000",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %s, want %s", i, lines[i], w)
		}
	}
	if lines[MemoryWords-1] != "000000000000000000" {
		t.Errorf("last line = %s", lines[MemoryWords-1])
	}
}

func TestWriteImage_Full(t *testing.T) {
	words := make([]uint32, MemoryWords)
	for i := range words {
		words[i] = wordMask
	}
	lines := checkImageShape(t, writeImageString(t, words))
	if lines[MemoryWords-1] != "111111111111111111" {
		t.Errorf("last line = %s", lines[MemoryWords-1])
	}
}

func TestWriteImage_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := WriteImage(&buf, make([]uint32, MemoryWords+1))
	if !errors.Is(err, ErrProgramTooLarge) {
		t.Fatalf("err = %v, want ErrProgramTooLarge", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an oversized program", buf.Len())
	}
}

func TestWriteImage_WideWord(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteImage(&buf, []uint32{1 << WordBits}); err == nil {
		t.Fatal("expected error for a 19-bit word")
	}
}

func TestPad(t *testing.T) {
	image, err := Pad([]uint32{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(image) != MemoryWords || image[0] != 1 || image[2] != 3 || image[3] != 0 {
		t.Errorf("Pad = %v...", image[:4])
	}
}

func TestWriteImage_Deterministic(t *testing.T) {
	src := `
main:   loadi0 #0x10
        addi   #1
        store  r2
        brnz   main
        ledl
`
	first := writeImageString(t, assembleString(t, src))
	second := writeImageString(t, assembleString(t, src))
	if first != second {
		t.Error("assembling the same source twice produced different images")
	}
}
