// isa_test.go - Instruction table tests

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

import "testing"

func TestLookup_ClassMembership(t *testing.T) {
	want := map[OperandClass][]string{
		ClassImmediate: {"loadi0", "loadi1", "loadi2", "loadi3", "addi", "andi", "ori", "xori", "ssegi"},
		ClassRegister:  {"load", "add", "and", "or", "xor", "store"},
		ClassBranch:    {"br", "brz", "brnz", "brp", "brn"},
		ClassNone:      {"loads0", "loads1", "loads2", "loads3", "shr", "shl", "wait", "ssegl", "ssegh", "ledl", "ledh"},
	}
	total := 0
	for class, names := range want {
		for _, name := range names {
			in, ok := Lookup(name)
			if !ok {
				t.Errorf("Lookup(%q) not found", name)
				continue
			}
			if in.Class != class {
				t.Errorf("Lookup(%q).Class = %v, want %v", name, in.Class, class)
			}
			if in.Mnemonic != name {
				t.Errorf("Lookup(%q).Mnemonic = %q", name, in.Mnemonic)
			}
			total++
		}
	}
	if got := len(Mnemonics()); got != total {
		t.Errorf("table has %d mnemonics, want %d", got, total)
	}
}

func TestLookup_Opcodes(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint32
	}{
		{"load", 0x00},
		{"loadi1", 0x03},
		{"add", 0x08},
		{"shl", 0x19},
		{"store", 0x40},
		{"br", 0x80},
		{"brn", 0x90},
		{"wait", 0xBC},
		{"ledh", 0xCC},
	}
	for _, tt := range tests {
		in, ok := Lookup(tt.name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tt.name)
		}
		if in.Opcode != tt.opcode {
			t.Errorf("%s opcode = 0x%02X, want 0x%02X", tt.name, in.Opcode, tt.opcode)
		}
	}
}

func TestLookup_CaseSensitive(t *testing.T) {
	for _, name := range []string{"LOAD", "Add", "BR", "foo", ""} {
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) should fail", name)
		}
	}
}

// Every opcode must leave room for the operand field inside the 18-bit
// word, and branch opcodes must keep bits 11-10 clear for the 12-bit
// displacement.
func TestInstructionTable_WordLayout(t *testing.T) {
	for _, name := range Mnemonics() {
		in, _ := Lookup(name)
		if in.Word(OperandLimit-1) > wordMask {
			t.Errorf("%s: word 0x%X exceeds %d bits", name, in.Word(OperandLimit-1), WordBits)
		}
		if in.Class == ClassBranch && in.Opcode&0b11 != 0 {
			t.Errorf("%s: branch opcode 0b%08b overlaps the displacement field", name, in.Opcode)
		}
	}
}

func TestMnemonics_Sorted(t *testing.T) {
	names := Mnemonics()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Mnemonics not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
