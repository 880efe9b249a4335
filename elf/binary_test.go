package elf

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/loader"
	"github.com/kerncraft/elfload/models"
)

func TestMatch(t *testing.T) {
	if !Match([]byte{0x7f, 'E', 'L', 'F', 0, 0}) {
		t.Fatal("magic not recognized")
	}
	if Match([]byte{0x7f, 'E', 'L'}) {
		t.Fatal("short buffer matched")
	}
	if Match([]byte("MZelf file")) {
		t.Fatal("wrong magic matched")
	}
}

func TestNewHeader64(t *testing.T) {
	f := newFixture64(t)
	f.entry = 0x401000
	b := f.parse()
	h := &b.Header
	if h.Class != models.ELFCLASS64 || h.Data != models.ELFDATA2LSB {
		t.Fatalf("class %s data %s", h.Class, h.Data)
	}
	if h.Machine != models.EM_X86_64 || h.Type != models.ET_EXEC {
		t.Fatalf("machine %s type %s", h.Machine, h.Type)
	}
	if b.Entry() != 0x401000 {
		t.Fatalf("entry 0x%x", b.Entry())
	}
	if b.Bits() != 64 {
		t.Fatalf("bits %d", b.Bits())
	}
	if b.ByteOrder() != binary.LittleEndian {
		t.Fatal("wrong byte order")
	}
	if b.Dynamic() != nil {
		t.Fatal("static binary reported a dynamic section")
	}
}

func TestNewHeader32BigEndian(t *testing.T) {
	b := newFixture32(t).parse()
	if b.Bits() != 32 {
		t.Fatalf("bits %d", b.Bits())
	}
	if b.Header.Machine != models.EM_ARM {
		t.Fatalf("machine %s", b.Header.Machine)
	}
	if b.ByteOrder() != binary.BigEndian {
		t.Fatal("wrong byte order")
	}
}

func corrupt(t *testing.T, mutate func(buf []byte)) error {
	t.Helper()
	buf := newFixture64(t).build()
	mutate(buf)
	_, err := New(buf)
	if err == nil {
		t.Fatal("corrupt header accepted")
	}
	return errors.Cause(err)
}

func TestNewRejectsCorruptHeaders(t *testing.T) {
	if _, err := New([]byte{0x7f, 'E'}); errors.Cause(err) != ErrTruncated {
		t.Fatalf("truncated: %v", err)
	}
	if err := corrupt(t, func(b []byte) { b[0] = 0x7e }); err != ErrBadMagic {
		t.Fatalf("magic: %v", err)
	}
	if err := corrupt(t, func(b []byte) { b[idxClass] = 9 }); err != ErrBadClass {
		t.Fatalf("class: %v", err)
	}
	if err := corrupt(t, func(b []byte) { b[idxData] = 3 }); err != ErrBadData {
		t.Fatalf("data: %v", err)
	}
	if err := corrupt(t, func(b []byte) { b[idxVersion] = 2 }); err != ErrBadVersion {
		t.Fatalf("ident version: %v", err)
	}
	// e_version sits after type and machine.
	if err := corrupt(t, func(b []byte) { b[20] = 9 }); err != ErrBadVersion {
		t.Fatalf("e_version: %v", err)
	}
	// e_machine: EM_SPARC is real but unsupported.
	if err := corrupt(t, func(b []byte) { b[18] = 2 }); err != ErrUnsupportedMachine {
		t.Fatalf("machine whitelist: %v", err)
	}
	if err := corrupt(t, func(b []byte) { b[16] = 0xff }); err != ErrUnsupportedType {
		t.Fatalf("type whitelist: %v", err)
	}
}

func TestNewRejectsBadPhdrTable(t *testing.T) {
	f := newFixture64(t)
	f.addPhdr(elf64Phdr{Type: 1})
	buf := f.build()

	// e_phentsize at offset 54.
	bad := append([]byte(nil), buf...)
	binary.LittleEndian.PutUint16(bad[54:], 200)
	if _, err := New(bad); errors.Cause(err) != ErrBadEntSize {
		t.Fatalf("phentsize: %v", err)
	}

	// e_phoff at offset 32, pointed past the buffer.
	bad = append([]byte(nil), buf...)
	binary.LittleEndian.PutUint64(bad[32:], uint64(len(bad)))
	if _, err := New(bad); errors.Cause(err) != ErrRange {
		t.Fatalf("phoff: %v", err)
	}
}

func TestNewRejectsBadShstrndx(t *testing.T) {
	f := newFixture64(t)
	f.addShdr(elf64Shdr{})
	f.addShdr(elf64Shdr{Type: 3})
	f.shstrndx = 5
	if _, err := New(f.build()); errors.Cause(err) != ErrRange {
		t.Fatalf("shstrndx: %v", err)
	}
}

func TestNeverPanicsOnMutatedInput(t *testing.T) {
	// Mutating every byte of a valid dynamic image must produce either
	// errors or clean results, never a panic or an out of range read.
	// Parsing alone is not enough: the lazy paths (needed libraries,
	// symbols, the whole load sequence) slice the buffer too, so each
	// surviving Binary is driven all the way through.
	f := dynFixture(t, relaDyn(1), []elf64Rela{{Off: 0x10020, Info: 8, Addend: 0x30}})
	f.addPhdr(elf64Phdr{Type: 7, Off: 0x1400, Vaddr: 0x10400, Filesz: 4, Memsz: 16})
	orig := f.build()

	exercise := func(buf []byte) {
		b, err := New(buf)
		if err != nil {
			return
		}
		b.Interp()
		b.ForEachNeeded(func(string) error { return nil })
		b.Symbols()
		b.Load(loader.NullLoader{})
	}

	for i := range orig {
		for _, v := range []byte{0x00, 0x01, 0x7f, 0xff} {
			buf := append([]byte(nil), orig...)
			buf[i] = v
			exercise(buf)
		}
	}
	// Truncation at every length.
	for n := 0; n < len(orig); n++ {
		exercise(append([]byte(nil), orig[:n]...))
	}
}

func TestInterp(t *testing.T) {
	f := newFixture64(t)
	interp := []byte("/lib64/ld-linux-x86-64.so.2\x00")
	f.addPhdr(elf64Phdr{Type: 3, Off: 0x300, Filesz: uint64(len(interp))})
	f.place(0x300, interp)
	b := f.parse()
	if got := b.Interp(); got != "/lib64/ld-linux-x86-64.so.2" {
		t.Fatalf("interp %q", got)
	}

	if got := newFixture64(t).parse().Interp(); got != "" {
		t.Fatalf("phantom interp %q", got)
	}
}
