package elf

import (
	"testing"

	"github.com/pkg/errors"
)

func TestTLS(t *testing.T) {
	f := newFixture64(t)
	f.addPhdr(elf64Phdr{Type: 7, Off: 0x400, Vaddr: 0x600000, Filesz: 4, Memsz: 8, Align: 8})
	f.place(0x400, []byte{1, 2, 3, 4})
	b := f.parse()

	info, ok, err := b.TLS()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("TLS segment not found")
	}
	if info.Vaddr != 0x600000 || info.Off != 0x400 || info.Align != 8 {
		t.Fatalf("info %+v", info)
	}
	// Filesz and Memsz stay distinct so the embedder can zero-fill the
	// tbss tail itself.
	if info.Filesz != 4 || info.Memsz != 8 {
		t.Fatalf("filesz %d memsz %d", info.Filesz, info.Memsz)
	}
	if info.End() != 0x600008 {
		t.Fatalf("end 0x%x", info.End())
	}
}

func TestTLSAbsent(t *testing.T) {
	_, ok, err := newFixture64(t).parse().TLS()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("phantom TLS segment")
	}
}

func TestTLSMemszSmallerThanFilesz(t *testing.T) {
	f := newFixture64(t)
	f.addPhdr(elf64Phdr{Type: 7, Off: 0x400, Vaddr: 0x600000, Filesz: 8, Memsz: 4})
	f.place(0x400, make([]byte, 8))
	_, _, err := f.parse().TLS()
	if errors.Cause(err) != ErrBadTLS {
		t.Fatalf("memsz < filesz: %v", err)
	}
}

func TestTLSImageOutOfRange(t *testing.T) {
	f := newFixture64(t)
	f.addPhdr(elf64Phdr{Type: 7, Off: 0x100000, Vaddr: 0x600000, Filesz: 8, Memsz: 8})
	_, _, err := f.parse().TLS()
	if errors.Cause(err) != ErrRange {
		t.Fatalf("image out of range: %v", err)
	}
}
