package loader

import (
	"encoding/binary"
	"testing"

	"github.com/kerncraft/elfload/arch/x86"
	"github.com/kerncraft/elfload/arch/x86_64"
	"github.com/kerncraft/elfload/models"
)

// sliceIter serves a fixed set of program headers.
type sliceIter struct {
	phdrs []models.ProgramHeader
	i     int
}

func (it *sliceIter) Next() (models.ProgramHeader, bool) {
	if it.i >= len(it.phdrs) {
		return models.ProgramHeader{}, false
	}
	ph := it.phdrs[it.i]
	it.i++
	return ph, true
}

func (it *sliceIter) Err() error { return nil }
func (it *sliceIter) Reset()     { it.i = 0 }

func segs(phdrs ...models.ProgramHeader) models.SegmentIter {
	return &sliceIter{phdrs: phdrs}
}

func TestArenaAllocate(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0)
	err := a.Allocate(segs(
		models.ProgramHeader{Vaddr: 0x2000, Memsz: 0x100},
		models.ProgramHeader{Vaddr: 0x1000, Memsz: 0x800},
	))
	if err != nil {
		t.Fatal(err)
	}
	if a.Base() != 0x1000 {
		t.Fatalf("base 0x%x", a.Base())
	}
	if len(a.Bytes()) != 0x1100 {
		t.Fatalf("arena size 0x%x", len(a.Bytes()))
	}
}

func TestArenaAllocateEmpty(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0)
	if err := a.Allocate(segs()); err == nil {
		t.Fatal("empty segment set accepted")
	}
}

func TestArenaLoadBeforeAllocate(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0)
	if err := a.Load(models.PF_R, 0x1000, []byte{1}); err != ErrNoArena {
		t.Fatalf("load without arena: %v", err)
	}
}

func TestArenaLoadOutOfArena(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0)
	if err := a.Allocate(segs(models.ProgramHeader{Vaddr: 0x1000, Memsz: 0x100})); err != nil {
		t.Fatal(err)
	}
	if err := a.Load(models.PF_R, 0x800, []byte{1}); err == nil {
		t.Fatal("write below base accepted")
	}
	if err := a.Load(models.PF_R, 0x10f8, make([]byte, 16)); err == nil {
		t.Fatal("write past end accepted")
	}
}

func TestArenaRelocateExplicitAddend(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0x7f000000)
	if err := a.Allocate(segs(models.ProgramHeader{Vaddr: 0x1000, Memsz: 0x100})); err != nil {
		t.Fatal(err)
	}
	err := a.Relocate(models.RelocationEntry{
		Offset:    0x1010,
		Type:      x86_64.R_AMD64_RELATIVE,
		Addend:    0x40,
		HasAddend: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint64(a.Bytes()[0x10:]); got != 0x7f000040 {
		t.Fatalf("slot holds 0x%x", got)
	}
}

func TestArenaRelocateImplicitAddend(t *testing.T) {
	// REL entries keep the addend in the slot being patched.
	a := NewArenaLoader(binary.LittleEndian, 0x10000)
	if err := a.Allocate(segs(models.ProgramHeader{Vaddr: 0x1000, Memsz: 0x100})); err != nil {
		t.Fatal(err)
	}
	if err := a.Load(models.PF_R, 0x1020, []byte{0x80, 0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	err := a.Relocate(models.RelocationEntry{
		Offset: 0x1020,
		Type:   x86.R_386_RELATIVE,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint32(a.Bytes()[0x20:]); got != 0x10080 {
		t.Fatalf("slot holds 0x%x", got)
	}
}

func TestArenaRelocateNoneIsNoop(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0)
	if err := a.Relocate(models.RelocationEntry{Type: x86_64.R_AMD64_NONE}); err != nil {
		t.Fatal(err)
	}
}

func TestArenaRelocateUnsupportedKind(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0)
	if err := a.Allocate(segs(models.ProgramHeader{Vaddr: 0x1000, Memsz: 0x100})); err != nil {
		t.Fatal(err)
	}
	err := a.Relocate(models.RelocationEntry{Offset: 0x1000, Type: x86_64.R_AMD64_COPY})
	if err == nil {
		t.Fatal("COPY relocation accepted")
	}
}

func TestArenaTLSAndRelro(t *testing.T) {
	a := NewArenaLoader(binary.LittleEndian, 0)
	if err := a.Allocate(segs(models.ProgramHeader{Vaddr: 0x1000, Memsz: 0x100})); err != nil {
		t.Fatal(err)
	}
	if a.TLSImage() != nil {
		t.Fatal("phantom TLS image")
	}
	if err := a.TLS(models.TLSInfo{Vaddr: 0x1000, Filesz: 4, Memsz: 16}); err != nil {
		t.Fatal(err)
	}
	if img := a.TLSImage(); img == nil || img.Memsz != 16 {
		t.Fatalf("tls image %+v", img)
	}
	if err := a.MakeReadOnly(0x1000, 0x80); err != nil {
		t.Fatal(err)
	}
	if err := a.MakeReadOnly(0x1000, 0x200); err == nil {
		t.Fatal("oversized RELRO region accepted")
	}
}

func TestRecordingLoaderKinds(t *testing.T) {
	rec := &RecordingLoader{}
	rec.Load(models.PF_R|models.PF_W, 0x1000, make([]byte, 8))
	rec.Relocate(models.RelocationEntry{Offset: 0x20})
	if len(rec.Actions) != 2 {
		t.Fatalf("actions %+v", rec.Actions)
	}
	if rec.Actions[0].Kind.String() != "load" || rec.Actions[0].Size != 8 {
		t.Fatalf("first %+v", rec.Actions[0])
	}
	if rec.Actions[1].Kind != ActionRelocate || rec.Actions[1].Reloc.Offset != 0x20 {
		t.Fatalf("second %+v", rec.Actions[1])
	}
}
