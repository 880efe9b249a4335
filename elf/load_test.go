package elf

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/loader"
	"github.com/kerncraft/elfload/models"
)

func TestLoadSequence(t *testing.T) {
	f := newFixture64(t)
	f.addPhdr(elf64Phdr{Type: 1, Flags: 5, Off: 0x1000, Vaddr: 0x400000, Filesz: 0x1000, Memsz: 0x1000})
	f.place(0x1000, make([]byte, 0x1000))
	b := f.parse()

	rec := &loader.RecordingLoader{}
	if err := b.Load(rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.Actions) != 2 {
		t.Fatalf("actions %+v", rec.Actions)
	}
	if rec.Actions[0].Kind != loader.ActionAllocate {
		t.Fatalf("first action %s", rec.Actions[0].Kind)
	}
	ld := rec.Actions[1]
	if ld.Kind != loader.ActionLoad || ld.Vaddr != 0x400000 || ld.Size != 0x1000 {
		t.Fatalf("load action %+v", ld)
	}
	if ld.Flags != models.PF_R|models.PF_X {
		t.Fatalf("load flags %s", ld.Flags)
	}
}

func TestLoadFullSequenceOrder(t *testing.T) {
	f := dynFixture(t, relaDyn(1), []elf64Rela{{Off: 0x10020, Info: 8, Addend: 0x30}})
	f.addPhdr(elf64Phdr{Type: 7, Off: 0x1400, Vaddr: 0x10400, Filesz: 4, Memsz: 16})
	f.addPhdr(elf64Phdr{Type: 0x6474e552, Off: 0x1000, Vaddr: 0x10000, Filesz: 0x200, Memsz: 0x200}) // PT_GNU_RELRO
	b := f.parse()

	rec := &loader.RecordingLoader{}
	if err := b.Load(rec); err != nil {
		t.Fatal(err)
	}
	var kinds []loader.ActionKind
	for _, a := range rec.Actions {
		kinds = append(kinds, a.Kind)
	}
	want := []loader.ActionKind{
		loader.ActionAllocate,
		loader.ActionLoad,
		loader.ActionRelocate,
		loader.ActionTLS,
		loader.ActionRelro,
	}
	if len(kinds) != len(want) {
		t.Fatalf("kinds %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("step %d is %s, want %s", i, kinds[i], want[i])
		}
	}
	if tls := rec.Actions[3].TLS; tls.Vaddr != 0x10400 || tls.Memsz != 16 {
		t.Fatalf("tls %+v", tls)
	}
	if rr := rec.Actions[4]; rr.Vaddr != 0x10000 || rr.Size != 0x200 {
		t.Fatalf("relro %+v", rr)
	}
}

func TestLoadAppliesRelativeRelocation(t *testing.T) {
	f := dynFixture(t, relaDyn(1), []elf64Rela{{Off: 0x10020, Info: 8, Addend: 0x30}})
	b := f.parse()

	arena := loader.NewArenaLoader(binary.LittleEndian, 0x10000000)
	if err := b.Load(arena); err != nil {
		t.Fatal(err)
	}
	if arena.Base() != 0x10000 {
		t.Fatalf("base 0x%x", arena.Base())
	}
	got := binary.LittleEndian.Uint64(arena.Bytes()[0x20:])
	if got != 0x10000030 {
		t.Fatalf("slot holds 0x%x", got)
	}
}

// failLoader fails one step and records whether later steps still ran.
type failLoader struct {
	failOn string
	calls  []string
}

func (l *failLoader) step(name string) error {
	l.calls = append(l.calls, name)
	if name == l.failOn {
		return errors.New("capability refused")
	}
	return nil
}

func (l *failLoader) Allocate(models.SegmentIter) error          { return l.step("allocate") }
func (l *failLoader) Load(models.ProgFlag, uint64, []byte) error { return l.step("load") }
func (l *failLoader) Relocate(models.RelocationEntry) error      { return l.step("relocate") }
func (l *failLoader) TLS(models.TLSInfo) error                   { return l.step("tls") }

func TestLoadAbortsOnCapabilityError(t *testing.T) {
	f := dynFixture(t, relaDyn(1), []elf64Rela{{Off: 0x10020, Info: 8, Addend: 0x30}})
	f.addPhdr(elf64Phdr{Type: 7, Off: 0x1400, Vaddr: 0x10400, Filesz: 4, Memsz: 16})
	b := f.parse()

	for _, failOn := range []string{"allocate", "load", "relocate", "tls"} {
		l := &failLoader{failOn: failOn}
		err := b.Load(l)
		if err == nil {
			t.Fatalf("%s: error swallowed", failOn)
		}
		last := l.calls[len(l.calls)-1]
		if last != failOn {
			t.Fatalf("%s: steps continued through %v", failOn, l.calls)
		}
	}
}

func TestLoadRejectsUnloadableType(t *testing.T) {
	f := newFixture64(t)
	f.typ = 4 // ET_CORE parses fine but cannot be loaded
	b := f.parse()
	err := b.Load(loader.NullLoader{})
	if errors.Cause(err) != ErrUnsupportedType {
		t.Fatalf("core file: %v", err)
	}
}

func TestLoadRejectsSegmentPastBuffer(t *testing.T) {
	f := newFixture64(t)
	f.addPhdr(elf64Phdr{Type: 1, Off: 0x100000, Vaddr: 0x400000, Filesz: 0x1000, Memsz: 0x1000})
	b := f.parse()
	err := b.Load(&loader.RecordingLoader{})
	if errors.Cause(err) != ErrRange {
		t.Fatalf("segment past buffer: %v", err)
	}
}
