package elf

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/arch/arm"
	"github.com/kerncraft/elfload/arch/arm64"
	"github.com/kerncraft/elfload/arch/riscv"
	"github.com/kerncraft/elfload/arch/x86"
	"github.com/kerncraft/elfload/arch/x86_64"
	"github.com/kerncraft/elfload/models"
)

// RelaIter walks one relocation table in file order, decoding each entry
// from its index on demand. Entries are never reordered or deduplicated.
type RelaIter struct {
	b       *Binary
	off     uint64
	entsize uint64
	count   int
	rela    bool
	i       int
	err     error
}

func (b *Binary) relEntSizes() (rel, rela uint64) {
	if b.Header.Class == models.ELFCLASS64 {
		return relSize64, relaSize64
	}
	return relSize32, relaSize32
}

// newRelaIter validates one relocation table window. entsize 0 means the
// table carried no entry-size tag and the ABI default applies.
func (b *Binary) newRelaIter(off, size, entsize uint64, rela bool) (*RelaIter, error) {
	relSize, relaSize := b.relEntSizes()
	want := relSize
	if rela {
		want = relaSize
	}
	if entsize == 0 {
		entsize = want
	}
	if entsize != want {
		return nil, errors.Wrapf(ErrBadEntSize, "relocation entry size %d, want %d", entsize, want)
	}
	if size%entsize != 0 {
		return nil, errors.Wrapf(ErrOddTableSize, "relocation table size %d, entry size %d", size, entsize)
	}
	if !checkRange(b.buf, off, size) {
		return nil, errors.Wrapf(ErrRange, "relocation table: %d bytes at offset 0x%x", size, off)
	}
	return &RelaIter{
		b:       b,
		off:     off,
		entsize: entsize,
		count:   int(size / entsize),
		rela:    rela,
	}, nil
}

// Relocations locates the binary's relocation table and returns an
// iterator over it. The dynamic section takes priority; a binary without
// one (a relocatable object, typically) falls back to the first SHT_RELA
// or SHT_REL section. A binary with neither gets an empty iterator, not
// an error.
func (b *Binary) Relocations() (*RelaIter, error) {
	if d := b.dyn; d != nil {
		if d.RelaSize > 0 {
			return b.newRelaIter(d.relaOff, d.RelaSize, d.RelaEnt, true)
		}
		if d.RelSize > 0 {
			return b.newRelaIter(d.relOff, d.RelSize, d.RelEnt, false)
		}
		return &RelaIter{b: b}, nil
	}
	for _, typ := range []models.SectionType{models.SHT_RELA, models.SHT_REL} {
		it := b.Sections(typ)
		sh, ok := it.Next()
		if err := it.Err(); err != nil {
			return nil, err
		}
		if ok {
			return b.newRelaIter(sh.Off, sh.Size, sh.Entsize, typ == models.SHT_RELA)
		}
	}
	return &RelaIter{b: b}, nil
}

// Count returns the exact number of entries: table size over entry size.
func (it *RelaIter) Count() int {
	return it.count
}

// At decodes the i-th relocation entry.
func (it *RelaIter) At(i int) (models.RelocationEntry, error) {
	var entry models.RelocationEntry
	if i < 0 || i >= it.count {
		return entry, errors.Wrapf(ErrRange, "relocation %d of %d", i, it.count)
	}
	b := it.b
	off := it.off + uint64(i)*it.entsize

	var rawOff, rawInfo uint64
	var addend int64
	if b.Header.Class == models.ELFCLASS64 {
		if it.rela {
			var raw elf64Rela
			if err := unpackAt(b.buf, off, relaSize64, b.order, &raw); err != nil {
				return entry, errors.Wrapf(err, "relocation %d", i)
			}
			rawOff, rawInfo, addend = raw.Off, raw.Info, raw.Addend
		} else {
			var raw elf64Rel
			if err := unpackAt(b.buf, off, relSize64, b.order, &raw); err != nil {
				return entry, errors.Wrapf(err, "relocation %d", i)
			}
			rawOff, rawInfo = raw.Off, raw.Info
		}
		entry.SymIndex = uint32(rawInfo >> 32)
		entry.Type = decodeType(b.Header.Machine, uint32(rawInfo))
	} else {
		if it.rela {
			var raw elf32Rela
			if err := unpackAt(b.buf, off, relaSize32, b.order, &raw); err != nil {
				return entry, errors.Wrapf(err, "relocation %d", i)
			}
			rawOff, rawInfo, addend = uint64(raw.Off), uint64(raw.Info), int64(raw.Addend)
		} else {
			var raw elf32Rel
			if err := unpackAt(b.buf, off, relSize32, b.order, &raw); err != nil {
				return entry, errors.Wrapf(err, "relocation %d", i)
			}
			rawOff, rawInfo = uint64(raw.Off), uint64(raw.Info)
		}
		entry.SymIndex = uint32(rawInfo >> 8)
		entry.Type = decodeType(b.Header.Machine, uint32(rawInfo&0xff))
	}
	entry.Offset = rawOff
	entry.Addend = addend
	entry.HasAddend = it.rela
	return entry, nil
}

func (it *RelaIter) Next() (models.RelocationEntry, bool) {
	if it.err != nil || it.i >= it.count {
		return models.RelocationEntry{}, false
	}
	entry, err := it.At(it.i)
	it.i++
	if err != nil {
		it.err = err
		return models.RelocationEntry{}, false
	}
	return entry, true
}

func (it *RelaIter) Err() error {
	return it.err
}

func (it *RelaIter) Reset() {
	it.i = 0
	it.err = nil
}

// decodeType maps a raw relocation type into the architecture's
// enumeration. Unrecognized values decode to kinds whose Known() reports
// false; skipping them is the embedder's call.
func decodeType(machine models.Machine, v uint32) models.RelocationType {
	switch machine {
	case models.EM_386:
		return x86.Type(v)
	case models.EM_X86_64:
		return x86_64.Type(v)
	case models.EM_ARM:
		return arm.Type(v)
	case models.EM_AARCH64:
		return arm64.Type(v)
	case models.EM_RISCV:
		return riscv.Type(v)
	}
	// Machines are validated at construction, so this is unreachable for
	// any Binary built by New.
	return rawType(v)
}

type rawType uint32

func (t rawType) Value() uint32 {
	return uint32(t)
}

func (t rawType) Known() bool {
	return false
}

func (t rawType) String() string {
	return fmt.Sprintf("relocation type %d for unknown machine", uint32(t))
}
