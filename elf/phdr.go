package elf

import (
	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

// ProgramHeaderCount returns the number of entries in the program header
// table.
func (b *Binary) ProgramHeaderCount() int {
	return int(b.Header.Phnum)
}

// ProgramHeaderAt decodes the i-th program header from its table slot.
func (b *Binary) ProgramHeaderAt(i int) (models.ProgramHeader, error) {
	var ph models.ProgramHeader
	if i < 0 || i >= int(b.Header.Phnum) {
		return ph, errors.Wrapf(ErrRange, "program header %d of %d", i, b.Header.Phnum)
	}
	off := b.Header.Phoff + uint64(i)*uint64(b.Header.Phentsize)
	if b.Header.Class == models.ELFCLASS64 {
		var raw elf64Phdr
		if err := unpackAt(b.buf, off, phdrSize64, b.order, &raw); err != nil {
			return ph, errors.Wrapf(err, "program header %d", i)
		}
		ph = models.ProgramHeader{
			Type:   models.ProgType(raw.Type),
			Flags:  models.ProgFlag(raw.Flags),
			Off:    raw.Off,
			Vaddr:  raw.Vaddr,
			Paddr:  raw.Paddr,
			Filesz: raw.Filesz,
			Memsz:  raw.Memsz,
			Align:  raw.Align,
		}
	} else {
		var raw elf32Phdr
		if err := unpackAt(b.buf, off, phdrSize32, b.order, &raw); err != nil {
			return ph, errors.Wrapf(err, "program header %d", i)
		}
		ph = models.ProgramHeader{
			Type:   models.ProgType(raw.Type),
			Flags:  models.ProgFlag(raw.Flags),
			Off:    uint64(raw.Off),
			Vaddr:  uint64(raw.Vaddr),
			Paddr:  uint64(raw.Paddr),
			Filesz: uint64(raw.Filesz),
			Memsz:  uint64(raw.Memsz),
			Align:  uint64(raw.Align),
		}
	}
	return ph, nil
}

// ProgIter walks the program header table in file order, decoding each
// entry from its index on demand. It implements models.SegmentIter.
type ProgIter struct {
	b   *Binary
	typ models.ProgType
	all bool
	i   int
	err error
}

// ProgramHeaders iterates over every program header.
func (b *Binary) ProgramHeaders() *ProgIter {
	return &ProgIter{b: b, all: true}
}

// Segments iterates over the program headers of one segment type,
// preserving file order.
func (b *Binary) Segments(typ models.ProgType) *ProgIter {
	return &ProgIter{b: b, typ: typ}
}

// LoadSegments is the loadable view: exactly the PT_LOAD subsequence of
// the program header table.
func (b *Binary) LoadSegments() *ProgIter {
	return b.Segments(models.PT_LOAD)
}

func (it *ProgIter) Next() (models.ProgramHeader, bool) {
	if it.err != nil {
		return models.ProgramHeader{}, false
	}
	for it.i < it.b.ProgramHeaderCount() {
		ph, err := it.b.ProgramHeaderAt(it.i)
		it.i++
		if err != nil {
			it.err = err
			return models.ProgramHeader{}, false
		}
		if it.all || ph.Type == it.typ {
			return ph, true
		}
	}
	return models.ProgramHeader{}, false
}

func (it *ProgIter) Err() error {
	return it.err
}

func (it *ProgIter) Reset() {
	it.i = 0
	it.err = nil
}
