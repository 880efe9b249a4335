package elf

import (
	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

// SectionCount returns the number of entries in the section header table.
func (b *Binary) SectionCount() int {
	return int(b.Header.Shnum)
}

// SectionAt decodes the i-th section header from its table slot.
func (b *Binary) SectionAt(i int) (models.SectionHeader, error) {
	var sh models.SectionHeader
	if i < 0 || i >= int(b.Header.Shnum) {
		return sh, errors.Wrapf(ErrRange, "section header %d of %d", i, b.Header.Shnum)
	}
	off := b.Header.Shoff + uint64(i)*uint64(b.Header.Shentsize)
	if b.Header.Class == models.ELFCLASS64 {
		var raw elf64Shdr
		if err := unpackAt(b.buf, off, shdrSize64, b.order, &raw); err != nil {
			return sh, errors.Wrapf(err, "section header %d", i)
		}
		sh = models.SectionHeader{
			NameOff:   raw.Name,
			Type:      models.SectionType(raw.Type),
			Flags:     raw.Flags,
			Addr:      raw.Addr,
			Off:       raw.Off,
			Size:      raw.Size,
			Link:      raw.Link,
			Info:      raw.Info,
			Addralign: raw.Addralign,
			Entsize:   raw.Entsize,
		}
	} else {
		var raw elf32Shdr
		if err := unpackAt(b.buf, off, shdrSize32, b.order, &raw); err != nil {
			return sh, errors.Wrapf(err, "section header %d", i)
		}
		sh = models.SectionHeader{
			NameOff:   raw.Name,
			Type:      models.SectionType(raw.Type),
			Flags:     uint64(raw.Flags),
			Addr:      uint64(raw.Addr),
			Off:       uint64(raw.Off),
			Size:      uint64(raw.Size),
			Link:      raw.Link,
			Info:      raw.Info,
			Addralign: uint64(raw.Addralign),
			Entsize:   uint64(raw.Entsize),
		}
	}
	return sh, nil
}

// SectIter walks the section header table in file order, optionally
// filtered by section type.
type SectIter struct {
	b   *Binary
	typ models.SectionType
	all bool
	i   int
	err error
}

// SectionHeaders iterates over every section header.
func (b *Binary) SectionHeaders() *SectIter {
	return &SectIter{b: b, all: true}
}

// Sections iterates over the section headers of one type, preserving file
// order.
func (b *Binary) Sections(typ models.SectionType) *SectIter {
	return &SectIter{b: b, typ: typ}
}

func (it *SectIter) Next() (models.SectionHeader, bool) {
	if it.err != nil {
		return models.SectionHeader{}, false
	}
	for it.i < it.b.SectionCount() {
		sh, err := it.b.SectionAt(it.i)
		it.i++
		if err != nil {
			it.err = err
			return models.SectionHeader{}, false
		}
		if it.all || sh.Type == it.typ {
			return sh, true
		}
	}
	return models.SectionHeader{}, false
}

func (it *SectIter) Err() error {
	return it.err
}

func (it *SectIter) Reset() {
	it.i = 0
	it.err = nil
}

// SectionName resolves a section's name against the section header string
// table.
func (b *Binary) SectionName(sh models.SectionHeader) (string, error) {
	if b.Header.Shstrndx == 0 {
		return "", errors.Wrap(ErrNoStrtab, "no section name string table")
	}
	str, err := b.strtabAt(int(b.Header.Shstrndx))
	if err != nil {
		return "", err
	}
	return str.Lookup(sh.NameOff)
}

// SectionByName finds the first section with the given name.
func (b *Binary) SectionByName(name string) (models.SectionHeader, bool, error) {
	it := b.SectionHeaders()
	for {
		sh, ok := it.Next()
		if !ok {
			return models.SectionHeader{}, false, it.Err()
		}
		n, err := b.SectionName(sh)
		if err != nil {
			return models.SectionHeader{}, false, err
		}
		if n == name {
			return sh, true, nil
		}
	}
}
