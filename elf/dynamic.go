package elf

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

// Dynamic section tags. Only the tags the loader interprets are named;
// everything else is skipped, not rejected.
type DynTag int64

const (
	DT_NULL     DynTag = 0
	DT_NEEDED   DynTag = 1
	DT_PLTRELSZ DynTag = 2
	DT_PLTGOT   DynTag = 3
	DT_HASH     DynTag = 4
	DT_STRTAB   DynTag = 5
	DT_SYMTAB   DynTag = 6
	DT_RELA     DynTag = 7
	DT_RELASZ   DynTag = 8
	DT_RELAENT  DynTag = 9
	DT_STRSZ    DynTag = 10
	DT_SYMENT   DynTag = 11
	DT_INIT     DynTag = 12
	DT_FINI     DynTag = 13
	DT_SONAME   DynTag = 14
	DT_REL      DynTag = 17
	DT_RELSZ    DynTag = 18
	DT_RELENT   DynTag = 19
	DT_PLTREL   DynTag = 20
	DT_JMPREL   DynTag = 23
	DT_FLAGS    DynTag = 30

	DT_RELACOUNT DynTag = 0x6ffffff9
	DT_RELCOUNT  DynTag = 0x6ffffffa
	DT_FLAGS_1   DynTag = 0x6ffffffb
)

// DF_1_PIE in DT_FLAGS_1 marks a position independent executable.
const DF_1_PIE = 0x08000000

// DynamicInfo is the interpreted PT_DYNAMIC segment. Address-valued tags
// (Rela, Rel, StrTab, ...) hold virtual addresses as written in the file;
// the loader translates them through the loadable segments when it needs
// the bytes. Init and Fini are exposed but never invoked here; running
// initializers is the embedder's business.
type DynamicInfo struct {
	Rela     uint64
	RelaSize uint64
	RelaEnt  uint64

	Rel     uint64
	RelSize uint64
	RelEnt  uint64

	RelaCount uint64
	RelCount  uint64

	JmpRel     uint64
	PltRelSize uint64
	PltRel     uint64

	StrTab  uint64
	StrSize uint64
	SymTab  uint64
	SymEnt  uint64

	Init  uint64
	Fini  uint64
	Flags uint64
	// Flags1 is the DT_FLAGS_1 word; see DF_1_PIE.
	Flags1 uint64

	// Resolved file offsets for the windows the loader actually reads.
	relaOff uint64
	relOff  uint64
	strOff  uint64
	strOK   bool

	dynOff   uint64
	dynCount int
}

// IsPIE reports whether the binary is a position independent executable:
// it has a dynamic section with DF_1_PIE set.
func (b *Binary) IsPIE() bool {
	return b.dyn != nil && b.dyn.Flags1&DF_1_PIE != 0
}

func (b *Binary) dynEntSize() uint64 {
	if b.Header.Class == models.ELFCLASS64 {
		return dynSize64
	}
	return dynSize32
}

func (b *Binary) dynAt(d *DynamicInfo, i int) (DynTag, uint64, error) {
	off := d.dynOff + uint64(i)*b.dynEntSize()
	if b.Header.Class == models.ELFCLASS64 {
		var raw elf64Dyn
		if err := unpackAt(b.buf, off, dynSize64, b.order, &raw); err != nil {
			return 0, 0, errors.Wrapf(err, "dynamic entry %d", i)
		}
		return DynTag(raw.Tag), raw.Val, nil
	}
	var raw elf32Dyn
	if err := unpackAt(b.buf, off, dynSize32, b.order, &raw); err != nil {
		return 0, 0, errors.Wrapf(err, "dynamic entry %d", i)
	}
	return DynTag(raw.Tag), uint64(raw.Val), nil
}

// parseDynamic interprets the PT_DYNAMIC segment, if any. A binary
// without one is statically linked: the relocation set is empty and that
// is not an error.
func (b *Binary) parseDynamic() error {
	it := b.Segments(models.PT_DYNAMIC)
	ph, ok := it.Next()
	if !ok {
		return it.Err()
	}
	entsize := b.dynEntSize()
	if ph.Filesz%entsize != 0 {
		return errors.Wrapf(ErrOddTableSize, "dynamic segment size %d, entry size %d", ph.Filesz, entsize)
	}
	if !checkRange(b.buf, ph.Off, ph.Filesz) {
		return errors.Wrapf(ErrRange, "dynamic segment: %d bytes at offset 0x%x", ph.Filesz, ph.Off)
	}

	d := &DynamicInfo{dynOff: ph.Off, dynCount: int(ph.Filesz / entsize)}
	for i := 0; i < d.dynCount; i++ {
		tag, val, err := b.dynAt(d, i)
		if err != nil {
			return err
		}
		if tag == DT_NULL {
			break
		}
		switch tag {
		case DT_RELA:
			d.Rela = val
		case DT_RELASZ:
			d.RelaSize = val
		case DT_RELAENT:
			d.RelaEnt = val
		case DT_REL:
			d.Rel = val
		case DT_RELSZ:
			d.RelSize = val
		case DT_RELENT:
			d.RelEnt = val
		case DT_RELACOUNT:
			d.RelaCount = val
		case DT_RELCOUNT:
			d.RelCount = val
		case DT_JMPREL:
			d.JmpRel = val
		case DT_PLTRELSZ:
			d.PltRelSize = val
		case DT_PLTREL:
			d.PltRel = val
		case DT_STRTAB:
			d.StrTab = val
		case DT_STRSZ:
			d.StrSize = val
		case DT_SYMTAB:
			d.SymTab = val
		case DT_SYMENT:
			d.SymEnt = val
		case DT_INIT:
			d.Init = val
		case DT_FINI:
			d.Fini = val
		case DT_FLAGS:
			d.Flags = val
		case DT_FLAGS_1:
			d.Flags1 = val
		}
	}

	if d.RelaSize > 0 {
		off, ok := b.fileOffset(d.Rela, d.RelaSize)
		if !ok {
			return errors.Wrapf(ErrRange, "DT_RELA table: %d bytes at vaddr 0x%x", d.RelaSize, d.Rela)
		}
		d.relaOff = off
	}
	if d.RelSize > 0 {
		off, ok := b.fileOffset(d.Rel, d.RelSize)
		if !ok {
			return errors.Wrapf(ErrRange, "DT_REL table: %d bytes at vaddr 0x%x", d.RelSize, d.Rel)
		}
		d.relOff = off
	}
	if d.StrSize > 0 {
		// The PT_LOAD mapping only proves the vaddr lies inside the
		// segment's claimed file extent; the buffer itself may be shorter
		// than the segment advertises.
		if off, ok := b.fileOffset(d.StrTab, d.StrSize); ok && checkRange(b.buf, off, d.StrSize) {
			d.strOff = off
			d.strOK = true
		}
	}

	b.dyn = d
	b.logger.Log("msg", "parsed dynamic segment",
		"entries", d.dynCount, "rela", d.Rela, "relasz", d.RelaSize, "flags1", d.Flags1)
	return nil
}

// ForEachNeeded calls fn with the name of every DT_NEEDED library, in tag
// order. The names resolve through the dynamic string table; a binary
// whose DT_STRTAB window cannot be located fails with ErrNoStrtab.
func (b *Binary) ForEachNeeded(fn func(name string) error) error {
	d := b.dyn
	if d == nil {
		return nil
	}
	for i := 0; i < d.dynCount; i++ {
		tag, val, err := b.dynAt(d, i)
		if err != nil {
			return err
		}
		if tag == DT_NULL {
			break
		}
		if tag != DT_NEEDED {
			continue
		}
		name, err := d.dynString(b, val)
		if err != nil {
			return err
		}
		b.logger.Log("msg", "needed library", "name", name)
		if err := fn(name); err != nil {
			return err
		}
	}
	return nil
}

func (d *DynamicInfo) dynString(b *Binary, off uint64) (string, error) {
	if !d.strOK {
		return "", errors.Wrap(ErrNoStrtab, "no dynamic string table")
	}
	if off >= d.StrSize {
		return "", errors.Wrapf(ErrRange, "string offset %d in a %d byte table", off, d.StrSize)
	}
	data := b.buf[d.strOff+off : d.strOff+d.StrSize]
	end := bytes.IndexByte(data, 0)
	if end < 0 {
		return "", errors.Wrapf(ErrBadString, "dynamic string at offset %d", off)
	}
	return string(data[:end]), nil
}
