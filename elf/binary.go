// Package elf parses ELF32/ELF64 images held entirely in memory and drives
// an embedder-supplied loading capability through the sequence of calls
// needed to place the binary into an address space. The package performs
// no allocation or mapping itself, needs no operating system services, and
// never reads outside the supplied buffer, so it is safe to use inside a
// kernel, hypervisor or bootloader on untrusted input.
package elf

import (
	"bytes"
	"encoding/binary"

	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

var elfMagic = []byte{0x7f, 0x45, 0x4c, 0x46}

const (
	idxClass      = 4
	idxData       = 5
	idxVersion    = 6
	idxOSABI      = 7
	idxABIVersion = 8
)

// Match reports whether the buffer starts with the ELF magic.
func Match(buf []byte) bool {
	return len(buf) >= len(elfMagic) && bytes.Equal(buf[:len(elfMagic)], elfMagic)
}

// Binary is a parsed ELF image. It borrows the buffer passed to New and
// holds no copies of file data; its lifetime is bounded by the buffer's.
// After construction it is immutable (except for SetLogger) and may be
// shared across goroutines for read-only use.
type Binary struct {
	buf    []byte
	order  binary.ByteOrder
	dyn    *DynamicInfo
	logger log.Logger

	// Header is the validated file header.
	Header models.FileHeader
}

// New validates the file header and, when a PT_DYNAMIC segment exists,
// parses the dynamic section eagerly. Any structural violation fails
// construction; no partial Binary is ever returned.
func New(buf []byte) (*Binary, error) {
	if len(buf) < identSize {
		return nil, errors.Wrapf(ErrTruncated, "%d bytes", len(buf))
	}
	if !Match(buf) {
		return nil, errors.Wrapf(ErrBadMagic, "% x", buf[:len(elfMagic)])
	}

	class := models.Class(buf[idxClass])
	if class != models.ELFCLASS32 && class != models.ELFCLASS64 {
		return nil, errors.Wrapf(ErrBadClass, "class byte %d", buf[idxClass])
	}
	data := models.Data(buf[idxData])
	if data != models.ELFDATA2LSB && data != models.ELFDATA2MSB {
		return nil, errors.Wrapf(ErrBadData, "data byte %d", buf[idxData])
	}
	if buf[idxVersion] != models.EV_CURRENT {
		return nil, errors.Wrapf(ErrBadVersion, "ident version %d", buf[idxVersion])
	}

	b := &Binary{
		buf:    buf,
		order:  data.ByteOrder(),
		logger: log.NewNopLogger(),
	}
	h := &b.Header
	h.Class = class
	h.Data = data
	h.OSABI = models.OSABI(buf[idxOSABI])
	h.ABIVersion = buf[idxABIVersion]

	if class == models.ELFCLASS64 {
		var raw elf64Ehdr
		if err := unpackAt(buf, 0, ehdrSize64, b.order, &raw); err != nil {
			return nil, errors.Wrap(err, "file header")
		}
		h.Type = models.FileType(raw.Type)
		h.Machine = models.Machine(raw.Machine)
		h.Version = raw.Version
		h.Entry = raw.Entry
		h.Flags = raw.Flags
		h.Phoff = raw.Phoff
		h.Phentsize = raw.Phentsize
		h.Phnum = raw.Phnum
		h.Shoff = raw.Shoff
		h.Shentsize = raw.Shentsize
		h.Shnum = raw.Shnum
		h.Shstrndx = raw.Shstrndx
	} else {
		var raw elf32Ehdr
		if err := unpackAt(buf, 0, ehdrSize32, b.order, &raw); err != nil {
			return nil, errors.Wrap(err, "file header")
		}
		h.Type = models.FileType(raw.Type)
		h.Machine = models.Machine(raw.Machine)
		h.Version = raw.Version
		h.Entry = uint64(raw.Entry)
		h.Flags = raw.Flags
		h.Phoff = uint64(raw.Phoff)
		h.Phentsize = raw.Phentsize
		h.Phnum = raw.Phnum
		h.Shoff = uint64(raw.Shoff)
		h.Shentsize = raw.Shentsize
		h.Shnum = raw.Shnum
		h.Shstrndx = raw.Shstrndx
	}

	if h.Version != models.EV_CURRENT {
		return nil, errors.Wrapf(ErrBadVersion, "e_version %d", h.Version)
	}
	switch h.Machine {
	case models.EM_386, models.EM_X86_64, models.EM_ARM, models.EM_AARCH64, models.EM_RISCV:
	default:
		return nil, errors.Wrapf(ErrUnsupportedMachine, "e_machine %d", uint16(h.Machine))
	}
	switch h.Type {
	case models.ET_REL, models.ET_EXEC, models.ET_DYN, models.ET_CORE:
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "e_type %d", uint16(h.Type))
	}

	if h.Phnum > 0 {
		if int(h.Phentsize) != b.phentSize() {
			return nil, errors.Wrapf(ErrBadEntSize, "e_phentsize %d, want %d", h.Phentsize, b.phentSize())
		}
		if !checkRange(buf, h.Phoff, uint64(h.Phnum)*uint64(h.Phentsize)) {
			return nil, errors.Wrapf(ErrRange, "program header table: %d entries at offset 0x%x", h.Phnum, h.Phoff)
		}
	}
	if h.Shnum > 0 {
		if int(h.Shentsize) != b.shentSize() {
			return nil, errors.Wrapf(ErrBadEntSize, "e_shentsize %d, want %d", h.Shentsize, b.shentSize())
		}
		if !checkRange(buf, h.Shoff, uint64(h.Shnum)*uint64(h.Shentsize)) {
			return nil, errors.Wrapf(ErrRange, "section header table: %d entries at offset 0x%x", h.Shnum, h.Shoff)
		}
		if h.Shstrndx != 0 && h.Shstrndx >= h.Shnum {
			return nil, errors.Wrapf(ErrRange, "e_shstrndx %d with %d sections", h.Shstrndx, h.Shnum)
		}
	}

	if err := b.parseDynamic(); err != nil {
		return nil, err
	}
	return b, nil
}

// SetLogger installs a diagnostics logger. The default discards
// everything, which is the right choice for freestanding embedders.
func (b *Binary) SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	b.logger = l
}

func (b *Binary) ByteOrder() binary.ByteOrder {
	return b.order
}

func (b *Binary) Bits() int {
	return b.Header.Bits()
}

// Entry returns the entry virtual address. Position independent
// executables commonly report a small offset here, to be rebased by the
// embedder.
func (b *Binary) Entry() uint64 {
	return b.Header.Entry
}

// Dynamic returns the parsed dynamic section, or nil for a statically
// linked binary.
func (b *Binary) Dynamic() *DynamicInfo {
	return b.dyn
}

// Interp returns the requested program interpreter path, or "" when the
// binary has no PT_INTERP segment.
func (b *Binary) Interp() string {
	it := b.Segments(models.PT_INTERP)
	ph, ok := it.Next()
	if !ok || !checkRange(b.buf, ph.Off, ph.Filesz) {
		return ""
	}
	return string(bytes.TrimRight(b.buf[ph.Off:ph.Off+ph.Filesz], "\x00"))
}

func (b *Binary) phentSize() int {
	if b.Header.Class == models.ELFCLASS64 {
		return phdrSize64
	}
	return phdrSize32
}

func (b *Binary) shentSize() int {
	if b.Header.Class == models.ELFCLASS64 {
		return shdrSize64
	}
	return shdrSize32
}

// fileOffset translates a virtual address range to its file offset through
// the containing PT_LOAD segment. Dynamic-section tags hold virtual
// addresses, not file offsets.
func (b *Binary) fileOffset(vaddr, size uint64) (uint64, bool) {
	it := b.LoadSegments()
	for {
		ph, ok := it.Next()
		if !ok {
			return 0, false
		}
		if vaddr >= ph.Vaddr && vaddr-ph.Vaddr < ph.Filesz && size <= ph.Filesz-(vaddr-ph.Vaddr) {
			return ph.Off + (vaddr - ph.Vaddr), true
		}
	}
}
