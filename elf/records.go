package elf

import (
	"bytes"
	"encoding/binary"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// Raw on-disk records for both classes. Field widths match the System V
// ABI exactly; struc derives the wire size from the Go types, so these
// structs must never gain padding-sensitive fields.

const identSize = 16

const (
	ehdrSize32 = 52
	ehdrSize64 = 64
	phdrSize32 = 32
	phdrSize64 = 56
	shdrSize32 = 40
	shdrSize64 = 64
	symSize32  = 16
	symSize64  = 24
	dynSize32  = 8
	dynSize64  = 16
	relSize32  = 8
	relSize64  = 16
	relaSize32 = 12
	relaSize64 = 24
)

type elf32Ehdr struct {
	Ident     [identSize]byte
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint32
	Phoff     uint32
	Shoff     uint32
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

type elf64Ehdr struct {
	Ident     [identSize]byte
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

type elf32Phdr struct {
	Type   uint32
	Off    uint32
	Vaddr  uint32
	Paddr  uint32
	Filesz uint32
	Memsz  uint32
	Flags  uint32
	Align  uint32
}

// ELF64 moved the flags word up next to the type; the field order is not
// the same as ELF32.
type elf64Phdr struct {
	Type   uint32
	Flags  uint32
	Off    uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

type elf32Shdr struct {
	Name      uint32
	Type      uint32
	Flags     uint32
	Addr      uint32
	Off       uint32
	Size      uint32
	Link      uint32
	Info      uint32
	Addralign uint32
	Entsize   uint32
}

type elf64Shdr struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Off       uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

type elf32Sym struct {
	Name  uint32
	Value uint32
	Size  uint32
	Info  uint8
	Other uint8
	Shndx uint16
}

type elf64Sym struct {
	Name  uint32
	Info  uint8
	Other uint8
	Shndx uint16
	Value uint64
	Size  uint64
}

type elf32Dyn struct {
	Tag int32
	Val uint32
}

type elf64Dyn struct {
	Tag int64
	Val uint64
}

type elf32Rel struct {
	Off  uint32
	Info uint32
}

type elf32Rela struct {
	Off    uint32
	Info   uint32
	Addend int32
}

type elf64Rel struct {
	Off  uint64
	Info uint64
}

type elf64Rela struct {
	Off    uint64
	Info   uint64
	Addend int64
}

// unpackAt decodes one fixed-size record after proving the byte range lies
// inside the buffer. Every table access in the package funnels through
// here, so adversarial offsets can never read past the buffer.
func unpackAt(buf []byte, off, size uint64, order binary.ByteOrder, v interface{}) error {
	if off > uint64(len(buf)) || size > uint64(len(buf))-off {
		return errors.Wrapf(ErrRange, "%d bytes at offset 0x%x in a %d byte buffer", size, off, len(buf))
	}
	return struc.UnpackWithOrder(bytes.NewReader(buf[off:off+size]), v, order)
}

// checkRange reports whether [off, off+size) lies inside the buffer
// without risking overflow.
func checkRange(buf []byte, off, size uint64) bool {
	return off <= uint64(len(buf)) && size <= uint64(len(buf))-off
}
