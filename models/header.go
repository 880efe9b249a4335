package models

import (
	"encoding/binary"
	"fmt"
)

// Class is the ELF word width from the identification bytes.
type Class uint8

const (
	ELFCLASS32 Class = 1
	ELFCLASS64 Class = 2
)

func (c Class) Bits() int {
	if c == ELFCLASS64 {
		return 64
	}
	return 32
}

func (c Class) String() string {
	switch c {
	case ELFCLASS32:
		return "ELF32"
	case ELFCLASS64:
		return "ELF64"
	}
	return fmt.Sprintf("unknown class %d", uint8(c))
}

// Data is the ELF byte encoding from the identification bytes.
type Data uint8

const (
	ELFDATA2LSB Data = 1
	ELFDATA2MSB Data = 2
)

func (d Data) ByteOrder() binary.ByteOrder {
	if d == ELFDATA2MSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (d Data) String() string {
	switch d {
	case ELFDATA2LSB:
		return "little-endian"
	case ELFDATA2MSB:
		return "big-endian"
	}
	return fmt.Sprintf("unknown data encoding %d", uint8(d))
}

type OSABI uint8

const (
	ELFOSABI_SYSV  OSABI = 0
	ELFOSABI_LINUX OSABI = 3
)

type FileType uint16

const (
	ET_NONE FileType = 0
	ET_REL  FileType = 1
	ET_EXEC FileType = 2
	ET_DYN  FileType = 3
	ET_CORE FileType = 4
)

func (t FileType) String() string {
	switch t {
	case ET_NONE:
		return "none"
	case ET_REL:
		return "relocatable"
	case ET_EXEC:
		return "executable"
	case ET_DYN:
		return "shared object"
	case ET_CORE:
		return "core"
	}
	return fmt.Sprintf("unknown type %d", uint16(t))
}

type Machine uint16

const (
	EM_386     Machine = 3
	EM_ARM     Machine = 40
	EM_X86_64  Machine = 62
	EM_AARCH64 Machine = 183
	EM_RISCV   Machine = 243
)

func (m Machine) String() string {
	switch m {
	case EM_386:
		return "x86"
	case EM_ARM:
		return "arm"
	case EM_X86_64:
		return "x86_64"
	case EM_AARCH64:
		return "arm64"
	case EM_RISCV:
		return "riscv"
	}
	return fmt.Sprintf("unknown machine %d", uint16(m))
}

// EV_CURRENT is the only ELF version ever defined.
const EV_CURRENT = 1

// FileHeader is the validated ELF file header. It is filled once during
// parsing and never mutated; its class and data encoding govern how every
// other table in the file is decoded.
type FileHeader struct {
	Class      Class
	Data       Data
	OSABI      OSABI
	ABIVersion uint8

	Type    FileType
	Machine Machine
	Version uint32
	Entry   uint64
	Flags   uint32

	Phoff     uint64
	Phentsize uint16
	Phnum     uint16

	Shoff     uint64
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

func (h *FileHeader) Bits() int {
	return h.Class.Bits()
}

func (h *FileHeader) ByteOrder() binary.ByteOrder {
	return h.Data.ByteOrder()
}
