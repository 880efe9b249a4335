package models

import "fmt"

// ProgType is the segment type of a program header.
type ProgType uint32

const (
	PT_NULL    ProgType = 0
	PT_LOAD    ProgType = 1
	PT_DYNAMIC ProgType = 2
	PT_INTERP  ProgType = 3
	PT_NOTE    ProgType = 4
	PT_SHLIB   ProgType = 5
	PT_PHDR    ProgType = 6
	PT_TLS     ProgType = 7

	PT_GNU_EH_FRAME ProgType = 0x6474e550
	PT_GNU_STACK    ProgType = 0x6474e551
	PT_GNU_RELRO    ProgType = 0x6474e552
)

func (t ProgType) String() string {
	switch t {
	case PT_NULL:
		return "NULL"
	case PT_LOAD:
		return "LOAD"
	case PT_DYNAMIC:
		return "DYNAMIC"
	case PT_INTERP:
		return "INTERP"
	case PT_NOTE:
		return "NOTE"
	case PT_SHLIB:
		return "SHLIB"
	case PT_PHDR:
		return "PHDR"
	case PT_TLS:
		return "TLS"
	case PT_GNU_EH_FRAME:
		return "GNU_EH_FRAME"
	case PT_GNU_STACK:
		return "GNU_STACK"
	case PT_GNU_RELRO:
		return "GNU_RELRO"
	}
	return fmt.Sprintf("unknown segment type 0x%x", uint32(t))
}

// ProgFlag is the permission mask of a segment.
type ProgFlag uint32

const (
	PF_X ProgFlag = 1
	PF_W ProgFlag = 2
	PF_R ProgFlag = 4
)

func (f ProgFlag) String() string {
	s := []byte("---")
	if f&PF_R != 0 {
		s[0] = 'r'
	}
	if f&PF_W != 0 {
		s[1] = 'w'
	}
	if f&PF_X != 0 {
		s[2] = 'x'
	}
	return string(s)
}

// ProgramHeader describes one segment of the file. It is decoded on demand
// from the program header table and never mutated.
type ProgramHeader struct {
	Type   ProgType
	Flags  ProgFlag
	Off    uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

func (p *ProgramHeader) String() string {
	return fmt.Sprintf("%s %s off=0x%x vaddr=0x%x filesz=0x%x memsz=0x%x align=0x%x",
		p.Type, p.Flags, p.Off, p.Vaddr, p.Filesz, p.Memsz, p.Align)
}

// SegmentIter is a restartable sequence of program headers. Each call to
// Next decodes the next entry from its table index; no slice of headers is
// ever materialized. After Next returns false the caller must consult Err
// to distinguish exhaustion from a decode failure.
type SegmentIter interface {
	Next() (ProgramHeader, bool)
	Err() error
	Reset()
}
