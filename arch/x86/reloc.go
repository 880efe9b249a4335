// Package x86 holds the i386 relocation kinds from the System V ABI Intel386
// supplement.
package x86

import "fmt"

type RelocationType uint32

const (
	// No relocation.
	R_386_NONE RelocationType = 0
	// Add 32 bit symbol value, S + A.
	R_386_32 RelocationType = 1
	// PC-relative 32 bit signed symbol value, S + A - P.
	R_386_PC32 RelocationType = 2
	// 32 bit GOT entry address, G + A.
	R_386_GOT32 RelocationType = 3
	// 32 bit PLT entry address, L + A - P.
	R_386_PLT32 RelocationType = 4
	// Copy data from shared object.
	R_386_COPY RelocationType = 5
	// Set GOT entry to data address, S.
	R_386_GLOB_DAT RelocationType = 6
	// Set GOT entry to code address, S.
	R_386_JMP_SLOT RelocationType = 7
	// Add load address of shared object, B + A.
	R_386_RELATIVE RelocationType = 8
	// Offset to GOT base, S + A - GOT.
	R_386_GOTOFF RelocationType = 9
	// PC-relative offset to GOT base, GOT + A - P.
	R_386_GOTPC RelocationType = 10
	R_386_32PLT RelocationType = 11
	R_386_16    RelocationType = 20
	R_386_PC16  RelocationType = 21
	R_386_8     RelocationType = 22
	R_386_PC8   RelocationType = 23
	// Size of symbol plus addend, Z + A.
	R_386_SIZE32 RelocationType = 38
)

var names = map[RelocationType]string{
	R_386_NONE:     "R_386_NONE",
	R_386_32:       "R_386_32",
	R_386_PC32:     "R_386_PC32",
	R_386_GOT32:    "R_386_GOT32",
	R_386_PLT32:    "R_386_PLT32",
	R_386_COPY:     "R_386_COPY",
	R_386_GLOB_DAT: "R_386_GLOB_DAT",
	R_386_JMP_SLOT: "R_386_JMP_SLOT",
	R_386_RELATIVE: "R_386_RELATIVE",
	R_386_GOTOFF:   "R_386_GOTOFF",
	R_386_GOTPC:    "R_386_GOTPC",
	R_386_32PLT:    "R_386_32PLT",
	R_386_16:       "R_386_16",
	R_386_PC16:     "R_386_PC16",
	R_386_8:        "R_386_8",
	R_386_PC8:      "R_386_PC8",
	R_386_SIZE32:   "R_386_SIZE32",
}

// Type decodes a raw relocation type value.
func Type(v uint32) RelocationType {
	return RelocationType(v)
}

func (t RelocationType) Value() uint32 {
	return uint32(t)
}

func (t RelocationType) Known() bool {
	_, ok := names[t]
	return ok
}

func (t RelocationType) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("unknown x86 relocation type %d", uint32(t))
}
