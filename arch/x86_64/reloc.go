// Package x86_64 holds the AMD64 relocation kinds from the System V AMD64
// ABI, psABI draft 0.99.7, table 4.10.
package x86_64

import "fmt"

type RelocationType uint32

const (
	// No relocation.
	R_AMD64_NONE RelocationType = 0
	// Add 64 bit symbol value, S + A.
	R_AMD64_64 RelocationType = 1
	// PC-relative 32 bit signed symbol value, S + A - P.
	R_AMD64_PC32 RelocationType = 2
	// 32 bit GOT entry offset, G + A.
	R_AMD64_GOT32 RelocationType = 3
	// PC-relative 32 bit PLT offset, L + A - P.
	R_AMD64_PLT32 RelocationType = 4
	// Copy data from shared object.
	R_AMD64_COPY RelocationType = 5
	// Set GOT entry to data address, S.
	R_AMD64_GLOB_DAT RelocationType = 6
	// Set GOT entry to code address, S.
	R_AMD64_JMP_SLOT RelocationType = 7
	// Add load address of shared object, B + A.
	R_AMD64_RELATIVE RelocationType = 8
	// PC-relative 32 bit signed offset to GOT entry, G + GOT + A - P.
	R_AMD64_GOTPCREL RelocationType = 9
	// Direct 32 bit zero extended, S + A.
	R_AMD64_32 RelocationType = 10
	// Direct 32 bit sign extended, S + A.
	R_AMD64_32S RelocationType = 11
	// Direct 16 bit zero extended, S + A.
	R_AMD64_16 RelocationType = 12
	// PC-relative 16 bit signed extended, S + A - P.
	R_AMD64_PC16 RelocationType = 13
	// Direct 8 bit sign extended, S + A.
	R_AMD64_8 RelocationType = 14
	// PC-relative 8 bit signed extended, S + A - P.
	R_AMD64_PC8 RelocationType = 15
	// ID of module containing symbol.
	R_AMD64_DTPMOD64 RelocationType = 16
	// Offset in module's TLS block.
	R_AMD64_DTPOFF64 RelocationType = 17
	// Offset in initial TLS block.
	R_AMD64_TPOFF64 RelocationType = 18
	// PC-relative 32 bit signed offset to two GOT entries for GD symbol.
	R_AMD64_TLSGD RelocationType = 19
	// PC-relative 32 bit signed offset to two GOT entries for LD symbol.
	R_AMD64_TLSLD RelocationType = 20
	// Offset in TLS block.
	R_AMD64_DTPOFF32 RelocationType = 21
	// PC-relative 32 bit signed offset to GOT entry for IE symbol.
	R_AMD64_GOTTPOFF RelocationType = 22
	// Offset in initial TLS block.
	R_AMD64_TPOFF32 RelocationType = 23
	// PC-relative 64 bit, S + A - P.
	R_AMD64_PC64 RelocationType = 24
	// 64 bit offset to GOT base, S + A - GOT.
	R_AMD64_GOTOFF64 RelocationType = 25
	// PC-relative 32 bit signed offset to GOT base, GOT + A - P.
	R_AMD64_GOTPC32 RelocationType = 26
	// Size of symbol plus 32 bit addend, Z + A.
	R_AMD64_SIZE32 RelocationType = 32
	// Size of symbol plus 64 bit addend, Z + A.
	R_AMD64_SIZE64 RelocationType = 33
)

var names = map[RelocationType]string{
	R_AMD64_NONE:     "R_AMD64_NONE",
	R_AMD64_64:       "R_AMD64_64",
	R_AMD64_PC32:     "R_AMD64_PC32",
	R_AMD64_GOT32:    "R_AMD64_GOT32",
	R_AMD64_PLT32:    "R_AMD64_PLT32",
	R_AMD64_COPY:     "R_AMD64_COPY",
	R_AMD64_GLOB_DAT: "R_AMD64_GLOB_DAT",
	R_AMD64_JMP_SLOT: "R_AMD64_JMP_SLOT",
	R_AMD64_RELATIVE: "R_AMD64_RELATIVE",
	R_AMD64_GOTPCREL: "R_AMD64_GOTPCREL",
	R_AMD64_32:       "R_AMD64_32",
	R_AMD64_32S:      "R_AMD64_32S",
	R_AMD64_16:       "R_AMD64_16",
	R_AMD64_PC16:     "R_AMD64_PC16",
	R_AMD64_8:        "R_AMD64_8",
	R_AMD64_PC8:      "R_AMD64_PC8",
	R_AMD64_DTPMOD64: "R_AMD64_DTPMOD64",
	R_AMD64_DTPOFF64: "R_AMD64_DTPOFF64",
	R_AMD64_TPOFF64:  "R_AMD64_TPOFF64",
	R_AMD64_TLSGD:    "R_AMD64_TLSGD",
	R_AMD64_TLSLD:    "R_AMD64_TLSLD",
	R_AMD64_DTPOFF32: "R_AMD64_DTPOFF32",
	R_AMD64_GOTTPOFF: "R_AMD64_GOTTPOFF",
	R_AMD64_TPOFF32:  "R_AMD64_TPOFF32",
	R_AMD64_PC64:     "R_AMD64_PC64",
	R_AMD64_GOTOFF64: "R_AMD64_GOTOFF64",
	R_AMD64_GOTPC32:  "R_AMD64_GOTPC32",
	R_AMD64_SIZE32:   "R_AMD64_SIZE32",
	R_AMD64_SIZE64:   "R_AMD64_SIZE64",
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
	return fmt.Sprintf("unknown x86_64 relocation type %d", uint32(t))
}
