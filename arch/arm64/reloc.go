// Package arm64 holds the AArch64 dynamic relocation kinds from "ELF for
// the Arm 64-bit Architecture (AArch64)", ARM IHI 0056B. Only the data and
// dynamic relocations a loader can meet at run time are named; the large
// static (link-time) space decodes as unknown.
package arm64

import "fmt"

type RelocationType uint32

const (
	// No relocation.
	R_AARCH64_NONE RelocationType = 0
	// Direct 64 bit, S + A.
	R_AARCH64_ABS64 RelocationType = 257
	// Direct 32 bit, S + A.
	R_AARCH64_ABS32 RelocationType = 258
	// Direct 16 bit, S + A.
	R_AARCH64_ABS16 RelocationType = 259
	// PC-relative 64 bit, S + A - P.
	R_AARCH64_PREL64 RelocationType = 260
	// PC-relative 32 bit, S + A - P.
	R_AARCH64_PREL32 RelocationType = 261
	// PC-relative 16 bit, S + A - P.
	R_AARCH64_PREL16 RelocationType = 262
	// Copy data from shared object.
	R_AARCH64_COPY RelocationType = 1024
	// Set GOT entry to data address, S + A.
	R_AARCH64_GLOB_DAT RelocationType = 1025
	// Set GOT entry to code address, S + A.
	R_AARCH64_JUMP_SLOT RelocationType = 1026
	// Add load address of shared object, Delta(S) + A.
	R_AARCH64_RELATIVE RelocationType = 1027
	// Module number, LDM(S).
	R_AARCH64_TLS_DTPMOD64 RelocationType = 1028
	// Module-relative offset, DTPREL(S+A).
	R_AARCH64_TLS_DTPREL64 RelocationType = 1029
	// TP-relative offset, TPREL(S+A).
	R_AARCH64_TLS_TPREL64 RelocationType = 1030
	// TLS descriptor, TLSDESC(S+A).
	R_AARCH64_TLSDESC RelocationType = 1031
	// STT_GNU_IFUNC indirection.
	R_AARCH64_IRELATIVE RelocationType = 1032
)

var names = map[RelocationType]string{
	R_AARCH64_NONE:         "R_AARCH64_NONE",
	R_AARCH64_ABS64:        "R_AARCH64_ABS64",
	R_AARCH64_ABS32:        "R_AARCH64_ABS32",
	R_AARCH64_ABS16:        "R_AARCH64_ABS16",
	R_AARCH64_PREL64:       "R_AARCH64_PREL64",
	R_AARCH64_PREL32:       "R_AARCH64_PREL32",
	R_AARCH64_PREL16:       "R_AARCH64_PREL16",
	R_AARCH64_COPY:         "R_AARCH64_COPY",
	R_AARCH64_GLOB_DAT:     "R_AARCH64_GLOB_DAT",
	R_AARCH64_JUMP_SLOT:    "R_AARCH64_JUMP_SLOT",
	R_AARCH64_RELATIVE:     "R_AARCH64_RELATIVE",
	R_AARCH64_TLS_DTPMOD64: "R_AARCH64_TLS_DTPMOD64",
	R_AARCH64_TLS_DTPREL64: "R_AARCH64_TLS_DTPREL64",
	R_AARCH64_TLS_TPREL64:  "R_AARCH64_TLS_TPREL64",
	R_AARCH64_TLSDESC:      "R_AARCH64_TLSDESC",
	R_AARCH64_IRELATIVE:    "R_AARCH64_IRELATIVE",
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
	return fmt.Sprintf("unknown arm64 relocation type %d", uint32(t))
}
