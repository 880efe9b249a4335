// Package riscv holds the RISC-V relocation kinds from the RISC-V ELF psABI
// specification. The same numbering covers RV32 and RV64; the 32/64 bit
// variants of the TLS kinds are distinct entries.
package riscv

import "fmt"

type RelocationType uint32

const (
	// No relocation.
	R_RISCV_NONE RelocationType = 0
	// Add 32 bit zero extended symbol value, S + A.
	R_RISCV_32 RelocationType = 1
	// Add 64 bit symbol value, S + A.
	R_RISCV_64 RelocationType = 2
	// Add load address of shared object, B + A.
	R_RISCV_RELATIVE RelocationType = 3
	// Copy data from shared object.
	R_RISCV_COPY RelocationType = 4
	// Set GOT entry to code address.
	R_RISCV_JUMP_SLOT RelocationType = 5
	// 32 bit ID of module containing symbol.
	R_RISCV_TLS_DTPMOD32 RelocationType = 6
	// ID of module containing symbol.
	R_RISCV_TLS_DTPMOD64 RelocationType = 7
	// 32 bit relative offset in TLS block.
	R_RISCV_TLS_DTPREL32 RelocationType = 8
	// Relative offset in TLS block.
	R_RISCV_TLS_DTPREL64 RelocationType = 9
	// 32 bit relative offset in static TLS block.
	R_RISCV_TLS_TPREL32 RelocationType = 10
	// Relative offset in static TLS block.
	R_RISCV_TLS_TPREL64 RelocationType = 11
	// PC-relative branch.
	R_RISCV_BRANCH RelocationType = 16
	// PC-relative jump.
	R_RISCV_JAL RelocationType = 17
	// PC-relative call.
	R_RISCV_CALL RelocationType = 18
	// PC-relative call via PLT.
	R_RISCV_CALL_PLT RelocationType = 19
	// PC-relative GOT reference.
	R_RISCV_GOT_HI20 RelocationType = 20
	// PC-relative TLS IE GOT offset.
	R_RISCV_TLS_GOT_HI20 RelocationType = 21
	// PC-relative TLS GD reference.
	R_RISCV_TLS_GD_HI20 RelocationType = 22
	// PC-relative reference.
	R_RISCV_PCREL_HI20 RelocationType = 23
	// PC-relative reference, low 12 bits (I-type).
	R_RISCV_PCREL_LO12_I RelocationType = 24
	// PC-relative reference, low 12 bits (S-type).
	R_RISCV_PCREL_LO12_S RelocationType = 25
	// Absolute address, high 20 bits.
	R_RISCV_HI20 RelocationType = 26
	// Absolute address, low 12 bits (I-type).
	R_RISCV_LO12_I RelocationType = 27
	// Absolute address, low 12 bits (S-type).
	R_RISCV_LO12_S RelocationType = 28
	// TLS LE thread offset, high 20 bits.
	R_RISCV_TPREL_HI20 RelocationType = 29
	// TLS LE thread offset, low 12 bits (I-type).
	R_RISCV_TPREL_LO12_I RelocationType = 30
	// TLS LE thread offset, low 12 bits (S-type).
	R_RISCV_TPREL_LO12_S RelocationType = 31
	// TLS LE thread usage.
	R_RISCV_TPREL_ADD RelocationType = 32
	R_RISCV_ADD8      RelocationType = 33
	R_RISCV_ADD16     RelocationType = 34
	R_RISCV_ADD32     RelocationType = 35
	R_RISCV_ADD64     RelocationType = 36
	R_RISCV_SUB8      RelocationType = 37
	R_RISCV_SUB16     RelocationType = 38
	R_RISCV_SUB32     RelocationType = 39
	R_RISCV_SUB64     RelocationType = 40
	// GNU C++ vtable hierarchy.
	R_RISCV_GNU_VTINHERIT RelocationType = 41
	// GNU C++ vtable member usage.
	R_RISCV_GNU_VTENTRY RelocationType = 42
	// Alignment statement.
	R_RISCV_ALIGN RelocationType = 43
	// PC-relative branch offset (compressed).
	R_RISCV_RVC_BRANCH RelocationType = 44
	// PC-relative jump offset (compressed).
	R_RISCV_RVC_JUMP RelocationType = 45
	// Absolute address (compressed).
	R_RISCV_RVC_LUI RelocationType = 46
	// GP-relative reference (I-type).
	R_RISCV_GPREL_I RelocationType = 47
	// GP-relative reference (S-type).
	R_RISCV_GPREL_S RelocationType = 48
	// TP-relative TLS LE load.
	R_RISCV_TPREL_I RelocationType = 49
	// TP-relative TLS LE store.
	R_RISCV_TPREL_S RelocationType = 50
	// Instruction pair can be relaxed.
	R_RISCV_RELAX RelocationType = 51
	R_RISCV_SUB6  RelocationType = 52
	R_RISCV_SET6  RelocationType = 53
	R_RISCV_SET8  RelocationType = 54
	R_RISCV_SET16 RelocationType = 55
	R_RISCV_SET32 RelocationType = 56
)

var names = map[RelocationType]string{
	R_RISCV_NONE:          "R_RISCV_NONE",
	R_RISCV_32:            "R_RISCV_32",
	R_RISCV_64:            "R_RISCV_64",
	R_RISCV_RELATIVE:      "R_RISCV_RELATIVE",
	R_RISCV_COPY:          "R_RISCV_COPY",
	R_RISCV_JUMP_SLOT:     "R_RISCV_JUMP_SLOT",
	R_RISCV_TLS_DTPMOD32:  "R_RISCV_TLS_DTPMOD32",
	R_RISCV_TLS_DTPMOD64:  "R_RISCV_TLS_DTPMOD64",
	R_RISCV_TLS_DTPREL32:  "R_RISCV_TLS_DTPREL32",
	R_RISCV_TLS_DTPREL64:  "R_RISCV_TLS_DTPREL64",
	R_RISCV_TLS_TPREL32:   "R_RISCV_TLS_TPREL32",
	R_RISCV_TLS_TPREL64:   "R_RISCV_TLS_TPREL64",
	R_RISCV_BRANCH:        "R_RISCV_BRANCH",
	R_RISCV_JAL:           "R_RISCV_JAL",
	R_RISCV_CALL:          "R_RISCV_CALL",
	R_RISCV_CALL_PLT:      "R_RISCV_CALL_PLT",
	R_RISCV_GOT_HI20:      "R_RISCV_GOT_HI20",
	R_RISCV_TLS_GOT_HI20:  "R_RISCV_TLS_GOT_HI20",
	R_RISCV_TLS_GD_HI20:   "R_RISCV_TLS_GD_HI20",
	R_RISCV_PCREL_HI20:    "R_RISCV_PCREL_HI20",
	R_RISCV_PCREL_LO12_I:  "R_RISCV_PCREL_LO12_I",
	R_RISCV_PCREL_LO12_S:  "R_RISCV_PCREL_LO12_S",
	R_RISCV_HI20:          "R_RISCV_HI20",
	R_RISCV_LO12_I:        "R_RISCV_LO12_I",
	R_RISCV_LO12_S:        "R_RISCV_LO12_S",
	R_RISCV_TPREL_HI20:    "R_RISCV_TPREL_HI20",
	R_RISCV_TPREL_LO12_I:  "R_RISCV_TPREL_LO12_I",
	R_RISCV_TPREL_LO12_S:  "R_RISCV_TPREL_LO12_S",
	R_RISCV_TPREL_ADD:     "R_RISCV_TPREL_ADD",
	R_RISCV_ADD8:          "R_RISCV_ADD8",
	R_RISCV_ADD16:         "R_RISCV_ADD16",
	R_RISCV_ADD32:         "R_RISCV_ADD32",
	R_RISCV_ADD64:         "R_RISCV_ADD64",
	R_RISCV_SUB8:          "R_RISCV_SUB8",
	R_RISCV_SUB16:         "R_RISCV_SUB16",
	R_RISCV_SUB32:         "R_RISCV_SUB32",
	R_RISCV_SUB64:         "R_RISCV_SUB64",
	R_RISCV_GNU_VTINHERIT: "R_RISCV_GNU_VTINHERIT",
	R_RISCV_GNU_VTENTRY:   "R_RISCV_GNU_VTENTRY",
	R_RISCV_ALIGN:         "R_RISCV_ALIGN",
	R_RISCV_RVC_BRANCH:    "R_RISCV_RVC_BRANCH",
	R_RISCV_RVC_JUMP:      "R_RISCV_RVC_JUMP",
	R_RISCV_RVC_LUI:       "R_RISCV_RVC_LUI",
	R_RISCV_GPREL_I:       "R_RISCV_GPREL_I",
	R_RISCV_GPREL_S:       "R_RISCV_GPREL_S",
	R_RISCV_TPREL_I:       "R_RISCV_TPREL_I",
	R_RISCV_TPREL_S:       "R_RISCV_TPREL_S",
	R_RISCV_RELAX:         "R_RISCV_RELAX",
	R_RISCV_SUB6:          "R_RISCV_SUB6",
	R_RISCV_SET6:          "R_RISCV_SET6",
	R_RISCV_SET8:          "R_RISCV_SET8",
	R_RISCV_SET16:         "R_RISCV_SET16",
	R_RISCV_SET32:         "R_RISCV_SET32",
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
	return fmt.Sprintf("unknown riscv relocation type %d", uint32(t))
}
