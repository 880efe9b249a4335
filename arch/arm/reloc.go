// Package arm holds the relocation kinds for 32-bit Arm from "ELF for the
// ARM Architecture", ARM IHI 0044F. The numbering is contiguous, including
// the obsolete and private entries, so the whole table is kept; a loader
// meets only a handful of the dynamic kinds (ABS32, GLOB_DAT, JUMP_SLOT,
// RELATIVE, the TLS_* group) but decoding must not mangle the rest.
package arm

import "fmt"

type RelocationType uint32

const (
	R_ARM_NONE RelocationType = iota
	R_ARM_PC24
	// Static data, (S + A) | T.
	R_ARM_ABS32
	// Static data, ((S + A) | T) - P.
	R_ARM_REL32
	R_ARM_LDR_PC_G0
	R_ARM_ABS16
	R_ARM_ABS12
	R_ARM_THM_ABS5
	R_ARM_ABS8
	R_ARM_SBREL32
	R_ARM_THM_CALL
	R_ARM_THM_PC8
	R_ARM_BREL_ADJ
	R_ARM_TLS_DESC
	R_ARM_THM_SWI8
	R_ARM_XPC25
	R_ARM_THM_XPC22
	// Dynamic, module ID of the symbol's module.
	R_ARM_TLS_DTPMOD32
	// Dynamic, S + A - TLS.
	R_ARM_TLS_DTPOFF32
	// Dynamic, S + A - tp.
	R_ARM_TLS_TPOFF32
	R_ARM_COPY
	R_ARM_GLOB_DAT
	R_ARM_JUMP_SLOT
	// Dynamic, B(S) + A.
	R_ARM_RELATIVE
	R_ARM_GOTOFF32
	R_ARM_BASE_PREL
	R_ARM_GOT_BREL
	R_ARM_PLT32
	R_ARM_CALL
	R_ARM_JUMP24
	R_ARM_THM_JUMP24
	R_ARM_BASE_ABS
	R_ARM_ALU_PCREL_7_0
	R_ARM_ALU_PCREL_15_8
	R_ARM_ALU_PCREL_23_15
	R_ARM_LDR_SBREL_11_0_NC
	R_ARM_ALU_SBREL_19_12_NC
	R_ARM_ALU_SBREL_27_20_CK
	R_ARM_TARGET1
	R_ARM_SBREL31
	R_ARM_V4BX
	R_ARM_TARGET2
	R_ARM_PREL31
	R_ARM_MOVW_ABS_NC
	R_ARM_MOVT_ABS
	R_ARM_MOVW_PREL_NC
	R_ARM_MOVT_PREL
	R_ARM_THM_MOVW_ABS_NC
	R_ARM_THM_MOVT_ABS
	R_ARM_THM_MOVW_PREL_NC
	R_ARM_THM_MOVT_PREL
	R_ARM_THM_JUMP19
	R_ARM_THM_JUMP6
	R_ARM_THM_ALU_PREL_11_0
	R_ARM_THM_PC12
	R_ARM_ABS32_NOI
	R_ARM_REL32_NOI
	R_ARM_ALU_PC_G0_NC
	R_ARM_ALU_PC_G0
	R_ARM_ALU_PC_G1_NC
	R_ARM_ALU_PC_G1
	R_ARM_ALU_PC_G2
	R_ARM_LDR_PC_G1
	R_ARM_LDR_PC_G2
	R_ARM_LDRS_PC_G0
	R_ARM_LDRS_PC_G1
	R_ARM_LDRS_PC_G2
	R_ARM_LDC_PC_G0
	R_ARM_LDC_PC_G1
	R_ARM_LDC_PC_G2
	R_ARM_ALU_SB_G0_NC
	R_ARM_ALU_SB_G0
	R_ARM_ALU_SB_G1_NC
	R_ARM_ALU_SB_G1
	R_ARM_ALU_SB_G2
	R_ARM_LDR_SB_G0
	R_ARM_LDR_SB_G1
	R_ARM_LDR_SB_G2
	R_ARM_LDRS_SB_G0
	R_ARM_LDRS_SB_G1
	R_ARM_LDRS_SB_G2
	R_ARM_LDC_SB_G0
	R_ARM_LDC_SB_G1
	R_ARM_LDC_SB_G2
	R_ARM_MOVW_BREL_NC
	R_ARM_MOVT_BREL
	R_ARM_MOVW_BREL
	R_ARM_THM_MOVW_BREL_NC
	R_ARM_THM_MOVT_BREL
	R_ARM_THM_MOVW_BREL
	R_ARM_TLS_GOTDESC
	R_ARM_TLS_CALL
	R_ARM_TLS_DESCSEQ
	R_ARM_THM_TLS_CALL
	R_ARM_PLT32_ABS
	R_ARM_GOT_ABS
	R_ARM_GOT_PREL
	R_ARM_GOT_BREL12
	R_ARM_GOTOFF12
	R_ARM_GOTRELAX
	R_ARM_GNU_VTENTRY
	R_ARM_GNU_VTINHERIT
	R_ARM_THM_JUMP11
	R_ARM_THM_JUMP8
	R_ARM_TLS_GD32
	R_ARM_TLS_LDM32
	R_ARM_TLS_LDO32
	R_ARM_TLS_IE32
	R_ARM_TLS_LE32
	R_ARM_TLS_LDO12
	R_ARM_TLS_LE12
	R_ARM_TLS_IE12GP
	R_ARM_PRIVATE_0
	R_ARM_PRIVATE_1
	R_ARM_PRIVATE_2
	R_ARM_PRIVATE_3
	R_ARM_PRIVATE_4
	R_ARM_PRIVATE_5
	R_ARM_PRIVATE_6
	R_ARM_PRIVATE_7
	R_ARM_PRIVATE_8
	R_ARM_PRIVATE_9
	R_ARM_PRIVATE_10
	R_ARM_PRIVATE_11
	R_ARM_PRIVATE_12
	R_ARM_PRIVATE_13
	R_ARM_PRIVATE_14
	R_ARM_PRIVATE_15
	R_ARM_ME_TOO
	R_ARM_THM_TLS_DESCSEQ16
	R_ARM_THM_TLS_DESCSEQ32
	R_ARM_THM_GOT_BREL12
	R_ARM_THM_ALU_ABS_G0_NC
	R_ARM_THM_ALU_ABS_G1_NC
	R_ARM_THM_ALU_ABS_G2_NC
	R_ARM_THM_ALU_ABS_G3
)

// names is indexed by relocation value; the numbering has no gaps.
var names = [...]string{
	"R_ARM_NONE", "R_ARM_PC24", "R_ARM_ABS32", "R_ARM_REL32",
	"R_ARM_LDR_PC_G0", "R_ARM_ABS16", "R_ARM_ABS12", "R_ARM_THM_ABS5",
	"R_ARM_ABS8", "R_ARM_SBREL32", "R_ARM_THM_CALL", "R_ARM_THM_PC8",
	"R_ARM_BREL_ADJ", "R_ARM_TLS_DESC", "R_ARM_THM_SWI8", "R_ARM_XPC25",
	"R_ARM_THM_XPC22", "R_ARM_TLS_DTPMOD32", "R_ARM_TLS_DTPOFF32",
	"R_ARM_TLS_TPOFF32", "R_ARM_COPY", "R_ARM_GLOB_DAT", "R_ARM_JUMP_SLOT",
	"R_ARM_RELATIVE", "R_ARM_GOTOFF32", "R_ARM_BASE_PREL", "R_ARM_GOT_BREL",
	"R_ARM_PLT32", "R_ARM_CALL", "R_ARM_JUMP24", "R_ARM_THM_JUMP24",
	"R_ARM_BASE_ABS", "R_ARM_ALU_PCREL_7_0", "R_ARM_ALU_PCREL_15_8",
	"R_ARM_ALU_PCREL_23_15", "R_ARM_LDR_SBREL_11_0_NC",
	"R_ARM_ALU_SBREL_19_12_NC", "R_ARM_ALU_SBREL_27_20_CK", "R_ARM_TARGET1",
	"R_ARM_SBREL31", "R_ARM_V4BX", "R_ARM_TARGET2", "R_ARM_PREL31",
	"R_ARM_MOVW_ABS_NC", "R_ARM_MOVT_ABS", "R_ARM_MOVW_PREL_NC",
	"R_ARM_MOVT_PREL", "R_ARM_THM_MOVW_ABS_NC", "R_ARM_THM_MOVT_ABS",
	"R_ARM_THM_MOVW_PREL_NC", "R_ARM_THM_MOVT_PREL", "R_ARM_THM_JUMP19",
	"R_ARM_THM_JUMP6", "R_ARM_THM_ALU_PREL_11_0", "R_ARM_THM_PC12",
	"R_ARM_ABS32_NOI", "R_ARM_REL32_NOI", "R_ARM_ALU_PC_G0_NC",
	"R_ARM_ALU_PC_G0", "R_ARM_ALU_PC_G1_NC", "R_ARM_ALU_PC_G1",
	"R_ARM_ALU_PC_G2", "R_ARM_LDR_PC_G1", "R_ARM_LDR_PC_G2",
	"R_ARM_LDRS_PC_G0", "R_ARM_LDRS_PC_G1", "R_ARM_LDRS_PC_G2",
	"R_ARM_LDC_PC_G0", "R_ARM_LDC_PC_G1", "R_ARM_LDC_PC_G2",
	"R_ARM_ALU_SB_G0_NC", "R_ARM_ALU_SB_G0", "R_ARM_ALU_SB_G1_NC",
	"R_ARM_ALU_SB_G1", "R_ARM_ALU_SB_G2", "R_ARM_LDR_SB_G0",
	"R_ARM_LDR_SB_G1", "R_ARM_LDR_SB_G2", "R_ARM_LDRS_SB_G0",
	"R_ARM_LDRS_SB_G1", "R_ARM_LDRS_SB_G2", "R_ARM_LDC_SB_G0",
	"R_ARM_LDC_SB_G1", "R_ARM_LDC_SB_G2", "R_ARM_MOVW_BREL_NC",
	"R_ARM_MOVT_BREL", "R_ARM_MOVW_BREL", "R_ARM_THM_MOVW_BREL_NC",
	"R_ARM_THM_MOVT_BREL", "R_ARM_THM_MOVW_BREL", "R_ARM_TLS_GOTDESC",
	"R_ARM_TLS_CALL", "R_ARM_TLS_DESCSEQ", "R_ARM_THM_TLS_CALL",
	"R_ARM_PLT32_ABS", "R_ARM_GOT_ABS", "R_ARM_GOT_PREL",
	"R_ARM_GOT_BREL12", "R_ARM_GOTOFF12", "R_ARM_GOTRELAX",
	"R_ARM_GNU_VTENTRY", "R_ARM_GNU_VTINHERIT", "R_ARM_THM_JUMP11",
	"R_ARM_THM_JUMP8", "R_ARM_TLS_GD32", "R_ARM_TLS_LDM32",
	"R_ARM_TLS_LDO32", "R_ARM_TLS_IE32", "R_ARM_TLS_LE32",
	"R_ARM_TLS_LDO12", "R_ARM_TLS_LE12", "R_ARM_TLS_IE12GP",
	"R_ARM_PRIVATE_0", "R_ARM_PRIVATE_1", "R_ARM_PRIVATE_2",
	"R_ARM_PRIVATE_3", "R_ARM_PRIVATE_4", "R_ARM_PRIVATE_5",
	"R_ARM_PRIVATE_6", "R_ARM_PRIVATE_7", "R_ARM_PRIVATE_8",
	"R_ARM_PRIVATE_9", "R_ARM_PRIVATE_10", "R_ARM_PRIVATE_11",
	"R_ARM_PRIVATE_12", "R_ARM_PRIVATE_13", "R_ARM_PRIVATE_14",
	"R_ARM_PRIVATE_15", "R_ARM_ME_TOO", "R_ARM_THM_TLS_DESCSEQ16",
	"R_ARM_THM_TLS_DESCSEQ32", "R_ARM_THM_GOT_BREL12",
	"R_ARM_THM_ALU_ABS_G0_NC", "R_ARM_THM_ALU_ABS_G1_NC",
	"R_ARM_THM_ALU_ABS_G2_NC", "R_ARM_THM_ALU_ABS_G3",
}

// Type decodes a raw relocation type value.
func Type(v uint32) RelocationType {
	return RelocationType(v)
}

func (t RelocationType) Value() uint32 {
	return uint32(t)
}

func (t RelocationType) Known() bool {
	return int(t) < len(names)
}

func (t RelocationType) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("unknown arm relocation type %d", uint32(t))
}
