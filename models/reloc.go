package models

// RelocationType is a decoded, architecture-specific relocation kind.
// Each supported architecture provides a concrete implementation; numeric
// values outside the architecture's known set still decode (Known reports
// false) so an embedder can skip kinds it does not implement instead of
// failing the whole load.
type RelocationType interface {
	Value() uint32
	Known() bool
	String() string
}

// RelocationEntry is one decoded entry of a relocation table.
//
// For RELA-style tables the addend is explicit and HasAddend is true. For
// REL-style tables the addend lives at the target location; reading it
// requires memory access the core does not have, so HasAddend is false and
// the embedder is responsible for fetching it.
type RelocationEntry struct {
	Offset    uint64
	SymIndex  uint32
	Type      RelocationType
	Addend    int64
	HasAddend bool
}
