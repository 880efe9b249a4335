package models

// Symbol is one entry of a symbol table with its name already resolved
// against the linked string table.
type Symbol struct {
	Name    string
	Value   uint64
	Size    uint64
	Info    uint8
	Other   uint8
	Shndx   uint16
	Dynamic bool
}

func (s Symbol) Bind() uint8 {
	return s.Info >> 4
}

func (s Symbol) Type() uint8 {
	return s.Info & 0xf
}

func (s Symbol) Contains(addr uint64) bool {
	return s.Value <= addr && (s.Value+s.Size > addr || s.Size == 0)
}
