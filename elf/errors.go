package elf

import "github.com/pkg/errors"

// Structural errors cover anything that would otherwise cause an
// out-of-bounds read: they are always raised before the offending access.
// Each site wraps the sentinel with the field and values involved, so
// errors.Cause can still classify the failure.
var (
	ErrTruncated          = errors.New("buffer too small for ELF header")
	ErrBadMagic           = errors.New("bad ELF magic")
	ErrBadClass           = errors.New("unsupported ELF class")
	ErrBadData            = errors.New("unsupported data encoding")
	ErrBadVersion         = errors.New("unsupported ELF version")
	ErrUnsupportedMachine = errors.New("unsupported machine")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrUnsupportedABI     = errors.New("unsupported OS ABI")
	ErrBadEntSize         = errors.New("unexpected table entry size")
	ErrRange              = errors.New("byte range out of bounds")
	ErrOddTableSize       = errors.New("table size not a multiple of its entry size")
	ErrBadString          = errors.New("unterminated string table entry")
	ErrNoSymtab           = errors.New("no symbol table")
	ErrNoStrtab           = errors.New("no string table")
	ErrBadTLS             = errors.New("TLS memory size smaller than file size")
)
