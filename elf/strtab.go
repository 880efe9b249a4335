package elf

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

// Strtab is a view of one string table. The window is validated against
// the buffer at construction; lookups can then only fail on a bad offset
// or a string running off the table's end.
type Strtab struct {
	data []byte
}

// strtabAt builds a view over the string table section at index idx.
func (b *Binary) strtabAt(idx int) (Strtab, error) {
	sh, err := b.SectionAt(idx)
	if err != nil {
		return Strtab{}, err
	}
	if sh.Type != models.SHT_STRTAB {
		return Strtab{}, errors.Wrapf(ErrNoStrtab, "section %d has type %s", idx, sh.Type)
	}
	if !checkRange(b.buf, sh.Off, sh.Size) {
		return Strtab{}, errors.Wrapf(ErrRange, "string table: %d bytes at offset 0x%x", sh.Size, sh.Off)
	}
	return Strtab{data: b.buf[sh.Off : sh.Off+sh.Size]}, nil
}

// Lookup returns the NUL-terminated string starting at off.
func (s Strtab) Lookup(off uint32) (string, error) {
	if uint64(off) >= uint64(len(s.data)) {
		return "", errors.Wrapf(ErrRange, "string offset %d in a %d byte table", off, len(s.data))
	}
	end := bytes.IndexByte(s.data[off:], 0)
	if end < 0 {
		return "", errors.Wrapf(ErrBadString, "offset %d", off)
	}
	return string(s.data[off : int(off)+end]), nil
}
