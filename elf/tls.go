package elf

import (
	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

// TLS locates the PT_TLS program header and reports the initial
// thread-local storage layout. A binary without TLS returns ok == false,
// which is not an error; TLS exists independently of dynamic linking.
func (b *Binary) TLS() (info models.TLSInfo, ok bool, err error) {
	it := b.Segments(models.PT_TLS)
	ph, found := it.Next()
	if !found {
		return models.TLSInfo{}, false, it.Err()
	}
	if ph.Memsz < ph.Filesz {
		return models.TLSInfo{}, false, errors.Wrapf(ErrBadTLS, "filesz 0x%x, memsz 0x%x", ph.Filesz, ph.Memsz)
	}
	if !checkRange(b.buf, ph.Off, ph.Filesz) {
		return models.TLSInfo{}, false, errors.Wrapf(ErrRange, "TLS image: %d bytes at offset 0x%x", ph.Filesz, ph.Off)
	}
	return models.TLSInfo{
		Vaddr:  ph.Vaddr,
		Off:    ph.Off,
		Filesz: ph.Filesz,
		Memsz:  ph.Memsz,
		Align:  ph.Align,
	}, true, nil
}
