package elf

import (
	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

// checkLoadable rejects binaries that parse fine but cannot be placed
// into an address space: only executables and shared objects with a SysV
// or Linux ABI are loadable.
func (b *Binary) checkLoadable() error {
	h := &b.Header
	if h.OSABI != models.ELFOSABI_SYSV && h.OSABI != models.ELFOSABI_LINUX {
		return errors.Wrapf(ErrUnsupportedABI, "OS ABI %d", uint8(h.OSABI))
	}
	if h.Type != models.ET_EXEC && h.Type != models.ET_DYN {
		return errors.Wrapf(ErrUnsupportedType, "cannot load a %s file", h.Type)
	}
	return nil
}

// Load drives the capability through the whole loading sequence, strictly
// in this order:
//
//  1. Allocate, once, with the loadable-segment view, so address space can
//     be reserved before any copy.
//  2. Load, once per PT_LOAD segment in file order, with exactly the
//     file-backed bytes. Zero-filling the Memsz tail is the capability's
//     job.
//  3. Relocate, once per relocation entry in file order.
//  4. TLS, once, if a PT_TLS segment exists.
//  5. MakeReadOnly, once per PT_GNU_RELRO region, when the capability
//     implements models.RelroLoader.
//
// The first failure, whether a structural decode error or an error from
// the capability, aborts the remaining steps. Nothing is rolled back and
// nothing is retried: the capability owns the memory and must cope with
// partial state.
func (b *Binary) Load(l models.Loader) error {
	if err := b.checkLoadable(); err != nil {
		return err
	}

	segs := b.LoadSegments()
	b.logger.Log("msg", "allocating address space")
	if err := l.Allocate(segs); err != nil {
		return errors.Wrap(err, "allocate")
	}
	if err := segs.Err(); err != nil {
		return err
	}

	segs.Reset()
	for {
		ph, ok := segs.Next()
		if !ok {
			break
		}
		if !checkRange(b.buf, ph.Off, ph.Filesz) {
			return errors.Wrapf(ErrRange, "segment at vaddr 0x%x: %d bytes at offset 0x%x", ph.Vaddr, ph.Filesz, ph.Off)
		}
		b.logger.Log("msg", "loading segment", "vaddr", ph.Vaddr, "filesz", ph.Filesz, "flags", ph.Flags.String())
		if err := l.Load(ph.Flags, ph.Vaddr, b.buf[ph.Off:ph.Off+ph.Filesz]); err != nil {
			return errors.Wrap(err, "load")
		}
	}
	if err := segs.Err(); err != nil {
		return err
	}

	rels, err := b.Relocations()
	if err != nil {
		return err
	}
	for {
		entry, ok := rels.Next()
		if !ok {
			break
		}
		if err := l.Relocate(entry); err != nil {
			return errors.Wrapf(err, "relocate %s at offset 0x%x", entry.Type, entry.Offset)
		}
	}
	if err := rels.Err(); err != nil {
		return err
	}

	info, ok, err := b.TLS()
	if err != nil {
		return err
	}
	if ok {
		b.logger.Log("msg", "TLS image", "vaddr", info.Vaddr, "filesz", info.Filesz, "memsz", info.Memsz, "align", info.Align)
		if err := l.TLS(info); err != nil {
			return errors.Wrap(err, "tls")
		}
	}

	if rl, ok := l.(models.RelroLoader); ok {
		relro := b.Segments(models.PT_GNU_RELRO)
		for {
			ph, ok := relro.Next()
			if !ok {
				break
			}
			if err := rl.MakeReadOnly(ph.Vaddr, ph.Memsz); err != nil {
				return errors.Wrap(err, "make readonly")
			}
		}
		if err := relro.Err(); err != nil {
			return err
		}
	}
	return nil
}
