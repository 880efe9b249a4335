package elf

import (
	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/models"
)

// Symtab is a lazy view of one symbol table and its linked string table.
type Symtab struct {
	b       *Binary
	str     Strtab
	off     uint64
	entsize uint64
	count   int
	dynamic bool
}

func (b *Binary) symtab(typ models.SectionType, dynamic bool) (*Symtab, error) {
	it := b.Sections(typ)
	sh, ok := it.Next()
	if !ok {
		if err := it.Err(); err != nil {
			return nil, err
		}
		return nil, errors.Wrapf(ErrNoSymtab, "no %s section", typ)
	}
	entsize := uint64(symSize64)
	if b.Header.Class == models.ELFCLASS32 {
		entsize = symSize32
	}
	if sh.Entsize != entsize {
		return nil, errors.Wrapf(ErrBadEntSize, "symbol entry size %d, want %d", sh.Entsize, entsize)
	}
	if sh.Size%entsize != 0 {
		return nil, errors.Wrapf(ErrOddTableSize, "symbol table size %d, entry size %d", sh.Size, entsize)
	}
	if !checkRange(b.buf, sh.Off, sh.Size) {
		return nil, errors.Wrapf(ErrRange, "symbol table: %d bytes at offset 0x%x", sh.Size, sh.Off)
	}
	str, err := b.strtabAt(int(sh.Link))
	if err != nil {
		return nil, errors.Wrap(err, "symbol string table")
	}
	return &Symtab{
		b:       b,
		str:     str,
		off:     sh.Off,
		entsize: entsize,
		count:   int(sh.Size / entsize),
		dynamic: dynamic,
	}, nil
}

// Symtab returns the static symbol table (.symtab). Missing-table errors
// unwrap to ErrNoSymtab.
func (b *Binary) Symtab() (*Symtab, error) {
	return b.symtab(models.SHT_SYMTAB, false)
}

// DynSymtab returns the dynamic symbol table (.dynsym).
func (b *Binary) DynSymtab() (*Symtab, error) {
	return b.symtab(models.SHT_DYNSYM, true)
}

func (st *Symtab) Count() int {
	return st.count
}

// At decodes the i-th symbol, resolving its name through the linked string
// table.
func (st *Symtab) At(i int) (models.Symbol, error) {
	var sym models.Symbol
	if i < 0 || i >= st.count {
		return sym, errors.Wrapf(ErrRange, "symbol %d of %d", i, st.count)
	}
	off := st.off + uint64(i)*st.entsize
	var nameOff uint32
	if st.b.Header.Class == models.ELFCLASS64 {
		var raw elf64Sym
		if err := unpackAt(st.b.buf, off, symSize64, st.b.order, &raw); err != nil {
			return sym, errors.Wrapf(err, "symbol %d", i)
		}
		nameOff = raw.Name
		sym = models.Symbol{
			Value:   raw.Value,
			Size:    raw.Size,
			Info:    raw.Info,
			Other:   raw.Other,
			Shndx:   raw.Shndx,
			Dynamic: st.dynamic,
		}
	} else {
		var raw elf32Sym
		if err := unpackAt(st.b.buf, off, symSize32, st.b.order, &raw); err != nil {
			return sym, errors.Wrapf(err, "symbol %d", i)
		}
		nameOff = raw.Name
		sym = models.Symbol{
			Value:   uint64(raw.Value),
			Size:    uint64(raw.Size),
			Info:    raw.Info,
			Other:   raw.Other,
			Shndx:   raw.Shndx,
			Dynamic: st.dynamic,
		}
	}
	if nameOff != 0 {
		name, err := st.str.Lookup(nameOff)
		if err != nil {
			return sym, errors.Wrapf(err, "symbol %d name", i)
		}
		sym.Name = name
	}
	return sym, nil
}

// ForEach calls fn for every symbol in table order.
func (st *Symtab) ForEach(fn func(models.Symbol)) error {
	for i := 0; i < st.count; i++ {
		sym, err := st.At(i)
		if err != nil {
			return err
		}
		fn(sym)
	}
	return nil
}

// ForEachSymbol enumerates the static symbol table. It fails with
// ErrNoSymtab when the binary is stripped.
func (b *Binary) ForEachSymbol(fn func(models.Symbol)) error {
	st, err := b.Symtab()
	if err != nil {
		return err
	}
	return st.ForEach(fn)
}

// Symbols collects the static and dynamic symbols into one slice. This is
// a convenience for tooling; freestanding embedders should use the
// iterating forms instead.
func (b *Binary) Symbols() ([]models.Symbol, error) {
	var out []models.Symbol
	collect := func(s models.Symbol) {
		out = append(out, s)
	}
	st, err := b.Symtab()
	if err == nil {
		if err := st.ForEach(collect); err != nil {
			return nil, err
		}
	} else if errors.Cause(err) != ErrNoSymtab {
		return nil, err
	}
	if dt, err := b.DynSymtab(); err == nil {
		if err := dt.ForEach(collect); err != nil {
			return nil, err
		}
	} else if errors.Cause(err) != ErrNoSymtab {
		return nil, err
	}
	return out, nil
}
