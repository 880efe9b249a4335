package elf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/lunixbochs/struc"
)

// Test images are assembled from the same raw records the parser decodes,
// placed at fixed offsets so every test controls its own layout.

func packRecords(t *testing.T, order binary.ByteOrder, vs ...interface{}) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range vs {
		if err := struc.PackWithOrder(&buf, v, order); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func ident(class, data byte) [identSize]byte {
	var id [identSize]byte
	copy(id[:], elfMagic)
	id[idxClass] = class
	id[idxData] = data
	id[idxVersion] = 1
	return id
}

// fixture64 builds a little endian x86-64 image. Program headers land at
// offset 0x40, section headers after everything else.
type fixture64 struct {
	t     *testing.T
	typ   uint16
	entry uint64
	phdrs []elf64Phdr
	shdrs []elf64Shdr
	buf   []byte

	shstrndx uint16
}

func newFixture64(t *testing.T) *fixture64 {
	return &fixture64{t: t, typ: 2} // ET_EXEC
}

func (f *fixture64) place(off uint64, p []byte) {
	if need := off + uint64(len(p)); need > uint64(len(f.buf)) {
		f.buf = append(f.buf, make([]byte, need-uint64(len(f.buf)))...)
	}
	copy(f.buf[off:], p)
}

func (f *fixture64) addPhdr(ph elf64Phdr) {
	f.phdrs = append(f.phdrs, ph)
}

func (f *fixture64) addShdr(sh elf64Shdr) {
	f.shdrs = append(f.shdrs, sh)
}

func (f *fixture64) build() []byte {
	f.t.Helper()
	phoff := uint64(0)
	if len(f.phdrs) > 0 {
		phoff = ehdrSize64
		var tab []interface{}
		for i := range f.phdrs {
			tab = append(tab, &f.phdrs[i])
		}
		f.place(phoff, packRecords(f.t, binary.LittleEndian, tab...))
	}
	shoff := uint64(0)
	if len(f.shdrs) > 0 {
		shoff = (uint64(len(f.buf)) + 7) &^ 7
		if shoff < ehdrSize64 {
			shoff = ehdrSize64
		}
		var tab []interface{}
		for i := range f.shdrs {
			tab = append(tab, &f.shdrs[i])
		}
		f.place(shoff, packRecords(f.t, binary.LittleEndian, tab...))
	}
	ehdr := elf64Ehdr{
		Ident:     ident(2, 1),
		Type:      f.typ,
		Machine:   62, // EM_X86_64
		Version:   1,
		Entry:     f.entry,
		Phoff:     phoff,
		Shoff:     shoff,
		Ehsize:    ehdrSize64,
		Phentsize: phdrSize64,
		Phnum:     uint16(len(f.phdrs)),
		Shentsize: shdrSize64,
		Shnum:     uint16(len(f.shdrs)),
		Shstrndx:  f.shstrndx,
	}
	f.place(0, packRecords(f.t, binary.LittleEndian, &ehdr))
	return f.buf
}

func (f *fixture64) parse() *Binary {
	f.t.Helper()
	b, err := New(f.build())
	if err != nil {
		f.t.Fatal(err)
	}
	return b
}

// fixture32 builds a big endian ARM image, exercising the other class and
// byte order.
type fixture32 struct {
	t     *testing.T
	typ   uint16
	phdrs []elf32Phdr
	shdrs []elf32Shdr
	buf   []byte
}

func newFixture32(t *testing.T) *fixture32 {
	return &fixture32{t: t, typ: 2}
}

func (f *fixture32) place(off uint64, p []byte) {
	if need := off + uint64(len(p)); need > uint64(len(f.buf)) {
		f.buf = append(f.buf, make([]byte, need-uint64(len(f.buf)))...)
	}
	copy(f.buf[off:], p)
}

func (f *fixture32) addPhdr(ph elf32Phdr) {
	f.phdrs = append(f.phdrs, ph)
}

func (f *fixture32) addShdr(sh elf32Shdr) {
	f.shdrs = append(f.shdrs, sh)
}

func (f *fixture32) build() []byte {
	f.t.Helper()
	phoff := uint32(0)
	if len(f.phdrs) > 0 {
		phoff = ehdrSize32
		var tab []interface{}
		for i := range f.phdrs {
			tab = append(tab, &f.phdrs[i])
		}
		f.place(uint64(phoff), packRecords(f.t, binary.BigEndian, tab...))
	}
	shoff := uint32(0)
	if len(f.shdrs) > 0 {
		shoff = (uint32(len(f.buf)) + 3) &^ 3
		if shoff < ehdrSize32 {
			shoff = ehdrSize32
		}
		var tab []interface{}
		for i := range f.shdrs {
			tab = append(tab, &f.shdrs[i])
		}
		f.place(uint64(shoff), packRecords(f.t, binary.BigEndian, tab...))
	}
	ehdr := elf32Ehdr{
		Ident:     ident(1, 2),
		Type:      f.typ,
		Machine:   40, // EM_ARM
		Version:   1,
		Phoff:     phoff,
		Shoff:     shoff,
		Ehsize:    ehdrSize32,
		Phentsize: phdrSize32,
		Phnum:     uint16(len(f.phdrs)),
		Shentsize: shdrSize32,
		Shnum:     uint16(len(f.shdrs)),
	}
	f.place(0, packRecords(f.t, binary.BigEndian, &ehdr))
	return f.buf
}

func (f *fixture32) parse() *Binary {
	f.t.Helper()
	b, err := New(f.build())
	if err != nil {
		f.t.Fatal(err)
	}
	return b
}
