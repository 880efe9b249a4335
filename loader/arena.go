package loader

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/kerncraft/elfload/arch/arm"
	"github.com/kerncraft/elfload/arch/arm64"
	"github.com/kerncraft/elfload/arch/riscv"
	"github.com/kerncraft/elfload/arch/x86"
	"github.com/kerncraft/elfload/arch/x86_64"
	"github.com/kerncraft/elfload/models"
)

// ErrNoArena is returned when a loader callback runs before Allocate has
// sized the arena.
var ErrNoArena = errors.New("Arena has not been allocated")

// ArenaLoader builds the process image in an ordinary byte slice. The
// arena spans from the lowest to the highest loadable address, the gaps
// stay zero, and base-relative (RELATIVE) relocations are applied with
// the configured bias. It is enough to host a static PIE in-process, or
// to inspect exactly what a real mapping would contain.
type ArenaLoader struct {
	// Bias is the value added to every base-relative relocation, the
	// address the image is pretending to be mapped at.
	Bias uint64

	order binary.ByteOrder
	base  uint64
	mem   []byte
	tls   *models.TLSInfo
}

// NewArenaLoader returns an arena that patches relocations in the given
// byte order with the given load bias.
func NewArenaLoader(order binary.ByteOrder, bias uint64) *ArenaLoader {
	return &ArenaLoader{Bias: bias, order: order}
}

// Base returns the lowest loadable address, the origin of the arena.
func (l *ArenaLoader) Base() uint64 { return l.base }

// Bytes returns the backing memory. Offset 0 corresponds to Base().
func (l *ArenaLoader) Bytes() []byte { return l.mem }

// TLSImage returns the recorded TLS description, or nil when the binary
// had no TLS segment.
func (l *ArenaLoader) TLSImage() *models.TLSInfo { return l.tls }

func (l *ArenaLoader) Allocate(segs models.SegmentIter) error {
	var lo, hi uint64
	first := true
	for {
		ph, ok := segs.Next()
		if !ok {
			break
		}
		end := ph.Vaddr + ph.Memsz
		if end < ph.Vaddr {
			return errors.Errorf("segment at 0x%x wraps the address space", ph.Vaddr)
		}
		if first || ph.Vaddr < lo {
			lo = ph.Vaddr
		}
		if first || end > hi {
			hi = end
		}
		first = false
	}
	if err := segs.Err(); err != nil {
		return err
	}
	if first {
		return errors.New("no loadable segments")
	}
	l.base = lo
	l.mem = make([]byte, hi-lo)
	return nil
}

// slot bounds-checks a vaddr range against the arena and returns the
// backing bytes.
func (l *ArenaLoader) slot(vaddr, size uint64) ([]byte, error) {
	if l.mem == nil {
		return nil, ErrNoArena
	}
	if vaddr < l.base {
		return nil, errors.Errorf("address 0x%x below arena base 0x%x", vaddr, l.base)
	}
	off := vaddr - l.base
	if off > uint64(len(l.mem)) || size > uint64(len(l.mem))-off {
		return nil, errors.Errorf("%d bytes at 0x%x outside the arena", size, vaddr)
	}
	return l.mem[off : off+size], nil
}

func (l *ArenaLoader) Load(flags models.ProgFlag, vaddr uint64, data []byte) error {
	dst, err := l.slot(vaddr, uint64(len(data)))
	if err != nil {
		return err
	}
	copy(dst, data)
	return nil
}

func (l *ArenaLoader) Relocate(entry models.RelocationEntry) error {
	switch t := entry.Type.(type) {
	case x86_64.RelocationType:
		switch t {
		case x86_64.R_AMD64_NONE:
			return nil
		case x86_64.R_AMD64_RELATIVE:
			return l.patch64(entry)
		}
	case arm64.RelocationType:
		switch t {
		case arm64.R_AARCH64_NONE:
			return nil
		case arm64.R_AARCH64_RELATIVE:
			return l.patch64(entry)
		}
	case riscv.RelocationType:
		switch t {
		case riscv.R_RISCV_NONE:
			return nil
		case riscv.R_RISCV_RELATIVE:
			return l.patch64(entry)
		}
	case x86.RelocationType:
		switch t {
		case x86.R_386_NONE:
			return nil
		case x86.R_386_RELATIVE:
			return l.patch32(entry)
		}
	case arm.RelocationType:
		switch t {
		case arm.R_ARM_NONE:
			return nil
		case arm.R_ARM_RELATIVE:
			return l.patch32(entry)
		}
	}
	return errors.Errorf("cannot apply relocation %s", entry.Type)
}

func (l *ArenaLoader) patch64(entry models.RelocationEntry) error {
	slot, err := l.slot(entry.Offset, 8)
	if err != nil {
		return err
	}
	addend := entry.Addend
	if !entry.HasAddend {
		addend = int64(l.order.Uint64(slot))
	}
	l.order.PutUint64(slot, l.Bias+uint64(addend))
	return nil
}

func (l *ArenaLoader) patch32(entry models.RelocationEntry) error {
	slot, err := l.slot(entry.Offset, 4)
	if err != nil {
		return err
	}
	addend := entry.Addend
	if !entry.HasAddend {
		addend = int64(int32(l.order.Uint32(slot)))
	}
	l.order.PutUint32(slot, uint32(l.Bias)+uint32(addend))
	return nil
}

func (l *ArenaLoader) TLS(info models.TLSInfo) error {
	l.tls = &info
	return nil
}

func (l *ArenaLoader) MakeReadOnly(vaddr, size uint64) error {
	// Plain memory has no protection bits. Checking the range still
	// catches binaries whose RELRO region lies outside the image.
	_, err := l.slot(vaddr, size)
	return err
}
