package models

// Loader is the capability an embedder supplies to place a binary into an
// address space. The core never allocates, copies or writes memory itself;
// it only decides what must happen and in which order, and calls these
// methods. Any error aborts the remaining sequence immediately; the
// embedder owns the memory and must cope with partial state.
type Loader interface {
	// Allocate receives the full ordered set of loadable segments before
	// any bytes are copied, so address space can be reserved up front.
	Allocate(loadable SegmentIter) error

	// Load receives one segment's permission flags, its intended virtual
	// base address, and exactly the file-backed bytes of the segment.
	// Zeroing the Memsz-Filesz tail is the implementation's job.
	Load(flags ProgFlag, vaddr uint64, data []byte) error

	// Relocate receives one decoded relocation entry. The implementation
	// computes and writes the patched value; a RELATIVE kind, for
	// example, stores load base plus addend at load base plus offset.
	Relocate(entry RelocationEntry) error

	// TLS receives the thread-local storage layout when the binary has a
	// PT_TLS segment. Called at most once per load.
	TLS(info TLSInfo) error
}

// RelroLoader is optionally implemented by a Loader that can revoke write
// access. After relocation, every PT_GNU_RELRO region is reported here.
type RelroLoader interface {
	MakeReadOnly(vaddr, size uint64) error
}
