package models

// TLSInfo is the layout of the initial thread-local storage image as
// described by a PT_TLS program header. Filesz bytes starting at Off in
// the file initialize the front of the block; the remaining Memsz-Filesz
// bytes are zero-filled by the embedder.
type TLSInfo struct {
	Vaddr  uint64
	Off    uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

// End is the first address past the whole TLS block, including the
// zero-filled tail.
func (t TLSInfo) End() uint64 {
	return t.Vaddr + t.Memsz
}
