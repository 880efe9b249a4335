// Package loader ships ready-made models.Loader capabilities: a no-op
// loader for validation passes, a recording loader for inspection and
// testing, and an in-process arena loader that materializes the image
// into a byte slice.
package loader

import "github.com/kerncraft/elfload/models"

// NullLoader accepts every callback and does nothing. Driving a binary
// through it exercises the full parse and orchestration path without
// touching memory, which makes it a cheap structural validator.
type NullLoader struct{}

func (NullLoader) Allocate(models.SegmentIter) error          { return nil }
func (NullLoader) Load(models.ProgFlag, uint64, []byte) error { return nil }
func (NullLoader) Relocate(models.RelocationEntry) error      { return nil }
func (NullLoader) TLS(models.TLSInfo) error                   { return nil }
