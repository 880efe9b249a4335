package loader

import "github.com/kerncraft/elfload/models"

// ActionKind tags one recorded loader callback.
type ActionKind int

const (
	ActionAllocate ActionKind = iota
	ActionLoad
	ActionRelocate
	ActionTLS
	ActionRelro
)

func (k ActionKind) String() string {
	switch k {
	case ActionAllocate:
		return "allocate"
	case ActionLoad:
		return "load"
	case ActionRelocate:
		return "relocate"
	case ActionTLS:
		return "tls"
	case ActionRelro:
		return "relro"
	}
	return "unknown"
}

// Action is one callback observed by a RecordingLoader. Only the fields
// relevant to the kind are set.
type Action struct {
	Kind  ActionKind
	Flags models.ProgFlag
	Vaddr uint64
	Size  uint64
	Reloc models.RelocationEntry
	TLS   models.TLSInfo
}

// RecordingLoader remembers every callback in order instead of acting on
// it. It answers questions like "which segments would be mapped" and
// backs dry runs and tests.
type RecordingLoader struct {
	Actions []Action
}

func (l *RecordingLoader) Allocate(segs models.SegmentIter) error {
	l.Actions = append(l.Actions, Action{Kind: ActionAllocate})
	return nil
}

func (l *RecordingLoader) Load(flags models.ProgFlag, vaddr uint64, data []byte) error {
	l.Actions = append(l.Actions, Action{
		Kind:  ActionLoad,
		Flags: flags,
		Vaddr: vaddr,
		Size:  uint64(len(data)),
	})
	return nil
}

func (l *RecordingLoader) Relocate(entry models.RelocationEntry) error {
	l.Actions = append(l.Actions, Action{Kind: ActionRelocate, Reloc: entry})
	return nil
}

func (l *RecordingLoader) TLS(info models.TLSInfo) error {
	l.Actions = append(l.Actions, Action{Kind: ActionTLS, TLS: info})
	return nil
}

func (l *RecordingLoader) MakeReadOnly(vaddr, size uint64) error {
	l.Actions = append(l.Actions, Action{Kind: ActionRelro, Vaddr: vaddr, Size: size})
	return nil
}
