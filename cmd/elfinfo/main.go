package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/go-kit/log"

	"github.com/kerncraft/elfload/elf"
	"github.com/kerncraft/elfload/loader"
)

func dumpHeader(b *elf.Binary) {
	h := &b.Header
	fmt.Printf("class:    %s\n", h.Class)
	fmt.Printf("data:     %s\n", h.Data)
	fmt.Printf("type:     %s\n", h.Type)
	fmt.Printf("machine:  %s\n", h.Machine)
	fmt.Printf("entry:    0x%x\n", h.Entry)
	fmt.Printf("phnum:    %d\n", h.Phnum)
	fmt.Printf("shnum:    %d\n", h.Shnum)
	if interp := b.Interp(); interp != "" {
		fmt.Printf("interp:   %s\n", interp)
	}
	fmt.Printf("pie:      %v\n", b.IsPIE())
}

func dumpSegments(b *elf.Binary) error {
	fmt.Printf("%-14s %-5s %-18s %-18s %-10s %-10s\n",
		"TYPE", "FLAGS", "VADDR", "OFFSET", "FILESZ", "MEMSZ")
	it := b.ProgramHeaders()
	for {
		ph, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%-14s %-5s 0x%-16x 0x%-16x 0x%-8x 0x%-8x\n",
			ph.Type, ph.Flags, ph.Vaddr, ph.Off, ph.Filesz, ph.Memsz)
	}
	return it.Err()
}

func dumpSections(b *elf.Binary) error {
	it := b.SectionHeaders()
	for {
		sh, ok := it.Next()
		if !ok {
			break
		}
		name, err := b.SectionName(sh)
		if err != nil {
			name = "?"
		}
		fmt.Printf("%-24s %-12s 0x%-16x 0x%-8x\n", name, sh.Type, sh.Addr, sh.Size)
	}
	return it.Err()
}

func dumpDynamic(b *elf.Binary) error {
	dyn := b.Dynamic()
	if dyn == nil {
		fmt.Println("no dynamic segment")
		return nil
	}
	return b.ForEachNeeded(func(name string) error {
		fmt.Printf("needed: %s\n", name)
		return nil
	})
}

func dumpRelocs(b *elf.Binary) error {
	it, err := b.Relocations()
	if err != nil {
		return err
	}
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("0x%-16x %-24s sym %-6d", r.Offset, r.Type, r.SymIndex)
		if r.HasAddend {
			fmt.Printf(" addend 0x%x", r.Addend)
		}
		fmt.Println()
	}
	return it.Err()
}

func dumpSymbols(b *elf.Binary) error {
	syms, err := b.Symbols()
	if err != nil {
		return err
	}
	for _, s := range syms {
		fmt.Printf("0x%-16x %-8d %s\n", s.Value, s.Size, s.Name)
	}
	return nil
}

func dumpTLS(b *elf.Binary) error {
	info, ok, err := b.TLS()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no TLS segment")
		return nil
	}
	fmt.Printf("tls: vaddr 0x%x filesz 0x%x memsz 0x%x align 0x%x\n",
		info.Vaddr, info.Filesz, info.Memsz, info.Align)
	return nil
}

func dryRun(b *elf.Binary) error {
	rec := &loader.RecordingLoader{}
	if err := b.Load(rec); err != nil {
		return err
	}
	for _, a := range rec.Actions {
		switch a.Kind {
		case loader.ActionLoad:
			fmt.Printf("%-8s 0x%-16x %-8d %s\n", a.Kind, a.Vaddr, a.Size, a.Flags)
		case loader.ActionRelocate:
			fmt.Printf("%-8s 0x%-16x %s\n", a.Kind, a.Reloc.Offset, a.Reloc.Type)
		case loader.ActionTLS:
			fmt.Printf("%-8s 0x%-16x memsz 0x%x\n", a.Kind, a.TLS.Vaddr, a.TLS.Memsz)
		case loader.ActionRelro:
			fmt.Printf("%-8s 0x%-16x %d\n", a.Kind, a.Vaddr, a.Size)
		default:
			fmt.Printf("%s\n", a.Kind)
		}
	}
	return nil
}

func main() {
	fs := flag.NewFlagSet("elfinfo", flag.ExitOnError)
	segments := fs.Bool("segments", false, "dump program headers")
	sections := fs.Bool("sections", false, "dump section headers")
	dynamic := fs.Bool("dynamic", false, "dump dynamic dependencies")
	relocs := fs.Bool("relocs", false, "dump relocations")
	symbols := fs.Bool("symbols", false, "dump symbols")
	tls := fs.Bool("tls", false, "dump the TLS segment")
	dry := fs.Bool("dry-run", false, "drive the load sequence and print each step")
	verbose := fs.Bool("v", false, "log parser diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n", os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	buf, err := ioutil.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if !elf.Match(buf) {
		fmt.Fprintf(os.Stderr, "%s: not an ELF file\n", fs.Arg(0))
		os.Exit(1)
	}
	b, err := elf.New(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", fs.Arg(0), err)
		os.Exit(1)
	}
	if *verbose {
		b.SetLogger(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)))
	}

	err = nil
	switch {
	case *segments:
		err = dumpSegments(b)
	case *sections:
		err = dumpSections(b)
	case *dynamic:
		err = dumpDynamic(b)
	case *relocs:
		err = dumpRelocs(b)
	case *symbols:
		err = dumpSymbols(b)
	case *tls:
		err = dumpTLS(b)
	case *dry:
		err = dryRun(b)
	default:
		dumpHeader(b)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
