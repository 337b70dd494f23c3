package phdrs

import (
	"debug/elf"
	"fmt"
	"strings"
)

// Type returns the segment type (one of the PT_* codes).
// Unrecognized codes are passed through unchanged: operating systems and
// processor vendors define private ranges beyond the generic set.
func (p *ProgHeader) Type() uint32 {
	return p.ptype
}

// Flags returns the segment permission bitfield (PF_* bits).
func (p *ProgHeader) Flags() uint32 {
	return p.pflags
}

// Offset returns the segment's offset within the object's file image.
func (p *ProgHeader) Offset() uint64 {
	return uint64(p.off)
}

// Vaddr returns the segment's virtual address, before the object's load
// bias is applied.
func (p *ProgHeader) Vaddr() uint64 {
	return uint64(p.vaddr)
}

// Paddr returns the segment's physical address. On modern systems this is
// usually reported as the same as the virtual address.
func (p *ProgHeader) Paddr() uint64 {
	return uint64(p.paddr)
}

// Filesz returns the size of the segment in the file image.
func (p *ProgHeader) Filesz() uint64 {
	return uint64(p.filesz)
}

// Memsz returns the size of the segment once loaded in memory.
func (p *ProgHeader) Memsz() uint64 {
	return uint64(p.memsz)
}

// Align returns the alignment of the segment in file and memory.
func (p *ProgHeader) Align() uint64 {
	return uint64(p.align)
}

var progTypeNames = map[elf.ProgType]string{
	elf.PT_NULL:         "PT_NULL",
	elf.PT_LOAD:         "PT_LOAD",
	elf.PT_DYNAMIC:      "PT_DYNAMIC",
	elf.PT_INTERP:       "PT_INTERP",
	elf.PT_NOTE:         "PT_NOTE",
	elf.PT_SHLIB:        "PT_SHLIB",
	elf.PT_PHDR:         "PT_PHDR",
	elf.PT_TLS:          "PT_TLS",
	elf.PT_LOOS:         "PT_LOOS",
	elf.PT_HIOS:         "PT_HIOS",
	elf.PT_LOPROC:       "PT_LOPROC",
	elf.PT_HIPROC:       "PT_HIPROC",
	elf.PT_GNU_EH_FRAME: "PT_GNU_EH_FRAME",
	elf.PT_GNU_RELRO:    "PT_GNU_RELRO",
}

// TypeName returns the symbolic name of a segment type code, or "other" for
// codes outside the generic set. An unrecognized code is not an error: the
// OS- and processor-specific ranges are legal and routinely used.
func TypeName(typ uint32) string {
	if name, ok := progTypeNames[elf.ProgType(typ)]; ok {
		return name
	}
	return "other"
}

// FlagString renders a segment permission bitfield as a "|"-joined list of
// PF_* names. Bits in the processor-specific mask are reported collectively
// as PF_MASKPROC. An empty bitfield renders as an empty string.
func FlagString(flags uint32) string {
	var names []string
	if flags&uint32(elf.PF_X) != 0 {
		names = append(names, "PF_X")
	}
	if flags&uint32(elf.PF_W) != 0 {
		names = append(names, "PF_W")
	}
	if flags&uint32(elf.PF_R) != 0 {
		names = append(names, "PF_R")
	}
	if flags&uint32(elf.PF_MASKPROC) != 0 {
		names = append(names, "PF_MASKPROC")
	}
	return strings.Join(names, "|")
}

// String renders the header for diagnostics. Addresses and the alignment
// are hexadecimal, sizes decimal. The exact format is not stable API.
func (p *ProgHeader) String() string {
	return fmt.Sprintf(
		"ProgHeader{type: %d (%s), flags: <%s>, offset: %#x, vaddr: %#x, paddr: %#x, filesz: %d, memsz: %d, align: %#x}",
		p.Type(), TypeName(p.Type()), FlagString(p.Flags()),
		p.Offset(), p.Vaddr(), p.Paddr(), p.Filesz(), p.Memsz(), p.Align(),
	)
}
