//go:build 386 || arm || mips || mipsle

package phdrs

// ProgHeader is a read-only view of one ELF program header in the loader's
// table. The field layout mirrors Elf32_Phdr exactly so that the loader's
// array can be walked in place without copying. Note that the 32-bit ELF
// header puts the flags word near the end, unlike Elf64_Phdr.
type ProgHeader struct {
	ptype  uint32
	off    uint32
	vaddr  uint32
	paddr  uint32
	filesz uint32
	memsz  uint32
	pflags uint32
	align  uint32
}
